package models

// Project groups users who share expenses.
type Project struct {
	// ID is the unique identifier for the project (UUID format).
	ID string

	// Name is the display name (e.g., "Lisbon trip").
	Name string

	// Date is an optional YYYY-MM-DD date the project is about.
	Date string

	// InviteCode lets other users join. Empty until an invite is created.
	InviteCode string

	// CreatedBy is the user ID of the creator, who is always a member.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the project was created.
	CreatedAt int64

	// Members lists the usernames of the project members in join order.
	Members []string
}

// HasMember reports whether username belongs to the project.
func (p *Project) HasMember(username string) bool {
	for _, m := range p.Members {
		if m == username {
			return true
		}
	}
	return false
}
