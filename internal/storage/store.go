// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/evensplit/internal/models"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a unique key is already taken.
	ErrAlreadyExists = errors.New("already exists")
)

// Store defines the persistence operations the services depend on.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	UserStore
	ProjectStore
	ExpenseStore

	// GetProjectSnapshot reads a project, its roster and all its expenses in
	// one consistent view.
	GetProjectSnapshot(ctx context.Context, projectID string) (*models.ProjectSnapshot, error)

	// Close releases any resources held by the store.
	Close() error
}

// UserStore manages user accounts.
type UserStore interface {
	// CreateUser persists a new user. The ID and CreatedAt fields are filled in
	// when empty. Returns ErrAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// ProjectStore manages projects and their membership.
type ProjectStore interface {
	// CreateProject persists a new project with its creator as first member.
	CreateProject(ctx context.Context, project *models.Project) error
	GetProject(ctx context.Context, projectID string) (*models.Project, error)

	// ListProjectsForUser returns the user's projects in the order joined.
	ListProjectsForUser(ctx context.Context, userID string) ([]*models.Project, error)

	// AddMembers adds users by username; existing members are skipped.
	// Returns ErrNotFound if any username has no account.
	AddMembers(ctx context.Context, projectID string, usernames []string) error

	SetInviteCode(ctx context.Context, projectID, code string) error
	GetProjectByInviteCode(ctx context.Context, code string) (*models.Project, error)
}

// ExpenseStore manages expenses and their beneficiaries.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)
	UpdateExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error

	// ListExpenses returns a project's expenses, newest date first.
	ListExpenses(ctx context.Context, projectID string) ([]*models.Expense, error)
}
