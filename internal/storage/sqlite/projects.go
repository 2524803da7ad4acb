package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/storage"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CreateProject persists a new project and enrolls its creator.
func (s *SQLiteStore) CreateProject(ctx context.Context, project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if project.CreatedAt == 0 {
		project.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO projects (id, name, date, invite_code, created_by, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		project.ID, project.Name, project.Date, nullIfEmpty(project.InviteCode), project.CreatedBy, project.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO project_members (project_id, user_id, joined_at) VALUES (?, ?, ?)",
		project.ID, project.CreatedBy, project.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert creator membership: %w", err)
	}

	members, err := listMembers(ctx, tx, project.ID)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	project.Members = members
	return nil
}

// GetProject retrieves a project with its members.
func (s *SQLiteStore) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	return getProject(ctx, s.db, projectID)
}

// ListProjectsForUser returns the projects a user belongs to, oldest
// membership first.
func (s *SQLiteStore) ListProjectsForUser(ctx context.Context, userID string) ([]*models.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id FROM projects p
		 JOIN project_members pm ON pm.project_id = p.id
		 WHERE pm.user_id = ?
		 ORDER BY pm.joined_at, pm.rowid`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan project id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	projects := make([]*models.Project, 0, len(ids))
	for _, id := range ids {
		project, err := getProject(ctx, s.db, id)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// AddMembers enrolls users by username, skipping those already enrolled.
func (s *SQLiteStore) AddMembers(ctx context.Context, projectID string, usernames []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM projects WHERE id = ?", projectID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("project %s: %w", projectID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	now := time.Now().Unix()
	for _, username := range usernames {
		var userID string
		err := tx.QueryRowContext(ctx, "SELECT id FROM users WHERE username = ?", username).Scan(&userID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("user %s: %w", username, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO project_members (project_id, user_id, joined_at) VALUES (?, ?, ?)",
			projectID, userID, now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SetInviteCode replaces the project's invite code.
func (s *SQLiteStore) SetInviteCode(ctx context.Context, projectID, code string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE projects SET invite_code = ? WHERE id = ?",
		nullIfEmpty(code), projectID,
	)
	if err != nil {
		return fmt.Errorf("failed to set invite code: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", projectID, storage.ErrNotFound)
	}
	return nil
}

// GetProjectByInviteCode resolves an invite code to its project.
func (s *SQLiteStore) GetProjectByInviteCode(ctx context.Context, code string) (*models.Project, error) {
	var projectID string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM projects WHERE invite_code = ?", code).Scan(&projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("invite code: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project by invite code: %w", err)
	}
	return getProject(ctx, s.db, projectID)
}

func getProject(ctx context.Context, q queryer, projectID string) (*models.Project, error) {
	project := &models.Project{}
	var inviteCode sql.NullString
	err := q.QueryRowContext(ctx,
		"SELECT id, name, date, invite_code, created_by, created_at FROM projects WHERE id = ?",
		projectID,
	).Scan(&project.ID, &project.Name, &project.Date, &inviteCode, &project.CreatedBy, &project.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", projectID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	project.InviteCode = inviteCode.String

	project.Members, err = listMembers(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	return project, nil
}

func listMembers(ctx context.Context, q queryer, projectID string) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT u.username FROM project_members pm
		 JOIN users u ON u.id = pm.user_id
		 WHERE pm.project_id = ?
		 ORDER BY pm.joined_at, pm.rowid`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}
	return members, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
