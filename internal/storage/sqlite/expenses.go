package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/money"
	"github.com/mmynk/evensplit/internal/storage"
)

const expenseColumns = "id, project_id, item, category, date, amount_cents, paid_by, created_by, created_at, updated_at"

// CreateExpense persists a new expense and its beneficiaries.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if expense.CreatedAt == 0 {
		expense.CreatedAt = now
	}
	expense.UpdatedAt = expense.CreatedAt

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO expenses ("+expenseColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		expense.ID, expense.ProjectID, expense.Item, expense.Category, expense.Date,
		int64(expense.Amount), expense.PaidBy, expense.CreatedBy, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := insertBeneficiaries(ctx, tx, expense.ID, expense.PaidFor); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense with its beneficiaries.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense, err := scanExpense(s.db.QueryRowContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE id = ?", expenseID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT username FROM expense_beneficiaries WHERE expense_id = ? ORDER BY position",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get beneficiaries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan beneficiary: %w", err)
		}
		expense.PaidFor = append(expense.PaidFor, username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating beneficiaries: %w", err)
	}
	return expense, nil
}

// UpdateExpense replaces the editable fields and beneficiaries of an expense.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	expense.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE expenses SET item = ?, category = ?, date = ?, amount_cents = ?, paid_by = ?, updated_at = ?
		 WHERE id = ?`,
		expense.Item, expense.Category, expense.Date, int64(expense.Amount), expense.PaidBy, expense.UpdatedAt,
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s: %w", expense.ID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_beneficiaries WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to clear beneficiaries: %w", err)
	}
	if err := insertBeneficiaries(ctx, tx, expense.ID, expense.PaidFor); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense; beneficiaries cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	return nil
}

// ListExpenses returns a project's expenses, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, projectID string) ([]*models.Expense, error) {
	return listExpenses(ctx, s.db, projectID)
}

// GetProjectSnapshot reads the project, roster and expenses in one
// transaction so concurrent writes are never half visible.
func (s *SQLiteStore) GetProjectSnapshot(ctx context.Context, projectID string) (*models.ProjectSnapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	project, err := getProject(ctx, tx, projectID)
	if err != nil {
		return nil, err
	}
	expenses, err := listExpenses(ctx, tx, projectID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &models.ProjectSnapshot{Project: project, Expenses: expenses}, nil
}

func listExpenses(ctx context.Context, q queryer, projectID string) ([]*models.Expense, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE project_id = ? ORDER BY date DESC, created_at DESC, id",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	var expenses []*models.Expense
	byID := make(map[string]*models.Expense)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
		byID[expense.ID] = expense
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	benRows, err := q.QueryContext(ctx,
		`SELECT eb.expense_id, eb.username FROM expense_beneficiaries eb
		 JOIN expenses e ON e.id = eb.expense_id
		 WHERE e.project_id = ?
		 ORDER BY eb.expense_id, eb.position`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list beneficiaries: %w", err)
	}
	defer benRows.Close()

	for benRows.Next() {
		var expenseID, username string
		if err := benRows.Scan(&expenseID, &username); err != nil {
			return nil, fmt.Errorf("failed to scan beneficiary: %w", err)
		}
		if expense, ok := byID[expenseID]; ok {
			expense.PaidFor = append(expense.PaidFor, username)
		}
	}
	if err := benRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating beneficiaries: %w", err)
	}
	return expenses, nil
}

func insertBeneficiaries(ctx context.Context, tx *sql.Tx, expenseID string, usernames []string) error {
	for i, username := range usernames {
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO expense_beneficiaries (expense_id, username, position) VALUES (?, ?, ?)",
			expenseID, username, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert beneficiary: %w", err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	expense := &models.Expense{}
	var amount int64
	err := row.Scan(
		&expense.ID,
		&expense.ProjectID,
		&expense.Item,
		&expense.Category,
		&expense.Date,
		&amount,
		&expense.PaidBy,
		&expense.CreatedBy,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	expense.Amount = money.Cents(amount)
	return expense, nil
}
