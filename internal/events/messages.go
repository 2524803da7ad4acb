// Package events carries expense change notifications between the API server
// and the ledger auditor over RabbitMQ.
package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Action names what happened to an expense.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ExpenseChanged tells consumers a project's ledger changed. It carries ids
// only; consumers reload the project snapshot from the database.
type ExpenseChanged struct {
	ProjectID  string    `json:"project_id"`
	ExpenseID  string    `json:"expense_id"`
	Action     Action    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewExpenseChanged stamps a change event with the current time.
func NewExpenseChanged(projectID, expenseID string, action Action) *ExpenseChanged {
	return &ExpenseChanged{
		ProjectID:  projectID,
		ExpenseID:  expenseID,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}
}

// Validate checks the message has everything a consumer needs.
func (m *ExpenseChanged) Validate() error {
	if m.ProjectID == "" {
		return errors.New("project_id is required")
	}
	switch m.Action {
	case ActionCreated, ActionUpdated, ActionDeleted:
	default:
		return fmt.Errorf("unknown action %q", m.Action)
	}
	return nil
}

// ToJSON converts the message to JSON bytes.
func (m *ExpenseChanged) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseChangedFromJSON decodes and validates a message.
func ExpenseChangedFromJSON(data []byte) (*ExpenseChanged, error) {
	var msg ExpenseChanged
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	if err := msg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid message: %w", err)
	}
	return &msg, nil
}
