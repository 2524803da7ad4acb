package events

import (
	"context"
	"log/slog"
)

// Publisher sends expense change events.
type Publisher interface {
	PublishExpenseChanged(ctx context.Context, msg *ExpenseChanged) error
	Close() error
}

// NopPublisher drops every event. It is used when AMQP is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishExpenseChanged(ctx context.Context, msg *ExpenseChanged) error {
	slog.DebugContext(ctx, "Event publishing disabled, dropping event",
		"project_id", msg.ProjectID,
		"action", msg.Action,
	)
	return nil
}

func (NopPublisher) Close() error { return nil }
