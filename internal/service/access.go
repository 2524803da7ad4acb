package service

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/evensplit/internal/auth"
	"github.com/mmynk/evensplit/internal/middleware"
	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/storage"
)

// caller is the authenticated user behind a request.
type caller struct {
	userID   string
	username string
}

// requireCaller reads the user placed in ctx by the auth interceptor.
func requireCaller(ctx context.Context) (caller, error) {
	c := caller{
		userID:   middleware.GetUserID(ctx),
		username: middleware.GetUsername(ctx),
	}
	if c.userID == "" || c.username == "" {
		return caller{}, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return c, nil
}

// memberProject loads a project the caller belongs to.
func memberProject(ctx context.Context, store storage.ProjectStore, projectID string, c caller) (*models.Project, error) {
	if projectID == "" {
		return nil, invalidArgument(fmt.Errorf("project_id is required"))
	}
	project, err := store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !project.HasMember(c.username) {
		return nil, ErrNotMember
	}
	return project, nil
}
