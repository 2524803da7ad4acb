package service

import (
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/evensplit/internal/auth"
	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/storage"
)

var (
	// ErrNotMember is returned when the caller does not belong to the project.
	ErrNotMember = errors.New("not a member of this project")

	// ErrNoProject is returned when a default project is needed but the
	// caller belongs to none.
	ErrNoProject = errors.New("no project found for user")
)

// invalidArgument wraps a request validation failure.
func invalidArgument(err error) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}

// Code maps service, storage and engine errors to a Connect code.
func Code(err error) connect.Code {
	var (
		connectErr *connect.Error
		validation *calculator.ValidationError
	)
	switch {
	case errors.As(err, &connectErr):
		return connectErr.Code()
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, ErrNoProject):
		return connect.CodeNotFound
	case errors.Is(err, ErrNotMember):
		return connect.CodePermissionDenied
	case errors.Is(err, storage.ErrAlreadyExists), errors.Is(err, auth.ErrUsernameTaken):
		return connect.CodeAlreadyExists
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		return connect.CodeUnauthenticated
	case errors.As(err, &validation):
		// Stored data the engine cannot settle.
		return connect.CodeFailedPrecondition
	default:
		return connect.CodeInternal
	}
}

// toConnectError converts err for return from an RPC handler.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}
	return connect.NewError(Code(err), err)
}

// HTTPStatus maps the same errors to HTTP status codes for the REST routes.
func HTTPStatus(err error) int {
	switch Code(err) {
	case connect.CodeInvalidArgument:
		return http.StatusBadRequest
	case connect.CodeUnauthenticated:
		return http.StatusUnauthorized
	case connect.CodePermissionDenied:
		return http.StatusForbidden
	case connect.CodeNotFound:
		return http.StatusNotFound
	case connect.CodeAlreadyExists:
		return http.StatusConflict
	case connect.CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}
