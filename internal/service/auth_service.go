package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/evensplit/internal/auth"
	"github.com/mmynk/evensplit/internal/storage"
	pb "github.com/mmynk/evensplit/pkg/proto"
	"github.com/mmynk/evensplit/pkg/proto/protoconnect"
)

var _ protoconnect.AuthServiceHandler = (*AuthService)(nil)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	users         storage.UserStore
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, users storage.UserStore, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		users:         users,
		logger:        logger,
	}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[pb.RegisterRequest]) (*connect.Response[pb.RegisterResponse], error) {
	username := strings.TrimSpace(req.Msg.Username)
	s.logger.Info("Register request", "username", username)

	if username == "" || req.Msg.Password == "" {
		return nil, invalidArgument(errors.New("username and password are required"))
	}

	user, err := s.authenticator.Register(ctx, username, req.Msg.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUsernameTaken):
			s.logger.Warn("Registration rejected", "username", username, "error", err)
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidUsername):
			return nil, invalidArgument(err)
		}
		s.logger.Error("Registration failed", "username", username, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User registered successfully", "user_id", user.ID, "username", user.Username)
	return connect.NewResponse(&pb.RegisterResponse{User: toProtoUser(user)}), nil
}

// Login authenticates a user and returns a bearer token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[pb.LoginRequest]) (*connect.Response[pb.LoginResponse], error) {
	username := strings.TrimSpace(req.Msg.Username)
	s.logger.Info("Login request", "username", username)

	if username == "" || req.Msg.Password == "" {
		return nil, invalidArgument(auth.ErrInvalidCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, username, req.Msg.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.logger.Warn("Login failed", "username", username)
			return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
		}
		s.logger.Error("Login failed", "username", username, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&pb.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   time.Now().Add(s.jwtManager.TokenDuration()).Unix(),
		User:        toProtoUser(user),
	}), nil
}

// GetCurrentUser returns the currently authenticated user's information.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[pb.GetCurrentUserRequest]) (*connect.Response[pb.GetCurrentUserResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, c.userID)
	if err != nil {
		// A valid token for a deleted account.
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
		}
		s.logger.Error("GetCurrentUser failed", "user_id", c.userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&pb.GetCurrentUserResponse{User: toProtoUser(user)}), nil
}

// ListUsers returns every registered user, for picking project members.
func (s *AuthService) ListUsers(ctx context.Context, req *connect.Request[pb.ListUsersRequest]) (*connect.Response[pb.ListUsersResponse], error) {
	if _, err := requireCaller(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		s.logger.Error("ListUsers failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]*pb.User, 0, len(users))
	for _, u := range users {
		out = append(out, toProtoUser(u))
	}
	return connect.NewResponse(&pb.ListUsersResponse{Users: out}), nil
}
