package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/evensplit/pkg/proto"
)

func TestRegisterAndLogin(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()

	resp, err := srv.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{Username: "alice", Password: "password123"}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Msg.User.Id == "" || resp.Msg.User.Username != "alice" {
		t.Errorf("unexpected user: %+v", resp.Msg.User)
	}

	t.Run("duplicate username", func(t *testing.T) {
		_, err := srv.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{Username: "alice", Password: "password123"}))
		assertCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := srv.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{Username: "bob", Password: "short"}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := srv.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Username: "alice", Password: "nope-nope-nope"}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("login issues usable token", func(t *testing.T) {
		login, err := srv.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Username: "alice", Password: "password123"}))
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if login.Msg.TokenType != "bearer" || login.Msg.AccessToken == "" {
			t.Errorf("unexpected login response: %+v", login.Msg)
		}

		me, err := srv.auth.GetCurrentUser(ctx, authed(login.Msg.AccessToken, &pb.GetCurrentUserRequest{}))
		if err != nil {
			t.Fatalf("GetCurrentUser failed: %v", err)
		}
		if me.Msg.User.Username != "alice" {
			t.Errorf("expected alice, got %s", me.Msg.User.Username)
		}
	})
}

func TestProtectedProceduresRequireToken(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()

	_, err := srv.auth.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = srv.settlement.GetSettlement(ctx, authed("not-a-token", &pb.GetSettlementRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestListUsers(t *testing.T) {
	srv := setupTestServer(t)
	token := srv.signUp(t, "carol")
	srv.signUp(t, "alice")

	resp, err := srv.auth.ListUsers(context.Background(), authed(token, &pb.ListUsersRequest{}))
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(resp.Msg.Users) != 2 || resp.Msg.Users[0].Username != "alice" {
		t.Errorf("unexpected users: %+v", resp.Msg.Users)
	}
}
