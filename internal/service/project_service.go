package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/storage"
	pb "github.com/mmynk/evensplit/pkg/proto"
	"github.com/mmynk/evensplit/pkg/proto/protoconnect"
)

const dateLayout = "2006-01-02"

// inviteCodeLength is the number of hex characters in an invite code.
const inviteCodeLength = 10

// ProjectService implements the Connect ProjectService.
type ProjectService struct {
	protoconnect.UnimplementedProjectServiceHandler
	store storage.Store
}

// NewProjectService creates a new ProjectService with the given storage backend.
func NewProjectService(store storage.Store) *ProjectService {
	return &ProjectService{store: store}
}

// CreateProject creates a project with the caller and any listed users as members.
func (s *ProjectService) CreateProject(ctx context.Context, req *connect.Request[pb.CreateProjectRequest]) (*connect.Response[pb.CreateProjectResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateProject request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.Members),
		"user", c.username,
	)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument(errors.New("name is required"))
	}
	if err := validateDate(req.Msg.Date); err != nil {
		return nil, invalidArgument(err)
	}

	// Resolve every extra member before writing anything.
	var extra []string
	for _, username := range calculator.DedupeParticipants(req.Msg.Members) {
		if username == c.username {
			continue
		}
		if _, err := s.store.GetUserByUsername(ctx, username); err != nil {
			return nil, toConnectError(err)
		}
		extra = append(extra, username)
	}

	project := &models.Project{
		Name:      name,
		Date:      req.Msg.Date,
		CreatedBy: c.userID,
	}
	if err := s.store.CreateProject(ctx, project); err != nil {
		slog.Error("CreateProject failed", "error", err)
		return nil, toConnectError(err)
	}

	if len(extra) > 0 {
		if err := s.store.AddMembers(ctx, project.ID, extra); err != nil {
			slog.Error("CreateProject failed to add members", "project_id", project.ID, "error", err)
			return nil, toConnectError(err)
		}
		project, err = s.store.GetProject(ctx, project.ID)
		if err != nil {
			return nil, toConnectError(err)
		}
	}

	slog.Info("Project created", "project_id", project.ID, "members", len(project.Members))
	return connect.NewResponse(&pb.CreateProjectResponse{Project: toProtoProject(project)}), nil
}

// GetProject retrieves a project the caller belongs to.
func (s *ProjectService) GetProject(ctx context.Context, req *connect.Request[pb.GetProjectRequest]) (*connect.Response[pb.GetProjectResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	project, err := memberProject(ctx, s.store, req.Msg.ProjectId, c)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetProjectResponse{Project: toProtoProject(project)}), nil
}

// ListProjects returns the caller's projects in the order joined.
func (s *ProjectService) ListProjects(ctx context.Context, req *connect.Request[pb.ListProjectsRequest]) (*connect.Response[pb.ListProjectsResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.store.ListProjectsForUser(ctx, c.userID)
	if err != nil {
		slog.Error("ListProjects failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProtoProject(p))
	}
	return connect.NewResponse(&pb.ListProjectsResponse{Projects: out}), nil
}

// AddMembers enrolls existing users in a project the caller belongs to.
func (s *ProjectService) AddMembers(ctx context.Context, req *connect.Request[pb.AddMembersRequest]) (*connect.Response[pb.AddMembersResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := memberProject(ctx, s.store, req.Msg.ProjectId, c); err != nil {
		return nil, toConnectError(err)
	}

	usernames := calculator.DedupeParticipants(req.Msg.Usernames)
	if len(usernames) == 0 {
		return nil, invalidArgument(errors.New("usernames must not be empty"))
	}

	if err := s.store.AddMembers(ctx, req.Msg.ProjectId, usernames); err != nil {
		slog.Warn("AddMembers failed", "project_id", req.Msg.ProjectId, "error", err)
		return nil, toConnectError(err)
	}

	project, err := s.store.GetProject(ctx, req.Msg.ProjectId)
	if err != nil {
		return nil, toConnectError(err)
	}
	slog.Info("Members added", "project_id", project.ID, "members", len(project.Members))
	return connect.NewResponse(&pb.AddMembersResponse{Project: toProtoProject(project)}), nil
}

// CreateInvite issues a fresh invite code, replacing any previous one.
func (s *ProjectService) CreateInvite(ctx context.Context, req *connect.Request[pb.CreateInviteRequest]) (*connect.Response[pb.CreateInviteResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := memberProject(ctx, s.store, req.Msg.ProjectId, c); err != nil {
		return nil, toConnectError(err)
	}

	code := strings.ReplaceAll(uuid.NewString(), "-", "")[:inviteCodeLength]
	if err := s.store.SetInviteCode(ctx, req.Msg.ProjectId, code); err != nil {
		slog.Error("CreateInvite failed", "project_id", req.Msg.ProjectId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Invite created", "project_id", req.Msg.ProjectId)
	return connect.NewResponse(&pb.CreateInviteResponse{InviteCode: code}), nil
}

// JoinProject enrolls the caller in the project an invite code points to.
func (s *ProjectService) JoinProject(ctx context.Context, req *connect.Request[pb.JoinProjectRequest]) (*connect.Response[pb.JoinProjectResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.Msg.InviteCode)
	if code == "" {
		return nil, invalidArgument(errors.New("invite_code is required"))
	}

	project, err := s.store.GetProjectByInviteCode(ctx, code)
	if err != nil {
		return nil, toConnectError(err)
	}
	if !project.HasMember(c.username) {
		if err := s.store.AddMembers(ctx, project.ID, []string{c.username}); err != nil {
			slog.Error("JoinProject failed", "project_id", project.ID, "error", err)
			return nil, toConnectError(err)
		}
		if project, err = s.store.GetProject(ctx, project.ID); err != nil {
			return nil, toConnectError(err)
		}
	}

	slog.Info("Project joined", "project_id", project.ID, "user", c.username)
	return connect.NewResponse(&pb.JoinProjectResponse{Project: toProtoProject(project)}), nil
}

// validateDate accepts an empty date or a YYYY-MM-DD calendar date.
func validateDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("date %q must be YYYY-MM-DD", date)
	}
	return nil
}
