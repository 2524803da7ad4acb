package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/evensplit/internal/metrics"
	pb "github.com/mmynk/evensplit/pkg/proto"
	"github.com/mmynk/evensplit/pkg/proto/protoconnect"
)

var _ protoconnect.SettlementServiceHandler = (*SettlementService)(nil)

// SettlementService implements the Connect SettlementService.
type SettlementService struct {
	settler *Settler
}

// NewSettlementService creates a SettlementService backed by settler.
func NewSettlementService(settler *Settler) *SettlementService {
	return &SettlementService{settler: settler}
}

// GetSettlement returns balances and the transfers that clear them.
func (s *SettlementService) GetSettlement(ctx context.Context, req *connect.Request[pb.GetSettlementRequest]) (*connect.Response[pb.GetSettlementResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	projectID, result, err := s.settler.SettleForMember(ctx, c.userID, c.username, req.Msg.GetProjectId(), metrics.SourceRPC)
	if err != nil {
		if Code(err) == connect.CodeInternal {
			slog.Error("GetSettlement failed", "project_id", projectID, "error", err)
		}
		return nil, toConnectError(err)
	}

	slog.Info("GetSettlement successful",
		"project_id", projectID,
		"participants", len(result.Balances),
		"transfers", len(result.Plan),
	)
	return connect.NewResponse(ToProtoSettlement(projectID, result)), nil
}

// GetSummary returns the project's expense total and the caller's net debt.
func (s *SettlementService) GetSummary(ctx context.Context, req *connect.Request[pb.GetSummaryRequest]) (*connect.Response[pb.GetSummaryResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := s.settler.SummaryForMember(ctx, c.userID, c.username, req.Msg.GetProjectId(), metrics.SourceRPC)
	if err != nil {
		if Code(err) == connect.CodeInternal {
			slog.Error("GetSummary failed", "project_id", req.Msg.GetProjectId(), "error", err)
		}
		return nil, toConnectError(err)
	}

	slog.Debug("GetSummary successful", "project_id", summary.ProjectID, "expenses", summary.ExpenseCount)
	return connect.NewResponse(ToProtoSummary(summary)), nil
}
