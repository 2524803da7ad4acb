package service

import (
	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/models"
	pb "github.com/mmynk/evensplit/pkg/proto"
)

func toProtoUser(user *models.User) *pb.User {
	return &pb.User{
		Id:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

func toProtoProject(project *models.Project) *pb.Project {
	return &pb.Project{
		Id:         project.ID,
		Name:       project.Name,
		Date:       project.Date,
		InviteCode: project.InviteCode,
		CreatedBy:  project.CreatedBy,
		CreatedAt:  project.CreatedAt,
		Members:    project.Members,
	}
}

func toProtoExpense(expense *models.Expense) *pb.Expense {
	return &pb.Expense{
		Id:        expense.ID,
		ProjectId: expense.ProjectID,
		Item:      expense.Item,
		Category:  expense.Category,
		Date:      expense.Date,
		Amount:    expense.Amount.String(),
		PaidBy:    expense.PaidBy,
		PaidFor:   expense.PaidFor,
		CreatedBy: expense.CreatedBy,
		CreatedAt: expense.CreatedAt,
		UpdatedAt: expense.UpdatedAt,
	}
}

// ToProtoSettlement renders an engine result with amounts as decimal strings.
func ToProtoSettlement(projectID string, result *calculator.Result) *pb.GetSettlementResponse {
	balances := make(map[string]string, len(result.Balances))
	for participant, amount := range result.Balances {
		balances[participant] = amount.String()
	}

	plan := make([]*pb.Transfer, 0, len(result.Plan))
	for _, t := range result.Plan {
		plan = append(plan, &pb.Transfer{
			From:   t.From,
			To:     t.To,
			Amount: t.Amount.String(),
		})
	}

	return &pb.GetSettlementResponse{
		ProjectId:      projectID,
		Balances:       balances,
		SettlementPlan: plan,
	}
}

// ToProtoSummary renders a project summary.
func ToProtoSummary(summary *Summary) *pb.GetSummaryResponse {
	return &pb.GetSummaryResponse{
		ProjectId:    summary.ProjectID,
		TotalExpense: summary.TotalExpense.String(),
		YourNetDebt:  summary.NetDebt.String(),
		ExpenseCount: int32(summary.ExpenseCount),
	}
}
