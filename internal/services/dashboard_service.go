package services

import (
	"context"

	"github.com/pratik-mahalle/fraudguard/internal/domain/alert"
	"github.com/pratik-mahalle/fraudguard/internal/domain/dashboard"
	"github.com/pratik-mahalle/fraudguard/internal/domain/transaction"
	"github.com/pratik-mahalle/fraudguard/internal/domain/user"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/tracing"
)

// DashboardService implements dashboard.Service
type DashboardService struct {
	datasets     dashboard.Datasets
	alerts       alert.Service
	transactions transaction.Service
	users        user.Service
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	datasets dashboard.Datasets,
	alerts alert.Service,
	transactions transaction.Service,
	users user.Service,
) dashboard.Service {
	return &DashboardService{
		datasets:     datasets,
		alerts:       alerts,
		transactions: transactions,
		users:        users,
	}
}

// Overview returns static datasets plus freshly computed summaries
func (s *DashboardService) Overview(ctx context.Context) (*dashboard.Overview, error) {
	ctx, span := tracing.StartSpan(ctx, "dashboard.overview")
	defer span.End()

	alertSummary, err := s.alerts.GetSummary(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	txSummary, err := s.transactions.GetSummary(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	userSummary, err := s.users.GetSummary(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	return &dashboard.Overview{
		Datasets:     s.datasets,
		Alerts:       alertSummary,
		Transactions: txSummary,
		Users:        userSummary,
	}, nil
}
