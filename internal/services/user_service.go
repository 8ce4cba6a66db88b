package services

import (
	"context"

	"github.com/pratik-mahalle/fraudguard/internal/domain/risk"
	"github.com/pratik-mahalle/fraudguard/internal/domain/user"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/tracing"
)

// UserService implements user.Service
type UserService struct {
	repo   user.Repository
	logger *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(repo user.Repository, log *logger.Logger) user.Service {
	return &UserService{
		repo:   repo,
		logger: log,
	}
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id string) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves users matching the query in collection order
func (s *UserService) List(ctx context.Context, q risk.Query) ([]*user.User, error) {
	ctx, span := tracing.StartSpan(ctx, "user.list",
		tracing.Search(q.Search),
		tracing.RiskFilter(string(q.Risk)),
	)
	defer span.End()

	all, err := s.repo.List(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		s.logger.ErrorWithErr(err, "Failed to list users")
		return nil, err
	}

	out := risk.Apply(all, q)
	span.SetAttributes(tracing.ResultCount(len(out)))
	return out, nil
}

// History returns the user's transaction trend samples in order
func (s *UserService) History(ctx context.Context, id string) ([]user.HistoryPoint, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.TransactionHistory == nil {
		return []user.HistoryPoint{}, nil
	}
	return u.TransactionHistory, nil
}

// GetSummary gets aggregate user counts
func (s *UserService) GetSummary(ctx context.Context) (*user.Summary, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return user.Summarize(all), nil
}
