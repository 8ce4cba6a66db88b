package services

import (
	"context"

	"github.com/pratik-mahalle/fraudguard/internal/domain/risk"
	"github.com/pratik-mahalle/fraudguard/internal/domain/transaction"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/tracing"
)

// TransactionService implements transaction.Service
type TransactionService struct {
	repo   transaction.Repository
	logger *logger.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo transaction.Repository, log *logger.Logger) transaction.Service {
	return &TransactionService{
		repo:   repo,
		logger: log,
	}
}

// GetByID retrieves a transaction by ID
func (s *TransactionService) GetByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves transactions matching the query in collection order
func (s *TransactionService) List(ctx context.Context, q risk.Query) ([]*transaction.Transaction, error) {
	ctx, span := tracing.StartSpan(ctx, "transaction.list",
		tracing.Search(q.Search),
		tracing.RiskFilter(string(q.Risk)),
	)
	defer span.End()

	all, err := s.repo.List(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		s.logger.ErrorWithErr(err, "Failed to list transactions")
		return nil, err
	}

	out := risk.Apply(all, q)
	span.SetAttributes(tracing.ResultCount(len(out)))
	return out, nil
}

// GetSummary gets aggregate transaction figures
func (s *TransactionService) GetSummary(ctx context.Context) (*transaction.Summary, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return transaction.Summarize(all), nil
}
