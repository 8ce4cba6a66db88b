package transaction

import (
	"context"

	"github.com/pratik-mahalle/fraudguard/internal/domain/risk"
)

// Service defines the interface for transaction queries
type Service interface {
	// GetByID retrieves a transaction by ID
	GetByID(ctx context.Context, id string) (*Transaction, error)

	// List retrieves transactions matching the query in collection order
	List(ctx context.Context, q risk.Query) ([]*Transaction, error)

	// GetSummary gets aggregate transaction figures
	GetSummary(ctx context.Context) (*Summary, error)
}
