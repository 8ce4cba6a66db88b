package user

import (
	"context"

	"github.com/pratik-mahalle/fraudguard/internal/domain/risk"
)

// Service defines the interface for user profile queries
type Service interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*User, error)

	// List retrieves users matching the query in collection order
	List(ctx context.Context, q risk.Query) ([]*User, error)

	// History returns the user's transaction trend samples in order
	History(ctx context.Context, id string) ([]HistoryPoint, error)

	// GetSummary gets aggregate user counts
	GetSummary(ctx context.Context) (*Summary, error)
}
