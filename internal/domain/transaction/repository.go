package transaction

import "context"

// Repository defines the interface for transaction data access
type Repository interface {
	// GetByID retrieves a transaction by ID
	GetByID(ctx context.Context, id string) (*Transaction, error)

	// List returns every transaction in insertion order
	List(ctx context.Context) ([]*Transaction, error)
}
