package alert

import "context"

// Repository defines the interface for alert data access
type Repository interface {
	// GetByID retrieves a copy of an alert by ID
	GetByID(ctx context.Context, id string) (*Alert, error)

	// List returns copies of every alert in insertion order
	List(ctx context.Context) ([]*Alert, error)

	// Update runs fn against the stored alert under the write lock and
	// returns a copy of the result. If fn fails the alert is unchanged.
	Update(ctx context.Context, id string, fn func(*Alert) error) (*Alert, error)

	// Count returns the number of stored alerts
	Count(ctx context.Context) (int, error)
}
