package alert

import "context"

// Service defines the interface for alert business logic
type Service interface {
	// GetByID retrieves an alert by ID
	GetByID(ctx context.Context, id string) (*Alert, error)

	// List retrieves alerts matching the filter in collection order
	List(ctx context.Context, filter Filter) ([]*Alert, error)

	// ApplyAction transitions an active alert
	ApplyAction(ctx context.Context, id string, action Action) (*Alert, error)

	// Partition splits alerts by status
	Partition(ctx context.Context) (*Partition, error)

	// CountBySeverityAndStatus counts alerts in one severity/status cell
	CountBySeverityAndStatus(ctx context.Context, severity Severity, status Status) (int, error)

	// GetSummary gets aggregate alert counts
	GetSummary(ctx context.Context) (*Summary, error)
}
