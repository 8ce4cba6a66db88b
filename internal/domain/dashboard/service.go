package dashboard

import "context"

// Service defines the interface for the dashboard overview
type Service interface {
	// Overview returns static datasets plus freshly computed summaries
	Overview(ctx context.Context) (*Overview, error)
}
