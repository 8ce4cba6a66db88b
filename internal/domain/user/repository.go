package user

import "context"

// Repository defines the interface for user profile data access
type Repository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*User, error)

	// List returns every user in insertion order
	List(ctx context.Context) ([]*User, error)
}
