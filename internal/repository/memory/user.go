package memory

import (
	"context"

	"github.com/pratik-mahalle/fraudguard/internal/domain/user"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/errors"
)

// UserRepository keeps read-only user profiles in memory
type UserRepository struct {
	users *collection[*user.User]
}

func cloneUser(u *user.User) *user.User { return u.Clone() }

// NewUserRepository builds a repository holding copies of users in the
// given order. Duplicate or empty ids are rejected.
func NewUserRepository(users []*user.User) (user.Repository, error) {
	c, err := newCollection(users, func(u *user.User) string { return u.ID }, cloneUser)
	if err != nil {
		return nil, err
	}
	return &UserRepository{users: c}, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := r.users.get(id, cloneUser)
	if !ok {
		return nil, errors.NotFoundErr("User", user.ErrNotFound)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	return r.users.list(cloneUser), nil
}
