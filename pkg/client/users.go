package client

import (
	"context"
	"net/url"
)

// UserService handles user-related API calls
type UserService struct {
	client *Client
}

// List retrieves users matching opts
func (s *UserService) List(ctx context.Context, opts *ListOptions) ([]User, error) {
	query := url.Values{}
	if opts != nil {
		setListOptions(query, *opts)
	}

	var resp list[User]
	if err := s.client.doRequest(ctx, "GET", withQuery(apiPrefix+"/users", query), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Get retrieves a single user by ID
func (s *UserService) Get(ctx context.Context, id string) (*User, error) {
	var u User
	if err := s.client.doRequest(ctx, "GET", apiPrefix+"/users/"+url.PathEscape(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// History retrieves a user's transaction history samples
func (s *UserService) History(ctx context.Context, id string) ([]HistoryPoint, error) {
	var resp list[HistoryPoint]
	path := apiPrefix + "/users/" + url.PathEscape(id) + "/history"
	if err := s.client.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Summary retrieves user counts
func (s *UserService) Summary(ctx context.Context) (*UserSummary, error) {
	var summary UserSummary
	if err := s.client.doRequest(ctx, "GET", apiPrefix+"/users/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
