package client

import (
	"context"
	"net/url"
)

// TransactionService handles transaction-related API calls
type TransactionService struct {
	client *Client
}

// List retrieves transactions matching opts
func (s *TransactionService) List(ctx context.Context, opts *ListOptions) ([]Transaction, error) {
	query := url.Values{}
	if opts != nil {
		setListOptions(query, *opts)
	}

	var resp list[Transaction]
	if err := s.client.doRequest(ctx, "GET", withQuery(apiPrefix+"/transactions", query), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Get retrieves a single transaction by ID
func (s *TransactionService) Get(ctx context.Context, id string) (*Transaction, error) {
	var tx Transaction
	if err := s.client.doRequest(ctx, "GET", apiPrefix+"/transactions/"+url.PathEscape(id), nil, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Summary retrieves transaction counts and totals
func (s *TransactionService) Summary(ctx context.Context) (*TransactionSummary, error) {
	var summary TransactionSummary
	if err := s.client.doRequest(ctx, "GET", apiPrefix+"/transactions/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
