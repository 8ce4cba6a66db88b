package client

import (
	"context"
	"net/url"
)

// AlertService handles alert-related API calls
type AlertService struct {
	client *Client
}

// AlertListOptions contains options for listing alerts
type AlertListOptions struct {
	ListOptions
	Status   string
	Severity string
}

// ActionRequest is the body of an alert action call
type ActionRequest struct {
	Action string `json:"action"` // block, review, resolve
}

// List retrieves alerts matching opts
func (s *AlertService) List(ctx context.Context, opts *AlertListOptions) ([]Alert, error) {
	query := url.Values{}
	if opts != nil {
		setListOptions(query, opts.ListOptions)
		if opts.Status != "" {
			query.Set("status", opts.Status)
		}
		if opts.Severity != "" {
			query.Set("severity", opts.Severity)
		}
	}

	var resp list[Alert]
	if err := s.client.doRequest(ctx, "GET", withQuery(apiPrefix+"/alerts", query), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Get retrieves a single alert by ID
func (s *AlertService) Get(ctx context.Context, id string) (*Alert, error) {
	var alert Alert
	if err := s.client.doRequest(ctx, "GET", apiPrefix+"/alerts/"+url.PathEscape(id), nil, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// Apply sends an action to an active alert and returns the updated alert
func (s *AlertService) Apply(ctx context.Context, id, action string) (*Alert, error) {
	var alert Alert
	path := apiPrefix + "/alerts/" + url.PathEscape(id) + "/actions"
	if err := s.client.doRequest(ctx, "POST", path, ActionRequest{Action: action}, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// Block moves an active alert to review after blocking its transaction
func (s *AlertService) Block(ctx context.Context, id string) (*Alert, error) {
	return s.Apply(ctx, id, "block")
}

// Review moves an active alert to review
func (s *AlertService) Review(ctx context.Context, id string) (*Alert, error) {
	return s.Apply(ctx, id, "review")
}

// Resolve resolves an active alert
func (s *AlertService) Resolve(ctx context.Context, id string) (*Alert, error) {
	return s.Apply(ctx, id, "resolve")
}

// Partition retrieves alerts grouped by status
func (s *AlertService) Partition(ctx context.Context) (*AlertPartition, error) {
	var p AlertPartition
	if err := s.client.doRequest(ctx, "GET", apiPrefix+"/alerts/partition", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Summary retrieves alert counts
func (s *AlertService) Summary(ctx context.Context) (*AlertSummary, error) {
	var summary AlertSummary
	if err := s.client.doRequest(ctx, "GET", apiPrefix+"/alerts/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Count returns the number of alerts with the given severity and status
func (s *AlertService) Count(ctx context.Context, severity, status string) (int, error) {
	query := url.Values{}
	query.Set("severity", severity)
	query.Set("status", status)

	var c AlertCount
	if err := s.client.doRequest(ctx, "GET", withQuery(apiPrefix+"/alerts/count", query), nil, &c); err != nil {
		return 0, err
	}
	return c.Count, nil
}

func setListOptions(query url.Values, opts ListOptions) {
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.Risk != "" {
		query.Set("risk", opts.Risk)
	}
}

func withQuery(path string, query url.Values) string {
	if len(query) > 0 {
		return path + "?" + query.Encode()
	}
	return path
}
