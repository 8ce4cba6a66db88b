package client

import "context"

// Dashboard retrieves the dashboard overview
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	if err := c.doRequest(ctx, "GET", apiPrefix+"/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
