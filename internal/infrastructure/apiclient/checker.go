package apiclient

import (
	"context"
	"fmt"
)

// Checker probes the backend's GET /health for the readiness endpoint.
type Checker struct {
	client *Client
}

func NewChecker(client *Client) *Checker {
	return &Checker{client: client}
}

func (c *Checker) Name() string { return "backend" }

func (c *Checker) Check(ctx context.Context) error {
	status, err := c.client.Health(ctx)
	if err != nil {
		return err
	}
	if status != nil && status.Status != "" && status.Status != "ok" && status.Status != "healthy" {
		return fmt.Errorf("backend reports %q", status.Status)
	}
	return nil
}
