package acl

import "context"

// Name identifies the project API in health reports.
func (c *ProjectClient) Name() string {
	return "project-api"
}

// HealthCheck reports the project API's availability from the circuit
// breaker state without making a network call. Readiness is not tied to it;
// the board keeps serving stage reads while the project API is down.
func (c *ProjectClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
