package sysdisco

import (
	"context"

	healthuc "github.com/kailas-cloud/sysdisco/internal/usecase/health"
)

// HealthStatus represents the storage health.
type HealthStatus struct {
	Status  string            // "ok" or "error"
	Backend string            // valkey, redis, postgres
	Checks  map[string]string // component → "ok"/"error"
}

// Health pings the storage backend.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status:  string(report.Status),
		Backend: report.Backend,
		Checks:  checks,
	}
}

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
