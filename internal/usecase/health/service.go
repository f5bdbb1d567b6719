package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Unhealthy indicates the storage backend is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status  Status
	Backend string
	Checks  map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db      DBPinger
	backend string
}

// New creates a Service. backend names the storage driver in reports.
func New(db DBPinger, backend string) *Service {
	return &Service{db: db, backend: backend}
}

// Check pings the storage backend. Discovery cannot answer without it,
// so a failed ping makes the whole service unhealthy.
func (s *Service) Check(ctx context.Context) Report {
	checks := map[string]CheckResult{"database": CheckOK}
	status := Healthy

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
		status = Unhealthy
	}

	return Report{Status: status, Backend: s.backend, Checks: checks}
}
