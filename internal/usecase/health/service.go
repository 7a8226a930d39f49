package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "healthy"
	// Unhealthy indicates at least one failing component.
	Unhealthy Status = "unhealthy"
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
	Status Status
	Checks map[string]CheckResult
	Err    error
}

// Service coordinates health checks against the catalog backend.
type Service struct {
	db      DBPinger
	catalog CatalogChecker
	index   string
}

// New creates a Service. index is the catalog FT index name probed by Check.
func New(db DBPinger, catalog CatalogChecker, index string) *Service {
	return &Service{db: db, catalog: catalog, index: index}
}

// Check runs the database ping and the catalog index probe.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	var firstErr error

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
		firstErr = err
	} else {
		checks["database"] = CheckOK
	}

	if s.catalog != nil {
		ok, err := s.catalog.IndexExists(ctx, s.index)
		switch {
		case err != nil:
			checks["catalog"] = CheckError
			if firstErr == nil {
				firstErr = err
			}
		case !ok:
			checks["catalog"] = CheckError
		default:
			checks["catalog"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Unhealthy
			break
		}
	}

	return Report{Status: status, Checks: checks, Err: firstErr}
}
