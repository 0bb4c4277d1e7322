// Package health aggregates component health checks.
package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
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
}

// WeaviatePinger checks instance reachability.
type WeaviatePinger interface {
	Ready(ctx context.Context) error
}

// CachePinger checks schema cache reachability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// Service coordinates health checks.
type Service struct {
	weaviate WeaviatePinger
	cache    CachePinger
}

// New creates a Service. cache can be nil when caching is disabled.
func New(weaviate WeaviatePinger, cache CachePinger) *Service {
	return &Service{weaviate: weaviate, cache: cache}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.weaviate.Ready(ctx); err != nil {
		checks["weaviate"] = CheckError
	} else {
		checks["weaviate"] = CheckOK
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = CheckError
		} else {
			checks["cache"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
