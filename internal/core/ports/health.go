package ports

import "context"

// HealthChecker is implemented by each external dependency adapter so the
// /health endpoint can verify connectivity.
type HealthChecker interface {
	Ping(ctx context.Context) error
	// Name labels the dependency in the health response, e.g. "redis".
	Name() string
}
