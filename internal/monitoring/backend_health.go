package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// MonitorBackendHealth checks once immediately and then on every tick until
// ctx is done. Only transitions are logged.
func MonitorBackendHealth(ctx context.Context, checker HealthChecker, interval time.Duration, healthy *atomic.Bool) {
	check := func() {
		isHealthy := checker.HealthCheck(ctx)
		if healthy.Swap(isHealthy) == isHealthy {
			return
		}
		if isHealthy {
			slog.Info("[HealthCheck] Analysis backend is healthy")
		} else {
			slog.Warn("[HealthCheck] Analysis backend is unhealthy")
		}
	}

	check()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
