package postgres

import (
	"car-catalog-service/internal/core/port"
	"context"
	"fmt"
	"time"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Watchdog pings the database periodically and gives up after a run of
// consecutive failures. A single failure is only logged.
type Watchdog struct {
	db          pinger
	interval    time.Duration
	maxFailures int
	logger      port.LoggerPort
}

func NewWatchdog(db pinger, interval time.Duration, maxFailures int, logger port.LoggerPort) *Watchdog {
	if maxFailures < 1 {
		maxFailures = 1
	}
	return &Watchdog{
		db:          db,
		interval:    interval,
		maxFailures: maxFailures,
		logger:      logger.WithFields(port.Fields{"component": "DBWatchdog"}),
	}
}

// Run blocks until ctx is cancelled (nil) or the database is deemed lost (error).
func (w *Watchdog) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		pingCtx, cancel := context.WithTimeout(ctx, w.interval)
		err := w.db.Ping(pingCtx)
		cancel()

		if err == nil {
			if failures > 0 {
				w.logger.Info("Database reachable again", port.Fields{"failed_checks": failures})
			}
			failures = 0
			continue
		}
		if ctx.Err() != nil {
			return nil
		}

		failures++
		w.logger.Warn("Database health check failed", port.Fields{
			"error":        err.Error(),
			"failures":     failures,
			"max_failures": w.maxFailures,
		})
		if failures >= w.maxFailures {
			return fmt.Errorf("database unreachable after %d consecutive health checks: %w", failures, err)
		}
	}
}
