package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunSessionJanitor sweeps idle sessions every interval until ctx is done.
func RunSessionJanitor(ctx context.Context, service SeatMapService, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		log.Info("Session janitor disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			service.SweepSessions(ctx)
		}
	}
}
