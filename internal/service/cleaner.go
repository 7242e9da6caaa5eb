package service

import (
	"context"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/logger"
	"go.uber.org/zap"
)

// Purger removes read notifications older than a cutoff.
type Purger interface {
	PurgeReadBefore(ctx context.Context, cutoff time.Time) int
}

// StartNotificationCleaner removes read notifications older than retention
// every interval until ctx is cancelled. The returned channel is closed once
// the goroutine has exited.
func StartNotificationCleaner(
	ctx context.Context,
	repo Purger,
	interval time.Duration,
	retention time.Duration,
	log *zap.Logger,
) <-chan struct{} {
	log = logger.OrNop(log)
	done := make(chan struct{})
	ticker := time.NewTicker(interval)
	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().Add(-retention)
				if removed := repo.PurgeReadBefore(ctx, cutoff); removed > 0 {
					log.Info("cleaned read notifications", zap.Int("removed", removed))
				}
			}
		}
	}()
	return done
}
