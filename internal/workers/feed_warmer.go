package workers

import (
	"context"
	"time"

	postPort "socialorbit/internal/ports/post"

	"go.uber.org/zap"
)

// FeedRefresher rebuilds the cached feed from canonical storage.
type FeedRefresher interface {
	RefreshFeed(ctx context.Context) ([]*postPort.PostDTO, error)
}

// FeedWarmer periodically rebuilds the feed cache so a cold cache does not
// send every reader to the database at once.
type FeedWarmer struct {
	Refresher FeedRefresher
	Interval  time.Duration
	Logger    *zap.Logger
}

func NewFeedWarmer(refresher FeedRefresher, interval time.Duration, logger *zap.Logger) *FeedWarmer {
	return &FeedWarmer{
		Refresher: refresher,
		Interval:  interval,
		Logger:    logger,
	}
}

// Run refreshes the cache on every tick until the context is cancelled.
func (w *FeedWarmer) Run(ctx context.Context) {
	w.Logger.Info("feed warmer started", zap.Duration("interval", w.Interval))

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("feed warmer stopped")
			return
		case <-ticker.C:
			posts, err := w.Refresher.RefreshFeed(ctx)
			if err != nil {
				w.Logger.Error("feed refresh failed", zap.Error(err))
				continue
			}
			w.Logger.Debug("feed cache refreshed", zap.Int("posts", len(posts)))
		}
	}
}
