package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/MLR-5819/FSND-Fyyur/internal/metrics"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

type StatsSource interface {
	Stats(ctx context.Context) (*models.CatalogStats, error)
}

type PoolWatcher interface {
	WarnOnPressure()
}

// CatalogStatsJob refreshes the catalog gauges and watches the connection pool.
type CatalogStatsJob struct {
	source   StatsSource
	pool     PoolWatcher
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

func NewCatalogStatsJob(source StatsSource, pool PoolWatcher, interval time.Duration) *CatalogStatsJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CatalogStatsJob{
		source:   source,
		pool:     pool,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start runs one refresh immediately and then one per interval.
func (j *CatalogStatsJob) Start(ctx context.Context) {
	slog.Info("Starting catalog stats job", "interval", j.interval)

	j.ticker = time.NewTicker(j.interval)
	go j.refresh(ctx)

	go func() {
		for {
			select {
			case <-j.ticker.C:
				j.refresh(ctx)
			case <-ctx.Done():
				return
			case <-j.done:
				slog.Info("Catalog stats job stopped")
				return
			}
		}
	}()
}

func (j *CatalogStatsJob) Stop() {
	if j.ticker != nil {
		j.ticker.Stop()
	}
	close(j.done)
}

func (j *CatalogStatsJob) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stats, err := j.source.Stats(ctx)
	if err != nil {
		slog.Error("Failed to collect catalog stats", "error", err)
	} else {
		metrics.SetCatalogStats(stats)
		slog.Debug("Catalog stats refreshed",
			"venues", stats.Venues,
			"artists", stats.Artists,
			"upcoming_shows", stats.UpcomingShows,
			"past_shows", stats.PastShows,
		)
	}

	if j.pool != nil {
		j.pool.WarnOnPressure()
	}
}
