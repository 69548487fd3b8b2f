package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/GTDGit/gtd_bi/internal/analytics"
	"github.com/GTDGit/gtd_bi/internal/export"
)

// SalesReporter builds the sales report for a filter.
type SalesReporter interface {
	Build(ctx context.Context, filter analytics.RegionFilter) (*analytics.SalesReport, error)
}

// LearningReporter builds the learning report for a filter.
type LearningReporter interface {
	Build(ctx context.Context, filter analytics.RegionFilter) (*analytics.LearningReport, error)
}

// SnapshotWorker exports the all-region reports to dir on a fixed interval.
// Every run recomputes from the source; nothing is reused between runs.
type SnapshotWorker struct {
	sales    SalesReporter
	learning LearningReporter
	dir      string
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time
}

// NewSnapshotWorker constructs a SnapshotWorker. Each run is bounded by timeout.
func NewSnapshotWorker(sales SalesReporter, learning LearningReporter, dir string, interval, timeout time.Duration) *SnapshotWorker {
	return &SnapshotWorker{
		sales:    sales,
		learning: learning,
		dir:      dir,
		interval: interval,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Start begins the export loop and listens for context cancellation.
func (w *SnapshotWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Str("dir", w.dir).Msg("Starting snapshot worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Snapshot worker stopped")
			return
		}
	}
}

func (w *SnapshotWorker) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	at := w.now()
	all := analytics.AllRegions()

	if report, err := w.sales.Build(ctx, all); err != nil {
		log.Error().Err(err).Msg("Failed to build sales snapshot")
	} else if err := export.ExportJSON(export.TimestampedFilename(w.dir, "sales_report", "json", at), report); err != nil {
		log.Error().Err(err).Msg("Failed to export sales snapshot")
	}

	if report, err := w.learning.Build(ctx, all); err != nil {
		log.Error().Err(err).Msg("Failed to build learning snapshot")
	} else if err := export.ExportJSON(export.TimestampedFilename(w.dir, "learning_report", "json", at), report); err != nil {
		log.Error().Err(err).Msg("Failed to export learning snapshot")
	}
}
