package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

// catalogWriter persists the product table. It wakes once a second and
// rewrites the catalog file whenever the table was marked dirty since
// the previous flush. One final flush runs on shutdown so a decrement
// committed just before the stop signal still reaches disk.
type catalogWriter struct {
	store   *Store
	path    string
	logger  *slog.Logger
	metrics *metrics.CatalogMetrics
}

func newCatalogWriter(store *Store, path string, logger *slog.Logger, m *metrics.CatalogMetrics) *catalogWriter {
	return &catalogWriter{
		store:   store,
		path:    path,
		logger:  logger,
		metrics: m,
	}
}

func (w *catalogWriter) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.flush(context.Background())
			return
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *catalogWriter) flush(ctx context.Context) {
	if !w.store.ConsumeDirty() {
		return
	}

	start := time.Now()
	rows, err := w.store.Snapshot(ctx)
	if err != nil {
		w.logger.Error("failed to snapshot catalog", "error", err)
		w.store.MarkDirty()
		return
	}
	if err := WriteCatalogFile(w.path, rows); err != nil {
		w.logger.Error("failed to write catalog file", "path", w.path, "error", err)
		w.store.MarkDirty()
		return
	}

	w.metrics.SnapshotsTotal.Inc()
	w.metrics.SnapshotDuration.Observe(time.Since(start).Seconds())
	w.logger.Debug("catalog file written", "path", w.path, "products", len(rows))
}
