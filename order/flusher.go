package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

// flushInterval is how often the in-memory log is drained to disk.
const flushInterval = time.Second

// flusher persists the order log. Once a second it appends every
// record that extends the contiguous prefix already on disk, and when
// numbers are missing below the replica's next order number it asks
// the peers to fill them. Shutdown runs one final drain, without the
// gap chase.
type flusher struct {
	store    *Store
	path     string
	recovery *RecoveryClient
	logger   *slog.Logger
	metrics  *metrics.OrderMetrics
}

func newFlusher(store *Store, path string, recovery *RecoveryClient, logger *slog.Logger, m *metrics.OrderMetrics) *flusher {
	return &flusher{
		store:    store,
		path:     path,
		recovery: recovery,
		logger:   logger,
		metrics:  m,
	}
}

func (f *flusher) Run(ctx context.Context) {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.flush(context.Background(), false)
			return
		case <-ticker.C:
			f.flush(ctx, true)
		}
	}
}

// flush walks the log from the write cursor, collecting records until
// the first absent number. The cursor then lands on that number, so
// the file stays a contiguous ascending prefix of the history. When
// the cursor stops short of next_order_number the records in between
// were lost in transit and recovery chases them down.
func (f *flusher) flush(ctx context.Context, chaseGaps bool) {
	start := time.Now()

	cursor := f.store.WriteCursor()
	var batch []LogEntry
	for {
		rec, ok := f.store.Lookup(cursor)
		if !ok {
			break
		}
		batch = append(batch, LogEntry{
			OrderNumber: cursor,
			ProductName: rec.ProductName,
			Quantity:    rec.Quantity,
		})
		cursor++
	}
	f.store.SetWriteCursor(cursor)

	if chaseGaps {
		if next := f.store.NextOrderNumber(); cursor < next {
			missing := f.store.Missing(cursor, next)
			if len(missing) > 0 {
				f.logger.Info("order log has gaps, requesting missing records",
					"missing", len(missing), "first", missing[0], "next_order_number", next)
				if err := f.recovery.FetchMissing(ctx, missing); err != nil {
					f.logger.Warn("gap recovery failed", "error", err)
				}
			}
		}
	}

	if len(batch) == 0 {
		return
	}
	if err := AppendOrderLog(f.path, batch); err != nil {
		f.logger.Error("failed to append order log", "path", f.path, "error", err)
		return
	}

	f.metrics.FlushedRecords.Add(float64(len(batch)))
	f.metrics.FlushDuration.Observe(time.Since(start).Seconds())
	f.logger.Debug("order log appended", "records", len(batch), "write_cursor", cursor)
}
