package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var orderLogHeader = []string{"Order number", "Product name", "Quantity"}

// LoadOrderLogFile reads the durable order log and returns the records
// plus the next order number (max seen + 1). A missing file is created
// with just the header. A file whose header or rows do not parse is
// reset the same way: the replica then rebuilds its history from the
// peers through recovery rather than trusting a half-broken file.
func LoadOrderLogFile(path string, logger *slog.Logger) (map[int32]Record, int32, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		logger.Info("order log not found, starting empty", "path", path)
		if err := ResetOrderLogFile(path); err != nil {
			return nil, 0, err
		}
		return make(map[int32]Record), 0, nil
	}
	if err != nil {
		return nil, 0, err
	}

	records, next, parseErr := parseOrderLog(f)
	f.Close()
	if parseErr != nil {
		logger.Warn("order log is malformed, resetting it", "path", path, "error", parseErr)
		if err := ResetOrderLogFile(path); err != nil {
			return nil, 0, err
		}
		return make(map[int32]Record), 0, nil
	}

	return records, next, nil
}

func parseOrderLog(f *os.File) (map[int32]Record, int32, error) {
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse order log: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("order log has no header")
	}
	if !matchesHeader(rows[0], orderLogHeader) {
		return nil, 0, fmt.Errorf("unexpected order log header %q", strings.Join(rows[0], ","))
	}

	records := make(map[int32]Record)
	next := int32(0)
	for _, row := range rows[1:] {
		if len(row) != 3 {
			return nil, 0, fmt.Errorf("order log row has %d fields, want 3", len(row))
		}
		number, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil || number < 0 {
			return nil, 0, fmt.Errorf("invalid order number %q", row[0])
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil || quantity < 0 {
			return nil, 0, fmt.Errorf("invalid quantity %q for order %d", row[2], number)
		}

		n := int32(number)
		records[n] = Record{
			ProductName: strings.TrimSpace(row[1]),
			Quantity:    int32(quantity),
		}
		if n+1 > next {
			next = n + 1
		}
	}

	return records, next, nil
}

// ResetOrderLogFile replaces the log file with a header-only one. Like
// the catalog writer it goes through a temp file and a rename so a
// concurrent reader never observes a partial file.
func ResetOrderLogFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.WriteAll([][]string{orderLogHeader}); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// AppendOrderLog appends the batch to the log file in one open/close.
// Callers only hand it contiguous batches in ascending order, which is
// what keeps the file a prefix of the in-memory log.
func AppendOrderLog(path string, entries []LogEntry) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(int(e.OrderNumber)),
			e.ProductName,
			strconv.Itoa(int(e.Quantity)),
		})
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func matchesHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if strings.TrimSpace(got[i]) != want[i] {
			return false
		}
	}
	return true
}
