package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterFlushPersistsDirtyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	store := NewStore(testProducts(), 10)
	w := newCatalogWriter(store, path, testLogger(), testMetrics)

	result, err := store.Order(context.Background(), "Tux", 2)
	require.NoError(t, err)
	require.Equal(t, OrderSuccess, result)

	w.flush(context.Background())

	products, err := LoadCatalogFile(path)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Tux", products[0].Name)
	assert.Equal(t, int32(98), products[0].Quantity)
}

func TestWriterFlushSkipsCleanTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	store := NewStore(testProducts(), 10)
	w := newCatalogWriter(store, path, testLogger(), testMetrics)

	_, err := store.Order(context.Background(), "Tux", 1)
	require.NoError(t, err)
	w.flush(context.Background())
	require.NoError(t, os.Remove(path))

	// Nothing changed since the last flush, so no rewrite happens.
	w.flush(context.Background())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriterRunFlushesOnShutdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	store := NewStore(testProducts(), 10)
	w := newCatalogWriter(store, path, testLogger(), testMetrics)

	_, err := store.Order(context.Background(), "Tux", 5)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	products, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, int32(95), products[0].Quantity)
}
