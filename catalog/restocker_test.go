package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestockerSweepRefillsAndInvalidates(t *testing.T) {
	frontend := &fakeFrontendClient{}
	invalidator := NewInvalidator(frontend, 4, testLogger(), testMetrics)
	store := NewStore(testProducts(), 10)
	r := newRestocker(store, invalidator, time.Second, nil, testLogger(), testMetrics)

	r.sweep(context.Background())
	invalidator.Wait()

	// Fox was the only depleted product.
	_, quantity, err := store.Query(context.Background(), "Fox")
	require.NoError(t, err)
	assert.Equal(t, restockQuantity, quantity)
	assert.Equal(t, []string{"Fox"}, frontend.Invalidated())

	// Untouched products keep their stock.
	_, quantity, err = store.Query(context.Background(), "Whale")
	require.NoError(t, err)
	assert.Equal(t, int32(1), quantity)
}

func TestRestockerSweepWithoutDepletedProducts(t *testing.T) {
	frontend := &fakeFrontendClient{}
	invalidator := NewInvalidator(frontend, 4, testLogger(), testMetrics)
	store := NewStore([]Product{{Name: "Tux", Quantity: 50}}, 10)
	r := newRestocker(store, invalidator, time.Second, nil, testLogger(), testMetrics)

	r.sweep(context.Background())
	invalidator.Wait()

	assert.Empty(t, frontend.Invalidated())
}
