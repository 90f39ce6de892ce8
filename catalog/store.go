package main

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

// lockTimeout bounds how long Query and Order wait for the table guard.
const lockTimeout = time.Second

// Store holds the product table. A weighted semaphore guards the rows:
// readers take one unit, writers take all of them, so admission is FIFO
// fair and acquisition honors a deadline. Product names are fixed at
// startup, which is why key lookups read the map without the guard —
// only row contents ever change.
type Store struct {
	products map[string]*Product
	names    []string // row order for snapshots, as loaded
	sem      *semaphore.Weighted
	weight   int64
	dirty    atomic.Bool
}

func NewStore(products []Product, maxWorkers int) *Store {
	s := &Store{
		products: make(map[string]*Product, len(products)),
		names:    make([]string, 0, len(products)),
		sem:      semaphore.NewWeighted(int64(maxWorkers)),
		weight:   int64(maxWorkers),
	}
	for i := range products {
		p := products[i]
		s.products[p.Name] = &p
		s.names = append(s.names, p.Name)
	}
	return s
}

// Query returns the price and quantity of a product, or ("-1", -1) when
// the name is unknown. A guard acquisition past lockTimeout is returned
// as an error and fails only the current request.
func (s *Store) Query(ctx context.Context, name string) (string, int32, error) {
	p, ok := s.products[name]
	if !ok {
		return "-1", -1, nil
	}

	lctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	if err := s.sem.Acquire(lctx, 1); err != nil {
		return "", 0, fmt.Errorf("failed to acquire catalog read lock: %w", err)
	}
	price := p.Price.StringFixed(2)
	quantity := p.Quantity
	s.sem.Release(1)

	return price, quantity, nil
}

// Order decrements the stock of a product and reports the outcome as a
// result code. The read-modify-write of the quantity runs under the
// write side of the guard; on insufficient stock nothing is mutated.
func (s *Store) Order(ctx context.Context, name string, quantity int32) (int32, error) {
	if quantity < 1 {
		return OrderInvalidQuantity, nil
	}
	p, ok := s.products[name]
	if !ok {
		return OrderUnknownProduct, nil
	}

	lctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	if err := s.sem.Acquire(lctx, s.weight); err != nil {
		return 0, fmt.Errorf("failed to acquire catalog write lock: %w", err)
	}
	defer s.sem.Release(s.weight)

	if p.Quantity < quantity {
		return OrderInsufficientStock, nil
	}
	p.Quantity -= quantity
	s.dirty.Store(true)

	return OrderSuccess, nil
}

// RestockSweep raises every zero-quantity product back to the restock
// level. Depleted names are collected under a read acquisition first;
// each refill then takes the write side on its own, and onRestock fires
// after the corresponding release. The table is marked dirty when at
// least one product was refilled.
func (s *Store) RestockSweep(ctx context.Context, onRestock func(name string)) ([]string, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("failed to acquire catalog read lock: %w", err)
	}
	var depleted []string
	for name, p := range s.products {
		if p.Quantity == 0 {
			depleted = append(depleted, name)
		}
	}
	s.sem.Release(1)
	sort.Strings(depleted)

	for _, name := range depleted {
		if err := s.sem.Acquire(ctx, s.weight); err != nil {
			return nil, fmt.Errorf("failed to acquire catalog write lock: %w", err)
		}
		s.products[name].Quantity = restockQuantity
		s.sem.Release(s.weight)

		if onRestock != nil {
			onRestock(name)
		}
	}

	if len(depleted) > 0 {
		s.dirty.Store(true)
	}

	return depleted, nil
}

// Snapshot deep-copies all rows in their load order.
func (s *Store) Snapshot(ctx context.Context) ([]Product, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("failed to acquire catalog read lock: %w", err)
	}
	defer s.sem.Release(1)

	rows := make([]Product, 0, len(s.names))
	for _, name := range s.names {
		rows = append(rows, *s.products[name])
	}
	return rows, nil
}

// ConsumeDirty reports whether the table changed since the last flush
// and clears the flag in the same step.
func (s *Store) ConsumeDirty() bool {
	return s.dirty.Swap(false)
}

// MarkDirty flags the table for the next flush. Used by the writer to
// restore the flag when a flush attempt fails.
func (s *Store) MarkDirty() {
	s.dirty.Store(true)
}
