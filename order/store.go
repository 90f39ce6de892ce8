package main

import (
	"sync"
)

// Store holds one replica's view of the replicated order log: the
// records themselves, the next order number to assign or expect, and
// the flush cursor of the durable log file. Each piece has its own
// guard so the Buy hot path, propagation receipt and the flusher
// contend as little as possible.
type Store struct {
	componentID int32

	logMu sync.RWMutex
	log   map[int32]Record

	nextMu sync.Mutex
	next   int32

	cursorMu sync.Mutex
	cursor   int32

	leaderMu sync.Mutex
	leaderID int32 // 0 until a leader announcement arrives
}

// NewStore builds the replica state from a loaded log file. The flush
// cursor starts at next: everything below it is already on disk.
func NewStore(componentID int32, log map[int32]Record, next int32) *Store {
	if log == nil {
		log = make(map[int32]Record)
	}
	return &Store{
		componentID: componentID,
		log:         log,
		next:        next,
		cursor:      next,
	}
}

// ComponentID returns this replica's static id.
func (s *Store) ComponentID() int32 {
	return s.componentID
}

// AssignOrderNumber hands out the next order number and advances the
// counter. Only the leader-side Buy path calls it, which is what keeps
// assigned numbers dense and monotonic.
func (s *Store) AssignOrderNumber() int32 {
	s.nextMu.Lock()
	defer s.nextMu.Unlock()
	n := s.next
	s.next++
	return n
}

// NextOrderNumber returns the number this replica would assign next,
// which doubles as the exclusive upper bound of its known history.
func (s *Store) NextOrderNumber() int32 {
	s.nextMu.Lock()
	defer s.nextMu.Unlock()
	return s.next
}

// Insert binds an order number to its record.
func (s *Store) Insert(n int32, rec Record) {
	s.logMu.Lock()
	s.log[n] = rec
	s.logMu.Unlock()
}

// Install is Insert for records that originate on another replica,
// via propagation or recovery. It also advances the next order number
// past n, tolerating arrival in any order.
func (s *Store) Install(n int32, rec Record) {
	s.Insert(n, rec)
	s.nextMu.Lock()
	if n+1 > s.next {
		s.next = n + 1
	}
	s.nextMu.Unlock()
}

// Lookup returns the record bound to an order number.
func (s *Store) Lookup(n int32) (Record, bool) {
	s.logMu.RLock()
	defer s.logMu.RUnlock()
	rec, ok := s.log[n]
	return rec, ok
}

// Len returns the number of records held in memory.
func (s *Store) Len() int {
	s.logMu.RLock()
	defer s.logMu.RUnlock()
	return len(s.log)
}

// Missing lists the order numbers in [from, to) that have no record.
func (s *Store) Missing(from, to int32) []int32 {
	s.logMu.RLock()
	defer s.logMu.RUnlock()
	var missing []int32
	for n := from; n < to; n++ {
		if _, ok := s.log[n]; !ok {
			missing = append(missing, n)
		}
	}
	return missing
}

// WriteCursor returns the next order number the flusher will persist.
func (s *Store) WriteCursor() int32 {
	s.cursorMu.Lock()
	defer s.cursorMu.Unlock()
	return s.cursor
}

// SetWriteCursor records flusher progress.
func (s *Store) SetWriteCursor(n int32) {
	s.cursorMu.Lock()
	s.cursor = n
	s.cursorMu.Unlock()
}

// RecordLeader stores the id announced by the front end.
func (s *Store) RecordLeader(id int32) {
	s.leaderMu.Lock()
	s.leaderID = id
	s.leaderMu.Unlock()
}

// LeaderID returns the last announced leader id, 0 if none arrived yet.
func (s *Store) LeaderID() int32 {
	s.leaderMu.Lock()
	defer s.leaderMu.Unlock()
	return s.leaderID
}

// IsLeader reports whether the last announcement named this replica.
func (s *Store) IsLeader() bool {
	return s.LeaderID() == s.componentID
}
