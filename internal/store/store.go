// Package store is an ordered in-memory collection keyed by a monotonic id.
//
// Items are kept newest first. Ids start at 1 per Store and are never reused,
// even after Delete or eviction. All access is serialized by one mutex; the
// store performs no I/O.
package store

import (
	"errors"
	"slices"
	"sync"
	"time"
)

var ErrNotFound = errors.New("store: not found")

type Item[T any] struct {
	ID        int64
	Data      T
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Store[T any] struct {
	mu     sync.RWMutex
	items  []Item[T] // newest first
	nextID int64
	cap    int
	now    func() time.Time
}

type Option func(*options)

type options struct {
	cap int
	now func() time.Time
}

// WithCap bounds the store to n items, dropping the oldest after an insert
// overflows. n <= 0 means unbounded.
func WithCap(n int) Option { return func(o *options) { o.cap = n } }

func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

func New[T any](opts ...Option) *Store[T] {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, fn := range opts {
		fn(&o)
	}
	return &Store[T]{nextID: 1, cap: o.cap, now: o.now}
}

func (s *Store[T]) Create(data T) Item[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	it := Item[T]{ID: s.nextID, Data: data, CreatedAt: now, UpdatedAt: now}
	s.nextID++

	s.items = append(s.items, Item[T]{})
	copy(s.items[1:], s.items)
	s.items[0] = it

	if s.cap > 0 && len(s.items) > s.cap {
		clear(s.items[s.cap:])
		s.items = s.items[:s.cap]
	}
	return it
}

func (s *Store[T]) Get(id int64) (Item[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.index(id); i >= 0 {
		return s.items[i], nil
	}
	return Item[T]{}, ErrNotFound
}

// Update replaces Data, keeping ID and CreatedAt.
func (s *Store[T]) Update(id int64, data T) (Item[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return Item[T]{}, ErrNotFound
	}
	s.items[i].Data = data
	s.items[i].UpdatedAt = s.now()
	return s.items[i], nil
}

func (s *Store[T]) Delete(id int64) (Item[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return Item[T]{}, ErrNotFound
	}
	it := s.items[i]
	// slices.Delete 会清零腾出的尾槽，被删的数据不再被底层数组引用
	s.items = slices.Delete(s.items, i, i+1)
	return it, nil
}

func (s *Store[T]) List() []Item[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item[T], len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear drops every item and returns how many were removed. The id counter
// keeps counting.
func (s *Store[T]) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.items)
	s.items = nil
	return n
}

func (s *Store[T]) index(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
