package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	dom "taskbill/internal/domain"

	"github.com/google/uuid"
)

// memRepo is an in-memory dom.Repository that stamps UpdatedAt from its own
// clock on Update, the way the Postgres repositories do.
type memRepo[T any] struct {
	mu    sync.Mutex
	rows  map[uuid.UUID]T
	idOf  func(T) uuid.UUID
	stamp func(*T, time.Time)
	clock func() time.Time

	err   error
	calls map[string]int

	// set by pauseFindAll
	entered chan<- struct{}
	release <-chan struct{}
}

// pauseFindAll makes the next FindAll snapshot its rows, signal entered and
// block until release is closed.
func (m *memRepo[T]) pauseFindAll(entered chan<- struct{}, release <-chan struct{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entered, m.release = entered, release
}

func newMemRepo[T any](idOf func(T) uuid.UUID, stamp func(*T, time.Time), clock func() time.Time) *memRepo[T] {
	return &memRepo[T]{
		rows:  make(map[uuid.UUID]T),
		idOf:  idOf,
		stamp: stamp,
		clock: clock,
		calls: make(map[string]int),
	}
}

func (m *memRepo[T]) called(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *memRepo[T]) FindAll(context.Context) ([]T, error) {
	m.mu.Lock()
	m.calls["FindAll"]++
	if m.err != nil {
		m.mu.Unlock()
		return nil, m.err
	}
	out := make([]T, 0, len(m.rows))
	for _, v := range m.rows {
		out = append(out, v)
	}
	entered, release := m.entered, m.release
	m.entered, m.release = nil, nil
	m.mu.Unlock()

	if entered != nil {
		close(entered)
		<-release
	}
	return out, nil
}

func (m *memRepo[T]) FindByID(_ context.Context, id uuid.UUID) (T, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["FindByID"]++
	var zero T
	if m.err != nil {
		return zero, false, m.err
	}
	v, ok := m.rows[id]
	return v, ok, nil
}

func (m *memRepo[T]) Create(_ context.Context, v T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["Create"]++
	var zero T
	if m.err != nil {
		return zero, m.err
	}
	id := m.idOf(v)
	if _, dup := m.rows[id]; dup {
		return zero, fmt.Errorf("insert %s: %w", id, dom.ErrConflict)
	}
	m.rows[id] = v
	return v, nil
}

func (m *memRepo[T]) Update(_ context.Context, v T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["Update"]++
	var zero T
	if m.err != nil {
		return zero, m.err
	}
	id := m.idOf(v)
	if _, ok := m.rows[id]; !ok {
		return zero, fmt.Errorf("update %s: %w", id, dom.ErrNotFound)
	}
	m.stamp(&v, m.clock())
	m.rows[id] = v
	return v, nil
}

func (m *memRepo[T]) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["Delete"]++
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[id]; !ok {
		return fmt.Errorf("delete %s: %w", id, dom.ErrNotFound)
	}
	delete(m.rows, id)
	return nil
}

// tickClock advances by one second on every read.
type tickClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTickClock() *tickClock {
	return &tickClock{t: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *tickClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTodoRepo(clock func() time.Time) *memRepo[dom.Todo] {
	return newMemRepo(
		func(t dom.Todo) uuid.UUID { return t.ID },
		func(t *dom.Todo, now time.Time) { t.UpdatedAt = now },
		clock,
	)
}

func newInvoiceRepo(clock func() time.Time) *memRepo[dom.Invoice] {
	return newMemRepo(
		func(i dom.Invoice) uuid.UUID { return i.ID },
		func(i *dom.Invoice, now time.Time) { i.UpdatedAt = now },
		clock,
	)
}
