// internal/bank/store.go
package bank

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultToastTTL is how long a toast stays visible before its expiry
// timer removes it.
const DefaultToastTTL = 3 * time.Second

// Store owns the bank snapshot. Dispatches run the pure reducer under
// a single lock, so they apply atomically and in dispatch order.
// Toast expiry timers are keyed by toast ID so an early dismissal
// cancels the pending removal instead of racing it.
type Store struct {
	mu      sync.RWMutex
	state   Snapshot
	subs    map[int]func(Snapshot)
	nextSub int

	timers      map[int64]*time.Timer
	toastTTL    time.Duration
	now         func() time.Time
	lastToastID int64
	closed      bool

	tracer trace.Tracer
}

type Option func(*Store)

// WithToastTTL overrides the toast auto-expiry delay.
func WithToastTTL(d time.Duration) Option {
	return func(s *Store) { s.toastTTL = d }
}

// WithClock injects the time source used for toast IDs.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore builds a store around an initial snapshot, typically
// Seed().
func NewStore(initial Snapshot, opts ...Option) *Store {
	s := &Store{
		state:    initial,
		subs:     make(map[int]func(Snapshot)),
		timers:   make(map[int64]*time.Timer),
		toastTTL: DefaultToastTTL,
		now:      time.Now,
		tracer:   otel.Tracer("bancoexpres/bank"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state. The returned value must be
// treated as immutable.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to run after every dispatch. The returned
// function cancels the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Dispatch applies an action and notifies subscribers. It never
// fails; after Close it is a no-op, which keeps a late-firing expiry
// timer from touching a torn-down store.
func (s *Store) Dispatch(a Action) {
	_, span := s.tracer.Start(context.Background(), "bankstore.dispatch",
		trace.WithAttributes(attribute.String("action.type", fmt.Sprintf("%T", a))),
	)
	defer span.End()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.state = Apply(s.state, a)

	switch a := a.(type) {
	case AddToast:
		id := a.Toast.ID
		s.timers[id] = time.AfterFunc(s.toastTTL, func() {
			s.Dispatch(RemoveToast{ID: id})
		})
	case RemoveToast:
		if t, ok := s.timers[a.ID]; ok {
			t.Stop()
			delete(s.timers, a.ID)
		}
	}

	snap := s.state
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// ShowToast appends a toast with a fresh time-based ID and schedules
// its removal after the configured TTL. Returns the ID so callers can
// dismiss it early.
func (s *Store) ShowToast(message string, severity Severity) int64 {
	s.mu.Lock()
	id := s.now().UnixMilli()
	if id <= s.lastToastID {
		id = s.lastToastID + 1
	}
	s.lastToastID = id
	s.mu.Unlock()

	s.Dispatch(AddToast{Toast: Toast{ID: id, Message: message, Severity: severity}})
	return id
}

// DismissToast removes a toast before its timer fires. Idempotent: a
// second dismissal, or one racing the expiry, is a no-op.
func (s *Store) DismissToast(id int64) {
	s.Dispatch(RemoveToast{ID: id})
}

// Close stops all pending toast timers and makes further dispatches
// no-ops.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
