// internal/auth/store.go
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

// DefaultLatency emulates the network round-trip of a real
// authentication backend. Tests pass WithLatency(0).
const DefaultLatency = 1 * time.Second

// Store owns the session and the credential mapping. All mutations go
// through the reducer under a single lock, so dispatches never
// interleave mid-transition. Failures are reported through the
// snapshot's error field, never returned as fatal errors.
type Store struct {
	mu      sync.RWMutex
	st      state
	subs    map[int]func(Snapshot)
	nextSub int

	vault   Vault
	scheme  SecretScheme
	latency time.Duration
	limiter *rate.Limiter
	now     func() time.Time
	tracer  trace.Tracer
}

type Option func(*Store)

// WithLatency overrides the simulated round-trip before login and
// register resolve.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithScheme selects how secrets are sealed and verified.
func WithScheme(scheme SecretScheme) Option {
	return func(s *Store) { s.scheme = scheme }
}

// WithAttemptLimit throttles login and register attempts: burst
// attempts immediately, then one per interval.
func WithAttemptLimit(interval time.Duration, burst int) Option {
	return func(s *Store) { s.limiter = rate.NewLimiter(rate.Every(interval), burst) }
}

// WithClock injects the time source used for registration dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore builds the store around a vault and the seed credentials.
// If the vault holds a valid session the store starts Authenticated
// without re-validating the secret; an unreadable envelope is
// discarded and the vault cleared.
func NewStore(vault Vault, seed []Credential, opts ...Option) *Store {
	creds := make(map[string]Credential, len(seed))
	for _, c := range seed {
		creds[c.Email] = c
	}

	s := &Store{
		st:      state{credentials: creds},
		subs:    make(map[int]func(Snapshot)),
		vault:   vault,
		scheme:  PlaintextScheme{},
		latency: DefaultLatency,
		now:     time.Now,
		tracer:  otel.Tracer("bancoexpres/auth"),
	}
	for _, opt := range opts {
		opt(s)
	}

	saved, err := vault.Read()
	if err != nil {
		vault.Clear()
	} else if saved != nil {
		s.st = reduce(s.st, loginSuccess{user: saved})
	}

	return s
}

// Snapshot returns the current auth state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.snap
}

// Subscribe registers fn to run after every state transition. The
// returned function cancels the subscription.
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

// Login authenticates an operator by email and secret. It blocks for
// the configured latency (honoring ctx) and reports true only when
// the session was established. The session handed to readers and the
// vault never includes the secret.
func (s *Store) Login(ctx context.Context, email, secret string) bool {
	ctx, span := s.tracer.Start(ctx, "auth.login",
		trace.WithAttributes(attribute.String("operator.email", email)),
	)
	defer span.End()

	if s.limiter != nil && !s.limiter.Allow() {
		s.dispatch(loginFailed{message: msgTooManyAttempts})
		return false
	}

	s.dispatch(loginStart{})
	if !s.wait(ctx) {
		s.dispatch(loginFailed{message: msgAborted})
		return false
	}

	s.mu.RLock()
	cred, found := s.st.credentials[email]
	s.mu.RUnlock()

	if !found {
		s.dispatch(loginFailed{message: msgNotFound})
		span.SetAttributes(attribute.Bool("login.success", false))
		return false
	}
	if !s.scheme.Verify(secret, cred.Secret) {
		s.dispatch(loginFailed{message: msgInvalidSecret})
		span.SetAttributes(attribute.Bool("login.success", false))
		return false
	}

	session := cred.Session
	s.dispatch(loginSuccess{user: &session})
	if err := s.vault.Write(&session); err != nil {
		span.RecordError(err)
	}

	span.SetAttributes(attribute.Bool("login.success", true))
	return true
}

// Register creates a new credential record. It does NOT authenticate
// the new operator; a separate Login is required. Fails when the
// email is already registered, leaving the existing record untouched.
func (s *Store) Register(ctx context.Context, p Profile) bool {
	ctx, span := s.tracer.Start(ctx, "auth.register",
		trace.WithAttributes(attribute.String("operator.email", p.Email)),
	)
	defer span.End()

	if s.limiter != nil && !s.limiter.Allow() {
		s.dispatch(registerFailed{message: msgTooManyAttempts})
		return false
	}

	s.dispatch(registerStart{})
	if !s.wait(ctx) {
		s.dispatch(registerFailed{message: msgAborted})
		return false
	}

	s.mu.RLock()
	_, exists := s.st.credentials[p.Email]
	s.mu.RUnlock()

	if exists {
		s.dispatch(registerFailed{message: msgAlreadyExists})
		span.SetAttributes(attribute.Bool("register.success", false))
		return false
	}

	sealed, err := s.scheme.Seal(p.Secret)
	if err != nil {
		span.RecordError(err)
		s.dispatch(registerFailed{message: msgAborted})
		return false
	}

	cred := Credential{
		Session: Session{
			ID:           uuid.NewString(),
			Email:        p.Email,
			Name:         p.Name,
			JobTitle:     p.JobTitle,
			Branch:       p.Branch,
			Phone:        p.Phone,
			RegisteredOn: s.now().Format("2006-01-02"),
			Role:         RoleStandard,
		},
		Secret: sealed,
	}

	s.dispatch(registerSuccess{cred: cred})
	span.SetAttributes(attribute.Bool("register.success", true))
	return true
}

// Logout ends the session and clears the vault. Idempotent.
func (s *Store) Logout() {
	s.dispatch(loggedOut{})
	s.vault.Clear()
}

// ClearError resets the error field. Idempotent.
func (s *Store) ClearError() {
	s.dispatch(clearError{})
}

func (s *Store) dispatch(a action) {
	s.mu.Lock()
	s.st = reduce(s.st, a)
	snap := s.st.snap
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// wait blocks for the configured latency, reporting false when ctx is
// cancelled first.
func (s *Store) wait(ctx context.Context) bool {
	if s.latency <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
