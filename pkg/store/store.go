package store

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

// Toast is a transient user-facing notification emitted on successful
// mutations. It is a side channel only: delivery failure never blocks or
// rolls back the underlying mutation.
type Toast struct {
	Message string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save failure paths.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock sets the time source. Used by tests for deterministic dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the entity ID generator. Used by tests for
// deterministic IDs.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithToastFunc sets the callback receiving toast notifications.
func WithToastFunc(fn func(Toast)) Option {
	return func(s *Store) { s.onToast = fn }
}

// Store owns the AppState exclusively. All reads and writes go through its
// methods; consumers receive snapshots and must not mutate them.
type Store struct {
	mu      sync.RWMutex
	backend types.Backend
	log     *zap.Logger
	now     func() time.Time
	newID   func() string
	onToast func(Toast)
	subs    []func()
	state   types.AppState
	saves   sync.WaitGroup
}

// New creates a Store over the given snapshot backend. Call Open before any
// other method.
func New(backend types.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		log:     zap.NewNop(),
		now:     time.Now,
		newID:   func() string { return uuid.Must(uuid.NewV7()).String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the persisted snapshot, normalizes it, and resolves the focus
// goal before the state is published. A missing or undecodable snapshot falls
// back to the default empty state; Open never fails on bad data.
func (s *Store) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := types.DefaultState()
	raw, err := s.backend.Load()
	switch {
	case errors.Is(err, types.ErrNoSnapshot):
		s.log.Info("no snapshot found, starting fresh")
	case err != nil:
		s.log.Warn("snapshot load failed, starting fresh", zap.Error(err))
	default:
		decoded, derr := decodeSnapshot(raw)
		if derr != nil {
			s.log.Warn("snapshot decode failed, starting fresh", zap.Error(derr))
		} else {
			state = decoded
		}
	}

	state.Goals, state.FocusGoalID, state.FocusMode =
		resolveFocus(state.Goals, state.FocusMode, state.FocusGoalID)
	s.state = state
}

// Close waits for in-flight snapshot writes and releases the backend.
func (s *Store) Close() error {
	s.saves.Wait()
	return s.backend.Close()
}

// State returns a snapshot of the current application state. The returned
// value shares backing arrays with the live state; treat it as read-only.
func (s *Store) State() types.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Progress returns the current XP and level.
func (s *Store) Progress() types.UserProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Progress
}

// Subscribe registers fn to be called after every committed mutation.
// Subscribers run on the mutating goroutine after the lock is released.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// encode serializes the current state. Caller must hold the lock so the
// snapshot is a consistent view of one state transition.
func (s *Store) encode() []byte {
	data, err := json.Marshal(&s.state)
	if err != nil {
		s.log.Error("encode snapshot", zap.Error(err))
		return nil
	}
	return data
}

// commit persists the encoded snapshot in the background and delivers the
// toast and subscriber notifications. Called without the lock held. A failed
// write is logged and otherwise ignored: the in-memory state stays the source
// of truth and the next mutation retries the full write.
func (s *Store) commit(data []byte, msg string) {
	if data != nil {
		s.saves.Add(1)
		go func() {
			defer s.saves.Done()
			if err := s.backend.Save(data); err != nil {
				s.log.Error("persist snapshot", zap.Error(err))
			}
		}()
	}
	if s.onToast != nil && msg != "" {
		s.onToast(Toast{Message: msg})
	}
	s.mu.RLock()
	subs := s.subs
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// reapplyFocus re-runs the focus resolution policy over the current goals.
// Caller must hold the lock. This is the only writer of Goal.IsFocusGoal.
func (s *Store) reapplyFocus() {
	s.state.Goals, s.state.FocusGoalID, s.state.FocusMode =
		resolveFocus(s.state.Goals, s.state.FocusMode, s.state.FocusGoalID)
}

// dateOnly formats t as an ISO date-only string.
func dateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
