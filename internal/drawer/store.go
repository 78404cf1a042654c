// Package drawer holds the navigation drawer open/closed flag.
//
// The flag lives in an explicit [Store] instance that is created by the
// application and handed to consumers directly or through a
// context.Context ([WithStore] / [FromContext]). There is no package-level
// instance.
//
// Listeners are notified once per actual change: Set(true) on an already
// open drawer does not notify.
package drawer

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/Iron-Ham/storefront/internal/logging"
)

// Listener is called with the new value after each change.
type Listener func(open bool)

type subscription struct {
	id       uint64
	listener Listener
}

// Store is an injectable open/closed flag with change subscriptions.
// It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	open   bool
	subs   []subscription
	nextID atomic.Uint64
	logger *logging.Logger
}

// NewStore creates a closed drawer store.
func NewStore(logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Store{logger: logger.WithComponent("drawer")}
}

// Get returns whether the drawer is open.
func (s *Store) Get() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

// Set opens or closes the drawer.
func (s *Store) Set(open bool) {
	s.mu.Lock()
	if s.open == open {
		s.mu.Unlock()
		return
	}
	s.open = open
	subs := s.snapshot()
	s.mu.Unlock()

	s.notify(subs, open)
}

// Toggle flips the drawer state.
func (s *Store) Toggle() {
	s.mu.Lock()
	s.open = !s.open
	open := s.open
	subs := s.snapshot()
	s.mu.Unlock()

	s.notify(subs, open)
}

// Subscribe registers l for change notifications and returns a function
// that removes it. Calling the returned function more than once is safe.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	id := s.nextID.Add(1)

	s.mu.Lock()
	s.subs = append(s.subs, subscription{id: id, listener: l})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

// SubscriberCount returns the number of active listeners.
func (s *Store) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

func (s *Store) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// snapshot copies the subscriber list. Callers hold s.mu.
func (s *Store) snapshot() []subscription {
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	return subs
}

func (s *Store) notify(subs []subscription, open bool) {
	s.logger.Debug("drawer changed", "open", open, "listeners", len(subs))
	for _, sub := range subs {
		s.safeCall(sub.listener, open)
	}
}

// safeCall keeps one panicking listener from blocking the rest.
func (s *Store) safeCall(l Listener, open bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("drawer listener panicked",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	l(open)
}

type contextKey struct{}

// WithStore returns a copy of ctx carrying s.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the Store carried by ctx, or nil.
func FromContext(ctx context.Context) *Store {
	s, _ := ctx.Value(contextKey{}).(*Store)
	return s
}
