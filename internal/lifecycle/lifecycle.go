// Package lifecycle models component creation and teardown as explicit
// hooks. Each hook set runs at most once, and deferred work holds a Token
// that is cancelled on teardown so no state is mutated afterwards.
package lifecycle

import "sync"

// Token reports whether the owning component has been torn down.
// The zero value is never cancelled.
type Token struct {
	ch <-chan struct{}
}

// Cancelled reports whether Destroy has run on the Hooks that issued t.
func (t Token) Cancelled() bool {
	if t.ch == nil {
		return false
	}
	select {
	case <-t.ch:
		return true
	default:
		return false
	}
}

// Done returns a channel closed on teardown. It is nil for the zero Token.
func (t Token) Done() <-chan struct{} {
	return t.ch
}

// Hooks holds on-create and on-destroy callbacks for one component
// instance. The zero value is ready to use.
type Hooks struct {
	mu        sync.Mutex
	onCreate  []func()
	onDestroy []func()
	created   bool
	destroyed bool
	done      chan struct{}
}

// OnCreate registers fn to run when Create is called.
func (h *Hooks) OnCreate(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onCreate = append(h.onCreate, fn)
}

// OnDestroy registers fn to run when Destroy is called.
func (h *Hooks) OnDestroy(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onDestroy = append(h.onDestroy, fn)
}

// Create runs the create hooks in registration order. It returns false
// without running anything if Create already ran or Destroy ran first.
func (h *Hooks) Create() bool {
	h.mu.Lock()
	if h.created || h.destroyed {
		h.mu.Unlock()
		return false
	}
	h.created = true
	hooks := h.onCreate
	h.onCreate = nil
	h.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
	return true
}

// Destroy cancels every issued Token, then runs the destroy hooks in
// reverse registration order. Subsequent calls return false.
func (h *Hooks) Destroy() bool {
	h.mu.Lock()
	if h.destroyed {
		h.mu.Unlock()
		return false
	}
	h.destroyed = true
	h.ensureDone()
	close(h.done)
	hooks := h.onDestroy
	h.onDestroy = nil
	h.onCreate = nil
	h.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
	return true
}

// Token returns a cancellation token tied to this instance's teardown.
func (h *Hooks) Token() Token {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ensureDone()
	return Token{ch: h.done}
}

// Created reports whether Create has run.
func (h *Hooks) Created() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.created
}

// Destroyed reports whether Destroy has run.
func (h *Hooks) Destroyed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.destroyed
}

func (h *Hooks) ensureDone() {
	if h.done == nil {
		h.done = make(chan struct{})
	}
}
