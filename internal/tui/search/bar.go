package search

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/lifecycle"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// DefaultBusyDelay is how long the busy indicator stays on after a submit.
const DefaultBusyDelay = 500 * time.Millisecond

var barIDs atomic.Int64

// BusyExpiredMsg clears the busy indicator of the bar that scheduled it,
// provided no later submit has superseded it.
type BusyExpiredMsg struct {
	BarID      int64
	Generation int
}

// Bar is a search input with a busy indicator.
//
// The indicator is cosmetic: it turns on when a query is submitted and
// turns off after a fixed delay, independent of when the injected search
// callback finishes its work.
type Bar struct {
	id         int64
	input      textinput.Model
	delay      time.Duration
	onSearch   func(query string)
	busy       bool
	generation int
	hooks      lifecycle.Hooks
}

// Option configures a Bar.
type Option func(*Bar)

// WithDelay sets the busy delay. Non-positive values keep the default.
func WithDelay(d time.Duration) Option {
	return func(b *Bar) {
		if d > 0 {
			b.delay = d
		}
	}
}

// WithPlaceholder sets the input placeholder.
func WithPlaceholder(p string) Option {
	return func(b *Bar) { b.input.Placeholder = p }
}

// WithInitialQuery prefills the input.
func WithInitialQuery(q string) Option {
	return func(b *Bar) { b.input.SetValue(q) }
}

// NewBar creates a search bar. onSearch receives the exact input text on
// every submit.
func NewBar(onSearch func(query string), opts ...Option) *Bar {
	ti := textinput.New()
	ti.Placeholder = "Search products..."
	ti.Prompt = "/ "
	ti.CharLimit = 200
	ti.Width = 40

	b := &Bar{
		id:       barIDs.Add(1),
		input:    ti,
		delay:    DefaultBusyDelay,
		onSearch: onSearch,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init mounts the bar.
func (b *Bar) Init() tea.Cmd {
	b.hooks.Create()
	return textinput.Blink
}

// Destroy tears the bar down. A pending busy timer is cancelled and
// later submits are ignored.
func (b *Bar) Destroy() {
	b.hooks.Destroy()
}

// Value returns the current input text.
func (b *Bar) Value() string { return b.input.Value() }

// SetValue replaces the input text without submitting.
func (b *Bar) SetValue(s string) { b.input.SetValue(s) }

// IsBusy reports whether the busy indicator is showing.
func (b *Bar) IsBusy() bool { return b.busy }

// Delay returns the busy delay.
func (b *Bar) Delay() time.Duration { return b.delay }

// Focus gives the input keyboard focus.
func (b *Bar) Focus() { b.input.Focus() }

// Blur removes keyboard focus.
func (b *Bar) Blur() { b.input.Blur() }

// Focused reports whether the input has focus.
func (b *Bar) Focused() bool { return b.input.Focused() }

// Submit marks the bar busy, reports the current text, and returns the
// command that will clear the indicator after the delay. Submitting again
// before then restarts the delay.
func (b *Bar) Submit() tea.Cmd {
	if b.hooks.Destroyed() {
		return nil
	}

	b.busy = true
	b.generation++
	query := b.input.Value()
	if b.onSearch != nil {
		b.onSearch(query)
	}

	id, gen, token := b.id, b.generation, b.hooks.Token()
	return tea.Tick(b.delay, func(time.Time) tea.Msg {
		if token.Cancelled() {
			return nil
		}
		return BusyExpiredMsg{BarID: id, Generation: gen}
	})
}

// Update submits on enter, clears busy on the matching expiry message,
// and forwards other keys to the input while focused.
func (b *Bar) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case BusyExpiredMsg:
		if msg.BarID == b.id && msg.Generation == b.generation && !b.hooks.Destroyed() {
			b.busy = false
		}
		return nil

	case tea.KeyMsg:
		if !b.input.Focused() {
			return nil
		}
		if msg.Type == tea.KeyEnter {
			return b.Submit()
		}
	}

	if b.hooks.Destroyed() {
		return nil
	}
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return cmd
}

// View renders the input and, while busy, the indicator.
func (b *Bar) View() string {
	var sb strings.Builder
	sb.WriteString(b.input.View())
	if b.busy {
		sb.WriteString("  ")
		sb.WriteString(styles.SearchBusy.Render("searching…"))
	}
	return styles.SearchBar.Render(sb.String())
}
