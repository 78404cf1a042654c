// Package selector implements single-choice option pickers: the product
// color and size selectors and the generic vertical list used by the sort
// dropdown.
//
// Options are deduplicated by id before the first render. When mounted with
// nothing selected, the first option is chosen and reported exactly once.
// Selecting an unknown id fails with a NotFoundError and leaves the
// selection untouched; the callback never sees an invalid id.
package selector

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/storefront/internal/errors"
	"github.com/Iron-Ham/storefront/internal/lifecycle"
	"github.com/Iron-Ham/storefront/internal/option"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// Kind controls how options are rendered.
type Kind int

const (
	// KindGeneric renders a vertical list.
	KindGeneric Kind = iota
	// KindColor renders color swatches.
	KindColor
	// KindSize renders boxed size labels.
	KindSize
)

// String returns the resource name used in errors and logs.
func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindSize:
		return "size"
	default:
		return "option"
	}
}

// Model is a single-choice selector.
type Model struct {
	kind      Kind
	label     string
	emptyText string
	options   []option.Option
	selected  string
	cursor    int
	focused   bool
	onSelect  func(id string, auto bool)
	hooks     lifecycle.Hooks
}

// Option configures a Model.
type Option func(*Model)

// WithDefault preselects id if it is present in the option list. A
// preselected selector does not auto-select or report on mount.
func WithDefault(id string) Option {
	return func(m *Model) {
		if i := option.Index(m.options, id); i >= 0 {
			m.selected = id
			m.cursor = i
		}
	}
}

// WithLabel sets the heading shown above the options.
func WithLabel(label string) Option {
	return func(m *Model) { m.label = label }
}

// WithEmptyText overrides the empty-state message.
func WithEmptyText(text string) Option {
	return func(m *Model) { m.emptyText = text }
}

// New creates a selector over opts. onSelect receives the chosen id and
// whether it came from the on-create auto-select.
func New(kind Kind, opts []option.Option, onSelect func(id string, auto bool), o ...Option) *Model {
	m := &Model{
		kind:      kind,
		options:   option.Dedupe(opts),
		onSelect:  onSelect,
		emptyText: fmt.Sprintf("No %ss available", kind),
	}
	for _, fn := range o {
		fn(m)
	}
	m.hooks.OnCreate(m.autoSelect)
	return m
}

// Init mounts the selector. It satisfies the Init half of tea.Model.
func (m *Model) Init() tea.Cmd {
	m.Mount()
	return nil
}

// Mount runs the on-create hook. Only the first call has any effect.
func (m *Model) Mount() {
	m.hooks.Create()
}

// Destroy tears the selector down. Later Select calls fail with ErrClosed.
func (m *Model) Destroy() {
	m.hooks.Destroy()
}

func (m *Model) autoSelect() {
	if m.selected != "" || len(m.options) == 0 {
		return
	}
	m.selected = m.options[0].ID
	m.cursor = 0
	m.emit(m.selected, true)
}

// Select chooses id and reports it.
func (m *Model) Select(id string) error {
	if m.hooks.Destroyed() {
		return errors.Wrapf(errors.ErrClosed, "select %s %q", m.kind, id)
	}
	i := option.Index(m.options, id)
	if i < 0 {
		return errors.NewNotFoundError(m.kind.String(), id).WithCause(errors.ErrOptionNotFound)
	}
	m.selected = id
	m.cursor = i
	m.emit(id, false)
	return nil
}

func (m *Model) emit(id string, auto bool) {
	if m.onSelect != nil {
		m.onSelect(id, auto)
	}
}

// Selected returns the chosen id.
func (m *Model) Selected() (string, bool) {
	return m.selected, m.selected != ""
}

// SelectedOption returns the chosen option record.
func (m *Model) SelectedOption() (option.Option, bool) {
	i := option.Index(m.options, m.selected)
	if i < 0 {
		return option.Option{}, false
	}
	return m.options[i], true
}

// Options returns the deduplicated option list.
func (m *Model) Options() []option.Option {
	return m.options
}

// Len returns the number of distinct options.
func (m *Model) Len() int { return len(m.options) }

// Cursor returns the highlighted index.
func (m *Model) Cursor() int { return m.cursor }

// Kind returns the selector kind.
func (m *Model) Kind() Kind { return m.kind }

// Focus gives the selector keyboard focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the selector has focus.
func (m *Model) Focused() bool { return m.focused }

// Update moves the cursor and selects on enter or space.
// Swatch and size rows use left/right; generic lists use up/down.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.options) == 0 {
		return nil
	}

	switch key.String() {
	case "left", "h", "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l", "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter", " ":
		_ = m.Select(m.options[m.cursor].ID)
	}
	return nil
}

// View renders the options or the empty state.
func (m *Model) View() string {
	var b strings.Builder
	if m.label != "" {
		b.WriteString(styles.SectionHeader.Render(m.label))
		if opt, ok := m.SelectedOption(); ok {
			b.WriteString(styles.Muted.Render(": " + opt.Label))
		}
		b.WriteString("\n")
	}

	if len(m.options) == 0 {
		b.WriteString(styles.Muted.Render(m.emptyText))
		return b.String()
	}

	switch m.kind {
	case KindColor:
		b.WriteString(m.viewColors())
	case KindSize:
		b.WriteString(m.viewSizes())
	default:
		b.WriteString(m.viewList())
	}
	return b.String()
}

func (m *Model) viewColors() string {
	cells := make([]string, len(m.options))
	for i, opt := range m.options {
		cell := styles.Swatch(opt.Hex) + " " + opt.Label
		if opt.ID == m.selected {
			cell = styles.OptionBoxSelected.Render(cell)
		} else {
			cell = styles.OptionBox.Render(cell)
		}
		cells[i] = m.withCursor(i, cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *Model) viewSizes() string {
	cells := make([]string, len(m.options))
	for i, opt := range m.options {
		style := styles.OptionBox
		if opt.ID == m.selected {
			style = styles.OptionBoxSelected
		}
		cells[i] = m.withCursor(i, style.Render(opt.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *Model) viewList() string {
	lines := make([]string, len(m.options))
	for i, opt := range m.options {
		prefix := "  "
		if m.focused && i == m.cursor {
			prefix = styles.OptionCursor.Render("> ")
		}
		style := styles.DropdownItem
		if opt.ID == m.selected {
			style = styles.DropdownItemSelected
		}
		lines[i] = prefix + style.Render(opt.Label)
	}
	return strings.Join(lines, "\n")
}

// withCursor stacks a cursor marker under a horizontal cell.
func (m *Model) withCursor(i int, cell string) string {
	marker := " "
	if m.focused && i == m.cursor {
		marker = styles.OptionCursor.Render("^")
	}
	return lipgloss.JoinVertical(lipgloss.Center, cell, marker)
}
