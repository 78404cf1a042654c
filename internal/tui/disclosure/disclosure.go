// Package disclosure provides the open/closed building block used by
// accordion sections, filter sections, and dropdown panels.
//
// A closed section does not render its content at all: the Content func is
// only invoked while the section is open, so hidden content costs nothing
// and triggers nothing.
package disclosure

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// Content produces the body of an open section.
type Content func() string

// Model is a single disclosure section.
type Model struct {
	title    string
	open     bool
	focused  bool
	content  Content
	onToggle func(open bool)
}

// New creates a section with the given initial open state.
func New(title string, isOpenInitially bool, content Content) *Model {
	return &Model{
		title:   title,
		open:    isOpenInitially,
		content: content,
	}
}

// OnToggle registers a callback invoked after every state change.
func (m *Model) OnToggle(fn func(open bool)) {
	m.onToggle = fn
}

// Title returns the header text.
func (m *Model) Title() string { return m.title }

// SetTitle replaces the header text.
func (m *Model) SetTitle(title string) { m.title = title }

// SetContent replaces the body producer.
func (m *Model) SetContent(c Content) { m.content = c }

// IsOpen reports whether the section is expanded.
func (m *Model) IsOpen() bool { return m.open }

// Toggle flips the open state.
func (m *Model) Toggle() {
	m.setOpen(!m.open)
}

// Open expands the section.
func (m *Model) Open() {
	if !m.open {
		m.setOpen(true)
	}
}

// Close collapses the section.
func (m *Model) Close() {
	if m.open {
		m.setOpen(false)
	}
}

func (m *Model) setOpen(open bool) {
	m.open = open
	if m.onToggle != nil {
		m.onToggle(open)
	}
}

// Focus gives the header keyboard focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the header has focus.
func (m *Model) Focused() bool { return m.focused }

// Update toggles the section on enter or space while focused.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.focused {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", " ":
			m.Toggle()
		}
	}
	return nil
}

// Header renders only the header line.
func (m *Model) Header() string {
	marker := "▸"
	if m.open {
		marker = "▾"
	}
	style := styles.SectionHeader
	if m.focused {
		style = styles.SectionHeaderFocused
	}
	return style.Render(marker + " " + m.title)
}

// View renders the header and, when open, the content.
func (m *Model) View() string {
	header := m.Header()
	if !m.open || m.content == nil {
		return header
	}
	body := m.content()
	if strings.TrimSpace(body) == "" {
		return header
	}
	return header + "\n" + styles.SectionBody.Render(body)
}
