// Package sortmenu provides the listing page sort dropdown. It pairs an
// open/closed trigger with a generic selector; choosing an entry closes
// the dropdown.
package sortmenu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/option"
	"github.com/Iron-Ham/storefront/internal/tui/selector"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// DefaultOptions returns the built-in sort orders.
func DefaultOptions() []option.Option {
	return []option.Option{
		{ID: catalog.SortFeatured, Label: "Featured"},
		{ID: catalog.SortPriceAsc, Label: "Price: Low to High"},
		{ID: catalog.SortPriceDesc, Label: "Price: High to Low"},
		{ID: catalog.SortNewest, Label: "Newest"},
		{ID: catalog.SortRating, Label: "Top Rated"},
	}
}

// Model is a sort dropdown.
type Model struct {
	open     bool
	focused  bool
	list     *selector.Model
	onChange func(id string)
}

// New builds a dropdown over opts, falling back to DefaultOptions when
// opts is empty. onChange receives every selection including the one made
// on mount.
func New(opts []option.Option, onChange func(id string)) *Model {
	if len(opts) == 0 {
		opts = DefaultOptions()
	}
	m := &Model{onChange: onChange}
	m.list = selector.New(selector.KindGeneric, opts, m.selected,
		selector.WithEmptyText("No sort options"))
	return m
}

func (m *Model) selected(id string, auto bool) {
	if !auto {
		m.open = false
		m.list.Blur()
	}
	if m.onChange != nil {
		m.onChange(id)
	}
}

// Init mounts the dropdown and auto-selects the first sort order.
func (m *Model) Init() tea.Cmd {
	m.Mount()
	return nil
}

// Mount runs the selection on-create hook.
func (m *Model) Mount() { m.list.Mount() }

// Destroy tears the dropdown down.
func (m *Model) Destroy() { m.list.Destroy() }

// IsOpen reports whether the option list is showing.
func (m *Model) IsOpen() bool { return m.open }

// Open shows the option list.
func (m *Model) Open() {
	m.open = true
	m.list.Focus()
}

// Close hides the option list.
func (m *Model) Close() {
	m.open = false
	m.list.Blur()
}

// Toggle flips the open state.
func (m *Model) Toggle() {
	if m.open {
		m.Close()
	} else {
		m.Open()
	}
}

// Select chooses a sort order by id and closes the dropdown.
func (m *Model) Select(id string) error {
	return m.list.Select(id)
}

// Selected returns the current sort id.
func (m *Model) Selected() string {
	id, _ := m.list.Selected()
	return id
}

// Options returns the available sort orders.
func (m *Model) Options() []option.Option { return m.list.Options() }

// Focus gives the dropdown keyboard focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes focus and closes the dropdown.
func (m *Model) Blur() {
	m.focused = false
	m.Close()
}

// Focused reports whether the dropdown has focus.
func (m *Model) Focused() bool { return m.focused }

// Update opens the dropdown on enter or space, routes navigation to the
// option list while open, and closes it on esc.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return nil
	}
	if !m.open {
		switch key.String() {
		case "enter", " ":
			m.Open()
		}
		return nil
	}
	if key.String() == "esc" {
		m.Close()
		return nil
	}
	return m.list.Update(msg)
}

// View renders the trigger and, when open, the option list.
func (m *Model) View() string {
	label := "Sort"
	if opt, ok := m.list.SelectedOption(); ok {
		label = "Sort: " + opt.Label
	}
	marker := "▾"
	if m.open {
		marker = "▴"
	}
	header := styles.SectionHeader
	if m.focused {
		header = styles.SectionHeaderFocused
	}

	var b strings.Builder
	b.WriteString(header.Render(label + " " + marker))
	if m.open {
		b.WriteString("\n")
		b.WriteString(styles.DropdownContainer.Render(m.list.View()))
	}
	return b.String()
}
