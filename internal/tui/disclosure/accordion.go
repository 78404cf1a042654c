package disclosure

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Section describes one accordion panel.
type Section struct {
	Title   string
	Open    bool
	Content Content
}

// Accordion is an ordered stack of disclosure sections with a cursor.
// In exclusive mode, opening one section closes the others.
type Accordion struct {
	sections  []*Model
	cursor    int
	exclusive bool
	focused   bool
}

// NewAccordion builds an accordion from section descriptions.
func NewAccordion(exclusive bool, sections ...Section) *Accordion {
	a := &Accordion{exclusive: exclusive}
	for _, s := range sections {
		a.sections = append(a.sections, New(s.Title, s.Open, s.Content))
	}
	if exclusive {
		// Keep only the first initially-open section open.
		seen := false
		for _, s := range a.sections {
			if s.open && seen {
				s.open = false
			}
			seen = seen || s.open
		}
	}
	return a
}

// Len returns the number of sections.
func (a *Accordion) Len() int { return len(a.sections) }

// Section returns the i-th section, or nil when out of range.
func (a *Accordion) Section(i int) *Model {
	if i < 0 || i >= len(a.sections) {
		return nil
	}
	return a.sections[i]
}

// Cursor returns the focused section index.
func (a *Accordion) Cursor() int { return a.cursor }

// Toggle flips section i. Out-of-range indexes are ignored.
func (a *Accordion) Toggle(i int) {
	s := a.Section(i)
	if s == nil {
		return
	}
	willOpen := !s.open
	if willOpen && a.exclusive {
		for j, other := range a.sections {
			if j != i {
				other.Close()
			}
		}
	}
	s.Toggle()
}

// OpenIndexes returns the indexes of open sections.
func (a *Accordion) OpenIndexes() []int {
	var idx []int
	for i, s := range a.sections {
		if s.open {
			idx = append(idx, i)
		}
	}
	return idx
}

// Focus gives the accordion keyboard focus.
func (a *Accordion) Focus() {
	a.focused = true
	a.syncFocus()
}

// Blur removes keyboard focus.
func (a *Accordion) Blur() {
	a.focused = false
	a.syncFocus()
}

func (a *Accordion) syncFocus() {
	for i, s := range a.sections {
		if a.focused && i == a.cursor {
			s.Focus()
		} else {
			s.Blur()
		}
	}
}

// Update moves the cursor with up/down (k/j) and toggles with enter/space.
func (a *Accordion) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !a.focused || len(a.sections) == 0 {
		return nil
	}
	switch key.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.sections)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.Toggle(a.cursor)
	}
	a.syncFocus()
	return nil
}

// View renders all sections top to bottom.
func (a *Accordion) View() string {
	parts := make([]string, len(a.sections))
	for i, s := range a.sections {
		parts[i] = s.View()
	}
	return strings.Join(parts, "\n")
}
