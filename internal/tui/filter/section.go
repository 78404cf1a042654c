package filter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/storefront/internal/errors"
	"github.com/Iron-Ham/storefront/internal/option"
	"github.com/Iron-Ham/storefront/internal/tui/disclosure"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// Section is a collapsible multi-choice filter group.
type Section struct {
	key        string
	options    []option.Option
	chosen     map[string]bool
	disclosure *disclosure.Model
	cursor     int // highlighted choice, -1 for none
}

// NewSection creates a section keyed by key (the facet name used in
// catalog.Filters). Options are deduplicated.
func NewSection(key, title string, opts []option.Option, open bool) *Section {
	s := &Section{
		key:     key,
		options: option.Dedupe(opts),
		chosen:  make(map[string]bool),
		cursor:  -1,
	}
	s.disclosure = disclosure.New(title, open, s.renderChoices)
	return s
}

// Key returns the facet name.
func (s *Section) Key() string { return s.key }

// Title returns the header text.
func (s *Section) Title() string { return s.disclosure.Title() }

// Options returns the available choices.
func (s *Section) Options() []option.Option { return s.options }

// IsOpen reports whether the choices are visible.
func (s *Section) IsOpen() bool { return s.disclosure.IsOpen() }

// Toggle opens or closes the section.
func (s *Section) Toggle() { s.disclosure.Toggle() }

// SetOpen forces the open state.
func (s *Section) SetOpen(open bool) {
	if open {
		s.disclosure.Open()
	} else {
		s.disclosure.Close()
	}
}

// ToggleChoice flips membership of id. Unknown ids are rejected.
func (s *Section) ToggleChoice(id string) error {
	if !option.Contains(s.options, id) {
		return errors.NewNotFoundError(s.key, id).WithCause(errors.ErrOptionNotFound)
	}
	if s.chosen[id] {
		delete(s.chosen, id)
	} else {
		s.chosen[id] = true
	}
	return nil
}

// IsChosen reports whether id is selected.
func (s *Section) IsChosen(id string) bool { return s.chosen[id] }

// Selected returns the chosen ids in option order.
func (s *Section) Selected() []string {
	var ids []string
	for _, opt := range s.options {
		if s.chosen[opt.ID] {
			ids = append(ids, opt.ID)
		}
	}
	return ids
}

// Clear deselects every choice. It reports whether anything changed.
func (s *Section) Clear() bool {
	if len(s.chosen) == 0 {
		return false
	}
	clear(s.chosen)
	return true
}

// View renders the header and, when open, the choices.
func (s *Section) View() string {
	return s.disclosure.View()
}

func (s *Section) setFocus(header bool, choice int) {
	if header {
		s.disclosure.Focus()
	} else {
		s.disclosure.Blur()
	}
	s.cursor = choice
}

func (s *Section) renderChoices() string {
	if len(s.options) == 0 {
		return styles.Muted.Render("No options")
	}

	lines := make([]string, len(s.options))
	for i, opt := range s.options {
		var checkbox string
		var labelStyle lipgloss.Style
		if s.chosen[opt.ID] {
			checkbox = styles.FilterCheckbox.Render("[✓]")
			labelStyle = styles.FilterChoiceEnabled
		} else {
			checkbox = styles.FilterCheckboxEmpty.Render("[ ]")
			labelStyle = styles.FilterChoiceDisabled
		}
		prefix := "  "
		if i == s.cursor {
			prefix = styles.OptionCursor.Render("> ")
		}
		lines[i] = fmt.Sprintf("%s%s %s", prefix, checkbox, labelStyle.Render(opt.Label))
	}
	return strings.Join(lines, "\n")
}
