package sortmenu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/errors"
	"github.com/Iron-Ham/storefront/internal/option"
)

func TestNew_DefaultsAndMount(t *testing.T) {
	var got []string
	m := New(nil, func(id string) { got = append(got, id) })

	if len(m.Options()) != 5 {
		t.Fatalf("expected 5 default options, got %d", len(m.Options()))
	}
	m.Init()
	m.Mount()

	if len(got) != 1 || got[0] != catalog.SortFeatured {
		t.Errorf("mount callbacks = %v, want [featured]", got)
	}
	if m.Selected() != catalog.SortFeatured {
		t.Errorf("Selected() = %q", m.Selected())
	}
	if m.IsOpen() {
		t.Error("dropdown should start closed")
	}
}

func TestSelect_ClosesDropdown(t *testing.T) {
	var got []string
	m := New(nil, func(id string) { got = append(got, id) })
	m.Mount()
	m.Open()

	if err := m.Select(catalog.SortRating); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if m.IsOpen() {
		t.Error("choosing an option should close the dropdown")
	}
	if got[len(got)-1] != catalog.SortRating {
		t.Errorf("last onChange = %q, want rating", got[len(got)-1])
	}
}

func TestSelect_Unknown(t *testing.T) {
	calls := 0
	m := New(nil, func(string) { calls++ })
	m.Mount()
	m.Open()

	if err := m.Select("cheapest"); !errors.Is(err, errors.ErrOptionNotFound) {
		t.Errorf("Select(unknown) = %v", err)
	}
	if calls != 1 {
		t.Errorf("unknown id should not call onChange, calls = %d", calls)
	}
	if !m.IsOpen() {
		t.Error("failed selection should leave the dropdown open")
	}
}

func TestUpdate_KeyFlow(t *testing.T) {
	var last string
	m := New([]option.Option{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}}, func(id string) { last = id })
	m.Mount()
	m.Focus()

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsOpen() {
		t.Fatal("enter should open the dropdown")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if last != "b" || m.IsOpen() {
		t.Errorf("last = %q open = %v, want b and closed", last, m.IsOpen())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsOpen() {
		t.Error("esc should close the dropdown")
	}
}

func TestToggleAndView(t *testing.T) {
	m := New(nil, nil)
	m.Mount()

	closed := m.View()
	if !strings.Contains(closed, "Sort: Featured") || strings.Contains(closed, "Newest") {
		t.Errorf("closed view = %q", closed)
	}

	m.Toggle()
	if !strings.Contains(m.View(), "Newest") {
		t.Error("open view should list options")
	}
	m.Toggle()
	if m.View() != closed {
		t.Error("toggling twice should restore the closed view")
	}
}
