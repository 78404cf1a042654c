package selector

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/errors"
	"github.com/Iron-Ham/storefront/internal/option"
)

type call struct {
	id   string
	auto bool
}

type recorder struct {
	calls []call
}

func (r *recorder) onSelect(id string, auto bool) {
	r.calls = append(r.calls, call{id, auto})
}

func sizes(ids ...string) []option.Option {
	return option.FromIDs(ids...)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_DedupesBeforeRender(t *testing.T) {
	rec := &recorder{}
	m := New(KindSize, sizes("S", "M", "S"), rec.onSelect)

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	got := option.IDs(m.Options())
	if strings.Join(got, ",") != "S,M" {
		t.Errorf("Options() = %v, want [S M]", got)
	}

	m.Mount()
	if len(rec.calls) != 1 || rec.calls[0] != (call{"S", true}) {
		t.Errorf("calls = %+v, want one auto call with S", rec.calls)
	}
	if id, ok := m.Selected(); !ok || id != "S" {
		t.Errorf("Selected() = %q, %v", id, ok)
	}
}

func TestMount_GuaranteedOnce(t *testing.T) {
	rec := &recorder{}
	m := New(KindColor, sizes("red", "blue"), rec.onSelect)

	m.Init()
	m.Mount()
	m.Mount()

	if len(rec.calls) != 1 {
		t.Errorf("expected exactly one auto-select call, got %d", len(rec.calls))
	}
}

func TestMount_EmptyList(t *testing.T) {
	rec := &recorder{}
	m := New(KindColor, nil, rec.onSelect)
	m.Mount()

	if len(rec.calls) != 0 {
		t.Errorf("empty selector should not report, got %+v", rec.calls)
	}
	if _, ok := m.Selected(); ok {
		t.Error("empty selector should have no selection")
	}
	if !strings.Contains(m.View(), "No colors available") {
		t.Errorf("View() = %q, want empty-state text", m.View())
	}
}

func TestWithEmptyText(t *testing.T) {
	m := New(KindGeneric, nil, nil, WithEmptyText("Nothing to sort"))
	if !strings.Contains(m.View(), "Nothing to sort") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestWithDefault(t *testing.T) {
	tests := []struct {
		name      string
		def       string
		wantID    string
		wantCalls int
	}{
		{"known default skips auto-select", "M", "M", 0},
		{"unknown default falls back to first", "XXL", "S", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			m := New(KindSize, sizes("S", "M", "L"), rec.onSelect, WithDefault(tt.def))
			m.Mount()

			if id, _ := m.Selected(); id != tt.wantID {
				t.Errorf("Selected() = %q, want %q", id, tt.wantID)
			}
			if len(rec.calls) != tt.wantCalls {
				t.Errorf("calls = %d, want %d", len(rec.calls), tt.wantCalls)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	rec := &recorder{}
	m := New(KindSize, sizes("S", "M", "L"), rec.onSelect)
	m.Mount()

	if err := m.Select("L"); err != nil {
		t.Fatalf("Select(L) error = %v", err)
	}
	if id, _ := m.Selected(); id != "L" {
		t.Errorf("Selected() = %q, want L", id)
	}
	if m.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", m.Cursor())
	}
	if last := rec.calls[len(rec.calls)-1]; last != (call{"L", false}) {
		t.Errorf("last call = %+v", last)
	}
}

func TestSelect_UnknownID(t *testing.T) {
	rec := &recorder{}
	m := New(KindSize, sizes("S", "M"), rec.onSelect)
	m.Mount()
	before := len(rec.calls)

	err := m.Select("XL")
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	if !errors.Is(err, errors.ErrOptionNotFound) {
		t.Errorf("error %v should match ErrOptionNotFound", err)
	}
	var nf *errors.NotFoundError
	if !errors.As(err, &nf) || nf.ResourceType != "size" || nf.ResourceID != "XL" {
		t.Errorf("expected NotFoundError for size XL, got %v", err)
	}
	if len(rec.calls) != before {
		t.Error("callback must not fire for an unknown id")
	}
	if id, _ := m.Selected(); id != "S" {
		t.Errorf("selection changed to %q", id)
	}
}

func TestDestroy_StopsSelection(t *testing.T) {
	rec := &recorder{}
	m := New(KindColor, sizes("red", "blue"), rec.onSelect)
	m.Destroy()
	m.Mount()

	if len(rec.calls) != 0 {
		t.Error("mount after destroy must not auto-select")
	}
	if err := m.Select("blue"); !errors.Is(err, errors.ErrClosed) {
		t.Errorf("Select after Destroy = %v, want ErrClosed", err)
	}
	if len(rec.calls) != 0 {
		t.Error("no callback after destroy")
	}
}

func TestUpdate_KeyNavigation(t *testing.T) {
	rec := &recorder{}
	m := New(KindSize, sizes("S", "M", "L"), rec.onSelect)
	m.Mount()

	m.Update(key("right"))
	m.Update(key("enter"))
	if id, _ := m.Selected(); id != "S" {
		t.Errorf("unfocused selector should ignore keys, selected %q", id)
	}

	m.Focus()
	m.Update(key("right"))
	m.Update(key("l"))
	m.Update(key("l"))
	if m.Cursor() != 2 {
		t.Errorf("cursor should clamp at last option, got %d", m.Cursor())
	}
	m.Update(key("h"))
	m.Update(key(" "))
	if id, _ := m.Selected(); id != "M" {
		t.Errorf("Selected() = %q, want M", id)
	}

	m.Update(key("left"))
	m.Update(key("left"))
	if m.Cursor() != 0 {
		t.Errorf("cursor should clamp at 0, got %d", m.Cursor())
	}
}

func TestView(t *testing.T) {
	colors := []option.Option{
		{ID: "black", Label: "Black", Hex: "#111827"},
		{ID: "white", Label: "White", Hex: "#f9fafb"},
	}
	m := New(KindColor, colors, nil, WithLabel("Color"))
	m.Mount()

	view := m.View()
	for _, want := range []string{"Color", ": Black", "White"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	list := New(KindGeneric, sizes("a", "b"), nil)
	list.Mount()
	if lines := strings.Split(list.View(), "\n"); len(lines) != 2 {
		t.Errorf("generic list should render one option per line, got %d", len(lines))
	}
}

func TestKind_String(t *testing.T) {
	for k, want := range map[Kind]string{KindGeneric: "option", KindColor: "color", KindSize: "size"} {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}
