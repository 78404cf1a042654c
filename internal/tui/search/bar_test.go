package search

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const testDelay = 20 * time.Millisecond

func TestNewBar_Defaults(t *testing.T) {
	b := NewBar(nil)
	if b.Delay() != DefaultBusyDelay {
		t.Errorf("Delay() = %v, want %v", b.Delay(), DefaultBusyDelay)
	}
	if DefaultBusyDelay != 500*time.Millisecond {
		t.Errorf("DefaultBusyDelay = %v", DefaultBusyDelay)
	}
	if b.IsBusy() {
		t.Error("new bar should not be busy")
	}

	b = NewBar(nil, WithDelay(-1), WithPlaceholder("Find"), WithInitialQuery("tee"))
	if b.Delay() != DefaultBusyDelay {
		t.Error("non-positive delay should keep the default")
	}
	if b.Value() != "tee" {
		t.Errorf("Value() = %q", b.Value())
	}

	if NewBar(nil).id == NewBar(nil).id {
		t.Error("bars should get distinct ids")
	}
}

func TestSubmit_CallbackAndBusy(t *testing.T) {
	var queries []string
	b := NewBar(func(q string) { queries = append(queries, q) }, WithDelay(testDelay))
	b.Init()
	b.SetValue("  red shoes ")

	start := time.Now()
	cmd := b.Submit()
	if !b.IsBusy() {
		t.Fatal("bar should be busy immediately after submit")
	}
	if len(queries) != 1 || queries[0] != "  red shoes " {
		t.Fatalf("queries = %q, want the exact input text once", queries)
	}
	if cmd == nil {
		t.Fatal("Submit should return a timer command")
	}

	msg := cmd()
	if elapsed := time.Since(start); elapsed < testDelay {
		t.Errorf("busy cleared after %v, want at least %v", elapsed, testDelay)
	}
	if !b.IsBusy() {
		t.Error("busy should stay on until the expiry message is processed")
	}
	b.Update(msg)
	if b.IsBusy() {
		t.Error("busy should clear after the delay")
	}
}

func TestSubmit_RestartsDelay(t *testing.T) {
	calls := 0
	b := NewBar(func(string) { calls++ }, WithDelay(testDelay))

	first := b.Submit()
	second := b.Submit()
	if calls != 2 {
		t.Errorf("calls = %d, want one per submit", calls)
	}

	b.Update(first())
	if !b.IsBusy() {
		t.Error("a superseded timer must not clear busy")
	}
	b.Update(second())
	if b.IsBusy() {
		t.Error("the latest timer should clear busy")
	}
}

func TestUpdate_IgnoresOtherBars(t *testing.T) {
	a := NewBar(nil, WithDelay(testDelay))
	other := NewBar(nil, WithDelay(testDelay))

	a.Submit()
	msg := other.Submit()()
	a.Update(msg)
	if !a.IsBusy() {
		t.Error("expiry for another bar should be ignored")
	}
}

func TestDestroy_CancelsPendingTimer(t *testing.T) {
	calls := 0
	b := NewBar(func(string) { calls++ }, WithDelay(testDelay))
	cmd := b.Submit()
	b.Destroy()

	if msg := cmd(); msg != nil {
		t.Errorf("cancelled timer produced %#v, want nil", msg)
	}
	if !b.IsBusy() {
		t.Error("no state mutation is expected after destroy")
	}

	b.Update(BusyExpiredMsg{BarID: b.id, Generation: b.generation})
	if !b.IsBusy() {
		t.Error("late expiry after destroy must not mutate state")
	}
	if b.Submit() != nil || calls != 1 {
		t.Error("submit after destroy should be a no-op")
	}
}

func TestUpdate_Keys(t *testing.T) {
	var queries []string
	b := NewBar(func(q string) { queries = append(queries, q) }, WithDelay(testDelay))

	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ignored")})
	if b.Value() != "" {
		t.Error("unfocused bar should ignore typing")
	}

	b.Focus()
	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("tee")})
	if b.Value() != "tee" {
		t.Errorf("Value() = %q, want tee", b.Value())
	}
	if cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Error("enter should return the busy timer command")
	}
	if len(queries) != 1 || queries[0] != "tee" {
		t.Errorf("queries = %q", queries)
	}
}

func TestView_BusyIndicator(t *testing.T) {
	b := NewBar(nil, WithDelay(testDelay))
	if strings.Contains(b.View(), "searching") {
		t.Error("idle bar should not show the indicator")
	}
	cmd := b.Submit()
	if !strings.Contains(b.View(), "searching") {
		t.Error("busy bar should show the indicator")
	}
	b.Update(cmd())
	if strings.Contains(b.View(), "searching") {
		t.Error("indicator should disappear once cleared")
	}
}
