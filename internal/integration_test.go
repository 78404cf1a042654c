// Package internal contains integration tests that verify the storefront
// packages work together: components report through callbacks, the event
// bus fans those reports out, and the logger records them.
package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/drawer"
	"github.com/Iron-Ham/storefront/internal/event"
	"github.com/Iron-Ham/storefront/internal/logging"
	"github.com/Iron-Ham/storefront/internal/option"
	"github.com/Iron-Ham/storefront/internal/tui/selector"
)

func loggedEventTypes(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()

	var types []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		if typ, ok := entry["event_type"].(string); ok {
			types = append(types, typ)
		}
	}
	return types
}

// TestDrawerEventsAreLogged wires a drawer store through the bus into the
// logger the way the browse command does.
func TestDrawerEventsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, logging.LevelDebug)
	bus := event.NewBus(logger)
	bus.LogAll(logger)

	ctx := drawer.WithStore(context.Background(), drawer.NewStore(logger))
	store := drawer.FromContext(ctx)
	unsubscribe := store.Subscribe(func(open bool) {
		bus.Publish(event.NewDrawerChangedEvent(open))
	})
	defer unsubscribe()

	store.Toggle()
	store.Set(true) // no change, no event
	store.Toggle()

	got := loggedEventTypes(t, &buf)
	if len(got) != 2 {
		t.Fatalf("expected 2 logged drawer events, got %v", got)
	}
	for _, typ := range got {
		if typ != event.TypeDrawerChanged {
			t.Errorf("unexpected event type %q", typ)
		}
	}
}

// TestCatalogSelectorsReportOnce mounts a selector per demo product and
// checks each non-empty option list reports exactly one auto selection.
func TestCatalogSelectorsReportOnce(t *testing.T) {
	bus := event.NewBus(logging.NopLogger())

	var selections []event.SelectionChangedEvent
	bus.Subscribe(event.TypeSelectionChanged, func(e event.Event) {
		selections = append(selections, e.(event.SelectionChangedEvent))
	})

	c := catalog.Demo()
	want := 0
	for _, p := range c.Products {
		if len(p.Sizes) > 0 {
			want++
		}
		s := selector.New(selector.KindSize, p.Sizes, func(id string, auto bool) {
			bus.Publish(event.NewSelectionChangedEvent("size", id, auto))
		})
		s.Mount()
		s.Mount()
		s.Destroy()
	}

	if len(selections) != want {
		t.Fatalf("expected %d selections, got %d", want, len(selections))
	}
	for _, sel := range selections {
		if !sel.Auto {
			t.Errorf("selection %q should be automatic", sel.OptionID)
		}
	}
}

// TestWatcherFeedsListing reloads a catalog from disk and runs the new
// products through the listing query.
func TestWatcherFeedsListing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	write := func(content string) {
		tmp := path + ".tmp"
		if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.Rename(tmp, path); err != nil {
			t.Fatal(err)
		}
	}

	write("products:\n  - id: a\n    name: A\n    price: 300\n")

	w, err := catalog.NewWatcher(path, 20*time.Millisecond, logging.NopLogger())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	reloaded := make(chan *catalog.Catalog, 4)
	w.OnReload(func(c *catalog.Catalog) {
		select {
		case reloaded <- c:
		default:
		}
	})
	w.Start()

	write(`products:
  - id: a
    name: A
    brand: Acme
    price: 300
  - id: b
    name: B
    brand: Globex
    price: 500
`)

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-reloaded:
			if len(c.Products) != 2 {
				continue
			}
			f := catalog.Filters{Choices: map[string][]string{catalog.FacetBrand: {"Globex"}}}
			got := catalog.Apply(c.Products, f, catalog.SortPriceDesc)
			if len(got) != 1 || got[0].ID != "b" {
				t.Errorf("Apply() = %v, want only b", got)
			}
			if ids := option.IDs(c.Facets().Brands); strings.Join(ids, ",") != "Acme,Globex" {
				t.Errorf("brand facets = %v", ids)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for catalog reload")
		}
	}
}
