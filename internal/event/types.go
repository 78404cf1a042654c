// Package event defines event types for decoupling storefront components.
// Components report user intent through callbacks; the application turns
// those callbacks into events so pages, logging, and tests can observe them
// without depending on each other.
package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "selection.changed").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// Event type identifiers.
const (
	TypeSelectionChanged = "selection.changed"
	TypeSearchSubmitted  = "search.submitted"
	TypeFiltersChanged   = "filters.changed"
	TypeSortChanged      = "sort.changed"
	TypeDrawerChanged    = "drawer.changed"
	TypePrimaryAction    = "action.primary"
	TypeCatalogReloaded  = "catalog.reloaded"
)

// -----------------------------------------------------------------------------
// Selection Events
// -----------------------------------------------------------------------------

// SelectionChangedEvent is emitted when a selector reports a chosen option.
type SelectionChangedEvent struct {
	baseEvent
	Component string // "color", "size", ...
	OptionID  string
	Auto      bool // true when chosen by the on-create auto-select
}

// NewSelectionChangedEvent creates a SelectionChangedEvent.
func NewSelectionChangedEvent(component, optionID string, auto bool) SelectionChangedEvent {
	return SelectionChangedEvent{
		baseEvent: newBaseEvent(TypeSelectionChanged),
		Component: component,
		OptionID:  optionID,
		Auto:      auto,
	}
}

// SortChangedEvent is emitted when the listing sort order changes.
type SortChangedEvent struct {
	baseEvent
	SortID string
}

// NewSortChangedEvent creates a SortChangedEvent.
func NewSortChangedEvent(sortID string) SortChangedEvent {
	return SortChangedEvent{baseEvent: newBaseEvent(TypeSortChanged), SortID: sortID}
}

// -----------------------------------------------------------------------------
// Listing Events
// -----------------------------------------------------------------------------

// SearchSubmittedEvent is emitted for each search submit.
type SearchSubmittedEvent struct {
	baseEvent
	Query string
}

// NewSearchSubmittedEvent creates a SearchSubmittedEvent.
func NewSearchSubmittedEvent(query string) SearchSubmittedEvent {
	return SearchSubmittedEvent{baseEvent: newBaseEvent(TypeSearchSubmitted), Query: query}
}

// FiltersChangedEvent is emitted when the filter panel state changes.
type FiltersChangedEvent struct {
	baseEvent
	Choices  map[string][]string // section id -> chosen option ids
	PriceLow int
	PriceHi  int
}

// NewFiltersChangedEvent creates a FiltersChangedEvent.
func NewFiltersChangedEvent(choices map[string][]string, low, high int) FiltersChangedEvent {
	return FiltersChangedEvent{
		baseEvent: newBaseEvent(TypeFiltersChanged),
		Choices:   choices,
		PriceLow:  low,
		PriceHi:   high,
	}
}

// -----------------------------------------------------------------------------
// Shell Events
// -----------------------------------------------------------------------------

// DrawerChangedEvent is emitted when the navigation drawer opens or closes.
type DrawerChangedEvent struct {
	baseEvent
	Open bool
}

// NewDrawerChangedEvent creates a DrawerChangedEvent.
func NewDrawerChangedEvent(open bool) DrawerChangedEvent {
	return DrawerChangedEvent{baseEvent: newBaseEvent(TypeDrawerChanged), Open: open}
}

// PrimaryActionEvent is emitted when a display component's primary action
// fires ("retry", "select_package", "order_history", "shop_now").
type PrimaryActionEvent struct {
	baseEvent
	Component string
	Action    string
	TargetID  string
}

// NewPrimaryActionEvent creates a PrimaryActionEvent.
func NewPrimaryActionEvent(component, action, targetID string) PrimaryActionEvent {
	return PrimaryActionEvent{
		baseEvent: newBaseEvent(TypePrimaryAction),
		Component: component,
		Action:    action,
		TargetID:  targetID,
	}
}

// CatalogReloadedEvent is emitted after the catalog watcher swaps in new data.
type CatalogReloadedEvent struct {
	baseEvent
	Path     string
	Products int
}

// NewCatalogReloadedEvent creates a CatalogReloadedEvent.
func NewCatalogReloadedEvent(path string, products int) CatalogReloadedEvent {
	return CatalogReloadedEvent{
		baseEvent: newBaseEvent(TypeCatalogReloaded),
		Path:      path,
		Products:  products,
	}
}

// Fields returns log key-value pairs describing e.
func Fields(e Event) []any {
	switch ev := e.(type) {
	case SelectionChangedEvent:
		return []any{"component", ev.Component, "option_id", ev.OptionID, "auto", ev.Auto}
	case SortChangedEvent:
		return []any{"sort_id", ev.SortID}
	case SearchSubmittedEvent:
		return []any{"query", ev.Query}
	case FiltersChangedEvent:
		return []any{"choices", ev.Choices, "price_low", ev.PriceLow, "price_high", ev.PriceHi}
	case DrawerChangedEvent:
		return []any{"open", ev.Open}
	case PrimaryActionEvent:
		return []any{"component", ev.Component, "action", ev.Action, "target_id", ev.TargetID}
	case CatalogReloadedEvent:
		return []any{"path", ev.Path, "products", ev.Products}
	default:
		return nil
	}
}
