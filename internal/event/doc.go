// Package event provides a pub-sub event bus for storefront components.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub event dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Event Categories
//
//   - [SelectionChangedEvent], [SortChangedEvent]: selector and sort dropdown choices
//   - [SearchSubmittedEvent], [FiltersChangedEvent]: product listing input
//   - [DrawerChangedEvent]: navigation drawer open/closed
//   - [PrimaryActionEvent]: the single primary action of a display component
//   - [CatalogReloadedEvent]: catalog file hot reload
//
// # Usage
//
//	bus := event.NewBus(logger)
//	bus.Subscribe(event.TypeSearchSubmitted, func(e event.Event) {
//	    q := e.(event.SearchSubmittedEvent).Query
//	    ...
//	})
//	bus.Publish(event.NewSearchSubmittedEvent("tripod"))
//
// Handlers run synchronously on the publishing goroutine.
package event
