// Package filter provides the product listing filter panel.
//
// The panel is an ordered list of collapsible [Section] values, each a
// multi-choice list such as brands or categories, followed by a
// [PriceRange]. Every actual change is reported through a single callback
// carrying a [catalog.Filters] snapshot, which the listing page passes to
// [catalog.Apply].
//
// # Usage
//
//	p := filter.NewPanel(
//	    []*filter.Section{
//	        filter.NewSection("brand", "Brand", facets.Brands, false),
//	        filter.NewSection("category", "Category", facets.Categories, true),
//	    },
//	    filter.NewPriceRange(250, 650, 25),
//	    func(f catalog.Filters) { listing.Refresh(f) },
//	)
//
// # Keyboard Input
//
// Up/down move between section headers, visible choices, and the two price
// handles. Enter or space toggles a section or a choice; left/right move a
// price handle by one step; c clears everything.
//
// Choices are rendered only while their section is open.
package filter
