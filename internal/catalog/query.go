package catalog

import (
	"cmp"
	"slices"

	"github.com/Iron-Ham/storefront/internal/option"
)

// Facet keys understood by Filters.Choices.
const (
	FacetBrand    = "brand"
	FacetCategory = "category"
)

// Sort ids understood by Apply. Any other id keeps catalog order.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
	SortRating    = "rating"
)

// Filters is a snapshot of the listing filter panel.
type Filters struct {
	// Choices maps a facet key to the chosen values. A missing or empty
	// entry does not restrict that facet.
	Choices map[string][]string
	// MinPrice and MaxPrice bound the price when MaxPrice > 0.
	MinPrice int
	MaxPrice int
}

// IsZero reports whether the filters restrict nothing.
func (f Filters) IsZero() bool {
	for _, ids := range f.Choices {
		if len(ids) > 0 {
			return false
		}
	}
	return f.MaxPrice == 0
}

// Match reports whether p passes every active filter.
func (f Filters) Match(p Product) bool {
	for key, ids := range f.Choices {
		if len(ids) == 0 {
			continue
		}
		v, ok := p.Facet(key)
		if ok && !slices.Contains(ids, v) {
			return false
		}
	}
	if f.MaxPrice > 0 && (p.Price < float64(f.MinPrice) || p.Price > float64(f.MaxPrice)) {
		return false
	}
	return true
}

// Apply returns the products matching f ordered by sortID. The input slice
// is not modified.
func Apply(products []Product, f Filters, sortID string) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}

	switch sortID {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortNewest:
		slices.SortStableFunc(out, func(a, b Product) int { return b.Added.Compare(a.Added) })
	case SortRating:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(b.Rating, a.Rating) })
	}
	return out
}

// Facets holds the filter choices derived from a product list.
type Facets struct {
	Brands     []option.Option
	Categories []option.Option
	MinPrice   float64
	MaxPrice   float64
}

// Facets derives brand and category choices in first-seen order, along
// with the observed price bounds.
func (c *Catalog) Facets() Facets {
	var f Facets
	var brands, categories []option.Option
	for i, p := range c.Products {
		if p.Brand != "" {
			brands = append(brands, option.Option{ID: p.Brand, Label: p.Brand})
		}
		if p.Category != "" {
			categories = append(categories, option.Option{ID: p.Category, Label: p.Category})
		}
		if i == 0 || p.Price < f.MinPrice {
			f.MinPrice = p.Price
		}
		if p.Price > f.MaxPrice {
			f.MaxPrice = p.Price
		}
	}
	f.Brands = option.Dedupe(brands)
	f.Categories = option.Dedupe(categories)
	return f
}
