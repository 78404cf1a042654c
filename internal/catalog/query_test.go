package catalog

import (
	"slices"
	"testing"
)

func productIDs(ps []Product) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

func TestApply(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		filters Filters
		sort    string
		want    []string
	}{
		{"no filters keeps order", Filters{}, SortFeatured, []string{"p1", "p2", "p3"}},
		{"unknown sort keeps order", Filters{}, "random", []string{"p1", "p2", "p3"}},
		{"price ascending", Filters{}, SortPriceAsc, []string{"p3", "p1", "p2"}},
		{"price descending", Filters{}, SortPriceDesc, []string{"p2", "p1", "p3"}},
		{"newest", Filters{}, SortNewest, []string{"p2", "p1", "p3"}},
		{"rating", Filters{}, SortRating, []string{"p2", "p1", "p3"}},
		{
			"brand",
			Filters{Choices: map[string][]string{FacetBrand: {"Acme"}}},
			SortFeatured,
			[]string{"p1", "p3"},
		},
		{
			"brand and category",
			Filters{Choices: map[string][]string{FacetBrand: {"Acme", "Globex"}, FacetCategory: {"Shoes"}}},
			SortFeatured,
			[]string{"p2"},
		},
		{
			"unknown facet ignored",
			Filters{Choices: map[string][]string{"material": {"wool"}}},
			SortFeatured,
			[]string{"p1", "p2", "p3"},
		},
		{"price range", Filters{MinPrice: 250, MaxPrice: 650}, SortPriceAsc, []string{"p1", "p2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := productIDs(Apply(c.Products, tt.filters, tt.sort))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := productIDs(c.Products); !slices.Equal(got, []string{"p1", "p2", "p3"}) {
		t.Errorf("Apply mutated its input: %v", got)
	}
}

func TestFilters_IsZero(t *testing.T) {
	if !(Filters{}).IsZero() {
		t.Error("empty filters should be zero")
	}
	if !(Filters{Choices: map[string][]string{FacetBrand: nil}}).IsZero() {
		t.Error("empty choice lists should be zero")
	}
	if (Filters{MaxPrice: 400}).IsZero() {
		t.Error("price bound should not be zero")
	}
}

func TestFacets(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	f := c.Facets()

	var brands, categories []string
	for _, o := range f.Brands {
		brands = append(brands, o.ID)
	}
	for _, o := range f.Categories {
		categories = append(categories, o.ID)
	}
	if !slices.Equal(brands, []string{"Acme", "Globex"}) {
		t.Errorf("brands = %v", brands)
	}
	if !slices.Equal(categories, []string{"Tops", "Shoes"}) {
		t.Errorf("categories = %v", categories)
	}
	if f.MinPrice != 120 || f.MaxPrice != 600 {
		t.Errorf("price bounds = %v-%v", f.MinPrice, f.MaxPrice)
	}
}
