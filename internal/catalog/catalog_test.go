package catalog

import (
	"slices"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/Iron-Ham/storefront/internal/errors"
	"github.com/Iron-Ham/storefront/internal/option"
)

const sampleYAML = `
hero:
  title: Sale
  cta: Shop now
sort:
  - id: featured
  - value: rating
    label: Top Rated
  - id: featured
    label: Featured picks
products:
  - id: p1
    name: Shirt
    brand: Acme
    category: Tops
    price: 300
    rating: 4
    added: 2024-01-01
    sizes:
      - size: S
      - size: M
      - size: S
        label: Small
    colors:
      - name: red
        color: "#F00"
      - label: ""
  - id: p2
    name: Shoe
    brand: Globex
    category: Shoes
    price: 600
    rating: 5
    added: 2024-06-01
  - id: p3
    name: Hat
    brand: Acme
    category: Tops
    price: 120
    rating: 3
    added: 2023-06-01
packages:
  - id: basic
    name: Basic
    price: 250
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if c.Hero.Title != "Sale" || c.Hero.CTA != "Shop now" {
		t.Errorf("Hero = %+v", c.Hero)
	}
	if len(c.Products) != 3 {
		t.Fatalf("len(Products) = %d, want 3", len(c.Products))
	}

	shirt := c.Products[0]
	if got := option.IDs(shirt.Sizes); !slices.Equal(got, []string{"S", "M"}) {
		t.Errorf("sizes = %v, want [S M]", got)
	}
	if shirt.Sizes[0].Label != "Small" {
		t.Errorf("duplicate size should keep last fields, label = %q", shirt.Sizes[0].Label)
	}
	if len(shirt.Colors) != 1 || shirt.Colors[0].Hex != "#ff0000" {
		t.Errorf("colors = %+v", shirt.Colors)
	}

	if got := option.IDs(c.SortOptions); !slices.Equal(got, []string{"featured", "rating"}) {
		t.Errorf("sort ids = %v", got)
	}
	if c.SortOptions[0].Label != "Featured picks" {
		t.Errorf("sort label = %q", c.SortOptions[0].Label)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{"malformed", "products: [", "failed to parse catalog"},
		{"missing id", "products:\n  - name: X\n", "product id is required"},
		{"missing name", "products:\n  - id: a\n", "product name is required"},
		{"duplicate product", "products:\n  - {id: a, name: A}\n  - {id: a, name: B}\n", "duplicate product id"},
		{"negative price", "products:\n  - {id: a, name: A, price: -1}\n", "price must not be negative"},
		{"rating out of range", "products:\n  - {id: a, name: A, rating: 7}\n", "rating must be between 0 and 5"},
		{"duplicate package", "packages:\n  - {id: a}\n  - {id: a}\n", "duplicate package id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCatalogInvalid) {
				t.Errorf("error should match ErrCatalogInvalid: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoadFS(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/data/catalog.yaml", []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFS(fs, "/data/catalog.yaml")
	if err != nil {
		t.Fatalf("LoadFS() error = %v", err)
	}
	if len(c.Products) != 3 {
		t.Errorf("len(Products) = %d", len(c.Products))
	}

	_, err = LoadFS(fs, "/data/missing.yaml")
	if !errors.Is(err, errors.ErrCatalogNotFound) {
		t.Errorf("missing file error = %v, want ErrCatalogNotFound", err)
	}

	if err := afero.WriteFile(fs, "/data/bad.yaml", []byte("products: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFS(fs, "/data/bad.yaml")
	var catalogErr *errors.CatalogError
	if !errors.As(err, &catalogErr) || catalogErr.Path != "/data/bad.yaml" {
		t.Errorf("parse error should carry the path, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	if p, err := c.Product("p2"); err != nil || p.Name != "Shoe" {
		t.Errorf("Product(p2) = %+v, %v", p, err)
	}
	if _, err := c.Product("nope"); !errors.Is(err, &errors.NotFoundError{}) {
		t.Errorf("Product(nope) error = %v", err)
	}
	if _, err := c.Package("gold"); !errors.Is(err, errors.ErrPackageNotFound) {
		t.Errorf("Package(gold) error = %v", err)
	}
}

func TestDemo(t *testing.T) {
	c := Demo()
	if len(c.Products) == 0 || len(c.Packages) == 0 || len(c.SortOptions) != 5 {
		t.Fatalf("demo catalog incomplete: %d products, %d packages, %d sorts",
			len(c.Products), len(c.Packages), len(c.SortOptions))
	}

	tee, err := c.Product("tee-classic")
	if err != nil {
		t.Fatal(err)
	}
	if got := option.IDs(tee.Sizes); !slices.Equal(got, []string{"S", "M", "L"}) {
		t.Errorf("demo tee sizes = %v", got)
	}
	if tee.Sizes[1].Label != "Medium" {
		t.Errorf("demo tee M label = %q, want Medium", tee.Sizes[1].Label)
	}
	if tee.Colors[2].Hex != "#bb4455" {
		t.Errorf("short hex not expanded: %q", tee.Colors[2].Hex)
	}
}

func TestParse_AbsentVersusEmptyOptions(t *testing.T) {
	c, err := Parse([]byte(`
products:
  - id: a
    name: Absent
  - id: b
    name: Empty
    sizes: []
    colors:
      - label: ""
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if c.Products[0].Sizes != nil || c.Products[0].Colors != nil {
		t.Error("absent option lists should stay nil")
	}
	if c.Products[1].Sizes == nil || len(c.Products[1].Sizes) != 0 {
		t.Errorf("empty sizes = %#v, want empty non-nil", c.Products[1].Sizes)
	}
	if c.Products[1].Colors == nil || len(c.Products[1].Colors) != 0 {
		t.Errorf("colors without identity = %#v, want empty non-nil", c.Products[1].Colors)
	}
}
