// Package catalog loads the storefront data file: products with their
// color and size options, sort orders, photography packages, and the hero
// banner. Option lists are normalized and deduplicated on load so every
// component downstream sees canonical option records.
package catalog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/storefront/internal/errors"
	"github.com/Iron-Ham/storefront/internal/option"
)

// Catalog is a normalized storefront data set.
type Catalog struct {
	Hero        Hero
	Products    []Product
	SortOptions []option.Option
	Packages    []Package
}

// Hero is the listing page banner.
type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
	Image    string `yaml:"image"`
}

// Product is a single listing entry.
type Product struct {
	ID          string
	Name        string
	Brand       string
	Category    string
	Description string
	Price       float64
	Rating      float64
	Added       time.Time
	Colors      []option.Option
	Sizes       []option.Option
	Images      []string
	Reviews     []Review
}

// Facet returns the product attribute used by the named filter facet.
func (p Product) Facet(key string) (string, bool) {
	switch key {
	case FacetBrand:
		return p.Brand, true
	case FacetCategory:
		return p.Category, true
	default:
		return "", false
	}
}

// Review is a customer review attached to a product.
type Review struct {
	Author string `yaml:"author"`
	Rating int    `yaml:"rating"`
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Date   string `yaml:"date"`
}

// Package is a photography booking package.
type Package struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
	Duration    string   `yaml:"duration"`
	Features    []string `yaml:"features"`
	Image       string   `yaml:"image"`
}

// file mirrors the on-disk YAML layout.
type file struct {
	Hero     Hero               `yaml:"hero"`
	Products []rawProduct       `yaml:"products"`
	Sort     []option.RawOption `yaml:"sort"`
	Packages []Package          `yaml:"packages"`
}

type rawProduct struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Brand       string             `yaml:"brand"`
	Category    string             `yaml:"category"`
	Description string             `yaml:"description"`
	Price       float64            `yaml:"price"`
	Rating      float64            `yaml:"rating"`
	Added       time.Time          `yaml:"added"`
	Colors      []option.RawOption `yaml:"colors"`
	Sizes       []option.RawOption `yaml:"sizes"`
	Images      []string           `yaml:"images"`
	Reviews     []Review           `yaml:"reviews"`
}

// Load reads and parses the catalog at path from the OS filesystem.
func Load(path string) (*Catalog, error) {
	return LoadFS(afero.NewOsFs(), path)
}

// LoadFS reads and parses the catalog at path from fs.
func LoadFS(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewCatalogError("cannot open catalog", errors.ErrCatalogNotFound).WithPath(path)
		}
		return nil, errors.NewCatalogError("cannot read catalog", err).WithPath(path)
	}

	c, err := Parse(data)
	if err != nil {
		var catalogErr *errors.CatalogError
		if errors.As(err, &catalogErr) {
			return nil, catalogErr.WithPath(path)
		}
		return nil, err
	}
	return c, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.NewCatalogError("failed to parse catalog", err)
	}
	if err := f.validate(); err != nil {
		return nil, errors.NewCatalogError("invalid catalog", err)
	}

	c := &Catalog{
		Hero:        f.Hero,
		SortOptions: option.Dedupe(option.NormalizeAll(f.Sort)),
		Packages:    f.Packages,
		Products:    make([]Product, 0, len(f.Products)),
	}
	for _, rp := range f.Products {
		c.Products = append(c.Products, Product{
			ID:          rp.ID,
			Name:        strings.TrimSpace(rp.Name),
			Brand:       strings.TrimSpace(rp.Brand),
			Category:    strings.TrimSpace(rp.Category),
			Description: strings.TrimSpace(rp.Description),
			Price:       rp.Price,
			Rating:      rp.Rating,
			Added:       rp.Added,
			Colors:      optionList(rp.Colors),
			Sizes:       optionList(rp.Sizes),
			Images:      rp.Images,
			Reviews:     rp.Reviews,
		})
	}
	return c, nil
}

// optionList normalizes a product option list. A list absent from the
// file stays nil so callers can substitute defaults; a list present but
// empty is returned as an empty non-nil slice.
func optionList(raws []option.RawOption) []option.Option {
	if raws == nil {
		return nil
	}
	opts := option.Dedupe(option.NormalizeAll(raws))
	if opts == nil {
		return []option.Option{}
	}
	return opts
}

func (f *file) validate() error {
	var errs []error

	seen := make(map[string]bool)
	for i, p := range f.Products {
		field := fmt.Sprintf("products[%d]", i)
		switch {
		case p.ID == "":
			errs = append(errs, errors.NewValidationError("product id is required").WithField(field+".id"))
		case seen[p.ID]:
			errs = append(errs, errors.NewValidationError("duplicate product id").WithField(field+".id").WithValue(p.ID))
		}
		seen[p.ID] = true

		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, errors.NewValidationError("product name is required").WithField(field+".name"))
		}
		if p.Price < 0 {
			errs = append(errs, errors.NewValidationError("price must not be negative").WithField(field+".price").WithValue(p.Price))
		}
		if p.Rating < 0 || p.Rating > 5 {
			errs = append(errs, errors.NewValidationError("rating must be between 0 and 5").WithField(field+".rating").WithValue(p.Rating))
		}
	}

	seenPkg := make(map[string]bool)
	for i, p := range f.Packages {
		field := fmt.Sprintf("packages[%d]", i)
		switch {
		case p.ID == "":
			errs = append(errs, errors.NewValidationError("package id is required").WithField(field+".id"))
		case seenPkg[p.ID]:
			errs = append(errs, errors.NewValidationError("duplicate package id").WithField(field+".id").WithValue(p.ID))
		}
		seenPkg[p.ID] = true

		if p.Price < 0 {
			errs = append(errs, errors.NewValidationError("price must not be negative").WithField(field+".price").WithValue(p.Price))
		}
	}

	return errors.Join(errs...)
}

// Product returns the product with the given id.
func (c *Catalog) Product(id string) (Product, error) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, errors.NewNotFoundError("product", id)
}

// Package returns the booking package with the given id.
func (c *Catalog) Package(id string) (Package, error) {
	for _, p := range c.Packages {
		if p.ID == id {
			return p, nil
		}
	}
	return Package{}, errors.NewNotFoundError("package", id).WithCause(errors.ErrPackageNotFound)
}
