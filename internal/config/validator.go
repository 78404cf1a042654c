package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/storefront/internal/errors"
	"github.com/Iron-Ham/storefront/internal/option"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "filters.price_min")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Is reports ErrInvalidInput so callers can tell a rejected configuration
// from one that could not be read.
func (e ValidationErrors) Is(target error) bool {
	return target == errors.ErrInvalidInput
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateSearch()...)
	errors = append(errors, c.validateFilters()...)
	errors = append(errors, c.validateSelector()...)
	errors = append(errors, c.validateCatalog()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateSearch() []ValidationError {
	var errors []ValidationError

	const maxBusyDelay = 10000
	if c.Search.BusyDelayMs < 0 || c.Search.BusyDelayMs > maxBusyDelay {
		errors = append(errors, ValidationError{
			Field:   "search.busy_delay_ms",
			Value:   c.Search.BusyDelayMs,
			Message: fmt.Sprintf("must be between 0 and %d", maxBusyDelay),
		})
	}

	return errors
}

func (c *Config) validateFilters() []ValidationError {
	var errors []ValidationError

	if c.Filters.PriceMin < 0 {
		errors = append(errors, ValidationError{
			Field:   "filters.price_min",
			Value:   c.Filters.PriceMin,
			Message: "must be non-negative",
		})
	}
	if c.Filters.PriceMax <= c.Filters.PriceMin {
		errors = append(errors, ValidationError{
			Field:   "filters.price_max",
			Value:   c.Filters.PriceMax,
			Message: fmt.Sprintf("must be greater than filters.price_min (%d)", c.Filters.PriceMin),
		})
	}
	if c.Filters.PriceStep <= 0 {
		errors = append(errors, ValidationError{
			Field:   "filters.price_step",
			Value:   c.Filters.PriceStep,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateSelector() []ValidationError {
	var errors []ValidationError

	for _, entry := range c.Selector.DefaultColors {
		id, hex, hasHex := strings.Cut(entry, ":")
		if strings.TrimSpace(id) == "" {
			errors = append(errors, ValidationError{
				Field:   "selector.default_colors",
				Value:   entry,
				Message: "color entry needs an id",
			})
			continue
		}
		if hasHex && option.NormalizeHex(hex) == "" {
			errors = append(errors, ValidationError{
				Field:   "selector.default_colors",
				Value:   entry,
				Message: "color must be a hex value like #1a2b3c",
			})
		}
	}

	for _, size := range c.Selector.DefaultSizes {
		if strings.TrimSpace(size) == "" {
			errors = append(errors, ValidationError{
				Field:   "selector.default_sizes",
				Value:   size,
				Message: "size must not be empty",
			})
		}
	}

	return errors
}

func (c *Config) validateCatalog() []ValidationError {
	var errors []ValidationError

	if c.Catalog.ReloadDebounceMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "catalog.reload_debounce_ms",
			Value:   c.Catalog.ReloadDebounceMs,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

// DefaultColorOptions parses Selector.DefaultColors ("id" or "id:#hex")
// into canonical options.
func (c *SelectorConfig) DefaultColorOptions() []option.Option {
	raws := make([]option.RawOption, 0, len(c.DefaultColors))
	for _, entry := range c.DefaultColors {
		id, hex, _ := strings.Cut(entry, ":")
		raws = append(raws, option.RawOption{ID: id, Label: titleCase(id), Hex: hex})
	}
	return option.Dedupe(option.NormalizeAll(raws))
}

// DefaultSizeOptions converts Selector.DefaultSizes into canonical options.
func (c *SelectorConfig) DefaultSizeOptions() []option.Option {
	return option.Dedupe(option.FromIDs(c.DefaultSizes...))
}

func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
