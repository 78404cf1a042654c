package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete storefront configuration
type Config struct {
	Search   SearchConfig   `mapstructure:"search" yaml:"search"`
	Filters  FiltersConfig  `mapstructure:"filters" yaml:"filters"`
	Selector SelectorConfig `mapstructure:"selector" yaml:"selector"`
	Catalog  CatalogConfig  `mapstructure:"catalog" yaml:"catalog"`
	Images   ImagesConfig   `mapstructure:"images" yaml:"images"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// SearchConfig controls the search bar
type SearchConfig struct {
	// BusyDelayMs is how long the "searching" indicator stays on after a submit (default: 500)
	BusyDelayMs int `mapstructure:"busy_delay_ms" yaml:"busy_delay_ms"`
	// Placeholder is shown when the input is empty
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
	// InitialQuery pre-fills the input
	InitialQuery string `mapstructure:"initial_query" yaml:"initial_query"`
}

// FiltersConfig controls the product listing filter panel
type FiltersConfig struct {
	// PriceMin is the lower bound of the price range filter (default: 250)
	PriceMin int `mapstructure:"price_min" yaml:"price_min"`
	// PriceMax is the upper bound of the price range filter (default: 650)
	PriceMax int `mapstructure:"price_max" yaml:"price_max"`
	// PriceStep is how far one key press moves a price handle (default: 25)
	PriceStep int `mapstructure:"price_step" yaml:"price_step"`
	// OpenSections lists filter section ids that start expanded
	OpenSections []string `mapstructure:"open_sections" yaml:"open_sections"`
}

// SelectorConfig supplies fallback options for product detail selectors
type SelectorConfig struct {
	// DefaultColors are used when a product lists no colors.
	// Entries are "id" or "id:#rrggbb".
	DefaultColors []string `mapstructure:"default_colors" yaml:"default_colors"`
	// DefaultSizes are used when a product lists no sizes
	DefaultSizes []string `mapstructure:"default_sizes" yaml:"default_sizes"`
}

// CatalogConfig controls where product data comes from
type CatalogConfig struct {
	// Path is the catalog YAML file. Empty uses the built-in demo catalog.
	Path string `mapstructure:"path" yaml:"path"`
	// Watch reloads the catalog when the file changes (default: false)
	Watch bool `mapstructure:"watch" yaml:"watch"`
	// ReloadDebounceMs coalesces bursts of file events (default: 200)
	ReloadDebounceMs int `mapstructure:"reload_debounce_ms" yaml:"reload_debounce_ms"`
}

// ImagesConfig controls image fallbacks
type ImagesConfig struct {
	// Root is the directory image sources are resolved against
	Root string `mapstructure:"root" yaml:"root"`
	// Placeholder is substituted when an image cannot be loaded
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
	// PlaceholderAlt is the alt text used with the placeholder
	PlaceholderAlt string `mapstructure:"placeholder_alt" yaml:"placeholder_alt"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory for storefront.log. Empty uses the config directory.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			BusyDelayMs:  500,
			Placeholder:  "Search products...",
			InitialQuery: "",
		},
		Filters: FiltersConfig{
			PriceMin:     250,
			PriceMax:     650,
			PriceStep:    25,
			OpenSections: []string{"category"},
		},
		Selector: SelectorConfig{
			DefaultColors: []string{"black:#111827", "white:#f9fafb"},
			DefaultSizes:  []string{"S", "M", "L"},
		},
		Catalog: CatalogConfig{
			Path:             "", // Empty means use the built-in demo catalog
			Watch:            false,
			ReloadDebounceMs: 200,
		},
		Images: ImagesConfig{
			Root:           "",
			Placeholder:    "placeholder.png",
			PlaceholderAlt: "Image unavailable",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// BusyDelay returns the search busy indicator duration
func (c *SearchConfig) BusyDelay() time.Duration {
	return time.Duration(c.BusyDelayMs) * time.Millisecond
}

// ReloadDebounce returns the catalog reload debounce as a time.Duration
func (c *CatalogConfig) ReloadDebounce() time.Duration {
	return time.Duration(c.ReloadDebounceMs) * time.Millisecond
}

// ResolveDir returns the log directory, defaulting to {ConfigDir}/logs.
func (c *LoggingConfig) ResolveDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return filepath.Join(ConfigDir(), "logs")
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Search defaults
	viper.SetDefault("search.busy_delay_ms", defaults.Search.BusyDelayMs)
	viper.SetDefault("search.placeholder", defaults.Search.Placeholder)
	viper.SetDefault("search.initial_query", defaults.Search.InitialQuery)

	// Filter defaults
	viper.SetDefault("filters.price_min", defaults.Filters.PriceMin)
	viper.SetDefault("filters.price_max", defaults.Filters.PriceMax)
	viper.SetDefault("filters.price_step", defaults.Filters.PriceStep)
	viper.SetDefault("filters.open_sections", defaults.Filters.OpenSections)

	// Selector defaults
	viper.SetDefault("selector.default_colors", defaults.Selector.DefaultColors)
	viper.SetDefault("selector.default_sizes", defaults.Selector.DefaultSizes)

	// Catalog defaults
	viper.SetDefault("catalog.path", defaults.Catalog.Path)
	viper.SetDefault("catalog.watch", defaults.Catalog.Watch)
	viper.SetDefault("catalog.reload_debounce_ms", defaults.Catalog.ReloadDebounceMs)

	// Image defaults
	viper.SetDefault("images.root", defaults.Images.Root)
	viper.SetDefault("images.placeholder", defaults.Images.Placeholder)
	viper.SetDefault("images.placeholder_alt", defaults.Images.PlaceholderAlt)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "storefront")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront"
	}
	return filepath.Join(home, ".config", "storefront")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
