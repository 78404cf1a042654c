package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/storefront/internal/config"
	"github.com/Iron-Ham/storefront/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or create storefront configuration",
	Long: `View or create storefront configuration.

Without arguments, displays the current configuration.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/storefront/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if errors.Is(err, errors.ErrInvalidInput) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	out := cmd.OutOrStdout()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "# Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "# Config file: (none - using defaults)")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// defaultConfigContent is written by config init.
const defaultConfigContent = `# Storefront Configuration

# Search bar
search:
  # How long the "searching" indicator stays on after a submit
  busy_delay_ms: 500
  placeholder: "Search products..."
  initial_query: ""

# Listing filters
filters:
  price_min: 250
  price_max: 650
  # How far one key press moves a price handle
  price_step: 25
  # Filter sections that start expanded: category, brand
  open_sections:
    - category

# Fallback options for products that list none
selector:
  # "id" or "id:#rrggbb"
  default_colors:
    - "black:#111827"
    - "white:#f9fafb"
  default_sizes: [S, M, L]

# Product data
catalog:
  # Empty uses the built-in demo catalog
  path: ""
  watch: false
  reload_debounce_ms: 200

# Image fallbacks
images:
  # Directory image paths are resolved against (default: catalog directory)
  root: ""
  placeholder: placeholder.png
  placeholder_alt: Image unavailable

# Debug logging
logging:
  enabled: true
  # Options: debug, info, warn, error
  level: info
  # Default: ~/.config/storefront/logs
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/storefront/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: STOREFRONT_* (e.g., STOREFRONT_SEARCH_BUSY_DELAY_MS)")

	return nil
}
