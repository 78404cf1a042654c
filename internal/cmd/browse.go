package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/config"
	"github.com/Iron-Ham/storefront/internal/drawer"
	"github.com/Iron-Ham/storefront/internal/errors"
	"github.com/Iron-Ham/storefront/internal/event"
	"github.com/Iron-Ham/storefront/internal/logging"
	"github.com/Iron-Ham/storefront/internal/tui"
	"github.com/Iron-Ham/storefront/internal/tui/panel"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the storefront",
	Long: `Open the interactive storefront.

Without --catalog the built-in demo catalog is shown. With --watch the
catalog file is reloaded whenever it changes on disk.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().String("catalog", "", "catalog YAML file (default: built-in demo)")
	browseCmd.Flags().Bool("watch", false, "reload the catalog when the file changes")
	browseCmd.Flags().String("decline-payments", "", "make every checkout fail with this message")
	_ = viper.BindPFlag("catalog.path", browseCmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("catalog.watch", browseCmd.Flags().Lookup("watch"))
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if errors.Is(err, errors.ErrInvalidInput) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	bus := event.NewBus(logger)
	bus.LogAll(logger.WithComponent("events"))

	ctx := drawer.WithStore(cmd.Context(), drawer.NewStore(logger.WithComponent("drawer")))

	opts := tui.Options{
		Config:      cfg,
		CatalogPath: cfg.Catalog.Path,
		Drawer:      drawer.FromContext(ctx),
		Bus:         bus,
		Logger:      logger,
		Images:      newImageResolver(cfg),
	}
	if msg, _ := cmd.Flags().GetString("decline-payments"); msg != "" {
		opts.Pay = tui.DeclinePayments(msg)
	}

	// Seed the layout with the real terminal size
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		opts.Width, opts.Height = w, h
	}

	var watcher *catalog.Watcher
	switch {
	case cfg.Catalog.Path == "":
		opts.Catalog = catalog.Demo()
	case cfg.Catalog.Watch:
		watcher, err = catalog.NewWatcher(cfg.Catalog.Path, cfg.Catalog.ReloadDebounce(), logger)
		if err != nil {
			return err
		}
		defer func() { _ = watcher.Close() }()
	default:
		opts.Catalog, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return err
		}
	}

	logger.Info("storefront started", "catalog", cfg.Catalog.Path, "watch", watcher != nil)
	app := tui.New(opts, watcher)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// newLogger opens the storefront log file. Logging never goes to stderr
// while the TUI owns the terminal.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// newImageResolver resolves image sources relative to images.root, or to
// the catalog's directory when unset.
func newImageResolver(cfg *config.Config) *panel.ImageResolver {
	root := cfg.Images.Root
	if root == "" && cfg.Catalog.Path != "" {
		root = filepath.Dir(cfg.Catalog.Path)
	}
	if root == "" {
		root = "."
	}
	fs := afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), root))
	return panel.NewImageResolver(fs, cfg.Images.Placeholder, cfg.Images.PlaceholderAlt)
}
