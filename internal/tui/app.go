package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/catalog"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	watcher *catalog.Watcher
}

// New creates a new TUI application. watcher may be nil; when set, catalog
// reloads are delivered to the running program. programOpts are appended
// to the defaults, which enable the alternate screen.
func New(opts Options, watcher *catalog.Watcher, programOpts ...tea.ProgramOption) *App {
	if watcher != nil && opts.Catalog == nil {
		opts.Catalog = watcher.Current()
	}
	if watcher != nil && opts.CatalogPath == "" {
		opts.CatalogPath = watcher.Path()
	}
	a := &App{
		model:   NewModel(opts),
		watcher: watcher,
	}
	a.program = tea.NewProgram(a.model, append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)...)
	return a
}

// Run starts the TUI application and tears down the final model when the
// program exits.
func (a *App) Run() error {
	// Quit cleanly on termination signals so components are torn down
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		a.program.Send(tea.Quit())
	}()

	if a.watcher != nil {
		a.watcher.OnReload(func(c *catalog.Catalog) {
			a.program.Send(catalogReloadedMsg{catalog: c})
		})
		a.watcher.Start()
	}

	final, err := a.program.Run()

	// Clean up signal handler
	signal.Stop(sigChan)

	// Pages opened or rebuilt at runtime only exist on the model the
	// program returns.
	if m, ok := final.(Model); ok {
		a.model = m
	}
	a.model.Close()

	return err
}
