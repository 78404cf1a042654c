package tui

import (
	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/tui/panel"
)

// catalogReloadedMsg carries a freshly loaded catalog from the file watcher.
type catalogReloadedMsg struct {
	catalog *catalog.Catalog
}

// actionMsg delivers a component's primary action back to the model so
// navigation happens inside Update.
type actionMsg struct {
	action panel.Action
}

// openProductMsg asks the model to show a product's detail page.
type openProductMsg struct {
	productID string
}

// paymentResultMsg is the outcome of the external payment step.
type paymentResultMsg struct {
	packageID string
	orderID   string
	err       error
}
