// Package panel provides the storefront's static display components: hero
// banner, review item, payment result screen, photography package grid,
// and the help overlay. Each component renders from a data record and
// wires exactly one primary action.
package panel

import (
	"github.com/Iron-Ham/storefront/internal/errors"
)

// Common errors returned by RenderState validation.
var (
	ErrInvalidWidth  = errors.New("width must be positive")
	ErrInvalidHeight = errors.New("height must be positive")
)

// PanelRenderer defines the interface for rendering display panels.
type PanelRenderer interface {
	// Render produces the visual output for this panel given the current state.
	Render(state *RenderState) string

	// Height returns the rendered height of the panel in terminal rows
	// as of the last Render call.
	Height() int
}

// HelpSection represents a section of help content with keybindings.
type HelpSection struct {
	// Title is the section name (e.g., "Navigation", "Listing").
	Title string
	// Items contains the keybindings in this section.
	Items []HelpItem
}

// HelpItem represents a single keybinding in the help panel.
type HelpItem struct {
	// Key is the keybinding (e.g., "j/k", "Enter").
	Key string
	// Description explains what the keybinding does.
	Description string
}

// RenderState holds the layout state needed for rendering a panel.
type RenderState struct {
	// Width is the available width in terminal columns.
	Width int

	// Height is the available height in terminal rows.
	Height int

	// Focused indicates whether this panel currently has focus.
	Focused bool

	// ScrollOffset is the current scroll position for scrollable panels.
	ScrollOffset int

	// HelpSections overrides the help panel content when non-empty.
	HelpSections []HelpSection
}

// ValidateBasic checks the dimensions.
func (rs *RenderState) ValidateBasic() error {
	if rs.Width <= 0 {
		return ErrInvalidWidth
	}
	if rs.Height <= 0 {
		return ErrInvalidHeight
	}
	return nil
}

// ContentWidth returns the width left inside a bordered, padded card.
func (rs *RenderState) ContentWidth() int {
	return max(rs.Width-4, 10)
}

// DefaultRenderState creates a RenderState with common terminal dimensions.
func DefaultRenderState() *RenderState {
	return NewRenderState(80, 24)
}

// NewRenderState creates a RenderState with the given dimensions.
func NewRenderState(width, height int) *RenderState {
	return &RenderState{Width: width, Height: height}
}
