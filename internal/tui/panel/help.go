package panel

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// HelpPanel renders the help overlay with keybindings and scrolling support.
type HelpPanel struct {
	height int
}

// NewHelpPanel creates a new HelpPanel.
func NewHelpPanel() *HelpPanel {
	return &HelpPanel{}
}

// Render produces the help panel output.
func (p *HelpPanel) Render(state *RenderState) string {
	if err := state.ValidateBasic(); err != nil {
		return "[help panel: render error]"
	}

	// Use provided sections or fall back to defaults
	sections := state.HelpSections
	if len(sections) == 0 {
		sections = DefaultHelpSections()
	}

	var lines []string

	// Title
	lines = append(lines, styles.Primary.Render("Storefront Help"))
	lines = append(lines, styles.Muted.Render("Use j/k to scroll, ? to close."))
	lines = append(lines, "")

	// Build sections
	for _, section := range sections {
		lines = append(lines, styles.Primary.Bold(true).Render("▸ "+section.Title))

		for _, item := range section.Items {
			lines = append(lines, fmt.Sprintf("    %s  %s",
				styles.Secondary.Render(item.Key), styles.Muted.Render(item.Description)))
		}
		lines = append(lines, "")
	}

	// Calculate visible lines based on available height
	maxLines := state.Height - 6 // Leave room for borders and scroll indicator
	if maxLines < 10 {
		maxLines = 10
	}

	// Clamp scroll to valid range
	maxScroll := len(lines) - maxLines
	if maxScroll < 0 {
		maxScroll = 0
	}
	scroll := state.ScrollOffset
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll < 0 {
		scroll = 0
	}

	// Slice visible lines
	endLine := scroll + maxLines
	if endLine > len(lines) {
		endLine = len(lines)
	}
	visibleLines := lines[scroll:endLine]

	// Build content
	var content string
	if maxScroll > 0 {
		// Add scroll indicator
		scrollInfo := styles.Muted.Render(fmt.Sprintf(" [%d/%d] ", scroll+1, maxScroll+1))
		if scroll > 0 {
			scrollInfo = styles.Warning.Render("▲ ") + scrollInfo
		}
		if scroll < maxScroll {
			scrollInfo += styles.Warning.Render(" ▼")
		}
		content = strings.Join(visibleLines, "\n") + "\n" + scrollInfo
	} else {
		content = strings.Join(visibleLines, "\n")
	}

	p.height = len(visibleLines) + 2 // +2 for scroll indicator line

	return content
}

// Height returns the rendered height of the panel.
func (p *HelpPanel) Height() int {
	return p.height
}

// DefaultHelpSections returns the storefront keybindings.
func DefaultHelpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Navigation",
			Items: []HelpItem{
				{Key: "Tab  Shift+Tab", Description: "Next / previous page"},
				{Key: "m", Description: "Toggle navigation drawer"},
				{Key: "f", Description: "Cycle focus between page components"},
				{Key: "j/↓  k/↑", Description: "Move down / up"},
				{Key: "h/←  l/→", Description: "Move left / right"},
				{Key: "Enter  Space", Description: "Activate, toggle, or select"},
			},
		},
		{
			Title: "Listing",
			Items: []HelpItem{
				{Key: "/", Description: "Focus the search bar"},
				{Key: "Enter", Description: "Submit search (while typing)"},
				{Key: "r:pattern", Description: "Use regex search"},
				{Key: "c", Description: "Clear filters (filter panel)"},
				{Key: "Esc", Description: "Close sort dropdown / leave search"},
			},
		},
		{
			Title: "Product",
			Items: []HelpItem{
				{Key: "h/l", Description: "Move between colors or sizes"},
				{Key: "Enter", Description: "Choose color / size, expand section"},
			},
		},
		{
			Title: "Session",
			Items: []HelpItem{
				{Key: "?", Description: "Toggle this help panel"},
				{Key: "q  Ctrl+C", Description: "Quit"},
			},
		},
	}
}
