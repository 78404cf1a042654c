package panel

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/errors"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// PackageGrid is the photography package booking widget. Its primary
// action selects the package under the cursor.
type PackageGrid struct {
	trigger
	packages []catalog.Package
	images   *ImageResolver
	cursor   int
	selected string
	columns  int
}

// NewPackageGrid creates a grid over pkgs. images may be nil.
func NewPackageGrid(pkgs []catalog.Package, images *ImageResolver, onAction ActionHandler) *PackageGrid {
	return &PackageGrid{
		trigger:  trigger{handler: onAction},
		packages: pkgs,
		images:   images,
		columns:  3,
	}
}

// Len returns the number of packages.
func (g *PackageGrid) Len() int { return len(g.packages) }

// Cursor returns the highlighted package index.
func (g *PackageGrid) Cursor() int { return g.cursor }

// Selected returns the last selected package id.
func (g *PackageGrid) Selected() (string, bool) {
	return g.selected, g.selected != ""
}

// SelectPackage selects id and fires the primary action.
func (g *PackageGrid) SelectPackage(id string) error {
	for i, p := range g.packages {
		if p.ID == id {
			g.cursor = i
			g.selected = id
			g.fire(Action{Component: "booking", Name: ActionSelectPackage, TargetID: id})
			return nil
		}
	}
	return errors.NewNotFoundError("package", id).WithCause(errors.ErrPackageNotFound)
}

// Activate selects the highlighted package. It does nothing when the
// grid is empty.
func (g *PackageGrid) Activate() {
	if len(g.packages) == 0 {
		return
	}
	_ = g.SelectPackage(g.packages[g.cursor].ID)
}

// Update moves the cursor and selects on enter.
func (g *PackageGrid) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(g.packages) == 0 {
		return nil
	}

	last := len(g.packages) - 1
	switch key.String() {
	case "left", "h":
		g.cursor = max(g.cursor-1, 0)
	case "right", "l":
		g.cursor = min(g.cursor+1, last)
	case "up", "k":
		if g.cursor-g.columns >= 0 {
			g.cursor -= g.columns
		}
	case "down", "j":
		if g.cursor+g.columns <= last {
			g.cursor += g.columns
		}
	case "enter":
		g.Activate()
	}
	return nil
}

// Render draws the packages in rows of up to three cards.
func (g *PackageGrid) Render(state *RenderState) string {
	if err := state.ValidateBasic(); err != nil {
		return "[booking: render error]"
	}

	if len(g.packages) == 0 {
		out := styles.Muted.Render("No packages available")
		g.height = 1
		return out
	}

	g.columns = max(1, min(3, state.Width/26))
	cardWidth := max(state.Width/g.columns-4, 18)

	var rows []string
	for start := 0; start < len(g.packages); start += g.columns {
		end := min(start+g.columns, len(g.packages))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, g.renderCard(i, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	out := lipgloss.JoinVertical(lipgloss.Left, rows...)
	g.height = lipgloss.Height(out)
	return out
}

func (g *PackageGrid) renderCard(i, width int) string {
	p := g.packages[i]

	var b strings.Builder
	if g.images != nil {
		b.WriteString(g.images.Resolve(p.Image, p.Name).Render())
		b.WriteString("\n")
	}
	b.WriteString(styles.SectionHeader.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(styles.Price.Render(fmt.Sprintf("$%.0f", p.Price)))
	if p.Duration != "" {
		b.WriteString(styles.Muted.Render(" · " + p.Duration))
	}
	for _, f := range p.Features {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render("• " + f))
	}
	if p.ID == g.selected {
		b.WriteString("\n")
		b.WriteString(styles.SuccessMsg.Render("✓ Selected"))
	}

	style := styles.Card
	if i == g.cursor {
		style = styles.CardSelected
	}
	return style.Width(width).Render(b.String())
}
