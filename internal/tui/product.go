package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/config"
	"github.com/Iron-Ham/storefront/internal/tui/disclosure"
	"github.com/Iron-Ham/storefront/internal/tui/panel"
	"github.com/Iron-Ham/storefront/internal/tui/selector"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

type productFocus int

const (
	focusColors productFocus = iota
	focusSizes
	focusDetails
	focusReviews
	productFocusCount
)

// productPage shows one product with its color and size selectors and a
// collapsible description, details, and reviews stack.
type productPage struct {
	product catalog.Product
	images  []panel.Image

	colors  *selector.Model
	sizes   *selector.Model
	details *disclosure.Accordion
	reviews []*panel.ReviewItem

	reviewCursor int
	focus        productFocus
	width        int
}

// productChoices is the part of a product page that survives a rebuild.
type productChoices struct {
	color string
	size  string
	focus productFocus
}

// newProductPage builds the detail page. Option lists the catalog leaves
// unspecified fall back to the configured defaults; an explicitly empty
// list renders the selector's empty state. Choices in keep that are still
// offered are preselected and do not report again on mount.
func newProductPage(prod catalog.Product, cfg *config.SelectorConfig, images *panel.ImageResolver, h *hub, keep productChoices) *productPage {
	p := &productPage{product: prod, width: panel.DefaultRenderState().Width, focus: keep.focus}

	colors := prod.Colors
	if colors == nil {
		colors = cfg.DefaultColorOptions()
	}
	sizes := prod.Sizes
	if sizes == nil {
		sizes = cfg.DefaultSizeOptions()
	}
	p.colors = selector.New(selector.KindColor, colors, h.selection("color"),
		selector.WithLabel("Color"), selector.WithDefault(keep.color))
	p.sizes = selector.New(selector.KindSize, sizes, h.selection("size"),
		selector.WithLabel("Size"), selector.WithDefault(keep.size))

	for i, src := range prod.Images {
		p.images = append(p.images, images.Resolve(src, fmt.Sprintf("%s image %d", prod.Name, i+1)))
	}
	for i, r := range prod.Reviews {
		p.reviews = append(p.reviews, panel.NewReviewItem(fmt.Sprintf("%s/%d", prod.ID, i), r, h.action))
	}

	p.details = disclosure.NewAccordion(false,
		disclosure.Section{Title: "Description", Open: true, Content: p.viewDescription},
		disclosure.Section{Title: "Details", Content: p.viewDetails},
		disclosure.Section{Title: fmt.Sprintf("Reviews (%d)", len(p.reviews)), Content: p.viewReviews},
	)
	p.applyFocus()
	return p
}

// mount runs the selectors' on-create auto-select.
func (p *productPage) mount() {
	p.colors.Mount()
	p.sizes.Mount()
}

// choices captures the current selections and focus.
func (p *productPage) choices() productChoices {
	color, _ := p.colors.Selected()
	size, _ := p.sizes.Selected()
	return productChoices{color: color, size: size, focus: p.focus}
}

func (p *productPage) destroy() {
	p.colors.Destroy()
	p.sizes.Destroy()
}

func (p *productPage) cycleFocus() {
	p.focus = (p.focus + 1) % productFocusCount
	p.applyFocus()
}

func (p *productPage) applyFocus() {
	p.colors.Blur()
	p.sizes.Blur()
	p.details.Blur()
	switch p.focus {
	case focusColors:
		p.colors.Focus()
	case focusSizes:
		p.sizes.Focus()
	case focusDetails:
		p.details.Focus()
	}
}

func (p *productPage) update(msg tea.KeyMsg) tea.Cmd {
	switch p.focus {
	case focusColors:
		return p.colors.Update(msg)
	case focusSizes:
		return p.sizes.Update(msg)
	case focusDetails:
		return p.details.Update(msg)
	}

	if len(p.reviews) == 0 {
		return nil
	}
	switch msg.String() {
	case "j", "down":
		p.reviewCursor = min(p.reviewCursor+1, len(p.reviews)-1)
	case "k", "up":
		p.reviewCursor = max(p.reviewCursor-1, 0)
	default:
		return p.reviews[p.reviewCursor].Update(msg)
	}
	return nil
}

func (p *productPage) viewDescription() string {
	return p.product.Description
}

func (p *productPage) viewDetails() string {
	var lines []string
	if p.product.Brand != "" {
		lines = append(lines, "Brand: "+p.product.Brand)
	}
	if p.product.Category != "" {
		lines = append(lines, "Category: "+p.product.Category)
	}
	if !p.product.Added.IsZero() {
		lines = append(lines, "Added: "+p.product.Added.Format("2006-01-02"))
	}
	return strings.Join(lines, "\n")
}

func (p *productPage) viewReviews() string {
	if len(p.reviews) == 0 {
		return styles.Muted.Render("No reviews yet")
	}
	parts := make([]string, len(p.reviews))
	for i, r := range p.reviews {
		state := panel.NewRenderState(max(p.width-4, 20), 1)
		state.Focused = p.focus == focusReviews && i == p.reviewCursor
		parts[i] = r.Render(state)
	}
	return strings.Join(parts, "\n")
}

func (p *productPage) view(state *panel.RenderState) string {
	p.width = state.Width

	var b strings.Builder
	b.WriteString(styles.Title.Render(p.product.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s",
		styles.Muted.Render(p.product.Brand),
		styles.Price.Render(fmt.Sprintf("$%.2f", p.product.Price)),
		styles.Stars(int(math.Round(p.product.Rating))),
	))
	b.WriteString("\n")
	for _, img := range p.images {
		b.WriteString(img.Render())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(p.colors.View())
	b.WriteString("\n\n")
	b.WriteString(p.sizes.View())
	b.WriteString("\n\n")
	b.WriteString(p.details.View())
	return b.String()
}
