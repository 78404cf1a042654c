package panel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// Hero is the listing page banner. Its primary action is "shop now".
type Hero struct {
	trigger
	data  catalog.Hero
	image Image
}

// NewHero creates a banner for data with an already resolved image.
func NewHero(data catalog.Hero, image Image, onAction ActionHandler) *Hero {
	if data.CTA == "" {
		data.CTA = "Shop now"
	}
	return &Hero{trigger: trigger{handler: onAction}, data: data, image: image}
}

// Activate fires the shop-now action.
func (h *Hero) Activate() {
	h.fire(Action{Component: "hero", Name: ActionShopNow})
}

// Update triggers the primary action on enter.
func (h *Hero) Update(msg tea.Msg) tea.Cmd {
	if isActivate(msg) {
		h.Activate()
	}
	return nil
}

// Render draws the banner.
func (h *Hero) Render(state *RenderState) string {
	if err := state.ValidateBasic(); err != nil {
		return "[hero: render error]"
	}

	var b strings.Builder
	b.WriteString(h.image.Render())
	b.WriteString("\n")
	b.WriteString(styles.Title.Render(h.data.Title))
	if h.data.Subtitle != "" {
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render(h.data.Subtitle))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Button.Render(h.data.CTA))

	out := styles.Card.Width(state.ContentWidth()).Render(b.String())
	h.height = strings.Count(out, "\n") + 1
	return out
}
