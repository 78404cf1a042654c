package tui

import (
	"fmt"
	"math"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/config"
	"github.com/Iron-Ham/storefront/internal/tui/filter"
	"github.com/Iron-Ham/storefront/internal/tui/panel"
	"github.com/Iron-Ham/storefront/internal/tui/search"
	"github.com/Iron-Ham/storefront/internal/tui/sortmenu"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// FilterPanelWidth is the fixed width of the listing filter sidebar.
const FilterPanelWidth = 30

type listingFocus int

const (
	focusProducts listingFocus = iota
	focusFilters
	focusSort
	focusHero
	focusSearch
)

// listingFocusOrder is the cycle for the focus key. The search bar is
// reached with its own key.
var listingFocusOrder = []listingFocus{focusProducts, focusFilters, focusSort, focusHero}

// listingPage is the product listing: hero banner, search bar, filter
// sidebar, sort dropdown, and the filtered product list.
type listingPage struct {
	hub      *hub
	products []catalog.Product

	hero    *panel.Hero
	search  *search.Bar
	filters *filter.Panel
	sort    *sortmenu.Model

	matcher *search.Matcher
	results []catalog.Product
	cursor  int
	focus   listingFocus
}

func newListingPage(c *catalog.Catalog, cfg *config.Config, images *panel.ImageResolver, h *hub) *listingPage {
	p := &listingPage{
		hub:      h,
		products: c.Products,
		matcher:  search.Compile(cfg.Search.InitialQuery),
	}
	p.hero = panel.NewHero(c.Hero, images.Resolve(c.Hero.Image, c.Hero.Title), h.action)
	p.search = search.NewBar(p.onSearch,
		search.WithDelay(cfg.Search.BusyDelay()),
		search.WithPlaceholder(cfg.Search.Placeholder),
		search.WithInitialQuery(cfg.Search.InitialQuery),
	)
	p.filters = newFilterPanel(c, &cfg.Filters, p.onFilters)
	p.sort = sortmenu.New(c.SortOptions, p.onSort)
	p.refresh()
	p.applyFocus()
	return p
}

// newFilterPanel derives brand and category sections from the catalog.
func newFilterPanel(c *catalog.Catalog, cfg *config.FiltersConfig, onChange func(catalog.Filters)) *filter.Panel {
	facets := c.Facets()
	open := func(key string) bool { return slices.Contains(cfg.OpenSections, key) }

	sections := []*filter.Section{
		filter.NewSection(catalog.FacetCategory, "Category", facets.Categories, open(catalog.FacetCategory)),
		filter.NewSection(catalog.FacetBrand, "Brand", facets.Brands, open(catalog.FacetBrand)),
	}
	price := filter.NewPriceRange(cfg.PriceMin, cfg.PriceMax, cfg.PriceStep)
	return filter.NewPanel(sections, price, onChange)
}

// init mounts the components that have on-create behavior.
func (p *listingPage) init() tea.Cmd {
	return tea.Batch(p.search.Init(), p.sort.Init())
}

// destroy tears down every component so pending timers are dropped.
func (p *listingPage) destroy() {
	p.search.Destroy()
	p.sort.Destroy()
}

func (p *listingPage) onSearch(query string) {
	p.matcher = search.Compile(query)
	p.hub.searched(query)
	p.refresh()
}

func (p *listingPage) onFilters(f catalog.Filters) {
	p.hub.filtered(f)
	p.refresh()
}

func (p *listingPage) onSort(id string) {
	p.hub.sorted(id)
	p.refresh()
}

// refresh recomputes the visible products from filters, sort, and query.
func (p *listingPage) refresh() {
	sortID := ""
	if p.sort != nil {
		sortID = p.sort.Selected()
	}
	var filters catalog.Filters
	if p.filters != nil {
		filters = p.filters.Filters()
	}

	var results []catalog.Product
	for _, prod := range catalog.Apply(p.products, filters, sortID) {
		if p.matcher.Match(prod.Name, prod.Brand, prod.Category, prod.Description) {
			results = append(results, prod)
		}
	}
	p.results = results
	p.cursor = max(0, min(p.cursor, len(p.results)-1))
}

// Results returns the products currently listed.
func (p *listingPage) Results() []catalog.Product { return p.results }

// current returns the product under the cursor.
func (p *listingPage) current() (catalog.Product, bool) {
	if p.cursor < 0 || p.cursor >= len(p.results) {
		return catalog.Product{}, false
	}
	return p.results[p.cursor], true
}

func (p *listingPage) cycleFocus() {
	i := slices.Index(listingFocusOrder, p.focus)
	p.focus = listingFocusOrder[(i+1)%len(listingFocusOrder)]
	p.applyFocus()
}

func (p *listingPage) setFocus(f listingFocus) {
	p.focus = f
	p.applyFocus()
}

func (p *listingPage) applyFocus() {
	p.search.Blur()
	p.filters.Blur()
	p.sort.Blur()
	switch p.focus {
	case focusSearch:
		p.search.Focus()
	case focusFilters:
		p.filters.Focus()
	case focusSort:
		p.sort.Focus()
	}
}

// update routes a key to the focused component.
func (p *listingPage) update(msg tea.KeyMsg) tea.Cmd {
	switch p.focus {
	case focusSearch:
		return p.search.Update(msg)
	case focusFilters:
		return p.filters.Update(msg)
	case focusSort:
		return p.sort.Update(msg)
	case focusHero:
		return p.hero.Update(msg)
	}

	switch msg.String() {
	case "j", "down":
		if p.cursor < len(p.results)-1 {
			p.cursor++
		}
	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "enter":
		if prod, ok := p.current(); ok {
			p.hub.queue(openProductMsg{productID: prod.ID})
		}
	}
	return nil
}

func (p *listingPage) view(state *panel.RenderState) string {
	var b strings.Builder
	b.WriteString(p.hero.Render(state))
	b.WriteString("\n\n")
	b.WriteString(p.search.View())
	if !p.matcher.Valid() {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render("Invalid pattern: " + strings.TrimPrefix(p.matcher.Query(), "r:")))
	}
	b.WriteString("\n\n")

	sidebar := lipgloss.NewStyle().Width(FilterPanelWidth).Render(p.filters.View())
	main := p.sort.View() + "\n\n" + p.viewProducts()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main))
	return b.String()
}

func (p *listingPage) viewProducts() string {
	if len(p.results) == 0 {
		return styles.Muted.Render("No products match your filters")
	}

	highlight := func(s string) string { return styles.Warning.Render(s) }
	var lines []string
	for i, prod := range p.results {
		prefix := "  "
		if i == p.cursor && p.focus == focusProducts {
			prefix = styles.OptionCursor.Render("> ")
		}
		lines = append(lines, fmt.Sprintf("%s%s  %s  %s  %s",
			prefix,
			p.matcher.Highlight(prod.Name, highlight),
			styles.Muted.Render(prod.Brand),
			styles.Price.Render(fmt.Sprintf("$%.2f", prod.Price)),
			styles.Stars(int(math.Round(prod.Rating))),
		))
	}
	header := styles.Muted.Render(fmt.Sprintf("%d of %d products", len(p.results), len(p.products)))
	return header + "\n" + strings.Join(lines, "\n")
}
