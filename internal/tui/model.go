package tui

import (
	"cmp"
	"fmt"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/config"
	"github.com/Iron-Ham/storefront/internal/drawer"
	"github.com/Iron-Ham/storefront/internal/errors"
	"github.com/Iron-Ham/storefront/internal/event"
	"github.com/Iron-Ham/storefront/internal/logging"
	"github.com/Iron-Ham/storefront/internal/tui/keymap"
	"github.com/Iron-Ham/storefront/internal/tui/panel"
	"github.com/Iron-Ham/storefront/internal/tui/search"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// Options are the collaborators injected into the storefront model.
type Options struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	// CatalogPath is reported in reload events. Empty for the demo catalog.
	CatalogPath string
	Drawer      *drawer.Store
	Bus         *event.Bus
	Logger      *logging.Logger
	Images      *panel.ImageResolver
	Pay         PaymentFunc
	// Width and Height seed the layout until the first resize message.
	Width  int
	Height int
}

// Model holds the storefront UI state. Components are pointers, so the
// value copies Bubble Tea passes around share them.
type Model struct {
	cfg         *config.Config
	catalog     *catalog.Catalog
	catalogPath string
	drawer      *drawer.Store
	images      *panel.ImageResolver
	pay         PaymentFunc
	logger      *logging.Logger
	hub         *hub
	keymap      *keymap.Keymap
	unsubscribe func()

	// UI state
	page         Page
	mode         keymap.Mode
	width        int
	height       int
	helpScroll   int
	drawerCursor int
	status       string
	quitting     bool

	listing *listingPage
	product *productPage // nil until a product is opened
	booking *panel.PackageGrid
	payment *paymentPage
	help    *panel.HelpPanel
}

// NewModel creates the storefront model. Missing collaborators get
// working defaults: the demo catalog, a fresh drawer store, a discarding
// logger, a payment step that always succeeds, and an image resolver
// that shows the placeholder for every image.
func NewModel(opts Options) Model {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Demo()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	if opts.Drawer == nil {
		opts.Drawer = drawer.NewStore(opts.Logger)
	}
	if opts.Pay == nil {
		opts.Pay = ApprovePayments()
	}
	if opts.Images == nil {
		opts.Images = panel.NewImageResolver(nil, opts.Config.Images.Placeholder, opts.Config.Images.PlaceholderAlt)
	}

	h := newHub(opts.Bus, opts.Logger.WithComponent("tui"))
	m := Model{
		cfg:         opts.Config,
		catalog:     opts.Catalog,
		catalogPath: opts.CatalogPath,
		drawer:      opts.Drawer,
		images:      opts.Images,
		pay:         opts.Pay,
		logger:      opts.Logger.WithComponent("tui"),
		hub:         h,
		keymap:      keymap.DefaultKeymap(),
		page:        PageListing,
		mode:        keymap.ModeBrowse,
		width:       cmp.Or(opts.Width, panel.DefaultRenderState().Width),
		height:      cmp.Or(opts.Height, panel.DefaultRenderState().Height),
		payment:     &paymentPage{},
		help:        panel.NewHelpPanel(),
	}
	m.unsubscribe = m.drawer.Subscribe(func(open bool) {
		h.publish(event.NewDrawerChangedEvent(open))
	})
	m.listing = newListingPage(m.catalog, m.cfg, m.images, h)
	m.booking = panel.NewPackageGrid(m.catalog.Packages, m.images, h.action)
	return m
}

// ApprovePayments returns a PaymentFunc that accepts every package and
// numbers orders sequentially.
func ApprovePayments() PaymentFunc {
	var n atomic.Int64
	return func(catalog.Package) (string, error) {
		return fmt.Sprintf("SF-%04d", n.Add(1)), nil
	}
}

// DeclinePayments returns a PaymentFunc that rejects every package with
// message.
func DeclinePayments(message string) PaymentFunc {
	return func(catalog.Package) (string, error) {
		return "", errors.New(message)
	}
}

// Init mounts the listing page.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listing.init(), m.hub.flush())
}

// Close tears down every page and detaches from the drawer store.
func (m Model) Close() {
	m.listing.destroy()
	if m.product != nil {
		m.product.destroy()
	}
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Page returns the visible page.
func (m Model) Page() Page { return m.page }

// Mode returns the active input mode.
func (m Model) Mode() keymap.Mode { return m.mode }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var model tea.Model
		model, cmd = m.handleKeypress(msg)
		m = model.(Model)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case search.BusyExpiredMsg:
		cmd = m.listing.search.Update(msg)

	case openProductMsg:
		m = m.openProduct(msg.productID)

	case actionMsg:
		m, cmd = m.handleAction(msg.action)

	case paymentResultMsg:
		if msg.packageID == m.payment.pkg.ID {
			m.payment.finish(msg, m.hub.action)
			if msg.err != nil {
				m.logger.Warn("payment failed", "package", msg.packageID, "error", msg.err)
			} else {
				m.logger.Info("payment succeeded", "package", msg.packageID, "order", msg.orderID)
			}
		}

	case catalogReloadedMsg:
		m, cmd = m.reload(msg.catalog)

	default:
		// Cursor blink and other component-internal messages.
		if m.listing.search.Focused() {
			cmd = m.listing.search.Update(msg)
		}
	}

	if m.quitting {
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.hub.flush())
}

// handleKeypress routes a key by mode: overlay and global bindings first,
// then the drawer, then the focused component of the current page.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case keymap.ModeHelp:
		return m.handleHelpMode(msg)
	case keymap.ModeSearch:
		return m.handleSearchMode(msg)
	}

	if command, ok := m.keymap.GetBinding(msg, keymap.ModeBrowse); ok {
		return m.runCommand(command)
	}

	if m.drawer.Get() {
		if next, ok := m.handleDrawerKey(msg); ok {
			return next, nil
		}
	}

	m.status = ""
	switch m.page {
	case PageListing:
		return m, m.listing.update(msg)
	case PageProduct:
		if m.product != nil {
			return m, m.product.update(msg)
		}
	case PageBooking:
		return m, m.booking.Update(msg)
	case PagePayment:
		if m.payment.result != nil && !m.payment.pending {
			return m, m.payment.result.Update(msg)
		}
	}
	return m, nil
}

func (m Model) runCommand(command keymap.Command) (tea.Model, tea.Cmd) {
	switch command {
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	case keymap.CmdNextPage:
		i := pageIndex(m.page)
		m = m.navigate(pageOrder[(i+1)%len(pageOrder)])
	case keymap.CmdPrevPage:
		i := pageIndex(m.page)
		m = m.navigate(pageOrder[(i+len(pageOrder)-1)%len(pageOrder)])
	case keymap.CmdToggleDrawer:
		m.drawerCursor = pageIndex(m.page)
		m.drawer.Toggle()
	case keymap.CmdCycleFocus:
		switch m.page {
		case PageListing:
			m.listing.cycleFocus()
		case PageProduct:
			if m.product != nil {
				m.product.cycleFocus()
			}
		}
	case keymap.CmdFocusSearch:
		m = m.navigate(PageListing)
		m.listing.setFocus(focusSearch)
		m.mode = keymap.ModeSearch
	case keymap.CmdToggleHelp:
		m.mode = keymap.ModeHelp
		m.helpScroll = 0
	}
	return m, nil
}

func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if command, ok := m.keymap.GetBinding(msg, keymap.ModeSearch); ok {
		switch command {
		case keymap.CmdQuit:
			m.quitting = true
			return m, tea.Quit
		case keymap.CmdExitSearch:
			m = m.leaveSearch()
			return m, nil
		}
	}

	cmd := m.listing.update(msg)
	if msg.Type == tea.KeyEnter {
		m = m.leaveSearch()
	}
	return m, cmd
}

func (m Model) leaveSearch() Model {
	m.mode = keymap.ModeBrowse
	m.listing.setFocus(focusProducts)
	return m
}

func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	command, ok := m.keymap.GetBinding(msg, keymap.ModeHelp)
	if !ok {
		return m, nil
	}
	switch command {
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	case keymap.CmdCloseHelp:
		m.mode = keymap.ModeBrowse
	case keymap.CmdScrollDown:
		m.helpScroll++
	case keymap.CmdScrollUp:
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
	return m, nil
}

// navigate switches pages. Leaving the listing drops any open dropdown.
func (m Model) navigate(p Page) Model {
	if m.page == p {
		return m
	}
	if m.page == PageListing {
		m.listing.sort.Close()
	}
	m.logger.WithPage(p.String()).Debug("page changed", "from", m.page.String())
	m.page = p
	return m
}

// openProduct replaces the product page. The previous page is destroyed
// so its selectors stop reporting.
func (m Model) openProduct(id string) Model {
	prod, err := m.catalog.Product(id)
	if err != nil {
		m.status = err.Error()
		m.logFailure("open product failed", err)
		return m
	}
	m = m.replaceProduct(prod, productChoices{})
	return m.navigate(PageProduct)
}

// replaceProduct destroys the current product page, if any, and mounts a
// new one for prod without changing the visible page.
func (m Model) replaceProduct(prod catalog.Product, keep productChoices) Model {
	if m.product != nil {
		m.product.destroy()
	}
	m.product = newProductPage(prod, &m.cfg.Selector, m.images, m.hub, keep)
	m.product.mount()
	return m
}

func (m Model) handleAction(a panel.Action) (Model, tea.Cmd) {
	m.logger.Info("primary action", "component", a.Component, "action", a.Name, "target", a.TargetID)

	switch a.Name {
	case panel.ActionShopNow:
		m.listing.setFocus(focusProducts)
		m = m.navigate(PageListing)
	case panel.ActionMarkHelpful:
		m.status = "Thanks for your feedback"
	case panel.ActionSelectPackage:
		pkg, err := m.catalog.Package(a.TargetID)
		if err != nil {
			m.status = err.Error()
			m.logFailure("select package failed", err)
			return m, nil
		}
		m.payment.start(pkg)
		m = m.navigate(PagePayment)
		return m, m.charge(pkg)
	case panel.ActionRetry:
		if m.payment.pkg.ID == "" {
			return m, nil
		}
		m.payment.start(m.payment.pkg)
		return m, m.charge(m.payment.pkg)
	case panel.ActionOrderHistory:
		m.status = fmt.Sprintf("Order %s saved to your order history", a.TargetID)
		m = m.navigate(PageListing)
	}
	return m, nil
}

// logFailure logs err at the level matching its severity.
func (m Model) logFailure(msg string, err error) {
	switch errors.GetSeverity(err) {
	case errors.SeverityError:
		m.logger.Error(msg, "error", err)
	case errors.SeverityWarning:
		m.logger.Warn(msg, "error", err)
	default:
		m.logger.Info(msg, "error", err)
	}
}

// charge runs the payment step off the UI loop.
func (m Model) charge(pkg catalog.Package) tea.Cmd {
	pay := m.pay
	return func() tea.Msg {
		orderID, err := pay(pkg)
		return paymentResultMsg{packageID: pkg.ID, orderID: orderID, err: err}
	}
}

// reload swaps in a new catalog. The search query and sort order carry
// over; filters reset because their choices derive from the old data.
func (m Model) reload(c *catalog.Catalog) (Model, tea.Cmd) {
	old := m.listing
	m.catalog = c

	m.listing = newListingPage(c, m.cfg, m.images, m.hub)
	m.listing.search.SetValue(old.search.Value())
	m.listing.matcher = old.matcher
	if id := old.sort.Selected(); id != "" {
		_ = m.listing.sort.Select(id)
	}
	m.listing.setFocus(old.focus)
	old.destroy()
	m.listing.refresh()

	m.booking = panel.NewPackageGrid(c.Packages, m.images, m.hub.action)

	if m.product != nil {
		keep := m.product.choices()
		if prod, err := c.Product(m.product.product.ID); err == nil {
			m = m.replaceProduct(prod, keep)
		} else {
			m.product.destroy()
			m.product = nil
			if m.page == PageProduct {
				m.status = "This product is no longer available"
				m = m.navigate(PageListing)
			}
		}
	}

	m.hub.publish(event.NewCatalogReloadedEvent(m.catalogPath, len(c.Products)))
	return m, m.listing.init()
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := panel.NewRenderState(m.width, m.height)

	var body string
	if m.mode == keymap.ModeHelp {
		state.ScrollOffset = m.helpScroll
		body = m.help.Render(state)
	} else {
		contentWidth := m.width
		if m.drawer.Get() {
			contentWidth = max(m.width-DrawerWidth-2, 20)
		}
		body = m.renderPage(panel.NewRenderState(contentWidth, m.height))
		if m.drawer.Get() {
			body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderDrawer(), "  ", body)
		}
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(styles.SuccessMsg.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderPage(state *panel.RenderState) string {
	switch m.page {
	case PageListing:
		return m.listing.view(state)
	case PageProduct:
		if m.product == nil {
			return styles.Muted.Render("Choose a product from the Shop page.")
		}
		return m.product.view(state)
	case PageBooking:
		return bookingView(m.booking, state)
	case PagePayment:
		return m.payment.view(state)
	}
	return ""
}

func (m Model) renderHeader() string {
	tabs := make([]string, len(pageOrder))
	for i, p := range pageOrder {
		if p == m.page {
			tabs[i] = styles.TabActive.Render(p.Title())
		} else {
			tabs[i] = styles.TabInactive.Render(p.Title())
		}
	}
	title := styles.Header.Render("Storefront")
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", strings.Join(tabs, " "))
}

func (m Model) renderHelpBar() string {
	var parts []string
	for _, kb := range m.keymap.GetModeBindings(m.mode) {
		if kb.KeyType == tea.KeyCtrlC {
			continue
		}
		parts = append(parts, styles.HelpKey.Render(kb.String())+" "+kb.Description)
	}
	return styles.HelpBar.Render(strings.Join(parts, "  "))
}
