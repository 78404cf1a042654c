package tui

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/tui/panel"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// PaymentFunc charges for a booking package and returns an order id. It
// stands in for the external checkout; the storefront only shows the
// outcome.
type PaymentFunc func(pkg catalog.Package) (orderID string, err error)

// paymentPage shows the outcome of the last checkout.
type paymentPage struct {
	pkg     catalog.Package
	result  *panel.PaymentResult
	pending bool
}

func (p *paymentPage) start(pkg catalog.Package) {
	p.pkg = pkg
	p.pending = true
	p.result = nil
}

func (p *paymentPage) finish(msg paymentResultMsg, onAction panel.ActionHandler) {
	p.pending = false
	if msg.err != nil {
		p.result = panel.NewPaymentFailure(msg.err.Error(), onAction)
		return
	}
	p.result = panel.NewPaymentSuccess(msg.orderID, onAction)
}

func (p *paymentPage) view(state *panel.RenderState) string {
	switch {
	case p.pending:
		return styles.Muted.Render(fmt.Sprintf("Processing payment for %s…", p.pkg.Name))
	case p.result == nil:
		return styles.Muted.Render("No checkout in progress. Pick a package under Book a Session.")
	}

	var b strings.Builder
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s  $%.0f", p.pkg.Name, p.pkg.Price)))
	b.WriteString("\n\n")
	b.WriteString(p.result.Render(state))
	return b.String()
}

func bookingView(grid *panel.PackageGrid, state *panel.RenderState) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Book a photography session"))
	b.WriteString("\n\n")
	b.WriteString(grid.Render(state))
	return b.String()
}
