package panel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// PaymentStatus is the outcome reported by the external payment flow.
type PaymentStatus int

const (
	PaymentSucceeded PaymentStatus = iota
	PaymentFailed
)

// DefaultFailureMessage is shown when a failure carries no message.
const DefaultFailureMessage = "Your payment could not be processed."

// PaymentResult is the post-checkout screen. On success the primary
// action opens order history; on failure it retries. The component
// displays the outcome but never decides it.
type PaymentResult struct {
	trigger
	status  PaymentStatus
	orderID string
	message string
}

// NewPaymentSuccess creates a success screen for orderID.
func NewPaymentSuccess(orderID string, onAction ActionHandler) *PaymentResult {
	return &PaymentResult{trigger: trigger{handler: onAction}, status: PaymentSucceeded, orderID: orderID}
}

// NewPaymentFailure creates a failure screen with message.
func NewPaymentFailure(message string, onAction ActionHandler) *PaymentResult {
	if strings.TrimSpace(message) == "" {
		message = DefaultFailureMessage
	}
	return &PaymentResult{trigger: trigger{handler: onAction}, status: PaymentFailed, message: message}
}

// Status returns the displayed outcome.
func (p *PaymentResult) Status() PaymentStatus { return p.status }

// ActionName returns the primary action for the current status.
func (p *PaymentResult) ActionName() string {
	if p.status == PaymentFailed {
		return ActionRetry
	}
	return ActionOrderHistory
}

// Activate fires the primary action.
func (p *PaymentResult) Activate() {
	p.fire(Action{Component: "payment", Name: p.ActionName(), TargetID: p.orderID})
}

// Update triggers the primary action on enter.
func (p *PaymentResult) Update(msg tea.Msg) tea.Cmd {
	if isActivate(msg) {
		p.Activate()
	}
	return nil
}

// Render draws the result screen.
func (p *PaymentResult) Render(state *RenderState) string {
	if err := state.ValidateBasic(); err != nil {
		return "[payment: render error]"
	}

	var b strings.Builder
	if p.status == PaymentFailed {
		b.WriteString(styles.ErrorMsg.Render("✗ Payment failed"))
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(p.message))
		b.WriteString("\n\n")
		b.WriteString(styles.Button.Render("Retry"))
	} else {
		b.WriteString(styles.SuccessMsg.Render("✓ Payment successful"))
		b.WriteString("\n")
		if p.orderID != "" {
			b.WriteString(styles.Text.Render("Order #" + p.orderID))
			b.WriteString("\n")
		}
		b.WriteString(styles.Muted.Render("A confirmation has been sent to your email."))
		b.WriteString("\n\n")
		b.WriteString(styles.Button.Render("Go to order history"))
	}

	out := styles.Card.Width(state.ContentWidth()).Render(b.String())
	p.height = strings.Count(out, "\n") + 1
	return out
}
