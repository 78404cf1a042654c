package panel

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// ReviewItem renders one customer review. Its primary action marks the
// review helpful.
type ReviewItem struct {
	trigger
	id     string
	review catalog.Review
}

// NewReviewItem creates a review card. id identifies the review in the
// action payload.
func NewReviewItem(id string, review catalog.Review, onAction ActionHandler) *ReviewItem {
	review.Rating = max(0, min(review.Rating, 5))
	return &ReviewItem{trigger: trigger{handler: onAction}, id: id, review: review}
}

// Rating returns the clamped star rating.
func (r *ReviewItem) Rating() int { return r.review.Rating }

// Activate fires the mark-helpful action.
func (r *ReviewItem) Activate() {
	r.fire(Action{Component: "review", Name: ActionMarkHelpful, TargetID: r.id})
}

// Update triggers the primary action on enter.
func (r *ReviewItem) Update(msg tea.Msg) tea.Cmd {
	if isActivate(msg) {
		r.Activate()
	}
	return nil
}

// Render draws the review.
func (r *ReviewItem) Render(state *RenderState) string {
	if err := state.ValidateBasic(); err != nil {
		return "[review: render error]"
	}

	author := r.review.Author
	if author == "" {
		author = "Anonymous"
	}

	var b strings.Builder
	b.WriteString(styles.Stars(r.review.Rating))
	b.WriteString(" ")
	b.WriteString(styles.SectionHeader.Render(r.review.Title))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("%s %s", author, r.review.Date)))
	if r.review.Body != "" {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(r.review.Body))
	}

	style := styles.Card
	if state.Focused {
		style = styles.CardSelected
	}
	out := style.Width(state.ContentWidth()).Render(b.String())
	r.height = strings.Count(out, "\n") + 1
	return out
}
