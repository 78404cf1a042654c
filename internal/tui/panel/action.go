package panel

import tea "github.com/charmbracelet/bubbletea"

// Primary action names.
const (
	ActionShopNow       = "shop-now"
	ActionMarkHelpful   = "mark-helpful"
	ActionOrderHistory  = "order-history"
	ActionRetry         = "retry"
	ActionSelectPackage = "select-package"
)

// Action describes a triggered primary action.
type Action struct {
	Component string
	Name      string
	TargetID  string
}

// ActionHandler receives primary actions.
type ActionHandler func(Action)

// trigger is embedded by every component to wire its single primary
// action to the enter key.
type trigger struct {
	handler ActionHandler
	height  int
}

func (t *trigger) fire(a Action) {
	if t.handler != nil {
		t.handler(a)
	}
}

func isActivate(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	return ok && key.String() == "enter"
}

// Height returns the rendered height as of the last Render call.
func (t *trigger) Height() int { return t.height }
