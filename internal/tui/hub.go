package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/event"
	"github.com/Iron-Ham/storefront/internal/logging"
	"github.com/Iron-Ham/storefront/internal/tui/panel"
)

// hub turns component callbacks into bus events and queued messages.
// Components call back synchronously from inside Update; anything that
// must change the model is queued and flushed as a command.
type hub struct {
	bus     *event.Bus
	logger  *logging.Logger
	pending []tea.Msg
}

func newHub(bus *event.Bus, logger *logging.Logger) *hub {
	return &hub{bus: bus, logger: logger}
}

func (h *hub) publish(e event.Event) {
	if h.bus != nil {
		h.bus.Publish(e)
	}
}

func (h *hub) queue(msg tea.Msg) {
	h.pending = append(h.pending, msg)
}

// flush returns a command delivering every queued message, or nil.
func (h *hub) flush() tea.Cmd {
	if len(h.pending) == 0 {
		return nil
	}
	msgs := h.pending
	h.pending = nil

	cmds := make([]tea.Cmd, 0, len(msgs))
	for _, msg := range msgs {
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	return tea.Batch(cmds...)
}

// selection returns a selector callback for component.
func (h *hub) selection(component string) func(id string, auto bool) {
	return func(id string, auto bool) {
		h.logger.Debug("option selected", "component", component, "id", id, "auto", auto)
		h.publish(event.NewSelectionChangedEvent(component, id, auto))
	}
}

// action is the handler wired into every display component.
func (h *hub) action(a panel.Action) {
	h.publish(event.NewPrimaryActionEvent(a.Component, a.Name, a.TargetID))
	h.queue(actionMsg{action: a})
}

func (h *hub) searched(query string) {
	h.publish(event.NewSearchSubmittedEvent(query))
}

func (h *hub) filtered(f catalog.Filters) {
	h.publish(event.NewFiltersChangedEvent(f.Choices, f.MinPrice, f.MaxPrice))
}

func (h *hub) sorted(id string) {
	h.publish(event.NewSortChangedEvent(id))
}
