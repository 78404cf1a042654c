package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// DrawerWidth is the width of the navigation drawer when open.
const DrawerWidth = 22

// handleDrawerKey navigates the open drawer. It reports whether the key
// was consumed.
func (m Model) handleDrawerKey(msg tea.KeyMsg) (Model, bool) {
	switch msg.String() {
	case "j", "down":
		m.drawerCursor = min(m.drawerCursor+1, len(pageOrder)-1)
	case "k", "up":
		m.drawerCursor = max(m.drawerCursor-1, 0)
	case "enter":
		m = m.navigate(pageOrder[m.drawerCursor])
		m.drawer.Set(false)
	case "esc":
		m.drawer.Set(false)
	default:
		return m, false
	}
	return m, true
}

func (m Model) renderDrawer() string {
	lines := []string{styles.SectionHeader.Render("Menu"), ""}
	for i, p := range pageOrder {
		style := styles.DrawerItem
		prefix := "  "
		if i == m.drawerCursor {
			style = styles.DrawerItemActive
			prefix = "> "
		}
		lines = append(lines, style.Render(prefix+p.Title()))
	}
	return styles.Drawer.Width(DrawerWidth).Render(strings.Join(lines, "\n"))
}
