package filter

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/errors"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// row addresses one focusable line of the panel.
type row struct {
	section int // -1 for price handles
	choice  int // -1 for a section header
	price   int // 0 low, 1 high
}

// Panel is the listing filter sidebar.
type Panel struct {
	sections []*Section
	price    *PriceRange
	cursor   int
	focused  bool
	onChange func(catalog.Filters)
}

// NewPanel creates a panel. price may be nil to omit the price filter.
func NewPanel(sections []*Section, price *PriceRange, onChange func(catalog.Filters)) *Panel {
	return &Panel{sections: sections, price: price, onChange: onChange}
}

// Sections returns the filter groups in display order.
func (p *Panel) Sections() []*Section { return p.sections }

// Section returns the group with the given facet key.
func (p *Panel) Section(key string) (*Section, bool) {
	for _, s := range p.sections {
		if s.key == key {
			return s, true
		}
	}
	return nil, false
}

// Price returns the price range, which may be nil.
func (p *Panel) Price() *PriceRange { return p.price }

// Filters returns a snapshot of the current state.
func (p *Panel) Filters() catalog.Filters {
	f := catalog.Filters{Choices: make(map[string][]string)}
	for _, s := range p.sections {
		if ids := s.Selected(); len(ids) > 0 {
			f.Choices[s.key] = ids
		}
	}
	if p.price != nil && p.price.Active() {
		f.MinPrice, f.MaxPrice = p.price.Low(), p.price.High()
	}
	return f
}

// ToggleChoice flips a choice in the section with the given key.
func (p *Panel) ToggleChoice(key, id string) error {
	s, ok := p.Section(key)
	if !ok {
		return sectionNotFound(key)
	}
	if err := s.ToggleChoice(id); err != nil {
		return err
	}
	p.changed()
	return nil
}

// SetPrice moves both handles, reporting a change only if one moved.
func (p *Panel) SetPrice(low, high int) {
	if p.price == nil {
		return
	}
	// Order matters when the new range lies outside the current one.
	var changed bool
	if low > p.price.High() {
		changed = p.price.SetHigh(high)
		changed = p.price.SetLow(low) || changed
	} else {
		changed = p.price.SetLow(low)
		changed = p.price.SetHigh(high) || changed
	}
	if changed {
		p.changed()
	}
}

// Clear deselects every choice and resets the price range.
func (p *Panel) Clear() {
	changed := false
	for _, s := range p.sections {
		changed = s.Clear() || changed
	}
	if p.price != nil {
		changed = p.price.Reset() || changed
	}
	if changed {
		p.changed()
	}
}

func (p *Panel) changed() {
	if p.onChange != nil {
		p.onChange(p.Filters())
	}
}

// Focus gives the panel keyboard focus.
func (p *Panel) Focus() {
	p.focused = true
	p.syncFocus()
}

// Blur removes keyboard focus.
func (p *Panel) Blur() {
	p.focused = false
	p.syncFocus()
}

// Focused reports whether the panel has focus.
func (p *Panel) Focused() bool { return p.focused }

func (p *Panel) rows() []row {
	var rows []row
	for i, s := range p.sections {
		rows = append(rows, row{section: i, choice: -1})
		if s.IsOpen() {
			for j := range s.options {
				rows = append(rows, row{section: i, choice: j})
			}
		}
	}
	if p.price != nil {
		rows = append(rows, row{section: -1, choice: -1, price: 0}, row{section: -1, choice: -1, price: 1})
	}
	return rows
}

func (p *Panel) current() (row, bool) {
	rows := p.rows()
	if len(rows) == 0 {
		return row{}, false
	}
	p.cursor = max(0, min(p.cursor, len(rows)-1))
	return rows[p.cursor], true
}

func (p *Panel) syncFocus() {
	r, ok := p.current()
	for i, s := range p.sections {
		if p.focused && ok && r.section == i {
			s.setFocus(r.choice < 0, r.choice)
		} else {
			s.setFocus(false, -1)
		}
	}
}

// Update handles navigation and toggling.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return nil
	}
	r, ok := p.current()
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		p.cursor++
	case "enter", " ":
		switch {
		case r.section >= 0 && r.choice < 0:
			p.sections[r.section].Toggle()
		case r.section >= 0:
			s := p.sections[r.section]
			_ = p.ToggleChoice(s.key, s.options[r.choice].ID)
		}
	case "left", "h":
		p.nudge(r, -1)
	case "right", "l":
		p.nudge(r, 1)
	case "c":
		p.Clear()
	}
	p.syncFocus()
	return nil
}

func (p *Panel) nudge(r row, dir int) {
	if r.section >= 0 || p.price == nil {
		return
	}
	var changed bool
	if r.price == 0 {
		changed = p.price.SetLow(p.price.Low() + dir*p.price.Step())
	} else {
		changed = p.price.SetHigh(p.price.High() + dir*p.price.Step())
	}
	if changed {
		p.changed()
	}
}

// View renders every section followed by the price range.
func (p *Panel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Filters"))
	b.WriteString("\n")
	for _, s := range p.sections {
		b.WriteString(s.View())
		b.WriteString("\n")
	}
	if p.price != nil {
		cursor := -1
		if r, ok := p.current(); ok && p.focused && r.section < 0 {
			cursor = r.price
		}
		b.WriteString(p.price.view(cursor))
		b.WriteString("\n")
	}
	b.WriteString(styles.Muted.Render("[enter] toggle  [←/→] price  [c] clear"))
	return b.String()
}

func sectionNotFound(key string) error {
	return errors.NewNotFoundError("filter section", key)
}
