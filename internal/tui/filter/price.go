package filter

import (
	"fmt"

	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// PriceRange is a two-handle price filter. Low and High always satisfy
// Min <= Low <= High <= Max.
type PriceRange struct {
	min, max  int
	low, high int
	step      int
}

// NewPriceRange creates a range spanning [lo, hi]. Inverted bounds are
// swapped and a non-positive step becomes 1.
func NewPriceRange(lo, hi, step int) *PriceRange {
	if lo > hi {
		lo, hi = hi, lo
	}
	if step <= 0 {
		step = 1
	}
	return &PriceRange{min: lo, max: hi, low: lo, high: hi, step: step}
}

// Bounds returns the outer limits.
func (p *PriceRange) Bounds() (lo, hi int) { return p.min, p.max }

// Low returns the lower handle.
func (p *PriceRange) Low() int { return p.low }

// High returns the upper handle.
func (p *PriceRange) High() int { return p.high }

// Step returns the keyboard increment.
func (p *PriceRange) Step() int { return p.step }

// SetLow moves the lower handle, clamped to [Min, High]. It reports
// whether the value changed.
func (p *PriceRange) SetLow(v int) bool {
	v = max(p.min, min(v, p.high))
	if v == p.low {
		return false
	}
	p.low = v
	return true
}

// SetHigh moves the upper handle, clamped to [Low, Max]. It reports
// whether the value changed.
func (p *PriceRange) SetHigh(v int) bool {
	v = max(p.low, min(v, p.max))
	if v == p.high {
		return false
	}
	p.high = v
	return true
}

// Reset returns both handles to the bounds.
func (p *PriceRange) Reset() bool {
	changed := p.low != p.min || p.high != p.max
	p.low, p.high = p.min, p.max
	return changed
}

// Active reports whether the range narrows the listing.
func (p *PriceRange) Active() bool {
	return p.low > p.min || p.high < p.max
}

func (p *PriceRange) view(cursor int) string {
	handle := func(label string, v int, focused bool) string {
		s := fmt.Sprintf("%s $%d", label, v)
		if focused {
			return styles.OptionCursor.Render("> ") + styles.Price.Render(s)
		}
		return "  " + styles.Text.Render(s)
	}
	return styles.SectionHeader.Render("Price") + "\n" +
		handle("min", p.low, cursor == 0) + "\n" +
		handle("max", p.high, cursor == 1) + "\n" +
		styles.Muted.Render(fmt.Sprintf("  range $%d-$%d, step $%d", p.min, p.max, p.step))
}
