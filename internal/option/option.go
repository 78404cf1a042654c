// Package option defines the canonical option record shared by every
// selection and filter component, and the normalization step that turns
// loosely shaped catalog data into it.
package option

import (
	"regexp"
	"strings"
)

// Option is a uniquely identified selectable record: a color, a size,
// a sort criterion, or a filter choice.
type Option struct {
	ID          string
	Label       string
	Hex         string // "#rrggbb" or empty
	Description string
}

// RawOption is the loosely shaped record accepted at the catalog boundary.
// Any of the identity fields may be missing; Normalize resolves them.
type RawOption struct {
	ID          string `yaml:"id" mapstructure:"id"`
	Value       string `yaml:"value" mapstructure:"value"`
	Size        string `yaml:"size" mapstructure:"size"`
	Name        string `yaml:"name" mapstructure:"name"`
	Label       string `yaml:"label" mapstructure:"label"`
	Hex         string `yaml:"hex" mapstructure:"hex"`
	Color       string `yaml:"color" mapstructure:"color"`
	Description string `yaml:"description" mapstructure:"description"`
}

var hexColorRegex = regexp.MustCompile(`^#?([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// Normalize converts a RawOption into its canonical shape.
// It returns false when no identity can be derived.
func Normalize(raw RawOption) (Option, bool) {
	id := firstNonEmpty(raw.ID, raw.Value, raw.Size, raw.Name, raw.Label)
	if id == "" {
		return Option{}, false
	}

	return Option{
		ID:          id,
		Label:       firstNonEmpty(raw.Label, raw.Name, raw.Size, raw.Value, id),
		Hex:         NormalizeHex(firstNonEmpty(raw.Hex, raw.Color)),
		Description: strings.TrimSpace(raw.Description),
	}, true
}

// NormalizeAll normalizes every record, dropping those without an identity.
func NormalizeAll(raws []RawOption) []Option {
	opts := make([]Option, 0, len(raws))
	for _, raw := range raws {
		if opt, ok := Normalize(raw); ok {
			opts = append(opts, opt)
		}
	}
	return opts
}

// FromIDs builds options whose label equals their id.
func FromIDs(ids ...string) []Option {
	opts := make([]Option, 0, len(ids))
	for _, id := range ids {
		if opt, ok := Normalize(RawOption{ID: id}); ok {
			opts = append(opts, opt)
		}
	}
	return opts
}

// NormalizeHex returns the color as lowercase "#rrggbb", expanding the
// three-digit form. Anything that is not a hex color yields "".
func NormalizeHex(s string) string {
	s = strings.TrimSpace(s)
	m := hexColorRegex.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	digits := strings.ToLower(m[1])
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return "#" + digits
}

// Dedupe returns one entry per ID. Entries keep the position of the first
// occurrence of their ID and the fields of the last occurrence.
func Dedupe(opts []Option) []Option {
	if len(opts) == 0 {
		return nil
	}

	pos := make(map[string]int, len(opts))
	result := make([]Option, 0, len(opts))
	for _, opt := range opts {
		if i, ok := pos[opt.ID]; ok {
			result[i] = opt
			continue
		}
		pos[opt.ID] = len(result)
		result = append(result, opt)
	}
	return result
}

// Index returns the position of id in opts, or -1.
func Index(opts []Option, id string) int {
	for i, opt := range opts {
		if opt.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is present in opts.
func Contains(opts []Option, id string) bool {
	return Index(opts, id) >= 0
}

// IDs returns the ids of opts in order.
func IDs(opts []Option) []string {
	ids := make([]string, len(opts))
	for i, opt := range opts {
		ids[i] = opt.ID
	}
	return ids
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
