package search

import "testing"

func TestCompile_Match(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
		valid  bool
	}{
		{"empty matches all", "", []string{"anything"}, true, true},
		{"blank matches all", "   ", []string{"anything"}, true, true},
		{"literal", "tee", []string{"Classic Crew Tee"}, true, true},
		{"literal trims", "  tee ", []string{"Classic Crew Tee"}, true, true},
		{"literal miss", "boot", []string{"Trail Runner", "Summit"}, false, true},
		{"any field", "summit", []string{"Trail Runner", "Summit"}, true, true},
		{"special characters are literal", "a.b", []string{"axb"}, false, true},
		{"regex", "r:^trail", []string{"Trail Runner"}, true, true},
		{"regex anchored miss", "r:^runner", []string{"Trail Runner"}, false, true},
		{"empty regex matches all", "r:", []string{"x"}, true, true},
		{"invalid regex matches nothing", "r:[", []string{"["}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compile(tt.query)
			if got := m.Match(tt.fields...); got != tt.want {
				t.Errorf("Match(%v) = %v, want %v", tt.fields, got, tt.want)
			}
			if m.Valid() != tt.valid {
				t.Errorf("Valid() = %v, want %v", m.Valid(), tt.valid)
			}
			if m.Query() != tt.query {
				t.Errorf("Query() = %q", m.Query())
			}
		})
	}
}

func TestHighlight(t *testing.T) {
	style := func(s string) string { return "[" + s + "]" }

	tests := []struct {
		name  string
		query string
		text  string
		style func(string) string
		want  string
	}{
		{"single", "tee", "Crew Tee shirt", style, "Crew [Tee] shirt"},
		{"multiple", "x", "x y X", style, "[x] y [X]"},
		{"regex", "r:\\d+", "size 42 or 43", style, "size [42] or [43]"},
		{"no match", "zzz", "Crew Tee", style, "Crew Tee"},
		{"empty query", "", "Crew Tee", style, "Crew Tee"},
		{"nil style", "tee", "Crew Tee", nil, "Crew Tee"},
		{"unicode", "café", "Le Café Noir", style, "Le [Café] Noir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compile(tt.query).Highlight(tt.text, tt.style); got != tt.want {
				t.Errorf("Highlight() = %q, want %q", got, tt.want)
			}
		})
	}
}
