package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray
	StarColor      = lipgloss.Color("#FBBF24") // Yellow

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)
	Star      = lipgloss.NewStyle().Foreground(StarColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Page tabs
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	// Content area
	ContentBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1).
		PaddingBottom(1)

	// Navigation drawer
	Drawer = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 1)

	DrawerItem = lipgloss.NewStyle().
			Padding(0, 1)

	DrawerItemActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextColor).
				Background(PrimaryColor).
				Padding(0, 1)

	// Disclosure headers
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	SectionHeaderFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(PrimaryColor)

	SectionBody = lipgloss.NewStyle().
			PaddingLeft(2)

	// Error message
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Success message
	SuccessMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Dropdown styles
	DropdownContainer = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(PrimaryColor).
				Padding(0, 1)

	DropdownItem = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	DropdownItemSelected = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 1)

	// Selector styles
	OptionBox = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	OptionBoxSelected = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(PrimaryColor).
				Bold(true).
				Padding(0, 1)

	OptionCursor = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Search styles
	SearchBar = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	SearchBusy = lipgloss.NewStyle().
			Foreground(WarningColor).
			Italic(true)

	// Filter styles
	FilterCheckbox = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	FilterCheckboxEmpty = lipgloss.NewStyle().
				Foreground(MutedColor)

	FilterChoiceEnabled = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	FilterChoiceDisabled = lipgloss.NewStyle().
				Foreground(MutedColor)

	// Card styles (packages, products, reviews)
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	CardSelected = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	Price = lipgloss.NewStyle().
		Foreground(SecondaryColor).
		Bold(true)

	// Primary action button
	Button = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(PrimaryColor).
		Padding(0, 2)
)

// Swatch renders a small block filled with the given hex color. An empty
// hex renders a muted placeholder block.
func Swatch(hex string) string {
	if hex == "" {
		return Muted.Render("░░")
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

// Stars renders a five-star rating bar for rating in [0,5].
func Stars(rating int) string {
	rating = max(0, min(rating, 5))
	filled := ""
	empty := ""
	for i := 0; i < 5; i++ {
		if i < rating {
			filled += "★"
		} else {
			empty += "☆"
		}
	}
	return Star.Render(filled) + Muted.Render(empty)
}
