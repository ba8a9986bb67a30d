package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Accent    = lipgloss.Color("#60A5FA") // Blue
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Product cards
	CardTitle = lipgloss.NewStyle()

	CardSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	CardPrice = lipgloss.NewStyle().
			Foreground(Accent)

	CardPriceInvalid = lipgloss.NewStyle().
				Foreground(Error).
				Italic(true)

	CardBadge = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Sort selector
	SortActive = lipgloss.NewStyle().
			Background(Secondary).
			Foreground(Black).
			Padding(0, 1)

	SortInactive = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Cart panel
	CartPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1).
			MarginLeft(2)

	CartCounter = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true).
			Padding(0, 1)

	CartTotal = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Toast
	Toast = lipgloss.NewStyle().
		Background(Secondary).
		Foreground(Black).
		Bold(true).
		Padding(0, 1)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Section labels
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
