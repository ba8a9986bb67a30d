package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"storefront/internal/adapters/tui/views"
)

// ViewState represents the current view
type ViewState int

const (
	ViewCatalog ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state   ViewState
	catalog *views.CatalogModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(cfg views.CatalogConfig) *App {
	return &App{
		state:   ViewCatalog,
		catalog: views.NewCatalogModel(cfg),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.catalog.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.catalog.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToCatalogMsg:
		a.state = ViewCatalog
		return a, nil

	case tea.KeyMsg:
		// keys go to the visible view only
		var cmd tea.Cmd
		switch a.state {
		case ViewHelp:
			_, cmd = a.help.Update(msg)
		default:
			_, cmd = a.catalog.Update(msg)
		}
		return a, cmd
	}

	// loads, spinner and toast ticks keep flowing while help is open
	_, cmd := a.catalog.Update(msg)
	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.catalog.View()
	}
}

// Catalog returns the catalog view model
func (a *App) Catalog() *views.CatalogModel {
	return a.catalog
}
