package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"storefront/internal/adapters/tui/styles"
	"storefront/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToCatalogMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Storefront Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Browsing"))
	b.WriteString("\n")
	b.WriteString(bindingLine(CatalogKeys.Up))
	b.WriteString(bindingLine(CatalogKeys.Down))
	b.WriteString(bindingLine(CatalogKeys.PrevPage))
	b.WriteString(bindingLine(CatalogKeys.NextPage))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Shopping"))
	b.WriteString("\n")
	b.WriteString(bindingLine(CatalogKeys.Sort))
	b.WriteString(bindingLine(CatalogKeys.SortBack))
	b.WriteString(bindingLine(CatalogKeys.Add))
	b.WriteString(bindingLine(CatalogKeys.Copy))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(bindingLine(CatalogKeys.Help))
	b.WriteString(helpLine("q / Ctrl+C", "quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Sort order"))
	b.WriteString("\n")
	for _, s := range domain.Strategies() {
		b.WriteString(styles.MutedText.Render("  " + padRight(string(s), 10) + s.Label()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func bindingLine(b key.Binding) string {
	h := b.Help()
	return helpLine(h.Key, h.Desc)
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
