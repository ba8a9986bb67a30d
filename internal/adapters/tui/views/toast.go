package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"storefront/internal/adapters/tui/styles"
	"storefront/internal/domain"
	"storefront/internal/ports"
)

// DefaultToastDuration is how long "added to cart" stays on screen
const DefaultToastDuration = 3 * time.Second

// toastHideMsg hides the toast if no newer Notify happened since it was sent
type toastHideMsg struct {
	generation uint64
}

// ToastModel is the "added to cart" notification. Notify is called from
// inside Update, so the hide tick it schedules is handed back through TakeCmd.
type ToastModel struct {
	state    domain.Toast
	duration time.Duration
	text     string
	pending  tea.Cmd
}

// Ensure ToastModel implements ports.Notifier
var _ ports.Notifier = (*ToastModel)(nil)

// NewToastModel creates a hidden toast
func NewToastModel(duration time.Duration) *ToastModel {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	return &ToastModel{
		duration: duration,
		text:     "Added to cart",
	}
}

// Notify shows the toast. Any hide scheduled by an earlier Notify becomes stale.
func (m *ToastModel) Notify() {
	gen := m.state.Show()
	m.pending = tea.Tick(m.duration, func(time.Time) tea.Msg {
		return toastHideMsg{generation: gen}
	})
}

// TakeCmd returns the hide tick scheduled by the last Notify, once
func (m *ToastModel) TakeCmd() tea.Cmd {
	cmd := m.pending
	m.pending = nil
	return cmd
}

// Update handles hide ticks
func (m *ToastModel) Update(msg tea.Msg) {
	if msg, ok := msg.(toastHideMsg); ok {
		m.state.Hide(msg.generation)
	}
}

// Visible reports whether the toast is showing
func (m *ToastModel) Visible() bool {
	return m.state.Visible()
}

// View renders the toast, or nothing when hidden
func (m *ToastModel) View() string {
	if !m.state.Visible() {
		return ""
	}
	return styles.Toast.Render("✓ " + m.text)
}
