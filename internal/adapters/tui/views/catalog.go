package views

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"storefront/internal/adapters/memory"
	"storefront/internal/adapters/tui/styles"
	"storefront/internal/application"
	"storefront/internal/application/commands"
	"storefront/internal/domain"
	"storefront/internal/ports"
)

// CatalogKeyMap defines key bindings for the catalog view
type CatalogKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Sort     key.Binding
	SortBack key.Binding
	Add      key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var CatalogKeys = CatalogKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	SortBack: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "sort back"),
	),
	Add: key.NewBinding(
		key.WithKeys("enter", "a"),
		key.WithHelp("enter/a", "add to cart"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy cart"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// CatalogConfig wires the catalog view to the rest of the application
type CatalogConfig struct {
	Load          func(ctx context.Context) ([]domain.Product, error)
	Money         ports.MoneyFormatter
	Collator      ports.TitleCollator
	MergeKey      domain.MergeKey
	ToastDuration time.Duration
	Logger        *zap.Logger

	// Copy writes the cart summary somewhere the user can paste it from.
	// Defaults to the system clipboard.
	Copy func(text string) error
}

// CatalogModel shows the product cards, the sort selector and the cart panel
type CatalogModel struct {
	ViewState

	load     func(ctx context.Context) ([]domain.Product, error)
	collator ports.TitleCollator
	logger   *zap.Logger
	copy     func(text string) error

	shelf    *memory.Shelf
	store    *application.CartStore
	cart     *CartPanel
	toast    *ToastModel
	pager    *pager
	spinner  spinner.Model
	loading  bool
	strategy int // index into domain.Strategies()
}

// NewCatalogModel creates a catalog view with an empty cart
func NewCatalogModel(cfg CatalogConfig) *CatalogModel {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	copyFn := cfg.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.MutedText

	panel := NewCartPanel()
	toast := NewToastModel(cfg.ToastDuration)

	return &CatalogModel{
		load:     cfg.Load,
		collator: cfg.Collator,
		logger:   logger,
		copy:     copyFn,
		shelf:    memory.NewShelf(),
		store:    application.NewCartStore(domain.NewCart(cfg.MergeKey), cfg.Money, panel, toast, logger),
		cart:     panel,
		toast:    toast,
		pager:    newPager(10),
		spinner:  sp,
		loading:  cfg.Load != nil,
	}
}

// Init starts loading the catalog
func (m *CatalogModel) Init() tea.Cmd {
	if m.load == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadCatalog)
}

func (m *CatalogModel) loadCatalog() tea.Msg {
	products, err := m.load(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return catalogLoadedMsg{products}
}

// Update handles messages for the catalog view
func (m *CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case catalogLoadedMsg:
		m.SetProducts(msg.products)
		return m, nil

	case errMsg:
		m.loading = false
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case toastHideMsg:
		m.toast.Update(msg)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, CatalogKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, CatalogKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}

		if m.loading {
			return m, nil
		}

		switch {
		case key.Matches(msg, CatalogKeys.Up):
			m.pager.Move(-1)

		case key.Matches(msg, CatalogKeys.Down):
			m.pager.Move(1)

		case key.Matches(msg, CatalogKeys.PrevPage):
			m.pager.Turn(-1)

		case key.Matches(msg, CatalogKeys.NextPage):
			m.pager.Turn(1)

		case key.Matches(msg, CatalogKeys.Sort):
			m.applyStrategy(m.strategy + 1)

		case key.Matches(msg, CatalogKeys.SortBack):
			m.applyStrategy(m.strategy - 1)

		case key.Matches(msg, CatalogKeys.Add):
			return m, m.addSelected()

		case key.Matches(msg, CatalogKeys.Copy):
			m.copySummary()
		}
	}

	return m, nil
}

// SetProducts replaces the shelf with one card per product
func (m *CatalogModel) SetProducts(products []domain.Product) {
	nodes := make([]ports.ItemNode, 0, len(products))
	for i, p := range products {
		p.Position = i
		nodes = append(nodes, NewProductCard(p, m.addProduct))
	}
	m.shelf = memory.NewShelf(nodes...)
	m.strategy = 0
	m.loading = false
	m.pager.Load(len(nodes))
	m.store.Render()
}

func (m *CatalogModel) addProduct(p domain.Product) error {
	result, err := commands.NewAddToCartCommand(m.store, p).Execute(context.Background())
	if err != nil {
		return err
	}
	m.SetMessage(result.Message, false)
	return nil
}

func (m *CatalogModel) addSelected() tea.Cmd {
	card := m.Selected()
	if card == nil {
		return nil
	}
	if err := card.Click(); err != nil {
		m.SetMessage(fmt.Sprintf("Cannot add %s: %v", card.Title(), err), true)
		return nil
	}
	return m.toast.TakeCmd()
}

func (m *CatalogModel) applyStrategy(i int) {
	strategies := domain.Strategies()
	i = (i%len(strategies) + len(strategies)) % len(strategies)
	selected := m.Selected()

	cmd := commands.NewSortCatalogCommand(m.shelf, m.collator, m.logger, string(strategies[i]))
	result, err := cmd.Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.strategy = i

	if len(result.Skipped) > 0 {
		m.SetMessage(fmt.Sprintf("%s (%d without a readable price)", result.Message, len(result.Skipped)), true)
	} else {
		m.SetMessage(result.Message, false)
	}

	// keep the cursor on the same card
	if selected != nil {
		for idx, c := range m.Cards() {
			if c == selected {
				m.pager.Select(idx)
				break
			}
		}
	}
}

func (m *CatalogModel) copySummary() {
	summary := application.Summary(m.store.Cart(), m.store.Money())
	if err := m.copy(summary); err != nil {
		m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.SetMessage("Cart copied to clipboard", false)
}

// Cards returns the cards in display order
func (m *CatalogModel) Cards() []*ProductCard {
	nodes := m.shelf.Nodes()
	cards := make([]*ProductCard, 0, len(nodes))
	for _, n := range nodes {
		if c, ok := n.(*ProductCard); ok {
			cards = append(cards, c)
		}
	}
	return cards
}

// Selected returns the card under the cursor
func (m *CatalogModel) Selected() *ProductCard {
	cards := m.Cards()
	i := m.pager.Cursor()
	if i < 0 || i >= len(cards) {
		return nil
	}
	return cards[i]
}

// Strategy returns the active sort strategy
func (m *CatalogModel) Strategy() domain.Strategy {
	return domain.Strategies()[m.strategy]
}

// Cart returns the cart panel
func (m *CatalogModel) Cart() *CartPanel {
	return m.cart
}

// Toast returns the notification model
func (m *CatalogModel) Toast() *ToastModel {
	return m.toast
}

// SetSize updates the view dimensions and the page size
func (m *CatalogModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.Resize(max(height-12, 5))
}

// View renders the catalog view
func (m *CatalogModel) View() string {
	v := NewViewBuilder().Title("Storefront")

	if m.loading {
		return v.Line(m.spinner.View() + " Loading catalog...").String()
	}

	v.Line(m.renderSortSelector()).BlankLine()

	list := m.renderCards()
	v.Raw(lipgloss.JoinHorizontal(lipgloss.Top, list, m.cart.View(32))).BlankLine().BlankLine()

	if t := m.toast.View(); t != "" {
		v.Line(t).BlankLine()
	}

	return v.Message(m.Message, m.MessageErr).
		Help(CatalogKeys.Add, CatalogKeys.Sort, CatalogKeys.Copy, CatalogKeys.Help, CatalogKeys.Quit).
		String()
}

func (m *CatalogModel) renderSortSelector() string {
	parts := []string{RenderMuted("Sort:")}
	for i, s := range domain.Strategies() {
		if i == m.strategy {
			parts = append(parts, styles.SortActive.Render(s.Label()))
		} else {
			parts = append(parts, styles.SortInactive.Render(s.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m *CatalogModel) renderCards() string {
	cards := m.Cards()
	if len(cards) == 0 {
		return RenderMuted("No products.")
	}

	v := NewViewBuilder()
	start, end := m.pager.Window()
	for i := start; i < end; i++ {
		v.Line(m.renderCard(cards[i], i == m.pager.Cursor()))
	}
	if m.pager.Pages() > 1 {
		v.BlankLine().Muted(fmt.Sprintf("Page %d/%d", m.pager.Page(), m.pager.Pages()))
	}
	return v.StringUnwrapped()
}

func (m *CatalogModel) renderCard(c *ProductCard, selected bool) string {
	title := lipgloss.NewStyle().Width(30).Render(c.Title())
	if selected {
		title = styles.CardSelected.Width(30).Render(c.Title())
	}

	var price string
	if amount, err := domain.ParseAmount(c.PriceText()); err != nil {
		price = styles.CardPriceInvalid.Render(c.PriceText())
	} else {
		price = styles.CardPrice.Render(m.store.Money().Format(amount))
	}

	line := title + " " + price
	if n := c.Added(); n > 0 {
		line += " " + styles.CardBadge.Render(fmt.Sprintf("+%d", n))
	}
	return line
}
