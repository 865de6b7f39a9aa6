package tui

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/ivanc/salesdesk/internal/app"
	"github.com/ivanc/salesdesk/internal/domain"
)

type saleMode int

const (
	saleModeList saleMode = iota
	saleModeNew
)

const (
	saleFieldClient = iota
	saleFieldProduct
	saleFieldID
	saleFieldCount
)

// SalesModel displays sales, optionally filtered by one client or product
type SalesModel struct {
	app       *app.App
	sales     []*domain.Sale
	cursor    int
	loading   bool
	err       error
	statusMsg string

	// Active filter (at most one is set)
	filterClient  string
	filterProduct string

	// Form state
	mode       saleMode
	fields     []textinput.Model
	fieldFocus int
}

type salesDataMsg struct {
	sales []*domain.Sale
	err   error
}

type saleSavedMsg struct {
	id  string
	err error
}

type saleUpdatedMsg struct {
	status string
	err    error
}

// NewSalesModel creates a new sales screen model
func NewSalesModel(a *app.App) tea.Model {
	return &SalesModel{
		app:     a,
		loading: true,
	}
}

// IsCapturingInput returns true when the form is active
func (m *SalesModel) IsCapturingInput() bool {
	return m.mode == saleModeNew
}

func (m *SalesModel) Init() tea.Cmd {
	return m.loadSales()
}

func (m *SalesModel) loadSales() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var sales []*domain.Sale
		var err error
		switch {
		case m.filterClient != "":
			sales, err = m.app.SalesService.ListByClient(ctx, m.filterClient)
		case m.filterProduct != "":
			sales, err = m.app.SalesService.ListByProduct(ctx, m.filterProduct)
		default:
			sales, err = m.app.SalesService.List(ctx)
		}
		if err != nil {
			return salesDataMsg{err: err}
		}

		sort.Slice(sales, func(i, j int) bool {
			return sales[i].PurchasedAt().After(sales[j].PurchasedAt())
		})

		return salesDataMsg{sales: sales}
	}
}

func (m *SalesModel) initForm() {
	m.fields = make([]textinput.Model, saleFieldCount)

	m.fields[saleFieldClient] = textinput.New()
	m.fields[saleFieldClient].Placeholder = "Client CI"
	m.fields[saleFieldClient].CharLimit = 20
	m.fields[saleFieldClient].Width = 30

	m.fields[saleFieldProduct] = textinput.New()
	m.fields[saleFieldProduct].Placeholder = "Product ID"
	m.fields[saleFieldProduct].CharLimit = 50
	m.fields[saleFieldProduct].Width = 30

	m.fields[saleFieldID] = textinput.New()
	m.fields[saleFieldID].CharLimit = 50
	m.fields[saleFieldID].Width = 40
	m.fields[saleFieldID].SetValue(uuid.NewString())

	// Prefill from the active filter where possible
	if m.filterClient != "" {
		m.fields[saleFieldClient].SetValue(m.filterClient)
	}
	if m.filterProduct != "" {
		m.fields[saleFieldProduct].SetValue(m.filterProduct)
	}

	m.fieldFocus = 0
	m.fields[0].Focus()
}

func (m *SalesModel) saveSale() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sale, err := m.app.SalesService.Add(ctx,
			m.fields[saleFieldClient].Value(),
			m.fields[saleFieldProduct].Value(),
			m.fields[saleFieldID].Value(),
		)
		if err != nil {
			return saleSavedMsg{err: err}
		}
		return saleSavedMsg{id: sale.ID()}
	}
}

func (m *SalesModel) toggleSold() tea.Cmd {
	sale := m.sales[m.cursor]
	return func() tea.Msg {
		ctx := context.Background()
		updated, err := m.app.SalesService.MarkSold(ctx, sale.ID(), !sale.Sold())
		if err != nil {
			return saleUpdatedMsg{err: err}
		}
		status := "pending"
		if updated.Sold() {
			status = "sold"
		}
		return saleUpdatedMsg{status: fmt.Sprintf("Marked %s: %s", status, updated.ID())}
	}
}

func (m *SalesModel) deleteSale() tea.Cmd {
	sale := m.sales[m.cursor]
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.app.SalesService.Delete(ctx, sale.ID()); err != nil {
			return saleUpdatedMsg{err: err}
		}
		return saleUpdatedMsg{status: fmt.Sprintf("Deleted: %s", sale.ID())}
	}
}

func (m *SalesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Filter requests arrive from the clients and products screens
	if msg, ok := msg.(FilterSalesMsg); ok {
		m.filterClient = msg.ClientNumCI
		m.filterProduct = msg.ProductID
		m.cursor = 0
		m.loading = true
		return m, m.loadSales()
	}

	if m.mode == saleModeNew {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadSales()

	case salesDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.sales = msg.sales
			if m.cursor >= len(m.sales) {
				m.cursor = max(0, len(m.sales)-1)
			}
		}
		return m, nil

	case saleUpdatedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = msg.status
		m.loading = true
		return m, m.loadSales()

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		m.statusMsg = ""
		m.err = nil

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.sales)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.New):
			m.mode = saleModeNew
			m.initForm()
			return m, m.fields[0].Focus()
		case key.Matches(msg, DefaultKeyMap.Delete):
			if len(m.sales) > 0 && m.cursor < len(m.sales) {
				return m, m.deleteSale()
			}
		case msg.String() == "t":
			// Toggle sold status for the selected sale
			if len(m.sales) > 0 && m.cursor < len(m.sales) {
				return m, m.toggleSold()
			}
		case msg.String() == "f":
			// Clear the active filter
			if m.filterClient != "" || m.filterProduct != "" {
				m.filterClient = ""
				m.filterProduct = ""
				m.cursor = 0
				m.loading = true
				return m, m.loadSales()
			}
		}
	}

	return m, nil
}

func (m *SalesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case saleSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = saleModeList
		m.statusMsg = fmt.Sprintf("Recorded sale %s", msg.id)
		m.loading = true
		return m, m.loadSales()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = saleModeList
			m.err = nil
			return m, nil

		case "tab", "down":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % len(m.fields)
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + len(m.fields)) % len(m.fields)
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			if m.fieldFocus == len(m.fields)-1 {
				return m, m.saveSale()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			return m, m.saveSale()
		}
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *SalesModel) View() string {
	if m.mode == saleModeNew {
		return m.viewForm()
	}
	return m.viewList()
}

func (m *SalesModel) viewForm() string {
	var s string
	s += titleStyle.Render("New Sale") + "\n\n"

	labels := []string{"Client CI:", "Product ID:", "Sale ID:"}
	for i, label := range labels {
		indicator := "  "
		if i == m.fieldFocus {
			indicator = "> "
		}
		labelStyle := subtitleStyle
		if i == m.fieldFocus {
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), m.fields[i].View())
	}

	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}

func (m *SalesModel) viewList() string {
	if m.loading {
		return "Loading sales..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	var s string
	s += titleStyle.Render("Sales") + "\n"

	switch {
	case m.filterClient != "":
		s += subtitleStyle.Render(fmt.Sprintf("  Filtered by client CI %s (press 'f' to clear)", m.filterClient)) + "\n"
	case m.filterProduct != "":
		s += subtitleStyle.Render(fmt.Sprintf("  Filtered by product %s (press 'f' to clear)", m.filterProduct)) + "\n"
	}
	s += "\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	if len(m.sales) == 0 {
		s += subtitleStyle.Render("  No sales recorded. Press 'n' to record one.") + "\n"
		return s
	}

	symbol := m.app.Config.Display.CurrencySymbol
	dateFormat := m.app.Config.Display.DateFormat

	for i, sale := range m.sales {
		selected := i == m.cursor

		indicator := "  "
		if selected {
			indicator = "> "
		}

		status := soldStyle.Render("sold")
		if !sale.Sold() {
			status = pendingStyle.Render("pending")
		}

		line1 := fmt.Sprintf("%s%-12s %-20s %-20s %-10s %s",
			indicator,
			sale.PurchasedAt().Format(dateFormat),
			truncateStr(sale.Client().Name(), 20),
			truncateStr(sale.Product().Name(), 20),
			moneyStyle.Render(formatMoney(symbol, sale.Product().Cost())),
			status,
		)
		line2 := fmt.Sprintf("      ID: %s", sale.ID())

		rowStyle := lipgloss.NewStyle()
		if selected {
			rowStyle = rowStyle.Bold(true)
		}

		s += rowStyle.Render(line1) + "\n" + subtitleStyle.Render(line2) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  n: new  t: toggle sold  d: delete  f: clear filter")

	return s
}
