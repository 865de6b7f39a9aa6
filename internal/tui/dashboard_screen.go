package tui

import (
	"context"
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ivanc/salesdesk/internal/app"
	"github.com/ivanc/salesdesk/internal/domain"
)

// DashboardModel represents the dashboard home screen
type DashboardModel struct {
	app *app.App

	// Data
	clientCount  int
	productCount int
	saleCount    int
	soldCount    int
	revenue      float64
	recentSales  []*domain.Sale

	loading bool
	err     error
}

type dashboardDataMsg struct {
	clientCount  int
	productCount int
	saleCount    int
	soldCount    int
	revenue      float64
	recentSales  []*domain.Sale
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(a *app.App) tea.Model {
	return &DashboardModel{
		app:     a,
		loading: true,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *DashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		msg := dashboardDataMsg{}

		clients, err := m.app.ClientService.List(ctx)
		if err != nil {
			msg.err = fmt.Errorf("clients: %w", err)
			return msg
		}
		msg.clientCount = len(clients)

		products, err := m.app.ProductService.List(ctx)
		if err != nil {
			msg.err = fmt.Errorf("products: %w", err)
			return msg
		}
		msg.productCount = len(products)

		sales, err := m.app.SalesService.List(ctx)
		if err != nil {
			msg.err = fmt.Errorf("sales: %w", err)
			return msg
		}
		msg.saleCount = len(sales)

		// Revenue counts only completed sales, at the product's current cost
		// (shared references: a reprice changes past sales too).
		for _, sale := range sales {
			if sale.Sold() {
				msg.soldCount++
				msg.revenue += sale.Product().Cost()
			}
		}

		// Most recent first
		sort.Slice(sales, func(i, j int) bool {
			return sales[i].PurchasedAt().After(sales[j].PurchasedAt())
		})
		limit := 8
		if len(sales) < limit {
			limit = len(sales)
		}
		msg.recentSales = sales[:limit]

		return msg
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.clientCount = msg.clientCount
		m.productCount = msg.productCount
		m.saleCount = msg.saleCount
		m.soldCount = msg.soldCount
		m.revenue = msg.revenue
		m.recentSales = msg.recentSales
		return m, nil

	case RefreshDataMsg:
		m.loading = true
		return m, m.loadData()
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	if m.loading {
		return "Loading dashboard..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	symbol := m.app.Config.Display.CurrencySymbol

	var s string
	s += fmt.Sprintf("  Clients:   %d\n", m.clientCount)
	s += fmt.Sprintf("  Products:  %d\n", m.productCount)
	s += fmt.Sprintf("  Sales:     %d (%d sold, %d pending)\n", m.saleCount, m.soldCount, m.saleCount-m.soldCount)
	s += fmt.Sprintf("  Revenue:   %s\n", moneyStyle.Render(formatMoney(symbol, m.revenue)))

	s += "\n" + m.renderRecentSales()

	return s
}

func (m *DashboardModel) renderRecentSales() string {
	header := "  Recent Sales\n"
	if len(m.recentSales) == 0 {
		return header + subtitleStyle.Render("  No sales recorded yet") + "\n"
	}

	dateFormat := m.app.Config.Display.DateFormat

	s := header
	for _, sale := range m.recentSales {
		status := soldStyle.Render("sold")
		if !sale.Sold() {
			status = pendingStyle.Render("pending")
		}
		s += fmt.Sprintf("  %-12s %-20s %-20s %s\n",
			sale.PurchasedAt().Format(dateFormat),
			truncateStr(sale.Client().Name(), 20),
			truncateStr(sale.Product().Name(), 20),
			status,
		)
	}

	return s
}
