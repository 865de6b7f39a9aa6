package tui

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ivanc/salesdesk/internal/app"
	"github.com/ivanc/salesdesk/internal/domain"
)

type productMode int

const (
	productModeList productMode = iota
	productModeNew
	productModeEdit
)

// new-form field indices; the edit form drops the ID field because the key
// is immutable once stored
const (
	productFieldID = iota
	productFieldName
	productFieldCost
	productFieldCount
)

// ProductsModel displays a navigable list of products with create/edit forms
type ProductsModel struct {
	app        *app.App
	products   []*domain.Product
	cursor     int
	saleCounts map[string]int
	loading    bool
	err        error
	statusMsg  string

	// Form state
	mode       productMode
	fields     []textinput.Model
	fieldFocus int
	editingID  string // empty for a new product
}

type productsDataMsg struct {
	products   []*domain.Product
	saleCounts map[string]int
	err        error
}

type productSavedMsg struct {
	name string
	err  error
}

type productDeletedMsg struct {
	name string
	err  error
}

// NewProductsModel creates a new products screen model
func NewProductsModel(a *app.App) tea.Model {
	return &ProductsModel{
		app:        a,
		saleCounts: make(map[string]int),
		loading:    true,
	}
}

// IsCapturingInput returns true when the form is active
func (m *ProductsModel) IsCapturingInput() bool {
	return m.mode == productModeNew || m.mode == productModeEdit
}

func (m *ProductsModel) Init() tea.Cmd {
	return m.loadProducts()
}

func (m *ProductsModel) loadProducts() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		products, err := m.app.ProductService.List(ctx)
		if err != nil {
			return productsDataMsg{err: err}
		}

		sort.Slice(products, func(i, j int) bool {
			return products[i].Name() < products[j].Name()
		})

		counts := make(map[string]int)
		for _, product := range products {
			sales, err := m.app.SalesService.ListByProduct(ctx, product.ID())
			if err != nil {
				continue
			}
			counts[product.ID()] = len(sales)
		}

		return productsDataMsg{
			products:   products,
			saleCounts: counts,
		}
	}
}

func (m *ProductsModel) initForm(editing *domain.Product) {
	if editing != nil {
		// Edit form: name and cost only
		m.fields = make([]textinput.Model, 2)

		m.fields[0] = textinput.New()
		m.fields[0].Placeholder = "Product name"
		m.fields[0].CharLimit = 100
		m.fields[0].Width = 40
		m.fields[0].SetValue(editing.Name())

		m.fields[1] = textinput.New()
		m.fields[1].Placeholder = "0.00"
		m.fields[1].CharLimit = 20
		m.fields[1].Width = 20
		m.fields[1].SetValue(strconv.FormatFloat(editing.Cost(), 'f', 2, 64))

		m.editingID = editing.ID()
	} else {
		m.fields = make([]textinput.Model, productFieldCount)

		m.fields[productFieldID] = textinput.New()
		m.fields[productFieldID].Placeholder = "SKU-001"
		m.fields[productFieldID].CharLimit = 50
		m.fields[productFieldID].Width = 30

		m.fields[productFieldName] = textinput.New()
		m.fields[productFieldName].Placeholder = "Product name"
		m.fields[productFieldName].CharLimit = 100
		m.fields[productFieldName].Width = 40

		m.fields[productFieldCost] = textinput.New()
		m.fields[productFieldCost].Placeholder = "0.00"
		m.fields[productFieldCost].CharLimit = 20
		m.fields[productFieldCost].Width = 20

		m.editingID = ""
	}

	m.fieldFocus = 0
	m.fields[0].Focus()
}

func (m *ProductsModel) saveProduct() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		if m.editingID != "" {
			name := m.fields[0].Value()
			cost, err := strconv.ParseFloat(m.fields[1].Value(), 64)
			if err != nil {
				return productSavedMsg{err: fmt.Errorf("invalid cost: %s", m.fields[1].Value())}
			}

			if _, err := m.app.ProductService.Rename(ctx, m.editingID, name); err != nil {
				return productSavedMsg{err: err}
			}
			if _, err := m.app.ProductService.Reprice(ctx, m.editingID, cost); err != nil {
				return productSavedMsg{err: err}
			}
			return productSavedMsg{name: name}
		}

		cost, err := strconv.ParseFloat(m.fields[productFieldCost].Value(), 64)
		if err != nil {
			return productSavedMsg{err: fmt.Errorf("invalid cost: %s", m.fields[productFieldCost].Value())}
		}

		product, err := m.app.ProductService.Add(ctx,
			m.fields[productFieldID].Value(),
			m.fields[productFieldName].Value(),
			cost,
		)
		if err != nil {
			return productSavedMsg{err: err}
		}
		return productSavedMsg{name: product.Name()}
	}
}

func (m *ProductsModel) deleteProduct() tea.Cmd {
	product := m.products[m.cursor]
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.app.ProductService.Delete(ctx, product.ID()); err != nil {
			return productDeletedMsg{err: err}
		}
		return productDeletedMsg{name: product.Name()}
	}
}

func (m *ProductsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == productModeNew || m.mode == productModeEdit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadProducts()

	case productsDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.products = msg.products
			m.saleCounts = msg.saleCounts
			if m.cursor >= len(m.products) {
				m.cursor = max(0, len(m.products)-1)
			}
		}
		return m, nil

	case productDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Deleted: %s", msg.name)
		m.loading = true
		return m, m.loadProducts()

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
			if m.cursor < len(m.products)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.New):
			m.mode = productModeNew
			m.initForm(nil)
			return m, m.fields[0].Focus()
		case key.Matches(msg, DefaultKeyMap.Select):
			if len(m.products) > 0 && m.cursor < len(m.products) {
				m.mode = productModeEdit
				m.initForm(m.products[m.cursor])
				return m, m.fields[0].Focus()
			}
		case key.Matches(msg, DefaultKeyMap.Delete):
			if len(m.products) > 0 && m.cursor < len(m.products) {
				return m, m.deleteProduct()
			}
		case msg.String() == "v":
			// Jump to the sales screen filtered by the selected product
			if len(m.products) > 0 && m.cursor < len(m.products) {
				productID := m.products[m.cursor].ID()
				return m, func() tea.Msg { return FilterSalesMsg{ProductID: productID} }
			}
		}
	}

	return m, nil
}

func (m *ProductsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case productSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = productModeList
		m.statusMsg = fmt.Sprintf("Saved: %s", msg.name)
		m.loading = true
		return m, m.loadProducts()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = productModeList
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
				return m, m.saveProduct()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			return m, m.saveProduct()
		}
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *ProductsModel) View() string {
	if m.mode == productModeNew || m.mode == productModeEdit {
		return m.viewForm()
	}
	return m.viewList()
}

func (m *ProductsModel) viewForm() string {
	var s string
	var labels []string

	if m.mode == productModeNew {
		s += titleStyle.Render("New Product") + "\n\n"
		labels = []string{"ID:", "Name:", "Cost:"}
	} else {
		s += titleStyle.Render(fmt.Sprintf("Edit Product (ID: %s)", m.editingID)) + "\n\n"
		labels = []string{"Name:", "Cost:"}
	}

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

func (m *ProductsModel) viewList() string {
	if m.loading {
		return "Loading products..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	var s string
	s += titleStyle.Render("Products") + "\n\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	if len(m.products) == 0 {
		s += subtitleStyle.Render("  No products yet. Press 'n' to add one.") + "\n"
		return s
	}

	symbol := m.app.Config.Display.CurrencySymbol
	for i, product := range m.products {
		s += m.renderProduct(i, product, symbol) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  n: new  enter: edit  d: delete  v: view sales")

	return s
}

func (m *ProductsModel) renderProduct(index int, product *domain.Product, symbol string) string {
	selected := index == m.cursor

	indicator := "  "
	if selected {
		indicator = "> "
	}

	line1 := fmt.Sprintf("%s%s", indicator, product.Name())
	line2 := fmt.Sprintf("    ID: %s  |  Cost: %s  |  Sales: %d",
		product.ID(),
		moneyStyle.Render(formatMoney(symbol, product.Cost())),
		m.saleCounts[product.ID()],
	)

	nameStyle := lipgloss.NewStyle()
	if selected {
		nameStyle = nameStyle.Bold(true).Foreground(primaryColor)
	}

	return nameStyle.Render(line1) + "\n" + subtitleStyle.Render(line2)
}
