package tui

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ivanc/salesdesk/internal/app"
	"github.com/ivanc/salesdesk/internal/domain"
)

// clientMode represents the current screen mode
type clientMode int

const (
	clientModeList clientMode = iota
	clientModeNew
	clientModeEdit
)

// new-form field indices; the edit form drops the CI field because the key
// is immutable once stored
const (
	clientFieldName = iota
	clientFieldCI
	clientFieldEmail
	clientFieldCount
)

// ClientsModel displays a navigable list of clients with create/edit forms
type ClientsModel struct {
	app        *app.App
	clients    []*domain.Client
	cursor     int
	saleCounts map[string]int
	loading    bool
	err        error
	statusMsg  string

	// Form state
	mode          clientMode
	fields        []textinput.Model
	fieldFocus    int
	editingCI     string // empty for a new client
	autoNewClient bool   // open new client form after data loads
}

type clientsDataMsg struct {
	clients    []*domain.Client
	saleCounts map[string]int
	err        error
}

type clientSavedMsg struct {
	name string
	err  error
}

type clientDeletedMsg struct {
	name string
	err  error
}

// NewClientsModel creates a new clients screen model
func NewClientsModel(a *app.App) tea.Model {
	return &ClientsModel{
		app:        a,
		saleCounts: make(map[string]int),
		loading:    true,
	}
}

// IsCapturingInput returns true when the form is active
func (m *ClientsModel) IsCapturingInput() bool {
	return m.mode == clientModeNew || m.mode == clientModeEdit
}

func (m *ClientsModel) Init() tea.Cmd {
	return m.loadClients()
}

func (m *ClientsModel) loadClients() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		clients, err := m.app.ClientService.List(ctx)
		if err != nil {
			return clientsDataMsg{err: err}
		}

		sort.Slice(clients, func(i, j int) bool {
			return clients[i].Name() < clients[j].Name()
		})

		// Count each client's sales for the list rows
		counts := make(map[string]int)
		for _, client := range clients {
			sales, err := m.app.SalesService.ListByClient(ctx, client.NumCI())
			if err != nil {
				continue
			}
			counts[client.NumCI()] = len(sales)
		}

		return clientsDataMsg{
			clients:    clients,
			saleCounts: counts,
		}
	}
}

func (m *ClientsModel) initForm(editing *domain.Client) {
	if editing != nil {
		// Edit form: name and email only
		m.fields = make([]textinput.Model, 2)

		m.fields[0] = textinput.New()
		m.fields[0].Placeholder = "Client name"
		m.fields[0].CharLimit = 100
		m.fields[0].Width = 40
		m.fields[0].SetValue(editing.Name())

		m.fields[1] = textinput.New()
		m.fields[1].Placeholder = "email@example.com"
		m.fields[1].CharLimit = 100
		m.fields[1].Width = 40
		m.fields[1].SetValue(editing.Email())

		m.editingCI = editing.NumCI()
	} else {
		m.fields = make([]textinput.Model, clientFieldCount)

		m.fields[clientFieldName] = textinput.New()
		m.fields[clientFieldName].Placeholder = "Client name"
		m.fields[clientFieldName].CharLimit = 100
		m.fields[clientFieldName].Width = 40

		m.fields[clientFieldCI] = textinput.New()
		m.fields[clientFieldCI].Placeholder = "12345678"
		m.fields[clientFieldCI].CharLimit = 20
		m.fields[clientFieldCI].Width = 20

		m.fields[clientFieldEmail] = textinput.New()
		m.fields[clientFieldEmail].Placeholder = "email@example.com"
		m.fields[clientFieldEmail].CharLimit = 100
		m.fields[clientFieldEmail].Width = 40

		m.editingCI = ""
	}

	m.fieldFocus = 0
	m.fields[0].Focus()
}

func (m *ClientsModel) saveClient() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		if m.editingCI != "" {
			name := m.fields[0].Value()
			email := m.fields[1].Value()

			if _, err := m.app.ClientService.Rename(ctx, m.editingCI, name); err != nil {
				return clientSavedMsg{err: err}
			}
			if _, err := m.app.ClientService.ChangeEmail(ctx, m.editingCI, email); err != nil {
				return clientSavedMsg{err: err}
			}
			return clientSavedMsg{name: name}
		}

		client, err := m.app.ClientService.Add(ctx,
			m.fields[clientFieldName].Value(),
			m.fields[clientFieldCI].Value(),
			m.fields[clientFieldEmail].Value(),
		)
		if err != nil {
			return clientSavedMsg{err: err}
		}
		return clientSavedMsg{name: client.Name()}
	}
}

func (m *ClientsModel) deleteClient() tea.Cmd {
	client := m.clients[m.cursor]
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.app.ClientService.Delete(ctx, client.NumCI()); err != nil {
			return clientDeletedMsg{err: err}
		}
		return clientDeletedMsg{name: client.Name()}
	}
}

func (m *ClientsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle OpenNewClientFormMsg at the top so it works regardless of mode
	if _, ok := msg.(OpenNewClientFormMsg); ok {
		if m.loading {
			// Data hasn't loaded yet; set flag to auto-open form when it does
			m.autoNewClient = true
			return m, nil
		}
		m.mode = clientModeNew
		m.initForm(nil)
		return m, m.fields[0].Focus()
	}

	// Handle form mode
	if m.mode == clientModeNew || m.mode == clientModeEdit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadClients()

	case clientsDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.clients = msg.clients
			m.saleCounts = msg.saleCounts
			if m.cursor >= len(m.clients) {
				m.cursor = max(0, len(m.clients)-1)
			}
		}
		// Auto-open new client form on first run
		if m.autoNewClient {
			m.autoNewClient = false
			m.mode = clientModeNew
			m.initForm(nil)
			return m, m.fields[0].Focus()
		}
		return m, nil

	case clientSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = clientModeList
		m.statusMsg = fmt.Sprintf("Saved: %s", msg.name)
		m.loading = true
		return m, m.loadClients()

	case clientDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Deleted: %s", msg.name)
		m.loading = true
		return m, m.loadClients()

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
			if m.cursor < len(m.clients)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.New):
			m.mode = clientModeNew
			m.initForm(nil)
			return m, m.fields[0].Focus()
		case key.Matches(msg, DefaultKeyMap.Select):
			// Enter key opens edit form for selected client
			if len(m.clients) > 0 && m.cursor < len(m.clients) {
				m.mode = clientModeEdit
				m.initForm(m.clients[m.cursor])
				return m, m.fields[0].Focus()
			}
		case key.Matches(msg, DefaultKeyMap.Delete):
			if len(m.clients) > 0 && m.cursor < len(m.clients) {
				return m, m.deleteClient()
			}
		case msg.String() == "v":
			// Jump to the sales screen filtered by the selected client
			if len(m.clients) > 0 && m.cursor < len(m.clients) {
				numCI := m.clients[m.cursor].NumCI()
				return m, func() tea.Msg { return FilterSalesMsg{ClientNumCI: numCI} }
			}
		}
	}

	return m, nil
}

func (m *ClientsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clientSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = clientModeList
		m.statusMsg = fmt.Sprintf("Saved: %s", msg.name)
		m.loading = true
		return m, m.loadClients()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// Cancel form
			m.mode = clientModeList
			m.err = nil
			return m, nil

		case "tab", "down":
			// Next field
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % len(m.fields)
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			// Previous field
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + len(m.fields)) % len(m.fields)
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			// If on last field, save; otherwise advance
			if m.fieldFocus == len(m.fields)-1 {
				return m, m.saveClient()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			// Save from any field
			return m, m.saveClient()
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *ClientsModel) View() string {
	if m.mode == clientModeNew || m.mode == clientModeEdit {
		return m.viewForm()
	}
	return m.viewList()
}

func (m *ClientsModel) viewForm() string {
	var s string
	var labels []string

	if m.mode == clientModeNew {
		if len(m.clients) == 0 {
			s += titleStyle.Render("Welcome to salesdesk!") + "\n"
			s += subtitleStyle.Render("  Let's register your first client to get started.") + "\n\n"
		} else {
			s += titleStyle.Render("New Client") + "\n\n"
		}
		labels = []string{"Name:", "CI (digits only):", "Email:"}
	} else {
		s += titleStyle.Render(fmt.Sprintf("Edit Client (CI: %s)", m.editingCI)) + "\n\n"
		labels = []string{"Name:", "Email:"}
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

func (m *ClientsModel) viewList() string {
	if m.loading {
		return "Loading clients..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	var s string
	s += titleStyle.Render("Clients") + "\n\n"

	// Status message
	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	if len(m.clients) == 0 {
		s += subtitleStyle.Render("  No clients yet. Press 'n' to register one.") + "\n"
		return s
	}

	for i, client := range m.clients {
		s += m.renderClient(i, client) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  n: new  enter: edit  d: delete  v: view sales")

	return s
}

func (m *ClientsModel) renderClient(index int, client *domain.Client) string {
	selected := index == m.cursor

	indicator := "  "
	if selected {
		indicator = "> "
	}

	line1 := fmt.Sprintf("%s%s", indicator, client.Name())
	line2 := fmt.Sprintf("    CI: %s  |  %s", client.NumCI(), client.Email())
	line3 := fmt.Sprintf("    Sales: %d  Registered: %s",
		m.saleCounts[client.NumCI()],
		client.RegisteredAt().Format(m.app.Config.Display.DateFormat),
	)

	nameStyle := lipgloss.NewStyle()
	if selected {
		nameStyle = nameStyle.Bold(true).Foreground(primaryColor)
	}

	return nameStyle.Render(line1) + "\n" + subtitleStyle.Render(line2) + "\n" + subtitleStyle.Render(line3)
}
