package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ivanc/salesdesk/internal/app"
)

type settingsMode int

const (
	settingsModeView settingsMode = iota
	settingsModeEdit
)

// settings form field indices
const (
	settingsFieldCurrency = iota
	settingsFieldDateFormat
	settingsFieldSeedPath
	settingsFieldCount
)

type settingsSavedMsg struct {
	err error
}

// SettingsModel manages the settings screen
type SettingsModel struct {
	app        *app.App
	mode       settingsMode
	fields     []textinput.Model
	fieldFocus int
	err        error
	statusMsg  string
}

// NewSettingsModel creates a new settings screen
func NewSettingsModel(a *app.App) tea.Model {
	return &SettingsModel{
		app:  a,
		mode: settingsModeView,
	}
}

// IsCapturingInput returns true when the edit form is active
func (m *SettingsModel) IsCapturingInput() bool {
	return m.mode == settingsModeEdit
}

func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

func (m *SettingsModel) initForm() {
	m.fields = make([]textinput.Model, settingsFieldCount)
	cfg := m.app.Config

	// Currency symbol
	m.fields[settingsFieldCurrency] = textinput.New()
	m.fields[settingsFieldCurrency].Placeholder = "$"
	m.fields[settingsFieldCurrency].CharLimit = 5
	m.fields[settingsFieldCurrency].Width = 10
	m.fields[settingsFieldCurrency].SetValue(cfg.Display.CurrencySymbol)

	// Date format (Go reference layout)
	m.fields[settingsFieldDateFormat] = textinput.New()
	m.fields[settingsFieldDateFormat].Placeholder = "2006-01-02"
	m.fields[settingsFieldDateFormat].CharLimit = 30
	m.fields[settingsFieldDateFormat].Width = 30
	m.fields[settingsFieldDateFormat].SetValue(cfg.Display.DateFormat)

	// Seed dataset path (optional)
	m.fields[settingsFieldSeedPath] = textinput.New()
	m.fields[settingsFieldSeedPath].Placeholder = "/path/to/seed.yaml"
	m.fields[settingsFieldSeedPath].CharLimit = 256
	m.fields[settingsFieldSeedPath].Width = 60
	m.fields[settingsFieldSeedPath].SetValue(cfg.Seed.Path)

	m.fieldFocus = settingsFieldCurrency
	m.fields[settingsFieldCurrency].Focus()
}

func (m *SettingsModel) saveSettings() tea.Cmd {
	return func() tea.Msg {
		symbol := m.fields[settingsFieldCurrency].Value()
		dateFormat := m.fields[settingsFieldDateFormat].Value()
		seedPath := m.fields[settingsFieldSeedPath].Value()

		if symbol == "" {
			return settingsSavedMsg{err: fmt.Errorf("currency symbol is required")}
		}
		if dateFormat == "" {
			return settingsSavedMsg{err: fmt.Errorf("date format is required")}
		}

		m.app.Config.Display.CurrencySymbol = symbol
		m.app.Config.Display.DateFormat = dateFormat
		m.app.Config.Seed.Path = seedPath

		if err := m.app.SaveConfig(); err != nil {
			return settingsSavedMsg{err: fmt.Errorf("failed to save config: %w", err)}
		}

		return settingsSavedMsg{}
	}
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == settingsModeEdit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.err = nil
		switch {
		case msg.String() == "enter":
			m.mode = settingsModeEdit
			m.statusMsg = ""
			m.initForm()
			return m, m.fields[m.fieldFocus].Focus()
		}
	}

	return m, nil
}

func (m *SettingsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = settingsModeView
		m.statusMsg = "Settings saved"
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = settingsModeView
			m.err = nil
			return m, nil

		case "tab", "down":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + settingsFieldCount) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			if m.fieldFocus == settingsFieldCount-1 {
				return m, m.saveSettings()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			return m, m.saveSettings()
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) View() string {
	if m.mode == settingsModeEdit {
		return m.viewForm()
	}
	return m.viewSettings()
}

func (m *SettingsModel) viewSettings() string {
	var s string
	s += titleStyle.Render("Settings") + "\n\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	cfg := m.app.Config

	labelStyle := lipgloss.NewStyle().Bold(true).Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(primaryColor)

	s += subtitleStyle.Render("  Display Settings") + "\n\n"
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Currency Symbol:"), valueStyle.Render(cfg.Display.CurrencySymbol))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Date Format:"), valueStyle.Render(cfg.Display.DateFormat))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Example:"), valueStyle.Render(time.Now().Format(cfg.Display.DateFormat)))

	s += "\n" + subtitleStyle.Render("  Startup") + "\n\n"
	seedDisplay := cfg.Seed.Path
	if seedDisplay == "" {
		seedDisplay = "(none)"
	}
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Seed Dataset:"), valueStyle.Render(seedDisplay))

	s += "\n" + helpStyle.Render("  enter: edit settings")

	return s
}

func (m *SettingsModel) viewForm() string {
	var s string
	s += titleStyle.Render("Edit Settings") + "\n\n"

	labels := []string{"Currency Symbol:", "Date Format:", "Seed Dataset Path:"}
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
