// Package tui provides the Bubble Tea login screen.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/modepsa/hornotui/internal/auth"
	"github.com/modepsa/hornotui/internal/model"
	"github.com/modepsa/hornotui/internal/store"
)

var (
	brandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Padding(1, 3)
	footNoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// SuccessMsg is emitted once the credentials check passes.
type SuccessMsg struct {
	Session model.Session
}

// Model implements the login screen.
type Model struct {
	st     *store.Store
	inputs []textinput.Model
	index  int
	errMsg string

	width  int
	height int
}

// NewModel constructs the login screen.
func NewModel(st *store.Store) *Model {
	usuario := newLoginInput("Usuario: ")
	usuario.Placeholder = "usuario@empresa.com"

	password := newLoginInput("Contraseña: ")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m := &Model{st: st, inputs: []textinput.Model{usuario, password}}
	m.inputs[0].Focus()
	return m
}

func newLoginInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Width = 32
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			return m, m.setIndex(m.index + 1)
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.setIndex(m.index - 1)
		case tea.KeyCtrlT:
			m.togglePasswordEcho()
			return m, nil
		case tea.KeyEnter:
			if m.index == 0 {
				return m, m.setIndex(1)
			}
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.inputs[m.index], cmd = m.inputs[m.index].Update(msg)
	return m, cmd
}

func (m *Model) setIndex(idx int) tea.Cmd {
	count := len(m.inputs)
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.index = idx
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.index {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) togglePasswordEcho() {
	if m.inputs[1].EchoMode == textinput.EchoPassword {
		m.inputs[1].EchoMode = textinput.EchoNormal
	} else {
		m.inputs[1].EchoMode = textinput.EchoPassword
	}
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	usuario := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	if usuario == "" || password == "" {
		m.errMsg = "usuario y contraseña son obligatorios"
		return m, nil
	}
	session, err := auth.Login(context.Background(), m.st, usuario, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			m.errMsg = "credenciales incorrectas"
		} else {
			m.errMsg = err.Error()
		}
		return m, nil
	}
	m.errMsg = ""
	return m, func() tea.Msg {
		return SuccessMsg{Session: session}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{
		brandStyle.Render("MODEPSA"),
		titleStyle.Render("Login"),
		"",
		m.inputs[0].View(),
		m.inputs[1].View(),
	}
	if m.errMsg != "" {
		lines = append(lines, "", errorStyle.Render(m.errMsg))
	}
	lines = append(lines, "",
		labelStyle.Render("enter: ingresar  tab: cambiar campo  ctrl+t: mostrar contraseña"),
		footNoteStyle.Render("Acceso interno"),
	)
	card := cardStyle.Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
