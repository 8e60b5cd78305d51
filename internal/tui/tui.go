// Package tui is the full-screen menu. It drives the same Router as the
// line-mode loop; the alt screen takes care of clearing between redraws.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/budget/internal/cli"
	"github.com/Makepad-fr/budget/internal/ui"
)

type keyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Submit, k.Cancel, k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func defaultKeys() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
	}
}

// Model implements tea.Model on top of a cli.Router.
type Model struct {
	router *cli.Router
	styles ui.Styles
	keys   keyMap
	help   help.Model
	ti     textinput.Model

	last     cli.Status // shown on the next redraw
	farewell string
}

func New(r *cli.Router, styles ui.Styles) Model {
	m := Model{
		router: r,
		styles: styles,
		keys:   defaultKeys(),
		help:   help.New(),
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200
	m.ti.Focus()
	m.syncInput()
	return m
}

// Farewell is the exit message once the program has quit.
func (m Model) Farewell() string { return m.farewell }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.router.State() != cli.MenuIdle {
				m.router.Handle("")
			}
			return m.submit(cli.OpExit.Key())
		case key.Matches(msg, m.keys.Cancel):
			if m.router.State() == cli.MenuIdle {
				m.ti.Reset()
				return m, nil
			}
			return m.submit("")
		case key.Matches(msg, m.keys.Submit):
			return m.submit(m.ti.Value())
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	st := m.router.Handle(line)
	m.ti.Reset()
	if m.router.State() == cli.Done {
		m.farewell = st.Message
		return m, tea.Quit
	}
	m.last = st
	m.syncInput()
	return m, nil
}

// syncInput sets the placeholder for the question being asked.
func (m *Model) syncInput() {
	switch m.router.State() {
	case cli.AwaitingName:
		m.ti.Placeholder = "item name"
	case cli.AwaitingAmount:
		m.ti.Placeholder = "amount"
	default:
		m.ti.Placeholder = "1-5"
	}
}

func (m Model) View() string {
	if m.router.State() == cli.Done {
		return ""
	}
	lines := cli.Screen(m.router, m.styles, m.last)
	lines = append(lines,
		"",
		m.styles.Accent.Render(m.router.Prompt()),
		m.ti.View(),
		"",
		m.help.View(m.keys),
	)
	return m.styles.Panel(lines)
}

// Run starts the program on the alt screen and returns the farewell message.
func Run(r *cli.Router, styles ui.Styles, opts ...tea.ProgramOption) (string, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(r, styles), opts...)
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if fm, ok := final.(Model); ok {
		return fm.Farewell(), nil
	}
	return "", nil
}
