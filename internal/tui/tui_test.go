package tui

import (
	"bytes"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/budget/internal/cli"
	"github.com/Makepad-fr/budget/internal/items"
	"github.com/Makepad-fr/budget/internal/store/jsonstore"
	"github.com/Makepad-fr/budget/internal/ui"
)

func newModel(t *testing.T) (Model, *items.Repository, *cli.Router) {
	t.Helper()
	st, err := jsonstore.New(filepath.Join(t.TempDir(), "budget.json"), zerolog.Nop())
	require.NoError(t, err)
	repo, err := items.Open(st)
	require.NoError(t, err)
	r := cli.NewRouter(repo, zerolog.Nop())
	return New(r, ui.NewStyles(lipgloss.NewRenderer(&bytes.Buffer{}), "mono")), repo, r
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// answer types text and presses enter.
func answer(m Model, text string) (Model, tea.Cmd) {
	if text != "" {
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	}
	return send(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestRegisterAndSearch(t *testing.T) {
	m, repo, r := newModel(t)

	m, _ = answer(m, "1")
	assert.Equal(t, cli.AwaitingName, r.State())
	assert.Contains(t, m.View(), "Item name")

	m, _ = answer(m, "coffee")
	assert.Equal(t, cli.AwaitingAmount, r.State())

	m, _ = answer(m, "4.5")
	assert.Equal(t, cli.MenuIdle, r.State())
	assert.Contains(t, m.View(), `Item "coffee" registered with amount 4.5.`)
	assert.Contains(t, m.View(), "Items 1  Total 4.5")

	it, ok := repo.Search("coffee")
	require.True(t, ok)
	assert.Equal(t, 4.5, it.Amount)

	m, _ = answer(m, "2")
	m, _ = answer(m, "coffee")
	assert.Contains(t, m.View(), `Found "coffee" with amount 4.5.`)
}

func TestEscCancelsFlow(t *testing.T) {
	m, repo, r := newModel(t)
	m, _ = answer(m, "1")
	m, _ = answer(m, "tea")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, cli.MenuIdle, r.State())
	assert.Contains(t, m.View(), "Operation canceled.")
	assert.False(t, repo.Exists("tea"))
}

func TestEscAtMenuClearsInput(t *testing.T) {
	m, _, r := newModel(t)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, cli.MenuIdle, r.State())
	assert.Empty(t, m.ti.Value())
}

func TestInvalidChoiceShown(t *testing.T) {
	m, _, _ := newModel(t)
	m, _ = answer(m, "9")
	assert.Contains(t, m.View(), `Invalid choice "9".`)
}

func TestExitQuits(t *testing.T) {
	m, _, r := newModel(t)
	m, cmd := answer(m, "5")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, cli.Done, r.State())
	assert.Equal(t, "Goodbye!", m.Farewell())
	assert.Empty(t, m.View())
}

func TestCtrlCMidFlowExits(t *testing.T) {
	m, repo, r := newModel(t)
	m, _ = answer(m, "1")
	m, _ = answer(m, "tea")

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, cli.Done, r.State())
	assert.Equal(t, "Goodbye!", m.Farewell())
	assert.False(t, repo.Exists("tea"))
}

func TestPlaceholderFollowsState(t *testing.T) {
	m, _, _ := newModel(t)
	assert.Equal(t, "1-5", m.ti.Placeholder)
	m, _ = answer(m, "1")
	assert.Equal(t, "item name", m.ti.Placeholder)
	m, _ = answer(m, "rent")
	assert.Equal(t, "amount", m.ti.Placeholder)
}
