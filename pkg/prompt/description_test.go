//go:build unit

package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeInto(t *testing.T, m tea.Model, msgs ...tea.Msg) descriptionModel {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	model, ok := m.(descriptionModel)
	require.True(t, ok)
	return model
}

func TestDescriptionModel_Submit(t *testing.T) {
	model := typeInto(t, initialDescriptionModel(),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Hard-coded")},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("timeout")},
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)

	assert.True(t, model.submitted)
	assert.False(t, model.cancelled)
	assert.Equal(t, "Hard-coded\ntimeout", model.textarea.Value())
	assert.Empty(t, model.View())
}

func TestDescriptionModel_Cancel(t *testing.T) {
	model := typeInto(t, initialDescriptionModel(), tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, model.cancelled)
	assert.False(t, model.submitted)
}

func TestDescriptionModel_View(t *testing.T) {
	view := initialDescriptionModel().View()

	assert.Contains(t, view, "Describe the technical debt")
	assert.Contains(t, view, "Ctrl+S")
}
