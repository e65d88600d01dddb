//go:build unit

package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testChoices = []Choice{
	{Label: "DEBT", Description: "Tech Debt"},
	{Label: "API", Description: "Public API"},
	{Label: "WEB", Description: "Storefront"},
}

func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) selectModel {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	model, ok := m.(selectModel)
	require.True(t, ok, "Model should stay a selectModel")
	return model
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFormatChoice(t *testing.T) {
	assert.Equal(t, "DEBT", formatChoice(Choice{Label: "DEBT"}))
	assert.Contains(t, formatChoice(Choice{Label: "DEBT", Description: "Tech Debt"}), "- Tech Debt")
}

func TestSelectModel_UpdateFilteredChoices(t *testing.T) {
	tests := []struct {
		name           string
		filter         string
		expectedLabels []string
	}{
		{name: "empty filter shows all", filter: "", expectedLabels: []string{"DEBT", "API", "WEB"}},
		{name: "filter by label", filter: "api", expectedLabels: []string{"API"}},
		{name: "filter by description", filter: "front", expectedLabels: []string{"WEB"}},
		{name: "case insensitive filter", filter: "TECH", expectedLabels: []string{"DEBT"}},
		{name: "no matches", filter: "nonexistent", expectedLabels: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := initialSelectModel("Choose", testChoices)
			model.filter = tt.filter
			model = model.updateFilteredChoices()

			labels := []string{}
			for _, c := range model.filteredChoices {
				labels = append(labels, c.Label)
			}
			assert.Equal(t, tt.expectedLabels, labels)
		})
	}
}

func TestSelectModel_Navigation(t *testing.T) {
	model := press(t, initialSelectModel("Choose", testChoices),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	require.NotNil(t, model.selected)
	assert.Equal(t, "API", model.selected.Label)
	assert.Empty(t, model.View())
}

func TestSelectModel_FilterThenSelect(t *testing.T) {
	model := press(t, initialSelectModel("Choose", testChoices),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		runes("d"),
		runes("e"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	require.NotNil(t, model.selected)
	assert.Equal(t, "DEBT", model.selected.Label)
}

func TestSelectModel_Backspace(t *testing.T) {
	model := press(t, initialSelectModel("Choose", testChoices), runes("w"), runes("x"))
	assert.Empty(t, model.filteredChoices)

	model = press(t, model, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "w", model.filter)
	assert.Len(t, model.filteredChoices, 1)
	assert.Contains(t, model.View(), "Filter: w")
}

func TestSelectModel_EnterWithoutMatchDoesNothing(t *testing.T) {
	model := press(t, initialSelectModel("Choose", testChoices), runes("zzz"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, model.selected)
	assert.False(t, model.quitting)
}

func TestSelectModel_Quit(t *testing.T) {
	model := press(t, initialSelectModel("Choose", testChoices), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, model.quitting)
	assert.Nil(t, model.selected)

	model = press(t, initialSelectModel("Choose", testChoices), runes("a"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, model.quitting, "first Esc clears the filter")
	assert.Empty(t, model.filter)

	model = press(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, model.quitting)
}

func TestSelectModel_View(t *testing.T) {
	view := initialSelectModel("Choose a project:", testChoices).View()

	assert.Contains(t, view, "? Choose a project:")
	assert.Contains(t, view, "DEBT")
	assert.Contains(t, view, "Public API")
	assert.Contains(t, view, "Press Enter to select")
}
