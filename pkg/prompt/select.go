package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// selectModel represents the Bubble Tea model for project selection.
type selectModel struct {
	title           string
	choices         []Choice
	filteredChoices []Choice
	cursor          int
	filter          string
	selected        *Choice
	quitting        bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(title string, choices []Choice) selectModel {
	return selectModel{
		title:           title,
		choices:         choices,
		filteredChoices: choices,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.cursor < len(m.filteredChoices) {
			selected := m.filteredChoices[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.filteredChoices)-1 {
			m.cursor++
		}
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m = m.updateFilteredChoices()
		}
	case "esc":
		if m.filter == "" {
			m.quitting = true
			return m, tea.Quit
		}
		m.filter = ""
		m = m.updateFilteredChoices()
	default:
		if keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeySpace {
			m.filter += key
			m = m.updateFilteredChoices()
		}
	}

	return m, nil
}

// updateFilteredChoices keeps the choices whose label or description contains the filter.
func (m selectModel) updateFilteredChoices() selectModel {
	if m.filter == "" {
		m.filteredChoices = m.choices
	} else {
		m.filteredChoices = []Choice{}
		filterLower := strings.ToLower(m.filter)
		for _, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice.Label), filterLower) ||
				strings.Contains(strings.ToLower(choice.Description), filterLower) {
				m.filteredChoices = append(m.filteredChoices, choice)
			}
		}
	}

	if m.cursor >= len(m.filteredChoices) {
		m.cursor = 0
	}

	return m
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var s strings.Builder

	s.WriteString(fmt.Sprintf("? %s  [Use arrows to move, type to filter]\n\n", m.title))

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	for i, choice := range m.filteredChoices {
		line := formatChoice(choice)
		if m.cursor == i {
			s.WriteString(cursorStyle.Render("> "+choice.Label) + descriptionSuffix(choice) + "\n")
			continue
		}
		s.WriteString("  " + line + "\n")
	}

	s.WriteString("\nPress Enter to select, Esc or Ctrl+C to quit")

	return s.String()
}

// formatChoice formats a choice for display.
func formatChoice(choice Choice) string {
	return choice.Label + descriptionSuffix(choice)
}

func descriptionSuffix(choice Choice) string {
	if choice.Description == "" {
		return ""
	}
	return " " + descriptionStyle.Render("- "+choice.Description)
}

// promptSelectProjectBubbleTea runs the Bubble Tea program for project selection.
func promptSelectProjectBubbleTea(choices []Choice) (Choice, error) {
	p := tea.NewProgram(initialSelectModel("Choose a project for this technical debt:", choices))

	finalModel, err := p.Run()
	if err != nil {
		return Choice{}, fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return Choice{}, fmt.Errorf("unexpected model type %T", finalModel)
	}

	if model.selected == nil {
		return Choice{}, ErrNoSelection
	}

	return *model.selected, nil
}
