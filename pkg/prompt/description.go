package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// descriptionModel is a multi-line editor submitted with ctrl+s.
type descriptionModel struct {
	textarea  textarea.Model
	submitted bool
	cancelled bool
}

func initialDescriptionModel() descriptionModel {
	ta := textarea.New()
	ta.Placeholder = "Why is this code technical debt?"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(8)
	ta.Focus()

	return descriptionModel{textarea: ta}
}

func (m descriptionModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m descriptionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlS:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m descriptionModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var s strings.Builder
	s.WriteString("? Describe the technical debt:\n\n")
	s.WriteString(m.textarea.View())
	s.WriteString("\n\nPress Ctrl+S to submit, Esc to cancel")
	return s.String()
}

// promptDescriptionBubbleTea runs the multi-line description editor.
func promptDescriptionBubbleTea() (string, error) {
	finalModel, err := tea.NewProgram(initialDescriptionModel()).Run()
	if err != nil {
		return "", fmt.Errorf("failed to run description editor: %w", err)
	}

	model, ok := finalModel.(descriptionModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", finalModel)
	}

	if model.cancelled {
		return "", ErrPromptCancelled
	}

	return model.textarea.Value(), nil
}
