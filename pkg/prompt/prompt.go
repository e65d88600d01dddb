package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Choice is a selectable item: a short label and a longer description.
type Choice struct {
	Label       string
	Description string
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForBaseURL prompts the user for the tracker base URL.
	PromptForBaseURL(defaultBaseURL string) (string, error)

	// PromptForEmail prompts the user for the tracker account email.
	PromptForEmail(defaultEmail string) (string, error)

	// PromptForCategory prompts the user for the project category filtering selectable projects.
	PromptForCategory(defaultCategory string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelectProject prompts the user to select a project from a list.
	PromptSelectProject(choices []Choice) (Choice, error)

	// PromptForTitle prompts the user for the issue summary.
	PromptForTitle() (string, error)

	// PromptForDescription prompts the user for the debt description in a multi-line editor.
	PromptForDescription() (string, error)
}

type realPrompt struct {
	reader *bufio.Reader
	out    io.Writer
	// editDescription runs the multi-line editor, replaced in tests.
	editDescription func() (string, error)
	// selectChoice runs the interactive selector, replaced in tests.
	selectChoice func(choices []Choice) (Choice, error)
}

// NewPrompt creates a new Prompt instance.
func NewPrompt() Prompter {
	return &realPrompt{
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
		editDescription: promptDescriptionBubbleTea,
		selectChoice:    promptSelectProjectBubbleTea,
	}
}

// PromptForBaseURL prompts the user for the tracker base URL.
func (p *realPrompt) PromptForBaseURL(defaultBaseURL string) (string, error) {
	return p.promptWithDefault("Tracker base URL (ex: https://your-company.atlassian.net)", defaultBaseURL)
}

// PromptForEmail prompts the user for the tracker account email.
func (p *realPrompt) PromptForEmail(defaultEmail string) (string, error) {
	return p.promptWithDefault("Tracker account email", defaultEmail)
}

// PromptForCategory prompts the user for the project category.
func (p *realPrompt) PromptForCategory(defaultCategory string) (string, error) {
	return p.promptWithDefault("Project category ID (or repository topic for GitHub)", defaultCategory)
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	_, _ = fmt.Fprintf(p.out, "%s %s: ", message, defaultText)

	input, err := p.readLine()
	if err != nil {
		return false, err
	}

	input = strings.ToLower(input)
	if input == "" {
		return defaultYes, nil
	}

	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelectProject prompts the user to select a project from a list.
func (p *realPrompt) PromptSelectProject(choices []Choice) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, ErrNoChoices
	}
	return p.selectChoice(choices)
}

// PromptForTitle prompts the user for the issue summary.
func (p *realPrompt) PromptForTitle() (string, error) {
	_, _ = fmt.Fprint(p.out, "Enter a title for the technical debt: ")

	title, err := p.readLine()
	if err != nil {
		return "", err
	}
	if title == "" {
		return "", fmt.Errorf("%w: title", ErrEmptyInput)
	}

	return title, nil
}

// PromptForDescription prompts the user for the debt description.
func (p *realPrompt) PromptForDescription() (string, error) {
	description, err := p.editDescription()
	if err != nil {
		return "", err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("%w: description", ErrEmptyInput)
	}

	return description, nil
}

// promptWithDefault asks a question and returns the default on an empty answer.
func (p *realPrompt) promptWithDefault(message, defaultValue string) (string, error) {
	if defaultValue != "" {
		_, _ = fmt.Fprintf(p.out, "%s [default: %s]: ", message, defaultValue)
	} else {
		_, _ = fmt.Fprintf(p.out, "%s: ", message)
	}

	input, err := p.readLine()
	if err != nil {
		return "", err
	}

	if input == "" {
		if defaultValue == "" {
			return "", ErrEmptyInput
		}
		return defaultValue, nil
	}

	return input, nil
}

// readLine reads one trimmed line. A last line without newline is accepted.
func (p *realPrompt) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(input), nil
}
