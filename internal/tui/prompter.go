package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"employeetracker/internal/action"
	"employeetracker/internal/prompt"
)

var _ prompt.Prompter = (*Prompter)(nil)

// ErrAborted is returned when the operator leaves a prompt with esc or ctrl+c.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks questions with an inline bubbletea program per call.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	keys   KeyMap
	styles Styles
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     in,
		out:    out,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
}

func (p *Prompter) Ask(ctx context.Context, questions []action.Question) (map[string]string, error) {
	if len(questions) == 0 {
		return map[string]string{}, nil
	}

	program := tea.NewProgram(
		newForm(questions, p.keys, p.styles),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithContext(ctx),
	)
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}

	f, ok := final.(*form)
	if !ok {
		return nil, fmt.Errorf("running prompt: unexpected model %T", final)
	}
	if f.aborted {
		return nil, ErrAborted
	}
	return f.answers, nil
}
