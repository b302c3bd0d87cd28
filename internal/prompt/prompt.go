package prompt

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"employeetracker/internal/action"
)

// Prompter collects answers for an ordered list of questions, keyed by field.
// For choice questions the answer is always one of the offered options.
type Prompter interface {
	Ask(ctx context.Context, questions []action.Question) (map[string]string, error)
}

var ErrScriptExhausted = errors.New("prompt script exhausted")

// Script is a non-interactive Prompter that replays one answer set per Ask.
type Script struct {
	responses []map[string]string
	asked     [][]action.Question
}

func NewScript(responses ...map[string]string) *Script {
	return &Script{responses: responses}
}

// Select queues a response answering a menu question with label.
func (s *Script) Select(label string) *Script {
	s.responses = append(s.responses, map[string]string{"action": label})
	return s
}

// Answer queues a response for an action's questions.
func (s *Script) Answer(answers map[string]string) *Script {
	s.responses = append(s.responses, answers)
	return s
}

func (s *Script) Ask(ctx context.Context, questions []action.Question) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.asked = append(s.asked, questions)
	if len(s.responses) == 0 {
		return nil, ErrScriptExhausted
	}
	next := s.responses[0]
	s.responses = s.responses[1:]

	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		value := next[q.Field]
		if q.Kind == action.KindChoice && !slices.Contains(q.Options, value) {
			return nil, fmt.Errorf("answer %q for %s is not one of the offered options", value, q.Field)
		}
		answers[q.Field] = value
	}
	return answers, nil
}

// Asked returns every question list passed to Ask, in call order.
func (s *Script) Asked() [][]action.Question {
	return s.asked
}

func (s *Script) Remaining() int {
	return len(s.responses)
}
