package action

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ExitLabel is the menu entry that ends the session. It maps to no statement.
const ExitLabel = "Exit"

type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindDecimal
	KindChoice
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindChoice:
		return "choice"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Numeric reports whether answers of this kind are coerced to a number.
func (k Kind) Numeric() bool {
	return k == KindInteger || k == KindDecimal
}

type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Optional bool
}

type Question struct {
	Field    string
	Label    string
	Kind     Kind
	Optional bool
	Options  []string
}

// Action maps one menu label to one parameterized statement. Bind lists field
// names in the statement's positional parameter order. An empty Success means
// the returned rows are shown as a table.
type Action struct {
	Name      string
	Intro     string
	Fields    []Field
	Statement string
	Bind      []string
	Success   string
}

type Statement struct {
	Text   string
	Params []any
}

// CoercionError reports an answer that could not be converted to its
// field's declared kind.
type CoercionError struct {
	Field string
	Kind  Kind
	Input string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("field %s: %q is not a valid %s", e.Field, e.Input, e.Kind)
}

func (a Action) Questions() []Question {
	questions := make([]Question, 0, len(a.Fields))
	for _, f := range a.Fields {
		questions = append(questions, Question{Field: f.Name, Label: f.Label, Kind: f.Kind, Optional: f.Optional})
	}
	return questions
}

// Coerce converts an answer to the question's kind using the same rules as
// Build, so a prompt can reject input before the action runs.
func (q Question) Coerce(input string) (any, error) {
	return coerce(Field{Name: q.Field, Label: q.Label, Kind: q.Kind, Optional: q.Optional}, input)
}

// ShowsRows reports whether a successful run renders its result set.
func (a Action) ShowsRows() bool {
	return a.Success == ""
}

func (a Action) Build(raw map[string]string) (Statement, error) {
	values := make(map[string]any, len(a.Fields))
	for _, f := range a.Fields {
		v, err := coerce(f, raw[f.Name])
		if err != nil {
			return Statement{}, err
		}
		values[f.Name] = v
	}

	params := make([]any, 0, len(a.Bind))
	for _, name := range a.Bind {
		v, ok := values[name]
		if !ok {
			return Statement{}, fmt.Errorf("action %s: bind references unknown field %q", a.Name, name)
		}
		params = append(params, v)
	}
	return Statement{Text: a.Statement, Params: params}, nil
}

func coerce(f Field, input string) (any, error) {
	if !f.Kind.Numeric() {
		return input, nil
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" && f.Optional {
		return nil, nil
	}

	switch f.Kind {
	case KindInteger:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, &CoercionError{Field: f.Name, Kind: f.Kind, Input: input}
		}
		return n, nil
	default:
		n, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, &CoercionError{Field: f.Name, Kind: f.Kind, Input: input}
		}
		return n, nil
	}
}
