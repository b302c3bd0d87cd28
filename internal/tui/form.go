package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"employeetracker/internal/action"
)

const listWidth = 48

type choiceItem string

func (i choiceItem) Title() string       { return string(i) }
func (i choiceItem) Description() string { return "" }
func (i choiceItem) FilterValue() string { return string(i) }

// form asks a fixed list of questions one after another.
type form struct {
	questions []action.Question
	current   int
	answers   map[string]string

	input   textinput.Model
	choices list.Model

	keys    KeyMap
	styles  Styles
	errMsg  string
	aborted bool
	done    bool
}

func newForm(questions []action.Question, keys KeyMap, styles Styles) *form {
	f := &form{
		questions: questions,
		answers:   make(map[string]string, len(questions)),
		keys:      keys,
		styles:    styles,
	}
	f.load()
	return f
}

// load prepares the widget for the current question.
func (f *form) load() {
	f.errMsg = ""
	q := f.questions[f.current]
	if q.Kind == action.KindChoice {
		items := make([]list.Item, 0, len(q.Options))
		for _, opt := range q.Options {
			items = append(items, choiceItem(opt))
		}
		delegate := list.NewDefaultDelegate()
		delegate.ShowDescription = false
		delegate.SetSpacing(0)

		l := list.New(items, delegate, listWidth, len(items))
		l.SetShowTitle(false)
		l.SetShowStatusBar(false)
		l.SetShowHelp(false)
		l.SetShowPagination(false)
		l.SetFilteringEnabled(false)
		l.DisableQuitKeybindings()
		f.choices = l
		return
	}

	ti := textinput.New()
	ti.CharLimit = 100
	if q.Kind.Numeric() {
		ti.Placeholder = "number"
		if q.Optional {
			ti.Placeholder = "number (optional)"
		}
	}
	ti.Focus()
	f.input = ti
}

func (f *form) Init() tea.Cmd {
	if f.questions[f.current].Kind == action.KindChoice {
		return nil
	}
	return textinput.Blink
}

func (f *form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	q := f.questions[f.current]

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.keys.Abort):
			f.aborted = true
			return f, tea.Quit
		case key.Matches(msg, f.keys.Submit):
			return f, f.submit()
		}
	}

	var cmd tea.Cmd
	if q.Kind == action.KindChoice {
		f.choices, cmd = f.choices.Update(msg)
		return f, cmd
	}
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *form) submit() tea.Cmd {
	q := f.questions[f.current]

	var value string
	if q.Kind == action.KindChoice {
		item, ok := f.choices.SelectedItem().(choiceItem)
		if !ok {
			return nil
		}
		value = string(item)
	} else {
		value = f.input.Value()
		if err := validate(q, value); err != nil {
			f.errMsg = err.Error()
			return nil
		}
	}
	f.answers[q.Field] = value

	if f.current == len(f.questions)-1 {
		f.done = true
		return tea.Quit
	}
	f.current++
	f.load()
	return f.Init()
}

func validate(q action.Question, value string) error {
	if _, err := q.Coerce(value); err == nil {
		return nil
	}
	switch {
	case strings.TrimSpace(value) == "":
		return fmt.Errorf("a number is required")
	case q.Kind == action.KindInteger:
		return fmt.Errorf("%q is not a whole number", value)
	default:
		return fmt.Errorf("%q is not a number", value)
	}
}

func (f *form) View() string {
	var b strings.Builder
	for i := 0; i < f.current; i++ {
		q := f.questions[i]
		fmt.Fprintf(&b, "%s %s\n", f.styles.Answered.Render("? "+q.Label), f.answers[q.Field])
	}

	q := f.questions[f.current]
	if f.done || f.aborted {
		fmt.Fprintf(&b, "%s %s\n", f.styles.Answered.Render("? "+q.Label), f.answers[q.Field])
		return b.String()
	}

	b.WriteString(f.styles.Question.Render("? "+q.Label) + "\n")
	if q.Kind == action.KindChoice {
		b.WriteString(f.choices.View())
	} else {
		b.WriteString(f.input.View())
	}
	b.WriteString("\n")
	if f.errMsg != "" {
		b.WriteString(f.styles.Error.Render(f.errMsg) + "\n")
	}
	b.WriteString(f.styles.Help.Render(f.keys.Submit.Help().Key+" "+f.keys.Submit.Help().Desc+" • "+f.keys.Abort.Help().Key+" "+f.keys.Abort.Help().Desc) + "\n")
	return b.String()
}
