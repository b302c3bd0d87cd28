package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"employeetracker/internal/action"
	"employeetracker/internal/prompt"
	"employeetracker/internal/render"
	"employeetracker/internal/store"
)

// Store is the part of store.Store a session needs.
type Store interface {
	Execute(ctx context.Context, statement string, params []any) (*store.Result, error)
	Release(ctx context.Context) error
}

type State int

const (
	StateRunning State = iota
	StateAwaitingSelection
	StateExecutingAction
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateAwaitingSelection:
		return "awaiting-selection"
	case StateExecutingAction:
		return "executing-action"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Controller struct {
	store    Store
	prompter prompt.Prompter
	renderer render.Renderer
	actions  *action.Set
	logger   *zap.Logger
}

type Option func(*Controller)

func WithActions(set *action.Set) Option {
	return func(c *Controller) { c.actions = set }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

func New(db Store, prompter prompt.Prompter, renderer render.Renderer, opts ...Option) *Controller {
	c := &Controller{
		store:    db,
		prompter: prompter,
		renderer: renderer,
		actions:  action.Default(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run drives the menu loop until the operator exits or the prompter fails.
// The store is released exactly once before Run returns.
func (c *Controller) Run(ctx context.Context) (err error) {
	defer func() {
		if releaseErr := c.store.Release(ctx); releaseErr != nil {
			c.logger.Warn("Releasing store failed", zap.Error(releaseErr))
			err = errors.Join(err, fmt.Errorf("releasing store: %w", releaseErr))
		}
	}()

	state := StateRunning
	var selected action.Action
	for state != StateTerminated {
		c.logger.Debug("Session state", zap.Stringer("state", state))
		switch state {
		case StateRunning:
			state = StateAwaitingSelection
		case StateAwaitingSelection:
			state, selected, err = c.awaitSelection(ctx)
			if err != nil {
				return err
			}
		case StateExecutingAction:
			if err := c.Perform(ctx, selected); err != nil {
				return err
			}
			state = StateAwaitingSelection
		}
	}

	c.renderer.Line("Goodbye!")
	return nil
}

func (c *Controller) awaitSelection(ctx context.Context) (State, action.Action, error) {
	menu := c.actions.MenuQuestion()
	answers, err := c.prompter.Ask(ctx, []action.Question{menu})
	if err != nil {
		return StateTerminated, action.Action{}, fmt.Errorf("reading menu selection: %w", err)
	}

	label := answers[menu.Field]
	if label == action.ExitLabel {
		c.logger.Info("Exit selected")
		return StateTerminated, action.Action{}, nil
	}

	selected, ok := c.actions.Lookup(label)
	if !ok {
		c.logger.Warn("Unknown menu selection", zap.String("selection", label))
		c.renderer.Line(fmt.Sprintf("Unknown selection %q, please choose again.", label))
		return StateAwaitingSelection, action.Action{}, nil
	}
	return StateExecutingAction, selected, nil
}

// Perform runs one action: prompt, build, execute, render. Statement and
// coercion failures are shown to the operator and do not return an error;
// only prompter failures do.
func (c *Controller) Perform(ctx context.Context, a action.Action) error {
	logger := c.logger.With(zap.String("action", a.Name))
	if a.Intro != "" {
		c.renderer.Line(a.Intro)
	}

	answers := map[string]string{}
	if questions := a.Questions(); len(questions) > 0 {
		var err error
		answers, err = c.prompter.Ask(ctx, questions)
		if err != nil {
			return fmt.Errorf("collecting answers for %s: %w", a.Name, err)
		}
	}

	stmt, err := a.Build(answers)
	if err != nil {
		logger.Warn("Invalid answer", zap.Error(err))
		c.renderer.Line(fmt.Sprintf("Invalid input: %v", err))
		return nil
	}

	logger.Debug("Executing statement", zap.Int("params", len(stmt.Params)))
	res, err := c.store.Execute(ctx, stmt.Text, stmt.Params)
	if err != nil {
		logger.Warn("Statement failed", zap.Error(err))
		c.renderer.Line(fmt.Sprintf("Error executing query: %v", err))
		return nil
	}

	if a.ShowsRows() {
		logger.Debug("Statement returned rows", zap.Int("rows", res.Len()))
		c.renderer.Table(res)
		return nil
	}
	c.renderer.Line(a.Success)
	return nil
}
