package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"employeetracker/internal/action"
)

type ActionInput struct {
	Answers map[string]string `json:"answers,omitempty" jsonschema:"answers keyed by field name"`
}

type ActionOutput struct {
	Columns []string         `json:"columns,omitempty"`
	Rows    []map[string]any `json:"rows,omitempty"`
	Message string           `json:"message,omitempty"`
}

func (s *Server) registerTools() {
	for _, a := range s.actions.Actions() {
		sdk.AddTool(s.mcp, &sdk.Tool{
			Name:        action.ToolName(a.Name),
			Description: describe(a),
		}, s.handleAction(a))
	}
}

func describe(a action.Action) string {
	if len(a.Fields) == 0 {
		return a.Name
	}
	fields := make([]string, 0, len(a.Fields))
	for _, f := range a.Fields {
		desc := f.Name + " (" + f.Kind.String()
		if f.Optional {
			desc += ", optional"
		}
		fields = append(fields, desc+")")
	}
	return fmt.Sprintf("%s. Answers: %s", a.Name, strings.Join(fields, ", "))
}

func (s *Server) handleAction(a action.Action) sdk.ToolHandlerFor[ActionInput, ActionOutput] {
	return func(ctx context.Context, req *sdk.CallToolRequest, input ActionInput) (*sdk.CallToolResult, ActionOutput, error) {
		if missing := missingAnswers(a, input.Answers); len(missing) > 0 {
			return nil, ActionOutput{}, fmt.Errorf("missing answers: %s", strings.Join(missing, ", "))
		}

		stmt, err := a.Build(input.Answers)
		if err != nil {
			return nil, ActionOutput{}, err
		}

		s.logger.Debug("Executing tool statement", zap.String("action", a.Name), zap.Int("params", len(stmt.Params)))
		res, err := s.db.Execute(ctx, stmt.Text, stmt.Params)
		if err != nil {
			s.logger.Warn("Tool statement failed", zap.String("action", a.Name), zap.Error(err))
			return nil, ActionOutput{}, fmt.Errorf("executing %s: %w", a.Name, err)
		}

		if !a.ShowsRows() {
			return nil, ActionOutput{Message: a.Success}, nil
		}
		rows := make([]map[string]any, 0, res.Len())
		for _, row := range res.Rows {
			rows = append(rows, map[string]any(row))
		}
		return nil, ActionOutput{Columns: res.Columns, Rows: rows}, nil
	}
}

func missingAnswers(a action.Action, answers map[string]string) []string {
	var missing []string
	for _, f := range a.Fields {
		if _, ok := answers[f.Name]; !ok && !f.Optional {
			missing = append(missing, f.Name)
		}
	}
	sort.Strings(missing)
	return missing
}
