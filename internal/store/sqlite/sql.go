package sqlite

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"employeetracker/internal/store"
)

func (c *Client) Execute(ctx context.Context, statement string, params []any) (*store.Result, error) {
	query, args, err := rewritePlaceholders(statement, params)
	if err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running sql: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("getting columns: %w", err)
	}

	result := &store.Result{Columns: columns, Rows: make([]store.Row, 0)}

	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make(store.Row, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sql rows: %w", err)
	}

	return result, nil
}

// rewritePlaceholders turns $n markers into anonymous ? markers and orders
// params by occurrence. Quoted literals and identifiers are left untouched.
func rewritePlaceholders(statement string, params []any) (string, []any, error) {
	var out strings.Builder
	out.Grow(len(statement))
	args := make([]any, 0, len(params))

	var quote byte
	for i := 0; i < len(statement); i++ {
		ch := statement[i]

		if quote != 0 {
			out.WriteByte(ch)
			if ch == quote {
				quote = 0
			}
			continue
		}

		switch {
		case ch == '\'' || ch == '"':
			quote = ch
			out.WriteByte(ch)
		case ch == '$' && i+1 < len(statement) && isDigit(statement[i+1]):
			j := i + 1
			for j < len(statement) && isDigit(statement[j]) {
				j++
			}
			n, err := strconv.Atoi(statement[i+1 : j])
			if err != nil || n < 1 || n > len(params) {
				return "", nil, fmt.Errorf("placeholder %s has no matching parameter (got %d)", statement[i:j], len(params))
			}
			out.WriteByte('?')
			args = append(args, params[n-1])
			i = j - 1
		default:
			out.WriteByte(ch)
		}
	}

	return out.String(), args, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
