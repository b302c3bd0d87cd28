package postgres

import (
	"context"
	"database/sql/driver"
	"fmt"

	"employeetracker/internal/store"
)

func (c *Client) Execute(ctx context.Context, statement string, params []any) (*store.Result, error) {
	rows, err := c.pool.Query(ctx, statement, params...)
	if err != nil {
		return nil, fmt.Errorf("running sql: %w", err)
	}
	defer rows.Close()

	fieldDescriptions := rows.FieldDescriptions()
	result := &store.Result{
		Columns: make([]string, 0, len(fieldDescriptions)),
		Rows:    make([]store.Row, 0),
	}
	for _, fd := range fieldDescriptions {
		result.Columns = append(result.Columns, fd.Name)
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("getting row values: %w", err)
		}

		row := make(store.Row, len(fieldDescriptions))
		for i, fd := range fieldDescriptions {
			row[fd.Name] = normalize(values[i])
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sql rows: %w", err)
	}

	return result, nil
}

// normalize unwraps pgtype values such as Numeric into plain driver values.
func normalize(v any) any {
	valuer, ok := v.(driver.Valuer)
	if !ok {
		return v
	}
	out, err := valuer.Value()
	if err != nil {
		return v
	}
	return out
}
