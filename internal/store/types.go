package store

// Row maps column name to a scalar value.
type Row map[string]any

// Result keeps the column order reported by the driver.
type Result struct {
	Columns []string
	Rows    []Row
}

func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}
