package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"employeetracker/internal/store"
)

func TestConsoleTable(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.Table(&store.Result{
		Columns: []string{"id", "name", "manager"},
		Rows: []store.Row{
			{"id": int64(1), "name": "Engineering", "manager": nil},
			{"id": int64(2), "name": "Finance", "manager": "Kunal Singh"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "Engineering")
	assert.Contains(t, out, "Kunal Singh")
	assert.Less(t, strings.Index(out, "Engineering"), strings.Index(out, "Finance"))
	assert.Less(t, strings.Index(out, "id"), strings.Index(out, "name"))
}

func TestConsoleTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Table(&store.Result{Columns: []string{"id"}})
	assert.Equal(t, "No rows found.\n", buf.String())

	buf.Reset()
	NewConsole(&buf).Table(nil)
	assert.Equal(t, "No rows found.\n", buf.String())
}

func TestConsoleLine(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Line("Department added successfully.")
	assert.Equal(t, "Department added successfully.\n", buf.String())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, ""},
		{"string", "Ada", "Ada"},
		{"bytes", []byte("120000.00"), "120000.00"},
		{"integer", int64(42), "42"},
		{"whole float", float64(150000), "150000"},
		{"fractional float", 99.5, "99.5"},
		{"time", time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), "2024-03-01 09:30:00"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.input); got != tt.expected {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
