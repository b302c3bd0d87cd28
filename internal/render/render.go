package render

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"employeetracker/internal/store"
)

// Renderer is the session's output sink.
type Renderer interface {
	Table(res *store.Result)
	Line(msg string)
}

var _ Renderer = (*Console)(nil)

type Console struct {
	w      io.Writer
	border lipgloss.Style
	header lipgloss.Style
}

func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:      w,
		border: r.NewStyle().Foreground(lipgloss.Color("#636E72")),
		header: r.NewStyle().Bold(true).Padding(0, 1),
	}
}

func (c *Console) Table(res *store.Result) {
	if res.Len() == 0 {
		fmt.Fprintln(c.w, "No rows found.")
		return
	}

	rows := make([][]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		cells := make([]string, 0, len(res.Columns))
		for _, col := range res.Columns {
			cells = append(cells, FormatValue(row[col]))
		}
		rows = append(rows, cells)
	}

	cell := c.header.UnsetBold()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.border).
		Headers(res.Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return c.header
			}
			return cell
		})
	fmt.Fprintln(c.w, t.String())
}

func (c *Console) Line(msg string) {
	fmt.Fprintln(c.w, msg)
}

// FormatValue renders a driver scalar as table cell text.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		return val.Format(time.DateTime)
	default:
		return fmt.Sprint(val)
	}
}
