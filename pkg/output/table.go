package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table collects rows and renders them as aligned columns with an
// underlined header.
type Table struct {
	w       *tabwriter.Writer
	headers []string
	rows    [][]string
}

// NewTableTo creates a table that renders to w.
func NewTableTo(w io.Writer, headers ...string) *Table {
	return &Table{
		w:       tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
		headers: headers,
	}
}

// AddRow appends one row.
func (t *Table) AddRow(values ...string) *Table {
	t.rows = append(t.rows, values)
	return t
}

// Render writes the table and flushes.
func (t *Table) Render() error {
	if len(t.headers) > 0 {
		underline := make([]string, len(t.headers))
		for i, h := range t.headers {
			underline[i] = strings.Repeat("-", len(h))
		}
		fmt.Fprintln(t.w, strings.Join(t.headers, "\t"))
		fmt.Fprintln(t.w, strings.Join(underline, "\t"))
	}
	for _, row := range t.rows {
		fmt.Fprintln(t.w, strings.Join(row, "\t"))
	}
	return t.w.Flush()
}
