// Package render formats row records as a fixed-width table, CSV, or JSON.
//
// Rendering is a pure transform: rows are never mutated, and the only
// failure mode is a write error on the destination.
package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Format selects the output encoding.
type Format string

// Supported output formats.
const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatCSV, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid format %q (use table, csv, or json)", s)
	}
}

// Field is one named display value within a row.
type Field struct {
	Name  string
	Value string
}

// Row is an ordered sequence of fields. Field order is significant: it
// drives column order in tables and CSV and key order in JSON output.
type Row []Field

// MarshalJSON emits the row as a JSON object preserving field order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// maxCellWidth caps textual table cells; longer values are truncated.
const maxCellWidth = 52

// Render writes rows to w in the requested format.
//
// Table output fixes each textual column to at most maxCellWidth characters
// and right-justifies numeric columns. CSV output derives its header from the
// first row's field names and emits nothing at all for zero rows. JSON output
// pretty-prints the full row sequence.
func Render(w io.Writer, rows []Row, format Format) error {
	switch format {
	case FormatCSV:
		return renderCSV(w, rows)
	case FormatJSON:
		return renderJSON(w, rows)
	default:
		return renderTable(w, rows)
	}
}

func renderJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func renderCSV(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)

	header := make([]string, len(rows[0]))
	for i, f := range rows[0] {
		header[i] = f.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for _, row := range rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = row[i].Value
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func renderTable(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	cols := len(rows[0])
	widths := make([]int, cols)
	numeric := make([]bool, cols)
	for i := range numeric {
		numeric[i] = true
	}

	for _, row := range rows {
		for i, f := range row {
			if i >= cols {
				break
			}
			if n := utf8.RuneCountInString(f.Value); n > widths[i] {
				widths[i] = n
			}
			if f.Value != "" && !isNumeric(f.Value) {
				numeric[i] = false
			}
		}
	}
	for i := range widths {
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}

	for _, row := range rows {
		cells := make([]string, 0, cols)
		for i, f := range row {
			if i >= cols {
				break
			}
			cells = append(cells, pad(truncate(f.Value, widths[i]), widths[i], numeric[i]))
		}
		line := strings.TrimRight(strings.Join(cells, "  "), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// truncate cuts s to at most width runes, with no ellipsis marker.
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width])
}

func pad(s string, width int, rightJustify bool) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	if rightJustify {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
