package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sampleRows() []Row {
	return []Row{
		{
			{Name: "id", Value: "abc123"},
			{Name: "title", Value: "First video"},
			{Name: "views", Value: "120"},
		},
		{
			{Name: "id", Value: "def456"},
			{Name: "title", Value: "Second video"},
			{Name: "views", Value: "7"},
		},
	}
}

func TestRender_JSONRoundTrip(t *testing.T) {
	rows := sampleRows()

	var buf bytes.Buffer
	if err := Render(&buf, rows, FormatJSON); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != len(rows) {
		t.Fatalf("decoded %d rows, want %d", len(decoded), len(rows))
	}
	for i, row := range rows {
		for _, f := range row {
			if decoded[i][f.Name] != f.Value {
				t.Errorf("row %d field %q = %q, want %q", i, f.Name, decoded[i][f.Name], f.Value)
			}
		}
	}
}

func TestRender_JSONPreservesFieldOrder(t *testing.T) {
	rows := []Row{{
		{Name: "zebra", Value: "1"},
		{Name: "apple", Value: "2"},
		{Name: "mango", Value: "3"},
	}}

	var buf bytes.Buffer
	if err := Render(&buf, rows, FormatJSON); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	zebra := strings.Index(out, `"zebra"`)
	apple := strings.Index(out, `"apple"`)
	mango := strings.Index(out, `"mango"`)
	if !(zebra < apple && apple < mango) {
		t.Errorf("JSON key order not preserved: %s", out)
	}
}

func TestRender_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil, FormatJSON); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("Render(nil, json) = %q, want []", got)
	}
}

func TestRender_CSVEmptyEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil, FormatCSV); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Render(nil, csv) = %q, want empty output (not even a header)", buf.String())
	}
}

func TestRender_CSVHeaderFromFirstRow(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleRows(), FormatCSV); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, want 3 (header + 2 rows)", len(lines))
	}
	if lines[0] != "id,title,views" {
		t.Errorf("header = %q, want %q", lines[0], "id,title,views")
	}
	if lines[1] != "abc123,First video,120" {
		t.Errorf("first record = %q", lines[1])
	}
}

func TestRender_CSVQuoting(t *testing.T) {
	rows := []Row{{
		{Name: "id", Value: "abc"},
		{Name: "title", Value: `has "quotes", and commas`},
	}}

	var buf bytes.Buffer
	if err := Render(&buf, rows, FormatCSV); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[1] != `abc,"has ""quotes"", and commas"` {
		t.Errorf("record = %q, want RFC 4180 quoting", lines[1])
	}
}

func TestRender_TableTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("x", 80)
	rows := []Row{{
		{Name: "id", Value: "abc"},
		{Name: "title", Value: long},
	}}

	var buf bytes.Buffer
	if err := Render(&buf, rows, FormatTable); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if strings.Contains(buf.String(), long) {
		t.Error("table output contains untruncated 80-char value")
	}
	if !strings.Contains(buf.String(), strings.Repeat("x", maxCellWidth)) {
		t.Errorf("table output missing %d-char truncation", maxCellWidth)
	}
}

func TestRender_TableRightJustifiesNumericColumns(t *testing.T) {
	rows := []Row{
		{
			{Name: "title", Value: "one"},
			{Name: "views", Value: "5"},
		},
		{
			{Name: "title", Value: "two"},
			{Name: "views", Value: "12345"},
		},
	}

	var buf bytes.Buffer
	if err := Render(&buf, rows, FormatTable); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !strings.HasSuffix(lines[0], "    5") {
		t.Errorf("numeric cell not right-justified: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "12345") {
		t.Errorf("numeric column width wrong: %q", lines[1])
	}
}

func TestRender_TableEmptyEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil, FormatTable); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Render(nil, table) = %q, want empty output", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "csv", "json"} {
		if _, err := ParseFormat(valid); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", valid, err)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error(`ParseFormat("yaml") error = nil, want error`)
	}
}
