// Package bulk implements CSV-driven bulk updates of video metadata.
//
// The input CSV requires an id column. Optional columns title, tags
// (pipe-separated), category_id, and status treat a blank cell as "leave
// unchanged". The description column is the exception: once the column is
// present, its cell value overwrites the remote description even when blank.
// That asymmetry is inherited behavior that existing spreadsheets rely on,
// so it is kept rather than fixed.
package bulk

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/youtube/v3"
)

// ErrMissingIDColumn indicates the CSV header has no id column.
var ErrMissingIDColumn = errors.New("csv must have an 'id' column")

// Row is one parsed CSV record. Blank optional fields mean "unchanged";
// Description is nil when the column was absent from the file.
type Row struct {
	ID          string
	Title       string
	Description *string
	Tags        string
	CategoryID  string
	Status      string
}

// Read parses the bulk-update CSV. The first record is the header; a header
// without an id column is a validation error.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["id"]; !ok {
		return nil, ErrMissingIDColumn
	}

	cell := func(record []string, name string) string {
		if i, ok := col[name]; ok && i < len(record) {
			return record[i]
		}
		return ""
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}

		row := Row{
			ID:         strings.TrimSpace(cell(record, "id")),
			Title:      cell(record, "title"),
			Tags:       cell(record, "tags"),
			CategoryID: cell(record, "category_id"),
			Status:     cell(record, "status"),
		}
		if _, ok := col["description"]; ok {
			desc := cell(record, "description")
			row.Description = &desc
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Apply overlays the row's populated fields onto the video's snippet and
// status, leaving everything else at its current remote value. It reports
// whether anything changed.
//
// Note the description asymmetry documented on the package: a non-nil
// Description always overwrites, even when empty.
func Apply(video *youtube.Video, row Row) bool {
	snippet := video.Snippet
	status := video.Status
	changed := false

	if title := strings.TrimSpace(row.Title); title != "" {
		snippet.Title = title
		changed = true
	}
	if row.Description != nil {
		snippet.Description = *row.Description
		if *row.Description == "" {
			snippet.ForceSendFields = append(snippet.ForceSendFields, "Description")
		}
		changed = true
	}
	if strings.TrimSpace(row.Tags) != "" {
		snippet.Tags = splitTags(row.Tags)
		changed = true
	}
	if categoryID := strings.TrimSpace(row.CategoryID); categoryID != "" {
		snippet.CategoryId = categoryID
		changed = true
	}
	if privacy := strings.TrimSpace(row.Status); privacy != "" {
		status.PrivacyStatus = privacy
		changed = true
	}

	return changed
}

// splitTags splits a pipe-separated tag cell, trimming whitespace and
// dropping empty entries.
func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, "|") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
