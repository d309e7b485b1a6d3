package bulk_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/youtube/v3"

	"ytctl/internal/bulk"
)

func video(title, description string, tags []string) *youtube.Video {
	return &youtube.Video{
		Id: "vid",
		Snippet: &youtube.VideoSnippet{
			Title:       title,
			Description: description,
			Tags:        tags,
			CategoryId:  "22",
		},
		Status: &youtube.VideoStatus{PrivacyStatus: "private"},
	}
}

func TestRead_MissingIDColumn(t *testing.T) {
	_, err := bulk.Read(strings.NewReader("title,description\nA,B\n"))
	require.ErrorIs(t, err, bulk.ErrMissingIDColumn)
}

func TestRead_EmptyFile(t *testing.T) {
	rows, err := bulk.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRead_HeaderOnly(t *testing.T) {
	rows, err := bulk.Read(strings.NewReader("id,title\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRead_DescriptionColumnPresence(t *testing.T) {
	// Column present: Description is non-nil even for a blank cell.
	rows, err := bulk.Read(strings.NewReader("id,description\nabc,\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Description)
	assert.Equal(t, "", *rows[0].Description)

	// Column absent: Description is nil.
	rows, err = bulk.Read(strings.NewReader("id,title\nabc,New\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Description)
}

func TestRead_TrimsID(t *testing.T) {
	rows, err := bulk.Read(strings.NewReader("id,title\n  abc  ,New\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "abc", rows[0].ID)
}

func TestApply_NoFieldsMeansNoChange(t *testing.T) {
	v := video("Old", "old description", []string{"a"})

	changed := bulk.Apply(v, bulk.Row{ID: "vid"})

	assert.False(t, changed)
	assert.Equal(t, "Old", v.Snippet.Title)
	assert.Equal(t, "old description", v.Snippet.Description)
}

func TestApply_BlankOptionalCellsLeaveUnchanged(t *testing.T) {
	v := video("Old", "old description", []string{"a", "b"})

	changed := bulk.Apply(v, bulk.Row{
		ID:         "vid",
		Title:      "  ",
		Tags:       "",
		CategoryID: "",
		Status:     "",
	})

	assert.False(t, changed)
	assert.Equal(t, "Old", v.Snippet.Title)
	assert.Equal(t, []string{"a", "b"}, v.Snippet.Tags)
	assert.Equal(t, "22", v.Snippet.CategoryId)
	assert.Equal(t, "private", v.Status.PrivacyStatus)
}

func TestApply_BlankDescriptionOverwritesWhenColumnPresent(t *testing.T) {
	v := video("Old", "old description", nil)
	blank := ""

	changed := bulk.Apply(v, bulk.Row{ID: "vid", Description: &blank})

	assert.True(t, changed)
	assert.Equal(t, "", v.Snippet.Description)
	assert.Contains(t, v.Snippet.ForceSendFields, "Description")
}

func TestApply_OverlaysOnlySuppliedFields(t *testing.T) {
	v := video("Old", "keep me", []string{"keep"})

	changed := bulk.Apply(v, bulk.Row{ID: "vid", Title: "New", Status: "public"})

	assert.True(t, changed)
	assert.Equal(t, "New", v.Snippet.Title)
	assert.Equal(t, "public", v.Status.PrivacyStatus)
	assert.Equal(t, "keep me", v.Snippet.Description)
	assert.Equal(t, []string{"keep"}, v.Snippet.Tags)
	assert.Equal(t, "22", v.Snippet.CategoryId)
}

func TestApply_TagsPipeSeparated(t *testing.T) {
	v := video("Old", "", nil)

	changed := bulk.Apply(v, bulk.Row{ID: "vid", Tags: "go | cli ||  tools "})

	assert.True(t, changed)
	assert.Equal(t, []string{"go", "cli", "tools"}, v.Snippet.Tags)
}
