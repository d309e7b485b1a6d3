package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/api/youtube/v3"

	"ytctl/internal/render"
)

func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all channel videos to CSV or JSON (stdout)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			if f == render.FormatTable {
				return fmt.Errorf("invalid format %q (use csv or json)", format)
			}

			ctx := cmd.Context()
			client, _, err := newClient(ctx)
			if err != nil {
				return err
			}

			uploadsID, err := client.UploadsPlaylistID(ctx)
			if err != nil {
				return err
			}

			items, err := client.ListUploads(ctx, uploadsID, 0, []string{"contentDetails"})
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ContentDetails.VideoId)
			}

			details, err := client.VideoDetails(ctx, ids,
				[]string{"snippet", "status", "statistics", "contentDetails"})
			if err != nil {
				return err
			}

			rows := make([]render.Row, 0, len(ids))
			for _, id := range ids {
				d, ok := details[id]
				if !ok {
					continue
				}
				rows = append(rows, exportRow(id, d))
			}
			return render.Render(cmd.OutOrStdout(), rows, f)
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json)")
	return cmd
}

// exportRow flattens one video record into the export columns. Missing
// sub-objects produce empty cells, not placeholders: the export is meant to
// round-trip through spreadsheets and back into bulk-update.
func exportRow(id string, d *youtube.Video) render.Row {
	s := d.Snippet

	status := ""
	if d.Status != nil {
		status = d.Status.PrivacyStatus
	}
	duration := ""
	if d.ContentDetails != nil {
		duration = d.ContentDetails.Duration
	}
	views, likes, comments := "", "", ""
	if d.Statistics != nil {
		views = formatCount(d.Statistics.ViewCount)
		likes = formatCount(d.Statistics.LikeCount)
		comments = formatCount(d.Statistics.CommentCount)
	}

	return render.Row{
		{Name: "id", Value: id},
		{Name: "title", Value: s.Title},
		{Name: "description", Value: s.Description},
		{Name: "tags", Value: strings.Join(s.Tags, "|")},
		{Name: "category_id", Value: s.CategoryId},
		{Name: "published_at", Value: s.PublishedAt},
		{Name: "status", Value: status},
		{Name: "duration", Value: duration},
		{Name: "views", Value: views},
		{Name: "likes", Value: likes},
		{Name: "comments", Value: comments},
		{Name: "url", Value: "https://youtu.be/" + id},
	}
}
