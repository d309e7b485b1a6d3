package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/api/youtube/v3"
)

func newSearchCmd() *cobra.Command {
	var (
		limit        int64
		resourceType string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search your channel content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, _, err := newClient(ctx)
			if err != nil {
				return err
			}

			ch, err := client.MyChannel(ctx)
			if err != nil {
				return err
			}

			results, err := client.Search(ctx, ch.Id, args[0], resourceType, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				return printJSON(out, results)
			}
			if format != "table" {
				return fmt.Errorf("invalid format %q (use table or json)", format)
			}

			for _, result := range results {
				fmt.Fprintf(out, "%s  %s  %s\n",
					searchResultID(result.Id),
					dateOnly(result.Snippet.PublishedAt),
					clip(result.Snippet.Title, 55))
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&limit, "limit", "n", 10, "max results")
	cmd.Flags().StringVar(&resourceType, "type", "video", "result type (video, playlist, channel)")
	cmd.Flags().StringVar(&format, "format", "table", "output format (table, json)")
	return cmd
}

func searchResultID(id *youtube.ResourceId) string {
	rid := ""
	switch {
	case strings.Contains(id.Kind, "video"):
		rid = id.VideoId
	case strings.Contains(id.Kind, "playlist"):
		rid = id.PlaylistId
	default:
		rid = id.ChannelId
	}
	if rid == "" {
		return "?"
	}
	return rid
}
