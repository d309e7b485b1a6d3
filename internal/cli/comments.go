package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCommentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Comment operations",
	}
	cmd.AddCommand(newCommentsListCmd(), newCommentsReplyCmd())
	return cmd
}

func newCommentsListCmd() *cobra.Command {
	var (
		limit  int64
		order  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "list VIDEO_ID",
		Short: "List top-level comments on a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, _, err := newClient(ctx)
			if err != nil {
				return err
			}

			threads, err := client.CommentThreads(ctx, args[0], limit, order)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				return printJSON(out, threads)
			}
			if format != "table" {
				return fmt.Errorf("invalid format %q (use table or json)", format)
			}

			for _, thread := range threads {
				top := thread.Snippet.TopLevelComment.Snippet
				fmt.Fprintf(out, "[%s]  %s  %s  (%d likes, %d replies)\n",
					thread.Id,
					dateOnly(top.PublishedAt),
					top.AuthorDisplayName,
					top.LikeCount,
					thread.Snippet.TotalReplyCount)
				fmt.Fprintf(out, "  %s\n\n", clip(flatten(top.TextDisplay), 120))
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&limit, "limit", "n", 20, "max results")
	cmd.Flags().StringVar(&order, "order", "relevance", "sort order (relevance, time)")
	cmd.Flags().StringVar(&format, "format", "table", "output format (table, json)")
	return cmd
}

func newCommentsReplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reply COMMENT_ID TEXT",
		Short: "Reply to a comment thread",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, _, err := newClient(ctx)
			if err != nil {
				return err
			}
			if err := client.ReplyToComment(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Reply posted.")
			return nil
		},
	}
}
