package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ytctl/internal/render"
)

func newPlaylistsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playlists",
		Short: "Playlist operations",
	}
	cmd.AddCommand(
		newPlaylistsListCmd(),
		newPlaylistsCreateCmd(),
		newPlaylistsItemsCmd(),
		newPlaylistsAddCmd(),
		newPlaylistsRemoveCmd(),
		newPlaylistsDeleteCmd(),
	)
	return cmd
}

func newPlaylistsListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all channel playlists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, _, err := newClient(ctx)
			if err != nil {
				return err
			}

			playlists, err := client.ListMyPlaylists(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				return printJSON(out, playlists)
			}
			if format != "table" {
				return fmt.Errorf("invalid format %q (use table or json)", format)
			}

			rows := make([]render.Row, 0, len(playlists))
			for _, pl := range playlists {
				rows = append(rows, render.Row{
					{Name: "id", Value: pl.Id},
					{Name: "status", Value: pl.Status.PrivacyStatus},
					{Name: "videos", Value: strconv.FormatInt(pl.ContentDetails.ItemCount, 10)},
					{Name: "title", Value: pl.Snippet.Title},
				})
			}
			return render.Render(out, rows, render.FormatTable)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format (table, json)")
	return cmd
}

func newPlaylistsCreateCmd() *cobra.Command {
	var (
		description string
		privacy     string
	)

	cmd := &cobra.Command{
		Use:   "create TITLE",
		Short: "Create a new playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, _, err := newClient(ctx)
			if err != nil {
				return err
			}

			created, err := client.CreatePlaylist(ctx, args[0], description, privacy)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created: %s\n", created.Id)
			fmt.Fprintf(out, "URL:     https://www.youtube.com/playlist?list=%s\n", created.Id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "playlist description")
	cmd.Flags().StringVar(&privacy, "privacy", "public", "privacy status (public, private, unlisted)")
	return cmd
}

func newPlaylistsItemsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "items PLAYLIST_ID",
		Short: "List videos in a playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, _, err := newClient(ctx)
			if err != nil {
				return err
			}

			items, err := client.PlaylistItems(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				return printJSON(out, items)
			}
			if format != "table" {
				return fmt.Errorf("invalid format %q (use table or json)", format)
			}

			for i, item := range items {
				fmt.Fprintf(out, "%4d.  %s  %s\n",
					i+1, item.ContentDetails.VideoId, clip(item.Snippet.Title, 55))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format (table, json)")
	return cmd
}

func newPlaylistsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add PLAYLIST_ID VIDEO_ID",
		Short: "Add a video to a playlist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, _, err := newClient(ctx)
			if err != nil {
				return err
			}
			if err := client.AddPlaylistItem(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", args[1], args[0])
			return nil
		},
	}
}

func newPlaylistsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove PLAYLIST_ID VIDEO_ID",
		Short: "Remove a video from a playlist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, _, err := newClient(ctx)
			if err != nil {
				return err
			}
			if err := client.RemovePlaylistItem(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", args[1], args[0])
			return nil
		},
	}
}

func newPlaylistsDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete PLAYLIST_ID",
		Short: "Delete a playlist (videos are not deleted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirmDestructive(cmd,
					fmt.Sprintf("Delete playlist %s? [y/N] ", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			ctx := cmd.Context()
			client, _, err := newClient(ctx)
			if err != nil {
				return err
			}
			if err := client.DeletePlaylist(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted playlist: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}
