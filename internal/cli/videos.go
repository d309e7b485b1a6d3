package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/api/youtube/v3"

	"ytctl/internal/render"
)

func newVideosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "videos",
		Short: "Video operations",
	}
	cmd.AddCommand(
		newVideosListCmd(),
		newVideosGetCmd(),
		newVideosUploadCmd(),
		newVideosUpdateCmd(),
		newVideosDeleteCmd(),
		newVideosThumbnailCmd(),
	)
	return cmd
}

func newVideosListCmd() *cobra.Command {
	var (
		limit  int64
		status string
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List channel videos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
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

			items, err := client.ListUploads(ctx, uploadsID, limit, []string{"snippet", "contentDetails"})
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ContentDetails.VideoId)
			}

			details, err := client.VideoDetails(ctx, ids, []string{"snippet", "status", "statistics"})
			if err != nil {
				return err
			}

			if status != "" {
				filtered := ids[:0]
				for _, id := range ids {
					if d, ok := details[id]; ok && d.Status != nil && d.Status.PrivacyStatus == status {
						filtered = append(filtered, id)
					}
				}
				ids = filtered
			}

			rows := make([]render.Row, 0, len(ids))
			for _, id := range ids {
				rows = append(rows, videoListRow(id, details[id]))
			}
			return render.Render(cmd.OutOrStdout(), rows, f)
		},
	}

	cmd.Flags().Int64VarP(&limit, "limit", "n", 50, "max results")
	cmd.Flags().StringVar(&status, "status", "", "filter by privacy status (public, private, unlisted)")
	cmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json)")
	return cmd
}

// videoListRow condenses one video into the list columns. A nil detail means
// the video exists in the uploads playlist but its record is gone.
func videoListRow(id string, d *youtube.Video) render.Row {
	title := "(deleted)"
	published := ""
	status := "?"
	if d != nil && d.Snippet != nil {
		title = d.Snippet.Title
		published = dateOnly(d.Snippet.PublishedAt)
	}
	if d != nil && d.Status != nil {
		status = d.Status.PrivacyStatus
	}

	var stats *youtube.VideoStatistics
	if d != nil {
		stats = d.Statistics
	}

	return render.Row{
		{Name: "id", Value: id},
		{Name: "title", Value: title},
		{Name: "published", Value: published},
		{Name: "status", Value: status},
		{Name: "views", Value: videoCount(stats, func(st *youtube.VideoStatistics) uint64 { return st.ViewCount })},
		{Name: "likes", Value: videoCount(stats, func(st *youtube.VideoStatistics) uint64 { return st.LikeCount })},
		{Name: "comments", Value: videoCount(stats, func(st *youtube.VideoStatistics) uint64 { return st.CommentCount })},
		{Name: "url", Value: "https://youtu.be/" + id},
	}
}

func videoCount(st *youtube.VideoStatistics, pick func(*youtube.VideoStatistics) uint64) string {
	if st == nil {
		return "?"
	}
	return formatCount(pick(st))
}

func newVideosGetCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "get VIDEO_ID",
		Short: "Get full details for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, _, err := newClient(ctx)
			if err != nil {
				return err
			}

			video, err := client.GetVideo(ctx, args[0],
				[]string{"snippet", "status", "statistics", "contentDetails", "localizations"})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				return printJSON(out, video)
			}
			if format != "table" {
				return fmt.Errorf("invalid format %q (use table or json)", format)
			}

			s := video.Snippet
			st := video.Status

			published := s.PublishedAt
			if published == "" {
				published = "not published"
			}
			if st.PublishAt != "" {
				published = "scheduled for " + st.PublishAt
			}

			duration := "?"
			if video.ContentDetails != nil {
				duration = video.ContentDetails.Duration
			}

			fmt.Fprintf(out, "Title:        %s\n", s.Title)
			fmt.Fprintf(out, "ID:           %s\n", video.Id)
			fmt.Fprintf(out, "URL:          https://youtu.be/%s\n", video.Id)
			fmt.Fprintf(out, "Status:       %s\n", st.PrivacyStatus)
			fmt.Fprintf(out, "Published:    %s\n", published)
			fmt.Fprintf(out, "Duration:     %s\n", duration)
			fmt.Fprintf(out, "Views:        %s\n", videoCount(video.Statistics, func(vs *youtube.VideoStatistics) uint64 { return vs.ViewCount }))
			fmt.Fprintf(out, "Likes:        %s\n", videoCount(video.Statistics, func(vs *youtube.VideoStatistics) uint64 { return vs.LikeCount }))
			fmt.Fprintf(out, "Comments:     %s\n", videoCount(video.Statistics, func(vs *youtube.VideoStatistics) uint64 { return vs.CommentCount }))
			fmt.Fprintf(out, "Category ID:  %s\n", s.CategoryId)

			shown := s.Tags
			suffix := ""
			if len(shown) > 8 {
				shown = shown[:8]
				suffix = "..."
			}
			fmt.Fprintf(out, "Tags (%d):   %s%s\n", len(s.Tags), strings.Join(shown, ", "), suffix)

			description := s.Description
			if description == "" {
				description = "(none)"
			}
			fmt.Fprintf(out, "\nDescription:\n%s\n", description)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format (table, json)")
	return cmd
}

// videoMIMETypes maps known video file extensions to their MIME type.
// Anything else uploads as video/* and lets the service sniff it.
var videoMIMETypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".flv":  "video/x-flv",
	".wmv":  "video/x-ms-wmv",
	".m4v":  "video/x-m4v",
}

func videoMIME(path string) string {
	if mime, ok := videoMIMETypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mime
	}
	return "video/*"
}

func newVideosUploadCmd() *cobra.Command {
	var (
		title       string
		description string
		tags        string
		category    string
		privacy     string
		schedule    string
	)

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a video file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("file not found: %s", path)
				}
				return err
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return err
			}

			if title == "" {
				title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			video := &youtube.Video{
				Snippet: &youtube.VideoSnippet{
					Title:       title,
					Description: description,
					Tags:        splitCommaTags(tags),
					CategoryId:  category,
				},
				Status: &youtube.VideoStatus{
					PrivacyStatus: privacy,
					// Made-for-kids must be declared explicitly, including
					// the false case, or the service rejects the upload.
					SelfDeclaredMadeForKids: false,
					ForceSendFields:         []string{"SelfDeclaredMadeForKids"},
				},
			}
			if schedule != "" {
				video.Status.PublishAt = schedule
				video.Status.PrivacyStatus = "private"
			}

			ctx := cmd.Context()
			client, cfg, err := newClient(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Uploading: %s  (%d MB)\n", filepath.Base(path), info.Size()/(1024*1024))

			uploaded, err := client.UploadVideo(ctx, video, f, cfg.UploadChunkSize, videoMIME(path),
				func(current, total int64) {
					if total > 0 {
						fmt.Fprintf(out, "\r  Progress: %3d%%", current*100/total)
					}
				})
			fmt.Fprintln(out)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Upload complete!")
			fmt.Fprintf(out, "  Video ID: %s\n", uploaded.Id)
			fmt.Fprintf(out, "  URL:      https://youtu.be/%s\n", uploaded.Id)
			if schedule != "" {
				fmt.Fprintf(out, "  Status:   %s (publishes %s)\n", video.Status.PrivacyStatus, schedule)
			} else {
				fmt.Fprintf(out, "  Status:   %s\n", video.Status.PrivacyStatus)
			}

			fmt.Fprintln(out, "\nNext steps:")
			fmt.Fprintf(out, "  Set thumbnail:   ytctl videos thumbnail %s thumb.jpg\n", uploaded.Id)
			fmt.Fprintf(out, "  Update metadata: ytctl videos update %s --title '...'\n", uploaded.Id)
			if video.Status.PrivacyStatus == "private" {
				fmt.Fprintf(out, "  Publish now:     ytctl videos update %s --privacy public\n", uploaded.Id)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "video title (defaults to filename)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "video description")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags")
	cmd.Flags().StringVar(&category, "category", "22", "category ID (default 22 = People & Blogs)")
	cmd.Flags().StringVar(&privacy, "privacy", "private", "privacy status (public, private, unlisted)")
	cmd.Flags().StringVar(&schedule, "schedule", "", "schedule publish at this UTC datetime, e.g. 2026-12-31T18:00:00Z")
	return cmd
}

// errNoChanges signals an update request with zero effective field changes.
// No write is issued and the process exits non-zero.
var errNoChanges = errors.New("nothing to update, provide at least one field to change")

// videoUpdate carries the fields an update supplies. A nil pointer means the
// flag was not given and the current remote value stays untouched.
type videoUpdate struct {
	Title       *string
	Description *string
	Tags        *string
	Category    *string
	Privacy     *string
	PublishAt   *string
}

// applyVideoUpdate overlays the supplied fields onto the fetched video.
// Scheduling a publish time forces the video private until then. An empty
// description is a deliberate clear and is force-sent.
func applyVideoUpdate(video *youtube.Video, u videoUpdate) error {
	changed := false

	if u.Title != nil {
		video.Snippet.Title = *u.Title
		changed = true
	}
	if u.Description != nil {
		video.Snippet.Description = *u.Description
		if *u.Description == "" {
			video.Snippet.ForceSendFields = append(video.Snippet.ForceSendFields, "Description")
		}
		changed = true
	}
	if u.Tags != nil {
		video.Snippet.Tags = splitCommaTags(*u.Tags)
		changed = true
	}
	if u.Category != nil {
		video.Snippet.CategoryId = *u.Category
		changed = true
	}
	if u.Privacy != nil {
		video.Status.PrivacyStatus = *u.Privacy
		changed = true
	}
	if u.PublishAt != nil {
		video.Status.PublishAt = *u.PublishAt
		video.Status.PrivacyStatus = "private"
		changed = true
	}

	if !changed {
		return errNoChanges
	}
	return nil
}

func splitCommaTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func newVideosUpdateCmd() *cobra.Command {
	var (
		title       string
		description string
		tags        string
		category    string
		privacy     string
		publishAt   string
	)

	cmd := &cobra.Command{
		Use:   "update VIDEO_ID",
		Short: "Update video metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var u videoUpdate
			if cmd.Flags().Changed("title") {
				u.Title = &title
			}
			if cmd.Flags().Changed("description") {
				u.Description = &description
			}
			if cmd.Flags().Changed("tags") {
				u.Tags = &tags
			}
			if cmd.Flags().Changed("category") {
				u.Category = &category
			}
			if cmd.Flags().Changed("privacy") {
				u.Privacy = &privacy
			}
			if cmd.Flags().Changed("publish-at") {
				u.PublishAt = &publishAt
			}

			ctx := cmd.Context()
			client, _, err := newClient(ctx)
			if err != nil {
				return err
			}

			video, err := client.GetVideo(ctx, args[0], []string{"snippet", "status"})
			if err != nil {
				return err
			}

			if err := applyVideoUpdate(video, u); err != nil {
				return err
			}
			if err := client.UpdateVideo(ctx, video); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Updated: https://youtu.be/%s\n", args[0])
			fmt.Fprintf(out, "  Title:  %s\n", video.Snippet.Title)
			fmt.Fprintf(out, "  Status: %s\n", video.Status.PrivacyStatus)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description (use '' to clear)")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags (replaces all existing tags)")
	cmd.Flags().StringVar(&category, "category", "", "category ID")
	cmd.Flags().StringVar(&privacy, "privacy", "", "privacy status (public, private, unlisted)")
	cmd.Flags().StringVar(&publishAt, "publish-at", "", "schedule publish datetime (UTC); sets status to private until then")
	return cmd
}

func newVideosDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete VIDEO_ID",
		Short: "Permanently delete a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirmDestructive(cmd,
					fmt.Sprintf("Permanently delete video %s? This cannot be undone. [y/N] ", args[0]))
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
			if err := client.DeleteVideo(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}

var thumbnailMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

func newVideosThumbnailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "thumbnail VIDEO_ID IMAGE",
		Short: "Set a custom thumbnail for a video",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID, path := args[0], args[1]

			f, err := os.Open(path)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("image not found: %s", path)
				}
				return err
			}
			defer f.Close()

			if info, err := f.Stat(); err == nil {
				if mb := float64(info.Size()) / (1024 * 1024); mb > 2 {
					logger.Warn().
						Float64("size_mb", mb).
						Msg("thumbnail exceeds the 2 MB limit")
				}
			}

			mime, ok := thumbnailMIMETypes[strings.ToLower(filepath.Ext(path))]
			if !ok {
				mime = "image/jpeg"
			}

			ctx := cmd.Context()
			client, _, err := newClient(ctx)
			if err != nil {
				return err
			}
			if err := client.SetThumbnail(ctx, videoID, f, mime); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Thumbnail set for: %s\n", videoID)
			return nil
		},
	}
}
