package api

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/youtube/v3"
)

// ListUploads returns playlist items from the given uploads playlist, in
// publication order as returned by the API, up to limit (0 = all).
func (c *Client) ListUploads(ctx context.Context, uploadsID string, limit int64, parts []string) ([]*youtube.PlaylistItem, error) {
	pageSize := int64(maxBatchIDs)
	if limit > 0 && limit < pageSize {
		pageSize = limit
	}

	items, err := Paginate(func(pageToken string) ([]*youtube.PlaylistItem, string, error) {
		resp, err := c.svc.PlaylistItems.List(parts).
			PlaylistId(uploadsID).
			MaxResults(pageSize).
			PageToken(pageToken).
			Context(ctx).
			Do()
		if err != nil {
			return nil, "", wrapError(err)
		}
		return resp.Items, resp.NextPageToken, nil
	}, limit)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// VideoDetails fetches full video records for the given ids, batching the
// underlying detail calls. Deleted or inaccessible ids are absent from the
// result map.
func (c *Client) VideoDetails(ctx context.Context, ids []string, parts []string) (map[string]*youtube.Video, error) {
	return fetchByID(ids, func(chunk []string) ([]*youtube.Video, error) {
		resp, err := c.svc.Videos.List(parts).
			Id(chunk...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, wrapError(err)
		}
		return resp.Items, nil
	}, func(v *youtube.Video) string { return v.Id })
}

// GetVideo fetches a single video's full record.
func (c *Client) GetVideo(ctx context.Context, id string, parts []string) (*youtube.Video, error) {
	resp, err := c.svc.Videos.List(parts).Id(id).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s: %w", id, ErrNotFound)
	}
	return resp.Items[0], nil
}

// UpdateVideo issues a whole-object update for the video's snippet and
// status. The API replaces these sub-objects in full, so the caller must
// send them complete, not as a partial patch.
func (c *Client) UpdateVideo(ctx context.Context, video *youtube.Video) error {
	_, err := c.svc.Videos.Update([]string{"snippet", "status"}, video).Context(ctx).Do()
	return wrapError(err)
}

// DeleteVideo permanently deletes a video.
func (c *Client) DeleteVideo(ctx context.Context, id string) error {
	return wrapError(c.svc.Videos.Delete(id).Context(ctx).Do())
}

// UploadVideo uploads media from r as a new video using the API's resumable
// upload. progress, if non-nil, receives (current, total) byte counts as
// chunks complete.
func (c *Client) UploadVideo(ctx context.Context, video *youtube.Video, r io.Reader, chunkSize int, mimeType string, progress func(current, total int64)) (*youtube.Video, error) {
	call := c.svc.Videos.Insert([]string{"snippet", "status"}, video).
		Media(r, googleapi.ChunkSize(chunkSize), googleapi.ContentType(mimeType)).
		Context(ctx)
	if progress != nil {
		call.ProgressUpdater(progress)
	}

	uploaded, err := call.Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return uploaded, nil
}

// SetThumbnail uploads a custom thumbnail image for a video.
func (c *Client) SetThumbnail(ctx context.Context, videoID string, r io.Reader, mimeType string) error {
	_, err := c.svc.Thumbnails.Set(videoID).
		Media(r, googleapi.ContentType(mimeType)).
		Context(ctx).
		Do()
	return wrapError(err)
}
