package api

import (
	"context"
	"fmt"

	"google.golang.org/api/youtube/v3"
)

// ListMyPlaylists returns every playlist owned by the authenticated channel.
func (c *Client) ListMyPlaylists(ctx context.Context) ([]*youtube.Playlist, error) {
	return Paginate(func(pageToken string) ([]*youtube.Playlist, string, error) {
		resp, err := c.svc.Playlists.List([]string{"snippet", "contentDetails", "status"}).
			Mine(true).
			MaxResults(maxBatchIDs).
			PageToken(pageToken).
			Context(ctx).
			Do()
		if err != nil {
			return nil, "", wrapError(err)
		}
		return resp.Items, resp.NextPageToken, nil
	}, 0)
}

// CreatePlaylist creates a playlist and returns the created record.
func (c *Client) CreatePlaylist(ctx context.Context, title, description, privacy string) (*youtube.Playlist, error) {
	created, err := c.svc.Playlists.Insert([]string{"snippet", "status"}, &youtube.Playlist{
		Snippet: &youtube.PlaylistSnippet{
			Title:       title,
			Description: description,
		},
		Status: &youtube.PlaylistStatus{PrivacyStatus: privacy},
	}).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return created, nil
}

// DeletePlaylist deletes a playlist. The videos it references are untouched.
func (c *Client) DeletePlaylist(ctx context.Context, id string) error {
	return wrapError(c.svc.Playlists.Delete(id).Context(ctx).Do())
}

// PlaylistItems returns every item in the given playlist, in playlist order.
func (c *Client) PlaylistItems(ctx context.Context, playlistID string) ([]*youtube.PlaylistItem, error) {
	return Paginate(func(pageToken string) ([]*youtube.PlaylistItem, string, error) {
		resp, err := c.svc.PlaylistItems.List([]string{"snippet", "contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(maxBatchIDs).
			PageToken(pageToken).
			Context(ctx).
			Do()
		if err != nil {
			return nil, "", wrapError(err)
		}
		return resp.Items, resp.NextPageToken, nil
	}, 0)
}

// AddPlaylistItem appends a video to a playlist.
func (c *Client) AddPlaylistItem(ctx context.Context, playlistID, videoID string) error {
	_, err := c.svc.PlaylistItems.Insert([]string{"snippet"}, &youtube.PlaylistItem{
		Snippet: &youtube.PlaylistItemSnippet{
			PlaylistId: playlistID,
			ResourceId: &youtube.ResourceId{
				Kind:    "youtube#video",
				VideoId: videoID,
			},
		},
	}).Context(ctx).Do()
	return wrapError(err)
}

// RemovePlaylistItem removes a video from a playlist. The playlist-item id
// is looked up first; a video not present in the playlist is ErrNotFound.
func (c *Client) RemovePlaylistItem(ctx context.Context, playlistID, videoID string) error {
	resp, err := c.svc.PlaylistItems.List([]string{"id"}).
		PlaylistId(playlistID).
		VideoId(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return wrapError(err)
	}
	if len(resp.Items) == 0 {
		return fmt.Errorf("video %s in playlist %s: %w", videoID, playlistID, ErrNotFound)
	}
	return wrapError(c.svc.PlaylistItems.Delete(resp.Items[0].Id).Context(ctx).Do())
}
