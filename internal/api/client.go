// Package api wraps the YouTube Data API v3 for channel-management use.
//
// All calls are synchronous and attempted exactly once; errors propagate to
// the caller with the remote error code and message attached when the API
// provided them.
package api

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client is a thin wrapper over the YouTube Data API v3 service.
type Client struct {
	svc *youtube.Service
	log zerolog.Logger
}

// NewClient builds an authenticated API client from a token source.
func NewClient(ctx context.Context, ts oauth2.TokenSource, logger zerolog.Logger) (*Client, error) {
	svc, err := youtube.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Client{svc: svc, log: logger}, nil
}

// MyChannel returns the authenticated user's channel.
func (c *Client) MyChannel(ctx context.Context) (*youtube.Channel, error) {
	resp, err := c.svc.Channels.List([]string{"id", "snippet", "contentDetails", "statistics"}).
		Mine(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapError(err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("no YouTube channel for this account: %w", ErrNotFound)
	}
	return resp.Items[0], nil
}

// UploadsPlaylistID returns the id of the channel's uploads playlist, the
// playlist holding every video the channel has published.
func (c *Client) UploadsPlaylistID(ctx context.Context) (string, error) {
	ch, err := c.MyChannel(ctx)
	if err != nil {
		return "", err
	}
	if ch.ContentDetails == nil || ch.ContentDetails.RelatedPlaylists == nil {
		return "", fmt.Errorf("channel %s has no uploads playlist: %w", ch.Id, ErrNotFound)
	}
	return ch.ContentDetails.RelatedPlaylists.Uploads, nil
}
