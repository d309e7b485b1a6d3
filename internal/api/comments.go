package api

import (
	"context"

	"google.golang.org/api/youtube/v3"
)

// maxCommentPage is the API's cap on comment threads per list call.
const maxCommentPage = 100

// CommentThreads returns up to limit top-level comment threads for a video.
// order is "relevance" or "time". This is a single-page call: the comment
// listing surface is a skim, not an export.
func (c *Client) CommentThreads(ctx context.Context, videoID string, limit int64, order string) ([]*youtube.CommentThread, error) {
	if limit <= 0 || limit > maxCommentPage {
		limit = maxCommentPage
	}

	resp, err := c.svc.CommentThreads.List([]string{"snippet", "replies"}).
		VideoId(videoID).
		MaxResults(limit).
		Order(order).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return resp.Items, nil
}

// ReplyToComment posts a reply under the given comment thread.
func (c *Client) ReplyToComment(ctx context.Context, parentID, text string) error {
	_, err := c.svc.Comments.Insert([]string{"snippet"}, &youtube.Comment{
		Snippet: &youtube.CommentSnippet{
			ParentId:     parentID,
			TextOriginal: text,
		},
	}).Context(ctx).Do()
	return wrapError(err)
}

// Search searches within the given channel's content.
// resourceType is "video", "playlist", or "channel".
func (c *Client) Search(ctx context.Context, channelID, query, resourceType string, limit int64) ([]*youtube.SearchResult, error) {
	if limit <= 0 || limit > maxBatchIDs {
		limit = maxBatchIDs
	}

	resp, err := c.svc.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Q(query).
		Type(resourceType).
		MaxResults(limit).
		Order("relevance").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return resp.Items, nil
}
