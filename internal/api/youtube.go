package api

import (
	"context"
	"fmt"
	"log"

	"github.com/yt-dashboard/internal/models"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	// DefaultTopVideosLimit is the number of videos shown when no limit is given
	DefaultTopVideosLimit = 5

	// YouTube API maximum per request
	playlistPageSize = 50
)

var (
	channelParts      = []string{"snippet", "contentDetails", "statistics"}
	playlistItemParts = []string{"snippet", "contentDetails"}
	videoStatsParts   = []string{"statistics"}
)

// YouTubeClient fetches channel data from the YouTube Data API v3
type YouTubeClient struct {
	service *youtube.Service
}

// NewYouTubeClient creates a client authenticated with a static API key.
// Extra options are applied after the key, e.g. option.WithEndpoint.
func NewYouTubeClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*YouTubeClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: api key is required", ErrInvalidInput)
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &YouTubeClient{service: service}, nil
}

// LookupChannel fetches identity, statistics and the uploads playlist of a channel.
// It returns ErrChannelNotFound when no channel matches the id.
func (c *YouTubeClient) LookupChannel(ctx context.Context, channelID string) (*models.ChannelSummary, error) {
	if channelID == "" {
		return nil, fmt.Errorf("%w: channel id is required", ErrInvalidInput)
	}

	resp, err := c.service.Channels.List(channelParts).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstreamError("channels.list", err)
	}

	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channelID)
	}

	channel := resp.Items[0]
	if channel.ContentDetails == nil || channel.ContentDetails.RelatedPlaylists == nil ||
		channel.ContentDetails.RelatedPlaylists.Uploads == "" {
		return nil, malformed("channels.list", "channel %s has no uploads playlist", channelID)
	}

	summary := &models.ChannelSummary{
		ID:                  channel.Id,
		UploadsCollectionID: channel.ContentDetails.RelatedPlaylists.Uploads,
	}
	if summary.ID == "" {
		summary.ID = channelID
	}
	if s := channel.Snippet; s != nil {
		summary.Name = s.Title
		summary.Description = s.Description
		if s.Thumbnails != nil && s.Thumbnails.Default != nil {
			summary.ThumbnailURL = s.Thumbnails.Default.Url
		}
	}
	if st := channel.Statistics; st != nil {
		summary.SubscriberCount = int64(st.SubscriberCount)
		summary.ViewCount = int64(st.ViewCount)
		summary.VideoCount = int64(st.VideoCount)
	}

	return summary, nil
}

// TopVideos pages through an uploads playlist until at least limit entries are
// collected or the playlist ends, then returns the limit most viewed entries.
// A failure on any page discards everything collected so far.
func (c *YouTubeClient) TopVideos(ctx context.Context, uploadsCollectionID string, limit int) ([]models.VideoEntry, error) {
	if uploadsCollectionID == "" {
		return nil, fmt.Errorf("%w: uploads playlist id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidInput, limit)
	}

	videos := make([]models.VideoEntry, 0, limit)
	nextPageToken := ""
	pages := 0

	for len(videos) < limit {
		call := c.service.PlaylistItems.List(playlistItemParts).
			PlaylistId(uploadsCollectionID).
			MaxResults(playlistPageSize).
			Context(ctx)
		if nextPageToken != "" {
			call = call.PageToken(nextPageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, upstreamError("playlistItems.list", err)
		}
		pages++

		page, err := c.entriesForPage(ctx, resp.Items)
		if err != nil {
			return nil, err
		}
		videos = append(videos, page...)

		nextPageToken = resp.NextPageToken
		if nextPageToken == "" {
			break
		}
	}

	log.Printf("Collected %d videos from playlist %s in %d page(s)", len(videos), uploadsCollectionID, pages)

	return models.TopByViews(videos, limit), nil
}

// entriesForPage converts one page of playlist items, fetching view counts for
// the whole page in a single videos.list call.
func (c *YouTubeClient) entriesForPage(ctx context.Context, items []*youtube.PlaylistItem) ([]models.VideoEntry, error) {
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(items))
	for i, item := range items {
		if item == nil || item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			return nil, malformed("playlistItems.list", "item %d has no video id", i)
		}
		if item.Snippet == nil {
			return nil, malformed("playlistItems.list", "item %s has no snippet", item.ContentDetails.VideoId)
		}
		ids = append(ids, item.ContentDetails.VideoId)
	}

	views, err := c.viewCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]models.VideoEntry, 0, len(items))
	for _, item := range items {
		id := item.ContentDetails.VideoId
		entry, err := models.NewVideoEntry(id, item.Snippet.Title, item.Snippet.PublishedAt, views[id])
		if err != nil {
			return nil, malformed("playlistItems.list", "item %s: %w", id, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// viewCounts returns view counts keyed by video id. Videos missing from the
// response, or without statistics, are absent from the map and count as 0.
func (c *YouTubeClient) viewCounts(ctx context.Context, ids []string) (map[string]int64, error) {
	resp, err := c.service.Videos.List(videoStatsParts).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstreamError("videos.list", err)
	}

	views := make(map[string]int64, len(resp.Items))
	for _, v := range resp.Items {
		if v == nil || v.Statistics == nil {
			continue
		}
		views[v.Id] = int64(v.Statistics.ViewCount)
	}
	return views, nil
}
