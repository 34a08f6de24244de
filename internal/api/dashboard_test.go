package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yt-dashboard/internal/models"
)

// stubSource is a ChannelSource with canned results
type stubSource struct {
	channel    *models.ChannelSummary
	videos     []models.VideoEntry
	lookupErr  error
	videosErr  error
	lookupIDs  []string
	topCalls   int
	lastLimit  int
	lastUpload string
}

func (s *stubSource) LookupChannel(ctx context.Context, channelID string) (*models.ChannelSummary, error) {
	s.lookupIDs = append(s.lookupIDs, channelID)
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return s.channel, nil
}

func (s *stubSource) TopVideos(ctx context.Context, uploadsCollectionID string, limit int) ([]models.VideoEntry, error) {
	s.topCalls++
	s.lastLimit = limit
	s.lastUpload = uploadsCollectionID
	if s.videosErr != nil {
		return nil, s.videosErr
	}
	if len(s.videos) > limit {
		return s.videos[:limit], nil
	}
	return s.videos, nil
}

func newStubSource() *stubSource {
	return &stubSource{
		channel: &models.ChannelSummary{
			ID:                  "UC1",
			Name:                "Gopher TV",
			SubscriberCount:     12000,
			ViewCount:           3400000,
			VideoCount:          3,
			UploadsCollectionID: "UU1",
		},
		videos: []models.VideoEntry{
			{VideoID: "b", Title: "B", ViewCount: 500, PublishedDate: "2024-02-01", WatchURL: models.WatchURL("b")},
			{VideoID: "c", Title: "C", ViewCount: 200, PublishedDate: "2024-03-01", WatchURL: models.WatchURL("c")},
			{VideoID: "a", Title: "A", ViewCount: 100, PublishedDate: "2024-01-01", WatchURL: models.WatchURL("a")},
		},
	}
}

func TestDashboardService_Build(t *testing.T) {
	source := newStubSource()
	svc := NewDashboardService(source)
	fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	d, err := svc.Build(context.Background(), "https://www.youtube.com/channel/UC1", 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"UC1"}, source.lookupIDs)
	assert.Equal(t, "UU1", source.lastUpload)
	assert.Equal(t, 5, source.lastLimit)

	assert.Equal(t, "Gopher TV", d.Channel.Name)
	assert.Equal(t, "12,000", d.Metrics[0].Display)
	require.Len(t, d.TopVideos, 3)
	assert.Equal(t, "b", d.TopVideos[0].VideoID)
	assert.Equal(t, fixed, d.FetchedAt)
}

func TestDashboardService_NotFoundSkipsTopVideos(t *testing.T) {
	source := newStubSource()
	source.lookupErr = ErrChannelNotFound
	svc := NewDashboardService(source)

	d, err := svc.Build(context.Background(), "UCmissing", 5)
	assert.ErrorIs(t, err, ErrChannelNotFound)
	assert.Nil(t, d)
	assert.Zero(t, source.topCalls)
}

func TestDashboardService_TopVideosFailure(t *testing.T) {
	source := newStubSource()
	source.videosErr = &UpstreamError{Op: "playlistItems.list", Kind: ErrUpstreamQuota}
	svc := NewDashboardService(source)

	d, err := svc.Build(context.Background(), "UC1", 5)
	assert.ErrorIs(t, err, ErrUpstreamQuota)
	assert.Nil(t, d)
}

func TestDashboardService_InvalidInput(t *testing.T) {
	source := newStubSource()
	svc := NewDashboardService(source)

	_, err := svc.Build(context.Background(), "https://www.youtube.com/@handle", 5)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, source.lookupIDs)
}

func TestDashboardService_EndToEnd(t *testing.T) {
	fake := newFakeYouTube()
	fake.addChannel("UC1", "UU1", []fakeVideo{
		{ID: "a", Title: "A", PublishedAt: "2024-01-01T00:00:00Z", Views: 100},
		{ID: "b", Title: "B", PublishedAt: "2024-02-01T00:00:00Z", Views: 500},
		{ID: "c", Title: "C", PublishedAt: "2024-03-01T00:00:00Z", Views: 200},
	})
	svc := NewDashboardService(newTestClient(t, fake, testAPIKey))

	d, err := svc.Build(context.Background(), "UC1", 5)
	require.NoError(t, err)

	require.Len(t, d.Chart.Bars, 3)
	assert.Equal(t, []int64{500, 200, 100}, []int64{d.Chart.Bars[0].Value, d.Chart.Bars[1].Value, d.Chart.Bars[2].Value})
	assert.Equal(t, "Top 3 Videos by Views", d.Chart.Title)
	assert.Equal(t, "250,000", d.Metrics[1].Display)
}

func TestDashboardService_EndToEndNotFound(t *testing.T) {
	fake := newFakeYouTube()
	svc := NewDashboardService(newTestClient(t, fake, testAPIKey))

	_, err := svc.Build(context.Background(), "UCnope", 5)
	assert.ErrorIs(t, err, ErrChannelNotFound)
	assert.Equal(t, 1, fake.callCount("channels"))
	assert.Zero(t, fake.callCount("playlistItems"))
	assert.Zero(t, fake.callCount("videos"))
}
