package api

import (
	"context"
	"log"
	"time"

	"github.com/yt-dashboard/internal/models"
)

// ChannelSource is the subset of YouTubeClient the dashboard needs
type ChannelSource interface {
	LookupChannel(ctx context.Context, channelID string) (*models.ChannelSummary, error)
	TopVideos(ctx context.Context, uploadsCollectionID string, limit int) ([]models.VideoEntry, error)
}

// DashboardService runs the lookup then top videos sequence for one channel
type DashboardService struct {
	source ChannelSource
	now    func() time.Time
}

// NewDashboardService creates a dashboard service backed by source
func NewDashboardService(source ChannelSource) *DashboardService {
	return &DashboardService{
		source: source,
		now:    time.Now,
	}
}

// Build fetches a fresh dashboard. The top videos are only requested after the
// channel lookup succeeds.
func (d *DashboardService) Build(ctx context.Context, channelInput string, limit int) (*models.Dashboard, error) {
	channelID, err := ResolveChannelID(channelInput)
	if err != nil {
		return nil, err
	}

	log.Printf("Fetching dashboard for channel: %s", channelID)

	channel, err := d.source.LookupChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	videos, err := d.source.TopVideos(ctx, channel.UploadsCollectionID, limit)
	if err != nil {
		return nil, err
	}

	return models.NewDashboard(channel, videos, d.now().UTC()), nil
}
