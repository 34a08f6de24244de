package models

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

const watchLinkLabel = "Watch Video"

// Dashboard is everything the dashboard page renders for one channel
type Dashboard struct {
	Channel   ChannelHeader `json:"channel"`
	Metrics   []Metric      `json:"metrics"`
	TopVideos []VideoRow    `json:"topVideos"`
	Chart     BarChart      `json:"chart"`
	FetchedAt time.Time     `json:"fetchedAt"`
}

// ChannelHeader is the thumbnail, name and description block
type ChannelHeader struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Metric is a single KPI card
type Metric struct {
	Label   string `json:"label"`
	Value   int64  `json:"value"`
	Display string `json:"display"`
}

// VideoRow is a table row with a ready-to-render link label
type VideoRow struct {
	VideoEntry
	Rank      int    `json:"rank"`
	Display   string `json:"viewsDisplay"`
	LinkLabel string `json:"linkLabel"`
}

// BarChart describes the view distribution chart
type BarChart struct {
	Title  string `json:"title"`
	XLabel string `json:"xLabel"`
	YLabel string `json:"yLabel"`
	Bars   []Bar  `json:"bars"`
}

// Bar is one bar of the chart
type Bar struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
	Text  string `json:"text"`
}

// NewDashboard assembles the view model. Videos are expected in rank order.
func NewDashboard(channel *ChannelSummary, videos []VideoEntry, fetchedAt time.Time) *Dashboard {
	d := &Dashboard{
		Channel: ChannelHeader{
			ID:           channel.ID,
			Name:         channel.Name,
			Description:  channel.Description,
			ThumbnailURL: channel.ThumbnailURL,
		},
		Metrics: []Metric{
			newMetric("Subscribers", channel.SubscriberCount),
			newMetric("Total Views", channel.ViewCount),
			newMetric("Total Videos", channel.VideoCount),
		},
		TopVideos: make([]VideoRow, 0, len(videos)),
		Chart: BarChart{
			Title:  fmt.Sprintf("Top %d Videos by Views", len(videos)),
			XLabel: "Video Title",
			YLabel: "View Count",
			Bars:   make([]Bar, 0, len(videos)),
		},
		FetchedAt: fetchedAt,
	}

	for i, v := range videos {
		views := humanize.Comma(v.ViewCount)
		d.TopVideos = append(d.TopVideos, VideoRow{
			VideoEntry: v,
			Rank:       i + 1,
			Display:    views,
			LinkLabel:  watchLinkLabel,
		})
		d.Chart.Bars = append(d.Chart.Bars, Bar{
			Label: v.Title,
			Value: v.ViewCount,
			Text:  views,
		})
	}

	return d
}

func newMetric(label string, value int64) Metric {
	return Metric{
		Label:   label,
		Value:   value,
		Display: humanize.Comma(value),
	}
}
