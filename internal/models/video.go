package models

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

const watchURLPrefix = "https://www.youtube.com/watch?v="

// ErrInvalidPublishedAt is returned when a timestamp has no usable date portion
var ErrInvalidPublishedAt = errors.New("invalid published timestamp")

// VideoEntry represents one row of the top videos table
type VideoEntry struct {
	VideoID       string `json:"videoId"`
	Title         string `json:"title"`
	ViewCount     int64  `json:"viewCount"`
	PublishedDate string `json:"publishedDate"`
	WatchURL      string `json:"watchUrl"`
}

// NewVideoEntry builds an entry and derives its watch link
func NewVideoEntry(videoID, title, publishedAt string, views int64) (VideoEntry, error) {
	date, err := PublishedDate(publishedAt)
	if err != nil {
		return VideoEntry{}, err
	}
	return VideoEntry{
		VideoID:       videoID,
		Title:         title,
		ViewCount:     views,
		PublishedDate: date,
		WatchURL:      WatchURL(videoID),
	}, nil
}

// WatchURL returns the public watch page for a video
func WatchURL(videoID string) string {
	return watchURLPrefix + videoID
}

// PublishedDate truncates an ISO-8601 timestamp to its YYYY-MM-DD date
func PublishedDate(publishedAt string) (string, error) {
	if len(publishedAt) < len(time.DateOnly) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPublishedAt, publishedAt)
	}
	date := publishedAt[:len(time.DateOnly)]
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPublishedAt, publishedAt)
	}
	return date, nil
}

// SortByViews orders entries by view count, highest first.
// Entries with equal counts keep their relative order.
func SortByViews(videos []VideoEntry) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].ViewCount > videos[j].ViewCount
	})
}

// TopByViews sorts entries by view count and keeps the first limit of them
func TopByViews(videos []VideoEntry, limit int) []VideoEntry {
	SortByViews(videos)
	if len(videos) > limit {
		videos = videos[:limit]
	}
	return videos
}
