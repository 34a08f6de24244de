package models

// ChannelSummary represents a YouTube channel's identity and aggregate statistics
type ChannelSummary struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	SubscriberCount     int64  `json:"subscriberCount"`
	ViewCount           int64  `json:"viewCount"`
	VideoCount          int64  `json:"videoCount"`
	ThumbnailURL        string `json:"thumbnailUrl"`
	UploadsCollectionID string `json:"uploadsCollectionId"`
}
