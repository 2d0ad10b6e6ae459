package models

import (
	"encoding/json"
	"strconv"
)

// FlexID tolerates the recommendation API's mixed id types: live results
// carry string video ids, the bundled catalog uses integers.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// IntID builds a FlexID from a catalog integer id.
func IntID(n int) FlexID { return FlexID(strconv.Itoa(n)) }

// VideoItem is one recommended content item. Live and bundled items share
// this shape; fields missing on either side are simply empty.
type VideoItem struct {
	ID           FlexID `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Description  string `json:"description,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	VideoID      string `json:"videoId,omitempty"`
	VideoURL     string `json:"videoUrl,omitempty"`
	URL          string `json:"url,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Views        string `json:"views,omitempty"`
	Likes        string `json:"likes,omitempty"`
	ChannelTitle string `json:"channelTitle,omitempty"`
	PublishedAt  string `json:"publishedAt,omitempty"`
}

// RecommendationsResponse is the recommendation API envelope.
type RecommendationsResponse struct {
	Success       bool        `json:"success"`
	Data          []VideoItem `json:"data"`
	QuotaExceeded bool        `json:"quota_exceeded,omitempty"`
	Message       string      `json:"message,omitempty"`
}
