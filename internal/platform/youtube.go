// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/orisong/internal/httputil"
	"github.com/pdiddy/orisong/internal/secrets"
	"github.com/pdiddy/orisong/pkg/types"
)

// youtubeSearchURL is the YouTube Data API v3 search endpoint. Declared as a
// var so tests can substitute an httptest server.
var youtubeSearchURL = "https://www.googleapis.com/youtube/v3/search"

// youtubeMusicCategory is the Data API category ID for music videos.
const youtubeMusicCategory = "10"

// YouTube queries the YouTube Data API, restricted to the music category.
// The uploading channel stands in for the artist.
type YouTube struct {
	Client *http.Client
	Creds  *secrets.Provider
}

// Name returns the platform identifier.
func (y *YouTube) Name() types.Platform { return types.PlatformYouTube }

func (y *YouTube) Search(ctx context.Context, q Query, cfg types.SearchConfig) ([]types.RawItem, error) {
	if !y.Creds.Has("youtube-api-key") {
		return nil, ErrKeysNotConfigured
	}

	params := url.Values{
		"q":               {q.Title + " " + q.Artist},
		"part":            {"snippet"},
		"type":            {"video"},
		"videoCategoryId": {youtubeMusicCategory},
		"maxResults":      {fmt.Sprintf("%d", cfg.MaxResults)},
		"key":             {y.Creds.Get("youtube-api-key")},
	}

	var resp youtubeSearchResponse
	if err := httputil.GetJSON(ctx, y.Client, youtubeSearchURL+"?"+params.Encode(), baseHeader(cfg.UserAgent), &resp); err != nil {
		return nil, err
	}

	items := make([]types.RawItem, 0, len(resp.Items))
	for _, video := range resp.Items {
		items = append(items, types.RawItem{
			Title:       video.Snippet.Title,
			Artist:      video.Snippet.ChannelTitle,
			URL:         "https://www.youtube.com/watch?v=" + video.ID.VideoID,
			Thumbnail:   video.Snippet.Thumbnails.Default.URL,
			PublishedAt: video.Snippet.PublishedAt,
		})
	}
	return items, nil
}

// YouTube Data API JSON structures.
type youtubeSearchResponse struct {
	Items []youtubeVideo `json:"items"`
}

type youtubeVideo struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		ChannelTitle string `json:"channelTitle"`
		PublishedAt  string `json:"publishedAt"`
		Thumbnails   struct {
			Default struct {
				URL string `json:"url"`
			} `json:"default"`
		} `json:"thumbnails"`
	} `json:"snippet"`
}
