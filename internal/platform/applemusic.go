// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/orisong/internal/httputil"
	"github.com/pdiddy/orisong/pkg/types"
)

// itunesSearchURL is the iTunes Search API endpoint. Declared as a var so
// tests can substitute an httptest server.
var itunesSearchURL = "https://itunes.apple.com/search"

// AppleMusic queries the iTunes Search API. The endpoint is public, so this
// is the one adapter with no credential check.
type AppleMusic struct {
	Client *http.Client
}

// Name returns the platform identifier.
func (a *AppleMusic) Name() types.Platform { return types.PlatformAppleMusic }

func (a *AppleMusic) Search(ctx context.Context, q Query, cfg types.SearchConfig) ([]types.RawItem, error) {
	params := url.Values{
		"term":   {q.Title + " " + q.Artist},
		"entity": {"song"},
		"limit":  {fmt.Sprintf("%d", cfg.MaxResults)},
	}

	var resp itunesSearchResponse
	if err := httputil.GetJSON(ctx, a.Client, itunesSearchURL+"?"+params.Encode(), baseHeader(cfg.UserAgent), &resp); err != nil {
		return nil, err
	}

	items := make([]types.RawItem, 0, len(resp.Results))
	for _, song := range resp.Results {
		items = append(items, types.RawItem{
			Title:          song.TrackName,
			Artist:         song.ArtistName,
			Album:          song.CollectionName,
			ReleaseDate:    song.ReleaseDate,
			URL:            song.TrackViewURL,
			Preview:        song.PreviewURL,
			DurationMillis: song.TrackTimeMillis,
		})
	}
	return items, nil
}

// iTunes Search API JSON structures.
type itunesSearchResponse struct {
	Results []itunesSong `json:"results"`
}

type itunesSong struct {
	TrackName       string `json:"trackName"`
	ArtistName      string `json:"artistName"`
	CollectionName  string `json:"collectionName"`
	ReleaseDate     string `json:"releaseDate"`
	TrackViewURL    string `json:"trackViewUrl"`
	PreviewURL      string `json:"previewUrl"`
	TrackTimeMillis int    `json:"trackTimeMillis"`
}
