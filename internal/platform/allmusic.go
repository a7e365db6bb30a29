// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package platform

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/orisong/internal/httputil"
	"github.com/pdiddy/orisong/internal/secrets"
	"github.com/pdiddy/orisong/pkg/types"
)

// allmusicSearchURL is the AllMusic search endpoint. Declared as a var so
// tests can substitute an httptest server.
var allmusicSearchURL = "https://www.allmusic.com/api/search"

// AllMusic queries the AllMusic API for songwriting and publishing credits.
type AllMusic struct {
	Client *http.Client
	Creds  *secrets.Provider
}

// Name returns the platform identifier.
func (a *AllMusic) Name() types.Platform { return types.PlatformAllMusic }

func (a *AllMusic) Search(ctx context.Context, q Query, cfg types.SearchConfig) ([]types.RawItem, error) {
	if !a.Creds.Has("allmusic-api-key") {
		return nil, ErrKeysNotConfigured
	}

	params := url.Values{
		"q":      {q.Title + " " + q.Artist},
		"type":   {"song"},
		"limit":  {strconv.Itoa(cfg.MaxResults)},
		"apikey": {a.Creds.Get("allmusic-api-key")},
	}

	var resp allmusicSearchResponse
	if err := httputil.GetJSON(ctx, a.Client, allmusicSearchURL+"?"+params.Encode(), baseHeader(cfg.UserAgent), &resp); err != nil {
		return nil, err
	}

	items := make([]types.RawItem, 0, len(resp.Results))
	for _, song := range resp.Results {
		items = append(items, types.RawItem{
			Title:     song.Title,
			Artist:    song.Artist,
			Album:     song.Album,
			Year:      song.Year,
			URL:       song.URL,
			Genre:     song.Genre,
			Composer:  song.Composer,
			Publisher: song.Publisher,
		})
	}
	return items, nil
}

// AllMusic API JSON structures.
type allmusicSearchResponse struct {
	Results []allmusicSong `json:"results"`
}

type allmusicSong struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Album     string `json:"album"`
	Year      int    `json:"year"`
	URL       string `json:"url"`
	Genre     string `json:"genre"`
	Composer  string `json:"composer"`
	Publisher string `json:"publisher"`
}
