// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package platform

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/orisong/internal/httputil"
	"github.com/pdiddy/orisong/internal/secrets"
	"github.com/pdiddy/orisong/pkg/types"
)

// discogsSearchURL is the Discogs database search endpoint. Declared as a
// var so tests can substitute an httptest server.
var discogsSearchURL = "https://api.discogs.com/database/search"

// Discogs queries the Discogs release database for pressing and label data.
type Discogs struct {
	Client *http.Client
	Creds  *secrets.Provider
}

// Name returns the platform identifier.
func (d *Discogs) Name() types.Platform { return types.PlatformDiscogs }

func (d *Discogs) Search(ctx context.Context, q Query, cfg types.SearchConfig) ([]types.RawItem, error) {
	if !d.Creds.Has("discogs-consumer-key", "discogs-consumer-secret") {
		return nil, ErrKeysNotConfigured
	}

	params := url.Values{
		"q":        {q.Title + " " + q.Artist},
		"type":     {"release"},
		"per_page": {strconv.Itoa(cfg.MaxResults)},
		"key":      {d.Creds.Get("discogs-consumer-key")},
		"secret":   {d.Creds.Get("discogs-consumer-secret")},
	}

	var resp discogsSearchResponse
	if err := httputil.GetJSON(ctx, d.Client, discogsSearchURL+"?"+params.Encode(), baseHeader(cfg.UserAgent), &resp); err != nil {
		return nil, err
	}

	items := make([]types.RawItem, 0, len(resp.Results))
	for _, release := range resp.Results {
		title, artist := splitDiscogsTitle(release.Title)
		if release.Artist != "" {
			artist = release.Artist
		}
		year, _ := strconv.Atoi(release.Year)
		items = append(items, types.RawItem{
			Title:   title,
			Artist:  artist,
			Year:    year,
			URL:     release.ResourceURL,
			Label:   strings.Join(release.Label, ", "),
			Format:  strings.Join(release.Format, ", "),
			Country: release.Country,
		})
	}
	return items, nil
}

// splitDiscogsTitle breaks the Discogs "Artist - Title" release form into
// its parts. Titles without the separator pass through with no artist.
func splitDiscogsTitle(s string) (title, artist string) {
	if i := strings.Index(s, " - "); i >= 0 {
		return strings.TrimSpace(s[i+3:]), strings.TrimSpace(s[:i])
	}
	return s, ""
}

// Discogs API JSON structures. Year arrives as a string in search results.
type discogsSearchResponse struct {
	Results []discogsRelease `json:"results"`
}

type discogsRelease struct {
	Title       string   `json:"title"`
	Artist      string   `json:"artist"`
	Year        string   `json:"year"`
	ResourceURL string   `json:"resource_url"`
	Label       []string `json:"label"`
	Format      []string `json:"format"`
	Country     string   `json:"country"`
}
