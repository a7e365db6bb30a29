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

// shsSearchURL is the SecondHandSongs performance search endpoint. Declared
// as a var so tests can substitute an httptest server.
var shsSearchURL = "https://secondhandsongs.com/api/search"

// SecondHandSongs queries the SecondHandSongs cover database. Its results
// carry the original performer, the strongest originality signal the engine
// has access to.
type SecondHandSongs struct {
	Client *http.Client
	Creds  *secrets.Provider
}

// Name returns the platform identifier.
func (s *SecondHandSongs) Name() types.Platform { return types.PlatformSecondHandSongs }

func (s *SecondHandSongs) Search(ctx context.Context, q Query, cfg types.SearchConfig) ([]types.RawItem, error) {
	if !s.Creds.Has("secondhandsongs-api-key") {
		return nil, ErrKeysNotConfigured
	}

	params := url.Values{
		"q":      {q.Title + " " + q.Artist},
		"type":   {"performance"},
		"limit":  {strconv.Itoa(cfg.MaxResults)},
		"apikey": {s.Creds.Get("secondhandsongs-api-key")},
	}

	var resp shsSearchResponse
	if err := httputil.GetJSON(ctx, s.Client, shsSearchURL+"?"+params.Encode(), baseHeader(cfg.UserAgent), &resp); err != nil {
		return nil, err
	}

	items := make([]types.RawItem, 0, len(resp.Results))
	for _, perf := range resp.Results {
		items = append(items, types.RawItem{
			Title:          perf.Title,
			Artist:         perf.Performer,
			OriginalArtist: perf.OriginalPerformer,
			URL:            perf.URL,
			Year:           perf.Year,
			Credits:        perf.Credits,
		})
	}
	return items, nil
}

// SecondHandSongs API JSON structures.
type shsSearchResponse struct {
	Results []shsPerformance `json:"results"`
}

type shsPerformance struct {
	Title             string `json:"title"`
	Performer         string `json:"performer"`
	OriginalPerformer string `json:"original_performer"`
	URL               string `json:"url"`
	Year              int    `json:"year"`
	Credits           string `json:"credits"`
}
