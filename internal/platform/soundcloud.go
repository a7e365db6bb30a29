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

// soundcloudTracksURL is the SoundCloud track search endpoint. Declared as a
// var so tests can substitute an httptest server.
var soundcloudTracksURL = "https://api.soundcloud.com/tracks"

// SoundCloud queries the SoundCloud public API. The uploader's username
// stands in for the artist.
type SoundCloud struct {
	Client *http.Client
	Creds  *secrets.Provider
}

// Name returns the platform identifier.
func (s *SoundCloud) Name() types.Platform { return types.PlatformSoundCloud }

func (s *SoundCloud) Search(ctx context.Context, q Query, cfg types.SearchConfig) ([]types.RawItem, error) {
	if !s.Creds.Has("soundcloud-client-id") {
		return nil, ErrKeysNotConfigured
	}

	params := url.Values{
		"q":         {q.Title + " " + q.Artist},
		"limit":     {fmt.Sprintf("%d", cfg.MaxResults)},
		"client_id": {s.Creds.Get("soundcloud-client-id")},
	}

	// The tracks endpoint returns a bare JSON array.
	var tracks []soundcloudTrack
	if err := httputil.GetJSON(ctx, s.Client, soundcloudTracksURL+"?"+params.Encode(), baseHeader(cfg.UserAgent), &tracks); err != nil {
		return nil, err
	}

	items := make([]types.RawItem, 0, len(tracks))
	for _, track := range tracks {
		items = append(items, types.RawItem{
			Title:          track.Title,
			Artist:         track.User.Username,
			URL:            track.PermalinkURL,
			DurationMillis: track.Duration,
			PlayCount:      track.PlaybackCount,
			Artwork:        track.ArtworkURL,
		})
	}
	return items, nil
}

// SoundCloud API JSON structures.
type soundcloudTrack struct {
	Title string `json:"title"`
	User  struct {
		Username string `json:"username"`
	} `json:"user"`
	PermalinkURL  string `json:"permalink_url"`
	Duration      int    `json:"duration"`
	PlaybackCount int    `json:"playback_count"`
	ArtworkURL    string `json:"artwork_url"`
}
