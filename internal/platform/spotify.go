// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package platform

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/orisong/internal/httputil"
	"github.com/pdiddy/orisong/internal/secrets"
	"github.com/pdiddy/orisong/pkg/types"
)

// Spotify endpoints. Declared as vars so tests can substitute httptest servers.
var (
	spotifySearchURL = "https://api.spotify.com/v1/search"
	spotifyTokenURL  = "https://accounts.spotify.com/api/token"
)

// Spotify queries the Spotify Web API using the client-credentials flow.
type Spotify struct {
	Client *http.Client
	Creds  *secrets.Provider
}

// Name returns the platform identifier.
func (s *Spotify) Name() types.Platform { return types.PlatformSpotify }

// Search exchanges client credentials for a bearer token, then runs a track
// search scoped to the title and artist.
func (s *Spotify) Search(ctx context.Context, q Query, cfg types.SearchConfig) ([]types.RawItem, error) {
	if !s.Creds.Has("spotify-client-id", "spotify-client-secret") {
		return nil, ErrKeysNotConfigured
	}

	token, err := s.accessToken(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("spotify token: %w", err)
	}

	params := url.Values{
		"q":     {fmt.Sprintf("track:%q artist:%q", q.Title, q.Artist)},
		"type":  {"track"},
		"limit": {fmt.Sprintf("%d", cfg.MaxResults)},
	}

	header := baseHeader(cfg.UserAgent)
	header.Set("Authorization", "Bearer "+token)

	var resp spotifySearchResponse
	if err := httputil.GetJSON(ctx, s.Client, spotifySearchURL+"?"+params.Encode(), header, &resp); err != nil {
		return nil, err
	}

	items := make([]types.RawItem, 0, len(resp.Tracks.Items))
	for _, track := range resp.Tracks.Items {
		item := types.RawItem{
			Title:          track.Name,
			Album:          track.Album.Name,
			ReleaseDate:    track.Album.ReleaseDate,
			ISRC:           track.ExternalIDs.ISRC,
			URL:            track.ExternalURLs.Spotify,
			DurationMillis: track.DurationMS,
			Preview:        track.PreviewURL,
		}
		if len(track.Artists) > 0 {
			item.Artist = track.Artists[0].Name
		}
		items = append(items, item)
	}
	return items, nil
}

// accessToken performs the client-credentials token exchange.
func (s *Spotify) accessToken(ctx context.Context, cfg types.SearchConfig) (string, error) {
	id := s.Creds.Get("spotify-client-id")
	secret := s.Creds.Get("spotify-client-secret")

	header := baseHeader(cfg.UserAgent)
	header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(id+":"+secret)))

	form := url.Values{"grant_type": {"client_credentials"}}

	var resp spotifyTokenResponse
	if err := httputil.PostFormJSON(ctx, s.Client, spotifyTokenURL, header, form, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("empty access token")
	}
	return resp.AccessToken, nil
}

// Spotify Web API JSON structures.
type spotifyTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type spotifySearchResponse struct {
	Tracks struct {
		Items []spotifyTrack `json:"items"`
	} `json:"tracks"`
}

type spotifyTrack struct {
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		Name        string `json:"name"`
		ReleaseDate string `json:"release_date"`
	} `json:"album"`
	ExternalIDs struct {
		ISRC string `json:"isrc"`
	} `json:"external_ids"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
	DurationMS int    `json:"duration_ms"`
	PreviewURL string `json:"preview_url"`
}
