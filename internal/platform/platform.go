// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package platform queries external music catalogs and maps each provider's
// native schema into the common RawItem shape. Each catalog (Spotify,
// YouTube, iTunes, SoundCloud, AllMusic, Discogs, SecondHandSongs)
// implements the Searcher interface per the Strategy pattern.
package platform

import (
	"context"
	"errors"
	"net/http"

	"github.com/pdiddy/orisong/internal/secrets"
	"github.com/pdiddy/orisong/pkg/types"
)

// Query holds the title/artist pair sent to each catalog.
type Query struct {
	Title  string
	Artist string
}

// Searcher queries a single music catalog. Implementations check their own
// credentials before any network activity and return ErrKeysNotConfigured
// without issuing a request when they are absent. Absent optional fields in
// provider responses become zero values rather than errors.
type Searcher interface {
	Name() types.Platform
	Search(ctx context.Context, q Query, cfg types.SearchConfig) ([]types.RawItem, error)
}

// ErrKeysNotConfigured is returned before any HTTP call when an adapter's
// required credentials are not present in the injected provider.
var ErrKeysNotConfigured = errors.New("API keys not configured")

// All constructs one adapter per known platform, in types.Known() order.
// A nil client falls back to http.DefaultClient.
func All(client *http.Client, creds *secrets.Provider) []Searcher {
	if client == nil {
		client = http.DefaultClient
	}
	return []Searcher{
		&Spotify{Client: client, Creds: creds},
		&YouTube{Client: client, Creds: creds},
		&AppleMusic{Client: client},
		&SoundCloud{Client: client, Creds: creds},
		&AllMusic{Client: client, Creds: creds},
		&Discogs{Client: client, Creds: creds},
		&SecondHandSongs{Client: client, Creds: creds},
	}
}

// baseHeader returns the headers every catalog request carries.
func baseHeader(ua string) http.Header {
	h := http.Header{}
	h.Set("User-Agent", ua)
	h.Set("Accept", "application/json")
	return h
}
