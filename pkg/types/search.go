// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the song research engine.
package types

import "time"

// Platform identifies an external music catalog.
type Platform string

const (
	PlatformSpotify         Platform = "spotify"
	PlatformYouTube         Platform = "youtube"
	PlatformAppleMusic      Platform = "apple-music"
	PlatformSoundCloud      Platform = "soundcloud"
	PlatformAllMusic        Platform = "allmusic"
	PlatformDiscogs         Platform = "discogs"
	PlatformSecondHandSongs Platform = "secondhandsongs"
)

// Known returns every platform the engine queries, in the fixed order
// results appear in an AggregateResponse.
func Known() []Platform {
	return []Platform{
		PlatformSpotify,
		PlatformYouTube,
		PlatformAppleMusic,
		PlatformSoundCloud,
		PlatformAllMusic,
		PlatformDiscogs,
		PlatformSecondHandSongs,
	}
}

// Status describes the outcome of one platform query.
type Status string

const (
	StatusConnected Status = "connected"
	StatusError     Status = "error"
	StatusPending   Status = "pending"
	StatusNoData    Status = "no_data"
)

// RawItem is a single catalog entry returned by a platform. The field set is
// the union of what the platforms report; fields a platform does not supply
// stay zero and are omitted from JSON. Title and Artist are always present
// on live results and drive validation.
type RawItem struct {
	Title          string `json:"title"`
	Artist         string `json:"artist"`
	Album          string `json:"album,omitempty"`
	ReleaseDate    string `json:"releaseDate,omitempty"`
	Year           int    `json:"year,omitempty"`
	ISRC           string `json:"isrc,omitempty"`
	URL            string `json:"url,omitempty"`
	DurationMillis int    `json:"duration,omitempty"`
	Preview        string `json:"preview,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty"`
	PublishedAt    string `json:"publishedAt,omitempty"`
	PlayCount      int    `json:"playCount,omitempty"`
	Artwork        string `json:"artwork,omitempty"`
	Genre          string `json:"genre,omitempty"`
	Composer       string `json:"composer,omitempty"`
	Publisher      string `json:"publisher,omitempty"`
	Label          string `json:"label,omitempty"`
	Format         string `json:"format,omitempty"`
	Country        string `json:"country,omitempty"`
	OriginalArtist string `json:"originalArtist,omitempty"`
	Credits        string `json:"credits,omitempty"`
}

// PlatformResult is one platform's entry in an aggregate response.
type PlatformResult struct {
	Platform     Platform  `json:"platform"`
	Status       Status    `json:"status"`
	Results      []RawItem `json:"results"`
	ResultsCount int       `json:"resultsCount"`

	// Confidence is the best-match score for this platform, 0-100.
	Confidence int `json:"confidence"`

	Error string `json:"error,omitempty"`
}

// SearchQuery holds the caller's search parameters. ISRC is optional and
// carried in normalized form (12 characters, no dashes) or empty.
type SearchQuery struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	ISRC   string `json:"isrc,omitempty"`
}

// AggregateResponse is the unified result of one search invocation. Results
// always contains one entry per known platform, in Known() order, so callers
// never special-case a missing platform.
type AggregateResponse struct {
	Success      bool             `json:"success"`
	Results      []PlatformResult `json:"results"`
	Confidence   int              `json:"confidence"`
	SearchParams SearchQuery      `json:"searchParams"`
	Timestamp    time.Time        `json:"timestamp"`
	Error        string           `json:"error,omitempty"`
}

// ResultCount reports how many validated items the response carries across
// all platforms.
func (r AggregateResponse) ResultCount() int {
	n := 0
	for _, p := range r.Results {
		n += p.ResultsCount
	}
	return n
}

// HasResults reports whether any platform returned at least one validated item.
func (r AggregateResponse) HasResults() bool {
	for _, p := range r.Results {
		if p.ResultsCount > 0 {
			return true
		}
	}
	return false
}
