// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search aggregates song metadata from multiple music catalogs into
// a unified, confidence-ranked response. It fans a query out to every
// platform concurrently, validates what comes back against the query,
// retries the whole batch when nothing matches, and synthesizes fallback
// data when the live catalogs are unreachable. SearchSong always returns a
// structurally complete response; it never returns an error and never
// panics.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/orisong/internal/httputil"
	"github.com/pdiddy/orisong/internal/isrc"
	"github.com/pdiddy/orisong/internal/platform"
	"github.com/pdiddy/orisong/pkg/types"
)

// Service runs aggregate searches. It holds no mutable state of its own, so
// one Service is safe for concurrent use across invocations.
type Service struct {
	searchers []platform.Searcher
	cfg       types.SearchConfig
	clock     func() time.Time
	warn      io.Writer
}

// Option customizes a Service.
type Option func(*Service)

// WithClock substitutes the time source. Tests inject a fixed clock to get
// deterministic timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// WithWarnings directs per-platform failure diagnostics to w.
func WithWarnings(w io.Writer) Option {
	return func(s *Service) { s.warn = w }
}

// New builds a Service over the given platform adapters. Zero config fields
// take the engine defaults.
func New(searchers []platform.Searcher, cfg types.SearchConfig, opts ...Option) *Service {
	s := &Service{
		searchers: searchers,
		cfg:       cfg.Normalize(),
		clock:     time.Now,
		warn:      io.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchSong is the single public entry point. It validates the query,
// normalizes the optional ISRC, runs the live platform search, and falls
// back to synthesized data when the live search yields nothing. Every path
// returns a response carrying one entry per known platform.
func (s *Service) SearchSong(ctx context.Context, query types.SearchQuery) (resp types.AggregateResponse) {
	params := types.SearchQuery{
		Title:  strings.TrimSpace(query.Title),
		Artist: strings.TrimSpace(query.Artist),
		ISRC:   isrc.Normalize(query.ISRC),
	}

	// Last-resort guard: if anything below panics, the caller still gets a
	// structurally complete failure response.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(s.warn, "warning: search panicked: %v\n", r)
			resp = s.failure(params, fmt.Sprintf("internal error: %v", r))
		}
	}()

	if params.Title == "" || params.Artist == "" {
		return s.failure(params, "title and artist are required for search")
	}

	live := s.attemptAPISearch(ctx, params)
	if live.Success && live.HasResults() {
		return live
	}

	return s.fallback(params)
}

// attemptAPISearch runs up to MaxAttempts full platform batches. A batch
// succeeds when at least one validated platform has results; otherwise the
// next attempt waits RetryBaseDelay * attempt before retrying. The returned
// response is structurally complete even when every attempt comes up empty.
func (s *Service) attemptAPISearch(ctx context.Context, params types.SearchQuery) types.AggregateResponse {
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		results := s.queryAll(ctx, params)
		validated := validate(results, params, s.cfg.SimilarityThreshold)

		resp := types.AggregateResponse{
			Success:      true,
			Results:      validated,
			Confidence:   overallConfidence(validated),
			SearchParams: params,
			Timestamp:    s.clock(),
		}
		if resp.HasResults() {
			return resp
		}

		if ctx.Err() != nil {
			return s.failure(params, "search cancelled: "+ctx.Err().Error())
		}
		if attempt < s.cfg.MaxAttempts {
			select {
			case <-ctx.Done():
				return s.failure(params, "search cancelled: "+ctx.Err().Error())
			case <-time.After(s.cfg.RetryBaseDelay * time.Duration(attempt)):
			}
		}
	}
	return s.failure(params, "all search attempts returned no results")
}

// queryAll issues one query per platform concurrently and waits for all of
// them to settle. Each platform fails independently; a failure becomes that
// platform's error entry and never aborts the batch. Output order follows
// the adapter order regardless of completion order.
func (s *Service) queryAll(ctx context.Context, params types.SearchQuery) []types.PlatformResult {
	q := platform.Query{Title: params.Title, Artist: params.Artist}

	out := make([]types.PlatformResult, len(s.searchers))
	errs := make([]error, len(s.searchers))

	var wg sync.WaitGroup
	for i, searcher := range s.searchers {
		wg.Add(1)
		go func(i int, sr platform.Searcher) {
			defer wg.Done()
			out[i], errs[i] = s.queryOne(ctx, sr, q)
		}(i, searcher)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(s.warn, "warning: %s search failed: %v\n", s.searchers[i].Name(), err)
		}
	}
	return out
}

// queryOne runs a single platform query under its own timeout and captures
// any failure into the platform's result entry.
func (s *Service) queryOne(ctx context.Context, sr platform.Searcher, q platform.Query) (types.PlatformResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	items, err := sr.Search(callCtx, q, s.cfg)
	if err != nil {
		msg := httputil.Readable(err)
		if errors.Is(err, platform.ErrKeysNotConfigured) {
			msg = platform.ErrKeysNotConfigured.Error()
		}
		return types.PlatformResult{
			Platform: sr.Name(),
			Status:   types.StatusError,
			Results:  []types.RawItem{},
			Error:    msg,
		}, err
	}

	if items == nil {
		items = []types.RawItem{}
	}
	return types.PlatformResult{
		Platform:     sr.Name(),
		Status:       types.StatusConnected,
		Results:      items,
		ResultsCount: len(items),
	}, nil
}

// failure builds the hard-failure response: success=false, every known
// platform marked as an error with no items.
func (s *Service) failure(params types.SearchQuery, msg string) types.AggregateResponse {
	results := make([]types.PlatformResult, 0, len(types.Known()))
	for _, p := range types.Known() {
		results = append(results, types.PlatformResult{
			Platform: p,
			Status:   types.StatusError,
			Results:  []types.RawItem{},
		})
	}
	return types.AggregateResponse{
		Success:      false,
		Results:      results,
		SearchParams: params,
		Timestamp:    s.clock(),
		Error:        msg,
	}
}
