// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"math"

	"github.com/pdiddy/orisong/internal/match"
	"github.com/pdiddy/orisong/pkg/types"
)

// validate filters each platform's items to those whose title and artist
// both clear the similarity threshold against the query, then recomputes
// the count and confidence from the surviving items. A platform with no
// surviving items keeps its status but drops to confidence 0.
func validate(results []types.PlatformResult, q types.SearchQuery, threshold float64) []types.PlatformResult {
	out := make([]types.PlatformResult, len(results))
	for i, pr := range results {
		kept := make([]types.RawItem, 0, len(pr.Results))
		for _, item := range pr.Results {
			if match.Similarity(item.Title, q.Title) > threshold &&
				match.Similarity(item.Artist, q.Artist) > threshold {
				kept = append(kept, item)
			}
		}
		pr.Results = kept
		pr.ResultsCount = len(kept)
		pr.Confidence = platformConfidence(kept, q)
		out[i] = pr
	}
	return out
}

// itemScore is the 0-100 relevance of one catalog entry: the mean of its
// title and artist similarities against the query, rounded.
func itemScore(item types.RawItem, q types.SearchQuery) int {
	titleSim := match.Similarity(item.Title, q.Title)
	artistSim := match.Similarity(item.Artist, q.Artist)
	return int(math.Round((titleSim + artistSim) / 2 * 100))
}

// platformConfidence is the best item score among a platform's validated
// items; best match wins. No items means no confidence.
func platformConfidence(items []types.RawItem, q types.SearchQuery) int {
	best := 0
	for _, item := range items {
		if score := itemScore(item, q); score > best {
			best = score
		}
	}
	return best
}

// overallConfidence is the rounded mean of the strictly-positive platform
// confidences, or 0 when every platform is at 0.
func overallConfidence(results []types.PlatformResult) int {
	sum, n := 0, 0
	for _, pr := range results {
		if pr.Confidence > 0 {
			sum += pr.Confidence
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}
