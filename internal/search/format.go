// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/orisong/internal/isrc"
	"github.com/pdiddy/orisong/pkg/types"
)

// FormatTable writes an aggregate response as a human-readable table to w.
func FormatTable(resp types.AggregateResponse, w io.Writer) {
	fmt.Fprintf(w, "Research: %q by %q", resp.SearchParams.Title, resp.SearchParams.Artist)
	if resp.SearchParams.ISRC != "" {
		fmt.Fprintf(w, "  [ISRC %s]", isrc.WithDashes(resp.SearchParams.ISRC))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-16s  %-10s  %-7s  %-10s  %s\n",
		"Platform", "Status", "Results", "Confidence", "Notes")
	fmt.Fprintln(w, strings.Repeat("-", 70))

	for _, pr := range resp.Results {
		notes := pr.Error
		if notes == "" && pr.ResultsCount > 0 {
			notes = bestMatchNote(pr.Results[0])
		}
		fmt.Fprintf(w, "%-16s  %-10s  %-7d  %-10d  %s\n",
			pr.Platform, pr.Status, pr.ResultsCount, pr.Confidence, notes)
	}

	fmt.Fprintf(w, "\nOverall confidence: %d/100\n", resp.Confidence)
	if resp.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", resp.Error)
	}
}

// bestMatchNote summarizes a platform's first validated item.
func bestMatchNote(item types.RawItem) string {
	note := item.Title
	if len(note) > 40 {
		note = note[:37] + "..."
	}
	if item.OriginalArtist != "" {
		note += " (original: " + item.OriginalArtist + ")"
	}
	return note
}

// FormatJSON writes an aggregate response as indented JSON to w.
func FormatJSON(resp types.AggregateResponse, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
