package search

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/orisong/pkg/types"
)

func sampleResponse() types.AggregateResponse {
	return types.AggregateResponse{
		Success: true,
		Results: []types.PlatformResult{
			{
				Platform:     types.PlatformSpotify,
				Status:       types.StatusConnected,
				Results:      []types.RawItem{{Title: "Toxic", Artist: "Britney Spears"}},
				ResultsCount: 1,
				Confidence:   95,
			},
			{
				Platform: types.PlatformYouTube,
				Status:   types.StatusError,
				Results:  []types.RawItem{},
				Error:    "Rate limit exceeded",
			},
			{
				Platform: types.PlatformDiscogs,
				Status:   types.StatusNoData,
				Results:  []types.RawItem{},
			},
		},
		Confidence: 95,
		SearchParams: types.SearchQuery{
			Title:  "Toxic",
			Artist: "Britney Spears",
			ISRC:   "USJI10400661",
		},
		Timestamp: time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
	}
}

// --- FormatTable ---

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleResponse(), &buf)
	out := buf.String()

	if !strings.Contains(out, `Research: "Toxic" by "Britney Spears"`) {
		t.Errorf("missing header: %q", out)
	}
	if !strings.Contains(out, "ISRC US-JI1-04-00661") {
		t.Errorf("ISRC should be printed dashed: %q", out)
	}
	if !strings.Contains(out, "Rate limit exceeded") {
		t.Errorf("missing platform error note: %q", out)
	}
	if !strings.Contains(out, "no_data") {
		t.Errorf("missing no_data status: %q", out)
	}
	if !strings.Contains(out, "Overall confidence: 95/100") {
		t.Errorf("missing overall confidence: %q", out)
	}
}

func TestFormatTableOmitsISRCWhenAbsent(t *testing.T) {
	resp := sampleResponse()
	resp.SearchParams.ISRC = ""

	var buf bytes.Buffer
	FormatTable(resp, &buf)
	if strings.Contains(buf.String(), "ISRC") {
		t.Errorf("ISRC tag printed without a code: %q", buf.String())
	}
}

func TestFormatTableShowsFailureError(t *testing.T) {
	resp := sampleResponse()
	resp.Success = false
	resp.Error = "title and artist are required for search"

	var buf bytes.Buffer
	FormatTable(resp, &buf)
	if !strings.Contains(buf.String(), "Error: title and artist are required for search") {
		t.Errorf("missing failure error line: %q", buf.String())
	}
}

func TestBestMatchNote(t *testing.T) {
	tests := []struct {
		name string
		item types.RawItem
		want string
	}{
		{"plain title", types.RawItem{Title: "Toxic"}, "Toxic"},
		{
			"original artist appended",
			types.RawItem{Title: "Toxic", OriginalArtist: "Britney Spears"},
			"Toxic (original: Britney Spears)",
		},
		{
			"long title truncated",
			types.RawItem{Title: strings.Repeat("x", 50)},
			strings.Repeat("x", 37) + "...",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestMatchNote(tt.item); got != tt.want {
				t.Errorf("bestMatchNote = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- FormatJSON ---

func TestFormatJSONRoundTrip(t *testing.T) {
	resp := sampleResponse()

	var buf bytes.Buffer
	if err := FormatJSON(resp, &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var decoded types.AggregateResponse
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Confidence != resp.Confidence || decoded.Success != resp.Success {
		t.Errorf("decoded = %+v", decoded)
	}
	if len(decoded.Results) != len(resp.Results) {
		t.Fatalf("len(Results) = %d, want %d", len(decoded.Results), len(resp.Results))
	}
	if decoded.Results[0].Platform != types.PlatformSpotify {
		t.Errorf("Results[0].Platform = %q", decoded.Results[0].Platform)
	}
	if !decoded.Timestamp.Equal(resp.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", decoded.Timestamp, resp.Timestamp)
	}
}

func TestFormatJSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(sampleResponse(), &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	out := buf.String()

	// The wire contract uses camelCase names.
	for _, field := range []string{`"success"`, `"resultsCount"`, `"searchParams"`, `"confidence"`} {
		if !strings.Contains(out, field) {
			t.Errorf("output missing %s: %q", field, out)
		}
	}
}
