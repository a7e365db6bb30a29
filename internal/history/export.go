// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"
)

// exportLimit bounds a full-history export.
const exportLimit = 100000

// ExportEntry is the flattened form of a history entry used for export.
// The stored response payload is dropped; exports are summaries.
type ExportEntry struct {
	ID          int64  `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Artist      string `json:"artist" yaml:"artist"`
	ISRC        string `json:"isrc,omitempty" yaml:"isrc,omitempty"`
	Success     bool   `json:"success" yaml:"success"`
	Confidence  int    `json:"confidence" yaml:"confidence"`
	ResultCount int    `json:"result_count" yaml:"result_count"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
}

// ExportYAML writes the full history to w as YAML.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes the full history to w as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func (s *Store) exportEntries(ctx context.Context) ([]ExportEntry, error) {
	records, err := s.Recent(ctx, exportLimit)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(records))
	for i, r := range records {
		entries[i] = ExportEntry{
			ID:          r.ID,
			Title:       r.Title,
			Artist:      r.Artist,
			ISRC:        r.ISRC,
			Success:     r.Success,
			Confidence:  r.Confidence,
			ResultCount: r.ResultCount,
			Error:       r.Error,
			CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		}
	}
	return entries, nil
}
