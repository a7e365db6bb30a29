package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/orisong/internal/history"
	"github.com/pdiddy/orisong/internal/platform"
	"github.com/pdiddy/orisong/internal/search"
	"github.com/pdiddy/orisong/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Research a song across all configured music catalogs",
	Long: `Search queries every music catalog concurrently for a title/artist pair,
validates the returned metadata against the query, and prints per-platform
and overall confidence scores. When no catalog is reachable the engine
returns curated or synthesized stand-in data so the research session still
completes.

The outcome is recorded in the local research history unless --no-history
is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		artist, _ := cmd.Flags().GetString("artist")
		code, _ := cmd.Flags().GetString("isrc")
		asJSON, _ := cmd.Flags().GetBool("json")
		noHistory, _ := cmd.Flags().GetBool("no-history")

		cfg := loadEngineConfig()
		svc := search.New(platform.All(nil, creds), cfg.Search, search.WithWarnings(os.Stderr))

		resp := svc.SearchSong(cmd.Context(), types.SearchQuery{
			Title:  title,
			Artist: artist,
			ISRC:   code,
		})

		if !noHistory {
			if err := record(cmd, cfg.History, resp); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
			}
		}

		if asJSON {
			if err := search.FormatJSON(resp, os.Stdout); err != nil {
				return err
			}
		} else {
			search.FormatTable(resp, os.Stdout)
		}

		if !resp.Success {
			return errors.New(resp.Error)
		}
		return nil
	},
}

func record(cmd *cobra.Command, cfg types.HistoryConfig, resp types.AggregateResponse) error {
	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.Record(cmd.Context(), resp)
	return err
}

func init() {
	searchCmd.Flags().String("title", "", "song title (required)")
	searchCmd.Flags().String("artist", "", "performing artist (required)")
	searchCmd.Flags().String("isrc", "", "recording code, dashed or undashed (optional)")
	searchCmd.Flags().Bool("json", false, "output the full response as JSON")
	searchCmd.Flags().Bool("no-history", false, "do not record this search in the research history")

	rootCmd.AddCommand(searchCmd)
}
