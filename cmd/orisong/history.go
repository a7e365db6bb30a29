package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/orisong/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past research, statistics, and exports",
	Long: `History reads the local research database: recent searches with their
confidence and outcome, aggregate statistics for the dashboard, and full
exports as YAML or JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		stats, _ := cmd.Flags().GetBool("stats")
		export, _ := cmd.Flags().GetString("export")

		cfg := loadEngineConfig()
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()

		switch {
		case stats:
			st, err := store.Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Total searches:      %d\n", st.Total)
			fmt.Printf("Succeeded:           %d\n", st.Succeeded)
			fmt.Printf("Average confidence:  %.1f\n", st.AverageConfidence)
			if !st.LastSearch.IsZero() {
				fmt.Printf("Last search:         %s\n", st.LastSearch.Format(time.RFC3339))
			}
			return nil

		case export == "yaml":
			return store.ExportYAML(ctx, os.Stdout)
		case export == "json":
			return store.ExportJSON(ctx, os.Stdout)
		case export != "":
			return fmt.Errorf("unknown export format %q: use yaml or json", export)

		default:
			entries, err := store.Recent(ctx, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No research history.")
				return nil
			}

			fmt.Printf("%-5s  %-30s  %-20s  %-10s  %-7s  %s\n",
				"ID", "Title", "Artist", "Confidence", "Success", "When")
			fmt.Println(strings.Repeat("-", 95))
			for _, e := range entries {
				fmt.Printf("%-5d  %-30s  %-20s  %-10d  %-7t  %s\n",
					e.ID, clip(e.Title, 30), clip(e.Artist, 20),
					e.Confidence, e.Success, e.CreatedAt.Format(time.RFC3339))
			}
			return nil
		}
	},
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum entries to list (default from config)")
	historyCmd.Flags().Bool("stats", false, "print aggregate statistics instead of listing")
	historyCmd.Flags().String("export", "", "export the full history to stdout: yaml or json")

	rootCmd.AddCommand(historyCmd)
}
