// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the orisong CLI, the research tool
// for determining whether a recording is an original, a cover, or in the
// public domain. The CLI wraps the aggregation engine and the local
// research history store.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/orisong/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// creds holds platform API credentials loaded from .secrets/ at startup.
var creds *secrets.Provider

// rootCmd is the base command for the orisong CLI.
var rootCmd = &cobra.Command{
	Use:   "orisong",
	Short: "Song originality research across music catalogs",
	Long: `orisong researches a recording's originality by querying several music
catalogs (Spotify, YouTube, Apple Music, SoundCloud, AllMusic, Discogs,
SecondHandSongs) concurrently and scoring how confidently each catalog
matches the query. When the live catalogs are unreachable the engine
degrades to curated or synthesized data so a research session always
produces a complete result set.

Completed research is recorded in a local SQLite history that supports
listing, statistics, and export.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		p, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		creds = p
		if keys := p.Keys(); len(keys) > 0 {
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded credentials: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./orisong.yaml or ~/.config/orisong/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("orisong")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "orisong"))
		}
	}

	viper.SetEnvPrefix("ORISONG")
	viper.AutomaticEnv()

	viper.SetDefault("search.timeout", "10s")
	viper.SetDefault("search.user_agent", "orisong/0.1")
	viper.SetDefault("search.max_results", 10)
	viper.SetDefault("search.max_attempts", 2)
	viper.SetDefault("search.retry_base_delay", "1s")
	viper.SetDefault("search.similarity_threshold", 0.6)
	viper.SetDefault("history.path", "research-history.db")
	viper.SetDefault("history.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
