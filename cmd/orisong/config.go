package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/orisong/pkg/types"
)

// loadEngineConfig materializes the viper state into typed configuration.
func loadEngineConfig() types.EngineConfig {
	return types.EngineConfig{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("search.timeout"),
				UserAgent: viper.GetString("search.user_agent"),
			},
			MaxResults:          viper.GetInt("search.max_results"),
			MaxAttempts:         viper.GetInt("search.max_attempts"),
			RetryBaseDelay:      viper.GetDuration("search.retry_base_delay"),
			SimilarityThreshold: viper.GetFloat64("search.similarity_threshold"),
		},
		History: types.HistoryConfig{
			Path:       viper.GetString("history.path"),
			MaxResults: viper.GetInt("history.max_results"),
		},
	}
}
