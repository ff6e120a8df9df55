package config

import (
	"os"
	"strconv"

	"datalens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Analysis AnalysisConfig
	Data     DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// AIConfig holds settings for the language-model relay. The API key comes
// only from process configuration, never from network input; when it is
// empty the relay answers with its fixed fallback and the analysis
// pipeline is unaffected.
type AIConfig struct {
	OpenAIKey     string
	OpenAIModel   string
	SystemContext string
	MaxTokens     int
	Temperature   float64
}

// AnalysisConfig allows tuning the detector thresholds per deployment.
// Defaults match the engine's named constants.
type AnalysisConfig struct {
	ZScoreThreshold      float64
	CorrelationThreshold float64
}

// DataConfig holds ingestion limits
type DataConfig struct {
	MaxUploadRows int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		AI: AIConfig{
			OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:   getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
			SystemContext: "You are a helpful data analyst that only returns JSON when asked.",
			MaxTokens:     getEnvIntOrDefault("MAX_TOKENS", 1024),
			Temperature:   getEnvFloatOrDefault("TEMPERATURE", 0.2),
		},
		Analysis: AnalysisConfig{
			ZScoreThreshold:      getEnvFloatOrDefault("Z_SCORE_THRESHOLD", 2.5),
			CorrelationThreshold: getEnvFloatOrDefault("CORRELATION_THRESHOLD", 0.6),
		},
		Data: DataConfig{
			MaxUploadRows: getEnvIntOrDefault("MAX_UPLOAD_ROWS", 100000),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Analysis.ZScoreThreshold <= 0 {
		return errors.ConfigInvalid("z-score threshold must be positive")
	}
	if config.Analysis.CorrelationThreshold <= 0 || config.Analysis.CorrelationThreshold > 1 {
		return errors.ConfigInvalid("correlation threshold must be in (0,1]")
	}
	if config.Data.MaxUploadRows <= 0 {
		return errors.ConfigInvalid("max upload rows must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
