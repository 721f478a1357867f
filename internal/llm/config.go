package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the generation subsystem.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string // empty uses the SDK default endpoint
	TimeoutMs   int
	MaxRetries  int
	Temperature float64
	MaxTokens   int
	LogCalls    bool
}

// DefaultConfig returns a Config with sensible defaults. No API key is set,
// which callers treat as "use the canned offline client".
func DefaultConfig() Config {
	return Config{
		Model:       "gpt-4o-mini",
		TimeoutMs:   45000,
		MaxRetries:  1,
		Temperature: 0.7,
		MaxTokens:   2048,
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ADVISOR_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("ADVISOR_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ADVISOR_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ADVISOR_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ADVISOR_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("ADVISOR_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("ADVISOR_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("ADVISOR_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
