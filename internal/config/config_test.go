package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "OPENAI_API_KEY", "LLM_MODEL", "MAX_TOKENS", "TEMPERATURE",
		"Z_SCORE_THRESHOLD", "CORRELATION_THRESHOLD", "MAX_UPLOAD_ROWS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.AI.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("model = %s", cfg.AI.OpenAIModel)
	}
	if cfg.AI.OpenAIKey != "" {
		t.Error("key must default to empty (relay disabled)")
	}
	if cfg.Analysis.ZScoreThreshold != 2.5 {
		t.Errorf("z threshold = %v, want 2.5", cfg.Analysis.ZScoreThreshold)
	}
	if cfg.Analysis.CorrelationThreshold != 0.6 {
		t.Errorf("correlation threshold = %v, want 0.6", cfg.Analysis.CorrelationThreshold)
	}
	if cfg.Data.MaxUploadRows != 100000 {
		t.Errorf("max upload rows = %d, want 100000", cfg.Data.MaxUploadRows)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("Z_SCORE_THRESHOLD", "3.0")
	t.Setenv("MAX_UPLOAD_ROWS", "500")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("port = %s, want 9000", cfg.Server.Port)
	}
	if cfg.Analysis.ZScoreThreshold != 3.0 {
		t.Errorf("z threshold = %v, want 3.0", cfg.Analysis.ZScoreThreshold)
	}
	if cfg.Data.MaxUploadRows != 500 {
		t.Errorf("max upload rows = %d, want 500", cfg.Data.MaxUploadRows)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	// Unparseable numeric overrides keep the defaults rather than failing.
	t.Setenv("MAX_TOKENS", "lots")
	t.Setenv("TEMPERATURE", "warm")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AI.MaxTokens != 1024 {
		t.Errorf("max tokens = %d, want 1024", cfg.AI.MaxTokens)
	}
	if cfg.AI.Temperature != 0.2 {
		t.Errorf("temperature = %v, want 0.2", cfg.AI.Temperature)
	}
}

func TestLoad_RejectsBadThreshold(t *testing.T) {
	t.Setenv("Z_SCORE_THRESHOLD", "-1")
	if _, err := Load(); err == nil {
		t.Error("expected validation error for negative threshold")
	}
}

func TestLoad_RejectsBadCorrelationThreshold(t *testing.T) {
	t.Setenv("CORRELATION_THRESHOLD", "1.5")
	if _, err := Load(); err == nil {
		t.Error("expected validation error for correlation threshold above 1")
	}
}
