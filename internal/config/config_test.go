package config_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/mousam-kumari/gift-flask/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LLM_PROVIDER", "LLM_TEMPERATURE", "LLM_TIMEOUT_SEC",
		"GEMINI_API_KEY", "GEMINI_MODEL", "GCP_LOCATION", "READ_TIMEOUT_SEC", "WRITE_TIMEOUT_SEC",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	gt.Equal(t, cfg.Port, "5000")
	gt.Equal(t, cfg.LogLevel, "info")
	gt.Equal(t, cfg.LLMProvider, config.ProviderGemini)
	gt.Equal(t, cfg.LLMTemperature, 0.7)
	gt.Equal(t, cfg.LLMTimeout, 60*time.Second)
	gt.Equal(t, cfg.GeminiAPIKey, "")
	gt.Equal(t, cfg.GeminiModel, "gemini-1.5-flash")
	gt.Equal(t, cfg.Location, "us-central1")
	gt.Equal(t, cfg.ReadTimeout, 5*time.Second)
	gt.Equal(t, cfg.WriteTimeout, 90*time.Second)

	// A missing credential is not a configuration error.
	gt.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("LLM_TIMEOUT_SEC", "15")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:9999/v1")

	cfg := config.Load()
	gt.Equal(t, cfg.Port, "8080")
	gt.Equal(t, cfg.LLMProvider, config.ProviderOpenAI)
	gt.Equal(t, cfg.LLMTemperature, 0.2)
	gt.Equal(t, cfg.LLMTimeout, 15*time.Second)
	gt.Equal(t, cfg.OpenAIKey, "sk-test")
	gt.Equal(t, cfg.OpenAIBaseURL, "http://localhost:9999/v1")
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("LLM_TEMPERATURE", "warm")
	t.Setenv("READ_TIMEOUT_SEC", "soon")
	t.Setenv("WRITE_TIMEOUT_SEC", "-3")

	cfg := config.Load()
	gt.Equal(t, cfg.LLMTemperature, 0.7)
	gt.Equal(t, cfg.ReadTimeout, 5*time.Second)
	gt.Equal(t, cfg.WriteTimeout, 90*time.Second)
}

func TestValidate(t *testing.T) {
	base := config.Config{Port: "5000", LLMProvider: config.ProviderDummy, LLMTemperature: 0.7}
	gt.NoError(t, base.Validate())

	unknown := base
	unknown.LLMProvider = "palm"
	gt.Error(t, unknown.Validate())

	noPort := base
	noPort.Port = ""
	gt.Error(t, noPort.Validate())

	hot := base
	hot.LLMTemperature = 3
	gt.Error(t, hot.Validate())
}
