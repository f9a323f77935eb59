// Package config centralises all environment configuration for the API.
// It should be imported only by the command layer (and test code).
// Business‑logic layers receive already‑built dependencies instead.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mousam-kumari/gift-flask/internal/logging"
)

// Supported completion providers.
const (
	ProviderGemini = "gemini"
	ProviderVertex = "vertex"
	ProviderOpenAI = "openai"
	ProviderDummy  = "dummy"
)

// Config holds every runtime option the server needs.
// Keep it flat: primitive types, no embedded structs.
type Config struct {
	// Network
	Port string

	// Logging
	LogLevel string

	// Completion provider
	LLMProvider    string
	LLMTemperature float64
	LLMTimeout     time.Duration

	// Gemini API
	GeminiAPIKey string
	GeminiModel  string

	// Vertex AI
	ProjectID       string
	Location        string
	CredentialsFile string

	// OpenAI
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	// Server tuning
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load parses the environment (and an optional .env file) into Config.
// Credentials are not checked here: a missing key surfaces as a generation
// failure on the first request rather than stopping the server.
func Load() Config {
	// godotenv.Load() is a no-op if .env does not exist.
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "5000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LLMProvider:     strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		LLMTemperature:  getFloat("LLM_TEMPERATURE", 0.7),
		LLMTimeout:      getDuration("LLM_TIMEOUT_SEC", 60),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		ProjectID:       os.Getenv("GCP_PROJECT_ID"),
		Location:        getEnv("GCP_LOCATION", "us-central1"),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		ReadTimeout:     getDuration("READ_TIMEOUT_SEC", 5),
		WriteTimeout:    getDuration("WRITE_TIMEOUT_SEC", 90),
	}
}

// Validate rejects settings the server cannot run with at all.
func (c Config) Validate() error {
	switch c.LLMProvider {
	case ProviderGemini, ProviderVertex, ProviderOpenAI, ProviderDummy:
	default:
		return goerr.New("unknown LLM provider", goerr.V("provider", c.LLMProvider))
	}

	if c.Port == "" {
		return goerr.New("port is required")
	}
	if c.LLMTemperature < 0 || c.LLMTemperature > 2 {
		return goerr.New("LLM temperature must be between 0 and 2", goerr.V("temperature", c.LLMTemperature))
	}
	return nil
}

// getEnv returns env[key] if set, otherwise defaultVal.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDuration reads an integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec >= 0 {
			return time.Duration(sec) * time.Second
		}
		logging.Default().Warn("invalid duration, using default", "key", key, "value", v, "default_sec", defaultSec)
	}
	return time.Duration(defaultSec) * time.Second
}

// getFloat reads a float from env, falling back to defaultVal.
func getFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		logging.Default().Warn("invalid number, using default", "key", key, "value", v, "default", defaultVal)
	}
	return defaultVal
}
