package cli

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/mousam-kumari/gift-flask/internal/config"
	"github.com/mousam-kumari/gift-flask/internal/service"
)

// llmFlags returns flags for the completion provider. Defaults come from
// the environment (and .env) through config.Load; flags override them.
func llmFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "provider",
			Usage:       "Completion provider (gemini, vertex, openai, dummy)",
			Value:       cfg.LLMProvider,
			Destination: &cfg.LLMProvider,
		},
		&cli.FloatFlag{
			Name:        "temperature",
			Usage:       "Sampling temperature (0.0-2.0)",
			Value:       cfg.LLMTemperature,
			Destination: &cfg.LLMTemperature,
		},
		&cli.DurationFlag{
			Name:        "llm-timeout",
			Usage:       "Upper bound for a single completion call (0 disables)",
			Value:       cfg.LLMTimeout,
			Destination: &cfg.LLMTimeout,
		},
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key",
			Value:       cfg.GeminiAPIKey,
			Destination: &cfg.GeminiAPIKey,
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Model used by the gemini and vertex providers",
			Value:       cfg.GeminiModel,
			Destination: &cfg.GeminiModel,
		},
		&cli.StringFlag{
			Name:        "gcp-project",
			Usage:       "Google Cloud project ID for Vertex AI",
			Value:       cfg.ProjectID,
			Destination: &cfg.ProjectID,
		},
		&cli.StringFlag{
			Name:        "gcp-location",
			Usage:       "Google Cloud location for Vertex AI",
			Value:       cfg.Location,
			Destination: &cfg.Location,
		},
		&cli.StringFlag{
			Name:        "credentials",
			Usage:       "Service account key file for Vertex AI",
			Value:       cfg.CredentialsFile,
			Destination: &cfg.CredentialsFile,
		},
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Value:       cfg.OpenAIKey,
			Destination: &cfg.OpenAIKey,
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "OpenAI chat model",
			Value:       cfg.OpenAIModel,
			Destination: &cfg.OpenAIModel,
		},
		&cli.StringFlag{
			Name:        "openai-base-url",
			Usage:       "Base URL of an OpenAI-compatible API",
			Value:       cfg.OpenAIBaseURL,
			Destination: &cfg.OpenAIBaseURL,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       cfg.LogLevel,
			Destination: &cfg.LogLevel,
		},
	}
}

// newLLM creates the completion client for the configured provider.
// Credentials are checked by the client itself on first use.
func newLLM(cfg config.Config) (service.LLM, error) {
	temperature := float32(cfg.LLMTemperature)

	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return service.NewGeminiLLM(cfg.GeminiAPIKey, cfg.GeminiModel, temperature), nil
	case config.ProviderVertex:
		return service.NewVertexLLM(cfg.ProjectID, cfg.Location, cfg.GeminiModel, cfg.CredentialsFile, temperature), nil
	case config.ProviderOpenAI:
		return service.NewOpenAILLM(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, temperature), nil
	case config.ProviderDummy:
		return service.NewDummyLLM(), nil
	default:
		return nil, goerr.New("unknown LLM provider", goerr.V("provider", cfg.LLMProvider))
	}
}
