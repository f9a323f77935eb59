package cli

import (
	"context"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/mousam-kumari/gift-flask/internal/config"
	"github.com/mousam-kumari/gift-flask/internal/handler"
	"github.com/mousam-kumari/gift-flask/internal/logging"
	"github.com/mousam-kumari/gift-flask/internal/observability"
	"github.com/mousam-kumari/gift-flask/internal/repository"
	"github.com/mousam-kumari/gift-flask/internal/service"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	cfg := config.Load()

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "port",
			Aliases:     []string{"p"},
			Usage:       "Port to listen on",
			Value:       cfg.Port,
			Destination: &cfg.Port,
		},
		&cli.DurationFlag{
			Name:        "read-timeout",
			Usage:       "HTTP read timeout",
			Value:       cfg.ReadTimeout,
			Destination: &cfg.ReadTimeout,
		},
		&cli.DurationFlag{
			Name:        "write-timeout",
			Usage:       "HTTP write timeout",
			Value:       cfg.WriteTimeout,
			Destination: &cfg.WriteTimeout,
		},
	}
	flags = append(flags, llmFlags(&cfg)...)

	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.SetDefault(logging.New(cfg.LogLevel, c.Root().Writer))
			logger := logging.Default()

			if err := cfg.Validate(); err != nil {
				return err
			}

			llm, err := newLLM(cfg)
			if err != nil {
				return err
			}
			if closer, ok := llm.(io.Closer); ok {
				defer func() {
					if err := closer.Close(); err != nil {
						logger.Warn("failed to close LLM client", "error", err)
					}
				}()
			}

			history := repository.NewMemoryHistory()
			metrics := observability.NewMetrics(cfg.LLMProvider)
			svc := service.NewGiftService(llm, history,
				service.WithMetrics(metrics),
				service.WithCompletionTimeout(cfg.LLMTimeout),
			)

			app := handler.NewApp(handler.Dependencies{
				GiftService: svc,
				History:     history,
				Metrics:     metrics,
				Provider:    cfg.LLMProvider,
			}, fiber.Config{
				ReadTimeout:           cfg.ReadTimeout,
				WriteTimeout:          cfg.WriteTimeout,
				DisableStartupMessage: true,
			})

			go func() {
				<-ctx.Done()
				logger.Info("shutting down server")
				if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
					logger.Error("failed to shut down server", "error", err)
				}
			}()

			logger.Info("server starting",
				"port", cfg.Port,
				"provider", cfg.LLMProvider,
				"model", modelName(cfg),
			)
			if err := app.Listen(":" + cfg.Port); err != nil {
				return goerr.Wrap(err, "server failed", goerr.V("port", cfg.Port))
			}
			return nil
		},
	}
}

func modelName(cfg config.Config) string {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return cfg.OpenAIModel
	case config.ProviderDummy:
		return "dummy"
	default:
		return cfg.GeminiModel
	}
}
