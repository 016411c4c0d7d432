package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"server/internal/engine"
	"server/internal/http/handlers"
	httpapi "server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/patterns"
	"server/internal/providers/copy"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	registry := buildRegistry(cfg, logger)
	generator := engine.NewGenerator(registry, logger)
	app := handlers.NewApp(cfg, logger, generator, registry, patterns.Presets())

	router := httpapi.NewRouter(cfg, logger, app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

// buildRegistry registers the static provider unconditionally and each
// LLM adapter whose API key is configured.
func buildRegistry(cfg *infra.Config, logger zerolog.Logger) *copy.Registry {
	registry := copy.NewRegistry()
	static := copy.NewStaticProvider()
	registry.Register(static.Name(), static)

	if cfg.OpenAIAPIKey != "" {
		provider, err := copy.NewOpenAIProvider(copy.OpenAIOptions{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
			Org:     cfg.OpenAIOrg,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("openai provider init failed")
		}
		registry.Register(provider.Name(), provider)
	}
	if cfg.AnthropicAPIKey != "" {
		provider, err := copy.NewAnthropicProvider(copy.AnthropicOptions{
			APIKey:  cfg.AnthropicAPIKey,
			Model:   cfg.AnthropicModel,
			BaseURL: cfg.AnthropicBaseURL,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("anthropic provider init failed")
		}
		registry.Register(provider.Name(), provider)
	}
	if cfg.GeminiAPIKey != "" {
		provider, err := copy.NewGeminiProvider(copy.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("gemini provider init failed")
		}
		registry.Register(provider.Name(), provider)
	}

	return registry
}
