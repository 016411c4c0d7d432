package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"server/internal/domain"
	"server/internal/engine"
	"server/internal/infra"
	"server/internal/providers/copy"

	"github.com/rs/zerolog"
)

// App is the handler container wired by the composition root.
type App struct {
	Logger    zerolog.Logger
	Cfg       *infra.Config
	Generator *engine.Generator
	Registry  *copy.Registry
	Patterns  []domain.Pattern
}

// NewApp assembles the handler container.
func NewApp(cfg *infra.Config, logger zerolog.Logger, generator *engine.Generator, registry *copy.Registry, presets []domain.Pattern) *App {
	return &App{
		Logger:    logger,
		Cfg:       cfg,
		Generator: generator,
		Registry:  registry,
		Patterns:  presets,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}

func (a *App) validationError(w http.ResponseWriter, ve *domain.ValidationError) {
	a.json(w, http.StatusBadRequest, map[string]any{
		"error":   "Validation failed",
		"details": ve.Fields,
	})
}

// buildProvider constructs a per-request adapter from a client-supplied
// API key, mirroring the stateless request flow of the web client.
func (a *App) buildProvider(name, apiKey string) (copy.Provider, error) {
	switch name {
	case "openai":
		return copy.NewOpenAIProvider(copy.OpenAIOptions{
			APIKey:  apiKey,
			Model:   a.Cfg.OpenAIModel,
			BaseURL: a.Cfg.OpenAIBaseURL,
			Org:     a.Cfg.OpenAIOrg,
		})
	case "anthropic":
		return copy.NewAnthropicProvider(copy.AnthropicOptions{
			APIKey:  apiKey,
			Model:   a.Cfg.AnthropicModel,
			BaseURL: a.Cfg.AnthropicBaseURL,
		})
	case "gemini":
		return copy.NewGeminiProvider(copy.GeminiOptions{
			APIKey:  apiKey,
			Model:   a.Cfg.GeminiModel,
			BaseURL: a.Cfg.GeminiBaseURL,
		})
	case "static":
		return copy.NewStaticProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", name)
	}
}
