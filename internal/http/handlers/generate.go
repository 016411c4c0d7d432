package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"server/internal/domain"
	"server/internal/engine"
	"server/internal/providers/copy"
)

type generateRequest struct {
	BackgroundImage     domain.UserAsset    `json:"backgroundImage"`
	Punchlines          domain.PunchlineSet `json:"punchlines"`
	Patterns            []domain.Pattern    `json:"patterns"`
	UseLLMCopyVariation bool                `json:"useLLMCopyVariation"`
	ProviderName        string              `json:"providerName"`
}

type generateResponse struct {
	Compositions []domain.Composition `json:"compositions"`
}

// Generate handles POST /v1/generate: one composition per requested
// pattern, with optional LLM copy variation.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var in generateRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	req := engine.GenerateRequest{
		Asset:            in.BackgroundImage,
		Punchlines:       in.Punchlines,
		Patterns:         in.Patterns,
		UseCopyVariation: in.UseLLMCopyVariation,
	}

	if in.UseLLMCopyVariation {
		provider, status, msg := a.resolveCopyProvider(r, in.ProviderName)
		if provider == nil {
			a.error(w, status, msg)
			return
		}
		req.Provider = provider
	}

	compositions, err := a.Generator.Generate(r.Context(), req)
	if err != nil {
		a.writeGenerateError(w, err)
		return
	}
	a.json(w, http.StatusOK, generateResponse{Compositions: compositions})
}

type generateFromPromptRequest struct {
	Prompt       string `json:"prompt"`
	Count        int    `json:"count"`
	ProviderName string `json:"providerName"`
	StartIndex   int    `json:"startIndex"`
}

// GenerateFromPrompt handles POST /v1/generate/prompt, the bulk mode
// that asks a provider for full documents from a free-form brief.
func (a *App) GenerateFromPrompt(w http.ResponseWriter, r *http.Request) {
	var in generateFromPromptRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	ve := &domain.ValidationError{}
	if len(strings.TrimSpace(in.Prompt)) < 3 {
		ve.Add("prompt", "must be at least 3 characters")
	}
	if in.Count < 1 || in.Count > 10 {
		ve.Add("count", "must be between 1 and 10")
	}
	if in.StartIndex < 0 {
		ve.Add("startIndex", "must not be negative")
	}
	if err := ve.ErrOrNil(); err != nil {
		a.validationError(w, ve)
		return
	}

	provider, status, msg := a.resolveCopyProvider(r, in.ProviderName)
	if provider == nil {
		a.error(w, status, msg)
		return
	}

	compositions, err := a.Generator.GenerateFromPrompt(r.Context(), in.Prompt, in.Count, provider, in.StartIndex)
	if err != nil {
		a.writeGenerateError(w, err)
		return
	}
	a.json(w, http.StatusOK, generateResponse{Compositions: compositions})
}

// resolveCopyProvider picks the adapter for one request. A key in the
// x-api-key header builds a per-request adapter; otherwise the server's
// registry is consulted. Returns a nil provider with the status and
// message to respond with when neither path yields one.
func (a *App) resolveCopyProvider(r *http.Request, name string) (copy.Provider, int, string) {
	if name == "" {
		name = a.Cfg.DefaultCopyProvider
	}
	if apiKey := r.Header.Get("x-api-key"); apiKey != "" {
		provider, err := a.buildProvider(name, apiKey)
		if err != nil {
			return nil, http.StatusBadRequest, err.Error()
		}
		return provider, 0, ""
	}
	provider, err := a.Registry.Resolve(name)
	if err != nil {
		return nil, http.StatusUnauthorized, "API key is required in x-api-key header"
	}
	return provider, 0, ""
}

func (a *App) writeGenerateError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		a.validationError(w, ve)
		return
	}
	if errors.Is(err, domain.ErrProviderRequired) || errors.Is(err, domain.ErrProviderNotRegistered) {
		a.error(w, http.StatusUnauthorized, err.Error())
		return
	}
	a.Logger.Error().Err(err).Msg("generation failed")
	a.error(w, http.StatusInternalServerError, err.Error())
}
