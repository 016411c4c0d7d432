package copy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"server/internal/domain"
)

const geminiProviderName = "gemini"

const geminiDefaultTimeout = 30 * time.Second

// GeminiOptions configures the Gemini adapter.
type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiProvider calls the generateContent API for copy variations and
// legacy full-document generation.
type GeminiProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	SystemInstruct   *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	CandidateCount   int     `json:"candidateCount,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewGeminiProvider builds the adapter; the API key is mandatory.
func NewGeminiProvider(opts GeminiOptions) (*GeminiProvider, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: geminiDefaultTimeout}
	}
	return &GeminiProvider{
		apiKey:  opts.APIKey,
		model:   model,
		baseURL: baseURL,
		client:  client,
	}, nil
}

func (g *GeminiProvider) Name() string { return geminiProviderName }

func (g *GeminiProvider) GenerateVariations(ctx context.Context, prompt string, contextAssets []domain.UserAsset) (map[string]string, error) {
	text, err := g.complete(ctx, variationSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}
	vars, err := decodeVariations(text)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w: %v", domain.ErrProviderFailure, err)
	}
	return vars, nil
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, baseDesign *domain.DesignJSON) (domain.DesignJSON, error) {
	user, err := userPromptWithBase(prompt, baseDesign)
	if err != nil {
		return domain.DesignJSON{}, fmt.Errorf("gemini: %w: %v", domain.ErrProviderFailure, err)
	}
	text, err := g.complete(ctx, designSystemPrompt, user)
	if err != nil {
		return domain.DesignJSON{}, err
	}
	design, err := decodeDesign(text)
	if err != nil {
		return domain.DesignJSON{}, fmt.Errorf("gemini: %w: %v", domain.ErrProviderFailure, err)
	}
	return design, nil
}

func (g *GeminiProvider) complete(ctx context.Context, system, user string) (string, error) {
	payload := geminiRequest{
		SystemInstruct: &geminiContent{Parts: []geminiPart{{Text: system}}},
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: user}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:      0.7,
			CandidateCount:   1,
			ResponseMimeType: "application/json",
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", fmt.Errorf("gemini: %w: %v", domain.ErrProviderFailure, err)
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("gemini: %w: %v", domain.ErrProviderFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)
	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: %w: %v", domain.ErrProviderFailure, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("gemini: %w: %v", domain.ErrProviderFailure, err)
	}
	var out geminiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode >= 300 {
			return "", fmt.Errorf("gemini: %w: status %d", domain.ErrProviderFailure, resp.StatusCode)
		}
		return "", fmt.Errorf("gemini: %w: %v", domain.ErrProviderFailure, err)
	}
	if resp.StatusCode >= 300 {
		msg := ""
		if out.Error != nil {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("gemini: %w: status %d: %s", domain.ErrProviderFailure, resp.StatusCode, msg)
	}
	for _, cand := range out.Candidates {
		for _, part := range cand.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text, nil
			}
		}
	}
	return "", fmt.Errorf("gemini: %w: empty completion", domain.ErrProviderFailure)
}

var _ Provider = (*GeminiProvider)(nil)
