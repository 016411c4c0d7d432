package copy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"server/internal/domain"
)

const anthropicProviderName = "anthropic"

const (
	anthropicDefaultTimeout = 30 * time.Second
	anthropicAPIVersion     = "2023-06-01"
	anthropicMaxTokens      = 2048
)

// AnthropicOptions configures the Anthropic adapter.
type AnthropicOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// AnthropicProvider calls the messages API for copy variations and legacy
// full-document generation.
type AnthropicProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewAnthropicProvider builds the adapter; the API key is mandatory.
func NewAnthropicProvider(opts AnthropicOptions) (*AnthropicProvider, error) {
	if opts.APIKey == "" {
		return nil, errors.New("anthropic api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.anthropic.com/v1"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "claude-3-7-sonnet-20250219"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: anthropicDefaultTimeout}
	}
	return &AnthropicProvider{
		apiKey:  opts.APIKey,
		model:   model,
		baseURL: baseURL,
		client:  client,
	}, nil
}

func (a *AnthropicProvider) Name() string { return anthropicProviderName }

func (a *AnthropicProvider) GenerateVariations(ctx context.Context, prompt string, contextAssets []domain.UserAsset) (map[string]string, error) {
	text, err := a.complete(ctx, variationSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}
	vars, err := decodeVariations(text)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w: %v", domain.ErrProviderFailure, err)
	}
	return vars, nil
}

func (a *AnthropicProvider) Generate(ctx context.Context, prompt string, baseDesign *domain.DesignJSON) (domain.DesignJSON, error) {
	user, err := userPromptWithBase(prompt, baseDesign)
	if err != nil {
		return domain.DesignJSON{}, fmt.Errorf("anthropic: %w: %v", domain.ErrProviderFailure, err)
	}
	text, err := a.complete(ctx, designSystemPrompt, user)
	if err != nil {
		return domain.DesignJSON{}, err
	}
	design, err := decodeDesign(text)
	if err != nil {
		return domain.DesignJSON{}, fmt.Errorf("anthropic: %w: %v", domain.ErrProviderFailure, err)
	}
	return design, nil
}

func (a *AnthropicProvider) complete(ctx context.Context, system, user string) (string, error) {
	payload := anthropicRequest{
		Model:     a.model,
		MaxTokens: anthropicMaxTokens,
		System:    system,
		Messages:  []anthropicMessage{{Role: "user", Content: user}},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", fmt.Errorf("anthropic: %w: %v", domain.ErrProviderFailure, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/messages", &buf)
	if err != nil {
		return "", fmt.Errorf("anthropic: %w: %v", domain.ErrProviderFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicAPIVersion)
	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic: %w: %v", domain.ErrProviderFailure, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("anthropic: %w: %v", domain.ErrProviderFailure, err)
	}
	var out anthropicResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode >= 300 {
			return "", fmt.Errorf("anthropic: %w: status %d", domain.ErrProviderFailure, resp.StatusCode)
		}
		return "", fmt.Errorf("anthropic: %w: %v", domain.ErrProviderFailure, err)
	}
	if resp.StatusCode >= 300 {
		msg := ""
		if out.Error != nil {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("anthropic: %w: status %d: %s", domain.ErrProviderFailure, resp.StatusCode, msg)
	}
	for _, block := range out.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("anthropic: %w: empty completion", domain.ErrProviderFailure)
}

var _ Provider = (*AnthropicProvider)(nil)
