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

const openAIProviderName = "openai"

const openAIDefaultTimeout = 30 * time.Second

// OpenAIOptions configures the OpenAI adapter.
type OpenAIOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	Org        string
	HTTPClient *http.Client
}

// OpenAIProvider calls the chat completions API for copy variations and
// legacy full-document generation.
type OpenAIProvider struct {
	apiKey  string
	model   string
	baseURL string
	org     string
	client  *http.Client
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model          string               `json:"model"`
	Messages       []openAIMessage      `json:"messages"`
	ResponseFormat *openAIResponseHints `json:"response_format,omitempty"`
	Temperature    float64              `json:"temperature,omitempty"`
}

type openAIResponseHints struct {
	Type string `json:"type"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewOpenAIProvider builds the adapter; the API key is mandatory.
func NewOpenAIProvider(opts OpenAIOptions) (*OpenAIProvider, error) {
	if opts.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "gpt-4o"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: openAIDefaultTimeout}
	}
	return &OpenAIProvider{
		apiKey:  opts.APIKey,
		model:   model,
		baseURL: baseURL,
		org:     opts.Org,
		client:  client,
	}, nil
}

func (o *OpenAIProvider) Name() string { return openAIProviderName }

func (o *OpenAIProvider) GenerateVariations(ctx context.Context, prompt string, contextAssets []domain.UserAsset) (map[string]string, error) {
	text, err := o.complete(ctx, variationSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}
	vars, err := decodeVariations(text)
	if err != nil {
		return nil, fmt.Errorf("openai: %w: %v", domain.ErrProviderFailure, err)
	}
	return vars, nil
}

func (o *OpenAIProvider) Generate(ctx context.Context, prompt string, baseDesign *domain.DesignJSON) (domain.DesignJSON, error) {
	user, err := userPromptWithBase(prompt, baseDesign)
	if err != nil {
		return domain.DesignJSON{}, fmt.Errorf("openai: %w: %v", domain.ErrProviderFailure, err)
	}
	text, err := o.complete(ctx, designSystemPrompt, user)
	if err != nil {
		return domain.DesignJSON{}, err
	}
	design, err := decodeDesign(text)
	if err != nil {
		return domain.DesignJSON{}, fmt.Errorf("openai: %w: %v", domain.ErrProviderFailure, err)
	}
	return design, nil
}

func (o *OpenAIProvider) complete(ctx context.Context, system, user string) (string, error) {
	payload := openAIRequest{
		Model: o.model,
		Messages: []openAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: &openAIResponseHints{Type: "json_object"},
		Temperature:    0.7,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", fmt.Errorf("openai: %w: %v", domain.ErrProviderFailure, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", &buf)
	if err != nil {
		return "", fmt.Errorf("openai: %w: %v", domain.ErrProviderFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	if o.org != "" {
		req.Header.Set("OpenAI-Organization", o.org)
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: %w: %v", domain.ErrProviderFailure, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("openai: %w: %v", domain.ErrProviderFailure, err)
	}
	var out openAIResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode >= 300 {
			return "", fmt.Errorf("openai: %w: status %d", domain.ErrProviderFailure, resp.StatusCode)
		}
		return "", fmt.Errorf("openai: %w: %v", domain.ErrProviderFailure, err)
	}
	if resp.StatusCode >= 300 {
		msg := ""
		if out.Error != nil {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("openai: %w: status %d: %s", domain.ErrProviderFailure, resp.StatusCode, msg)
	}
	for _, choice := range out.Choices {
		if strings.TrimSpace(choice.Message.Content) != "" {
			return choice.Message.Content, nil
		}
	}
	return "", fmt.Errorf("openai: %w: empty completion", domain.ErrProviderFailure)
}

var _ Provider = (*OpenAIProvider)(nil)
