package copy

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"server/internal/domain"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestOpenAIGenerateVariations(t *testing.T) {
	t.Parallel()
	var captured *http.Request
	var payload openAIRequest
	provider, err := NewOpenAIProvider(OpenAIOptions{
		APIKey: "sk-test",
		Org:    "org-1",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			captured = r
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("decode request: %v", err)
			}
			body := `{"choices":[{"message":{"role":"assistant","content":"{\"headline\":\"Punchier\"}"}}]}`
			return jsonResponse(http.StatusOK, body), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider returned error: %v", err)
	}

	vars, err := provider.GenerateVariations(context.Background(), "rewrite this", nil)
	if err != nil {
		t.Fatalf("GenerateVariations returned error: %v", err)
	}
	if vars["headline"] != "Punchier" {
		t.Fatalf("variations = %v", vars)
	}
	if captured.URL.String() != "https://api.openai.com/v1/chat/completions" {
		t.Fatalf("URL = %s", captured.URL)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer sk-test" {
		t.Fatalf("Authorization = %q", got)
	}
	if got := captured.Header.Get("OpenAI-Organization"); got != "org-1" {
		t.Fatalf("OpenAI-Organization = %q", got)
	}
	if payload.Model != "gpt-4o" {
		t.Fatalf("model = %q, want default gpt-4o", payload.Model)
	}
	if payload.ResponseFormat == nil || payload.ResponseFormat.Type != "json_object" {
		t.Fatalf("response_format = %+v", payload.ResponseFormat)
	}
}

func TestOpenAITrimsCodeFence(t *testing.T) {
	t.Parallel()
	provider, err := NewOpenAIProvider(OpenAIOptions{
		APIKey: "sk-test",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			body := "{\"choices\":[{\"message\":{\"content\":\"```json\\n{\\\"cta\\\":\\\"Go\\\"}\\n```\"}}]}"
			return jsonResponse(http.StatusOK, body), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider returned error: %v", err)
	}
	vars, err := provider.GenerateVariations(context.Background(), "p", nil)
	if err != nil {
		t.Fatalf("GenerateVariations returned error: %v", err)
	}
	if vars["cta"] != "Go" {
		t.Fatalf("variations = %v", vars)
	}
}

func TestOpenAIErrorsWrapProviderFailure(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		transport roundTripFunc
		fragment  string
	}{
		{
			name: "transport_error",
			transport: func(r *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
			fragment: "connection refused",
		},
		{
			name: "api_error_status",
			transport: func(r *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusTooManyRequests, `{"error":{"message":"rate limited"}}`), nil
			},
			fragment: "rate limited",
		},
		{
			name: "empty_completion",
			transport: func(r *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"choices":[]}`), nil
			},
			fragment: "empty completion",
		},
		{
			name: "non_json_variations",
			transport: func(r *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"choices":[{"message":{"content":"sorry, no"}}]}`), nil
			},
			fragment: "",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			provider, err := NewOpenAIProvider(OpenAIOptions{
				APIKey:     "sk-test",
				HTTPClient: &http.Client{Transport: tc.transport},
			})
			if err != nil {
				t.Fatalf("NewOpenAIProvider returned error: %v", err)
			}
			_, err = provider.GenerateVariations(context.Background(), "p", nil)
			if !errors.Is(err, domain.ErrProviderFailure) {
				t.Fatalf("err = %v, want ErrProviderFailure", err)
			}
			if tc.fragment != "" && !strings.Contains(err.Error(), tc.fragment) {
				t.Fatalf("err = %v, want fragment %q", err, tc.fragment)
			}
		})
	}
}

func TestNewOpenAIProviderRequiresKey(t *testing.T) {
	t.Parallel()
	if _, err := NewOpenAIProvider(OpenAIOptions{}); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestOpenAIGenerateParsesDesign(t *testing.T) {
	t.Parallel()
	design := `{"version":"1.0","canvas":{"width":1080,"height":1080},"background":{"type":"gradient","from":"#000","to":"#333"},"elements":[{"type":"text","id":"headline","content":"Hi","style":{},"position":{"x":540,"y":80},"layer":3}]}`
	encoded, err := json.Marshal(design)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	provider, err := NewOpenAIProvider(OpenAIOptions{
		APIKey: "sk-test",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			body := `{"choices":[{"message":{"content":` + string(encoded) + `}}]}`
			return jsonResponse(http.StatusOK, body), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider returned error: %v", err)
	}
	got, err := provider.Generate(context.Background(), "poster", nil)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got.Background.Type != domain.BackgroundGradient || got.Background.Direction != domain.DefaultGradientDirection {
		t.Fatalf("background = %+v", got.Background)
	}
	if got.Elements[0].Text.Content != "Hi" {
		t.Fatalf("elements = %+v", got.Elements)
	}
}
