package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"server/internal/domain"
	"server/internal/providers/copy"

	"github.com/rs/zerolog"
)

// fakeProvider scripts GenerateVariations per call and counts invocations.
type fakeProvider struct {
	name       string
	variations map[string]string
	err        error
	delay      func(prompt string) time.Duration
	calls      atomic.Int64
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) GenerateVariations(ctx context.Context, prompt string, contextAssets []domain.UserAsset) (map[string]string, error) {
	f.calls.Add(1)
	if f.delay != nil {
		select {
		case <-time.After(f.delay(prompt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]string, len(f.variations))
	for k, v := range f.variations {
		out[k] = v
	}
	return out, nil
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, baseDesign *domain.DesignJSON) (domain.DesignJSON, error) {
	f.calls.Add(1)
	if f.err != nil {
		return domain.DesignJSON{}, f.err
	}
	return domain.DesignJSON{
		Version:    domain.DesignVersion,
		Canvas:     domain.Canvas{Width: 1080, Height: 1080},
		Background: domain.SolidBackground("#000"),
		Elements: []domain.CanvasElement{
			domain.NewTextElement(domain.TextElement{ID: "headline", Content: prompt, Layer: 3}),
		},
	}, nil
}

func testAsset() domain.UserAsset {
	return domain.UserAsset{ID: "asset-1", Name: "bg", BlobURL: "https://cdn.example/bg.png", Width: 1600, Height: 900}
}

func testPunchlines() domain.PunchlineSet {
	return domain.PunchlineSet{Headline: "Fresh Drop", CTA: "Shop now", ContentType: domain.ContentAd}
}

func testPatterns(n int) []domain.Pattern {
	patterns := make([]domain.Pattern, n)
	for i := range patterns {
		p := fourSlotPattern()
		p.ID = fmt.Sprintf("pattern-%d", i)
		p.Name = fmt.Sprintf("Pattern %d", i)
		p.PromptHints = fmt.Sprintf("style hints %d", i)
		patterns[i] = p
	}
	return patterns
}

func newTestGenerator(registry *copy.Registry) *Generator {
	if registry == nil {
		registry = copy.NewRegistry()
	}
	return NewGenerator(registry, zerolog.Nop())
}

func TestGenerateTemplateModeNeverTouchesProvider(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{name: "spy"}
	registry := copy.NewRegistry()
	registry.Register(provider.Name(), provider)
	g := newTestGenerator(registry)

	compositions, err := g.Generate(context.Background(), GenerateRequest{
		Asset:      testAsset(),
		Punchlines: testPunchlines(),
		Patterns:   testPatterns(3),
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(compositions) != 3 {
		t.Fatalf("compositions = %d, want 3", len(compositions))
	}
	if n := provider.calls.Load(); n != 0 {
		t.Fatalf("provider called %d times in template mode", n)
	}
	for i, c := range compositions {
		if c.GeneratedBy != domain.GeneratedByTemplate {
			t.Errorf("compositions[%d].GeneratedBy = %q, want %q", i, c.GeneratedBy, domain.GeneratedByTemplate)
		}
		if err := c.Design.Validate(); err != nil {
			t.Errorf("compositions[%d] design invalid: %v", i, err)
		}
		if c.Design.Background.Type != domain.BackgroundImage || c.Design.Background.Src != "https://cdn.example/bg.png" {
			t.Errorf("compositions[%d] background = %+v", i, c.Design.Background)
		}
		if c.Design.Overlay == nil {
			t.Errorf("compositions[%d] missing overlay", i)
		}
	}
}

func TestGenerateWithVariationTagsProvider(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{name: "openai", variations: map[string]string{"headline": "Rewritten"}}
	g := newTestGenerator(nil)

	patterns := testPatterns(2)
	patterns[1].PromptHints = "" // opts out of variation

	compositions, err := g.Generate(context.Background(), GenerateRequest{
		Asset:            testAsset(),
		Punchlines:       testPunchlines(),
		Patterns:         patterns,
		UseCopyVariation: true,
		Provider:         provider,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if compositions[0].GeneratedBy != "openai" {
		t.Fatalf("compositions[0].GeneratedBy = %q, want openai", compositions[0].GeneratedBy)
	}
	if got := compositions[0].Design.Elements[0].Text.Content; got != "Rewritten" {
		t.Fatalf("headline = %q, want Rewritten", got)
	}
	if compositions[1].GeneratedBy != domain.GeneratedByTemplate {
		t.Fatalf("pattern without hints tagged %q, want template", compositions[1].GeneratedBy)
	}
	if n := provider.calls.Load(); n != 1 {
		t.Fatalf("provider called %d times, want 1", n)
	}
}

func TestGeneratePreservesPatternOrderUnderScrambledCompletion(t *testing.T) {
	t.Parallel()
	// Earlier patterns finish last.
	provider := &fakeProvider{
		name:       "slowpoke",
		variations: map[string]string{},
		delay: func(prompt string) time.Duration {
			if strings.Contains(prompt, "style hints 0") {
				return 30 * time.Millisecond
			}
			return 0
		},
	}
	g := newTestGenerator(nil)

	compositions, err := g.Generate(context.Background(), GenerateRequest{
		Asset:            testAsset(),
		Punchlines:       testPunchlines(),
		Patterns:         testPatterns(4),
		UseCopyVariation: true,
		Provider:         provider,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	for i, c := range compositions {
		if want := fmt.Sprintf("Pattern %d", i); c.Name != want {
			t.Fatalf("compositions[%d].Name = %q, want %q", i, c.Name, want)
		}
	}
}

func TestGenerateProviderFailureFailsWholeBatch(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{name: "flaky", err: fmt.Errorf("%w: rate limited", domain.ErrProviderFailure)}
	g := newTestGenerator(nil)

	compositions, err := g.Generate(context.Background(), GenerateRequest{
		Asset:            testAsset(),
		Punchlines:       testPunchlines(),
		Patterns:         testPatterns(3),
		UseCopyVariation: true,
		Provider:         provider,
	})
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("err = %v, want ErrProviderFailure", err)
	}
	if compositions != nil {
		t.Fatalf("compositions = %+v, want nil on failure", compositions)
	}
}

func TestGenerateValidatesBeforeProvider(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{name: "spy"}
	g := newTestGenerator(nil)

	badPattern := fourSlotPattern()
	badPattern.ID = ""

	_, err := g.Generate(context.Background(), GenerateRequest{
		Asset:            domain.UserAsset{},
		Punchlines:       domain.PunchlineSet{ContentType: "bogus"},
		Patterns:         []domain.Pattern{badPattern},
		UseCopyVariation: true,
		Provider:         provider,
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if n := provider.calls.Load(); n != 0 {
		t.Fatalf("provider called %d times despite invalid input", n)
	}
	prefixes := map[string]bool{}
	for _, f := range ve.Fields {
		prefixes[strings.SplitN(f.Path, ".", 2)[0]] = true
	}
	for _, want := range []string{"backgroundImage", "punchlines", "patterns[0]"} {
		if !prefixes[want] {
			t.Errorf("no violation under %q; have %v", want, ve.Fields)
		}
	}
}

func TestGenerateRequiresProviderWhenVariationRequested(t *testing.T) {
	t.Parallel()
	g := newTestGenerator(nil)
	_, err := g.Generate(context.Background(), GenerateRequest{
		Asset:            testAsset(),
		Punchlines:       testPunchlines(),
		Patterns:         testPatterns(1),
		UseCopyVariation: true,
	})
	if !errors.Is(err, domain.ErrProviderRequired) {
		t.Fatalf("err = %v, want ErrProviderRequired", err)
	}
}

func TestGenerateResolvesProviderByName(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{name: "registered", variations: map[string]string{}}
	registry := copy.NewRegistry()
	registry.Register(provider.Name(), provider)
	g := newTestGenerator(registry)

	compositions, err := g.Generate(context.Background(), GenerateRequest{
		Asset:            testAsset(),
		Punchlines:       testPunchlines(),
		Patterns:         testPatterns(1),
		UseCopyVariation: true,
		ProviderName:     "registered",
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if compositions[0].GeneratedBy != "registered" {
		t.Fatalf("GeneratedBy = %q, want registered", compositions[0].GeneratedBy)
	}

	_, err = g.Generate(context.Background(), GenerateRequest{
		Asset:            testAsset(),
		Punchlines:       testPunchlines(),
		Patterns:         testPatterns(1),
		UseCopyVariation: true,
		ProviderName:     "missing",
	})
	if !errors.Is(err, domain.ErrProviderNotRegistered) {
		t.Fatalf("err = %v, want ErrProviderNotRegistered", err)
	}
}

func TestGenerateFromPrompt(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{name: "bulk"}
	g := newTestGenerator(nil)

	compositions, err := g.GenerateFromPrompt(context.Background(), "summer sale poster", 3, provider, 2)
	if err != nil {
		t.Fatalf("GenerateFromPrompt returned error: %v", err)
	}
	if len(compositions) != 3 {
		t.Fatalf("compositions = %d, want 3", len(compositions))
	}
	for i, c := range compositions {
		if want := fmt.Sprintf("Variant %d", 3+i); c.Name != want {
			t.Errorf("compositions[%d].Name = %q, want %q", i, c.Name, want)
		}
		if c.GeneratedBy != "bulk" {
			t.Errorf("compositions[%d].GeneratedBy = %q, want bulk", i, c.GeneratedBy)
		}
	}

	if _, err := g.GenerateFromPrompt(context.Background(), "p", 1, nil, 0); !errors.Is(err, domain.ErrProviderRequired) {
		t.Fatalf("nil provider err = %v, want ErrProviderRequired", err)
	}
}
