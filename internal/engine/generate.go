package engine

import (
	"context"
	"fmt"

	"server/internal/domain"
	"server/internal/providers/copy"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Generator orchestrates per-pattern layout generation. It holds no
// request state; a single instance serves concurrent requests.
type Generator struct {
	registry *copy.Registry
	logger   zerolog.Logger
}

// NewGenerator builds a generator backed by the given provider registry.
func NewGenerator(registry *copy.Registry, logger zerolog.Logger) *Generator {
	return &Generator{registry: registry, logger: logger}
}

// GenerateRequest is one generation batch: one background asset, one
// punchline set, and the patterns to produce a composition for.
type GenerateRequest struct {
	Asset      domain.UserAsset
	Punchlines domain.PunchlineSet
	Patterns   []domain.Pattern

	// UseCopyVariation asks the copy provider to rewrite punchlines for
	// every pattern that declares prompt hints.
	UseCopyVariation bool

	// Provider, when set, is used directly. Otherwise ProviderName is
	// resolved through the registry. Only consulted when UseCopyVariation
	// is true.
	Provider     copy.Provider
	ProviderName string
}

// Generate produces one composition per pattern, in pattern order.
// Inputs are validated up front; any provider failure fails the whole
// batch and no compositions are returned.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) ([]domain.Composition, error) {
	ve := &domain.ValidationError{}
	ve.Merge("backgroundImage", req.Asset.Validate())
	ve.Merge("punchlines", req.Punchlines.Validate())
	for i, p := range req.Patterns {
		ve.Merge(fmt.Sprintf("patterns[%d]", i), p.Validate())
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	// The provider is resolved before any call is attempted so a
	// misconfigured request fails without touching the network.
	var provider copy.Provider
	if req.UseCopyVariation {
		var err error
		provider, err = g.resolveProvider(req)
		if err != nil {
			return nil, err
		}
	}

	designs := make([]domain.DesignJSON, len(req.Patterns))
	tags := make([]string, len(req.Patterns))

	eg, gctx := errgroup.WithContext(ctx)
	for i, pattern := range req.Patterns {
		i, pattern := i, pattern
		eg.Go(func() error {
			design := g.buildDraft(req, pattern)
			tag := domain.GeneratedByTemplate
			if provider != nil && pattern.PromptHints != "" {
				prompt := BuildVariationPrompt(req.Punchlines, pattern)
				variations, err := provider.GenerateVariations(gctx, prompt, []domain.UserAsset{req.Asset})
				if err != nil {
					return fmt.Errorf("pattern %q: %w", pattern.ID, err)
				}
				design.Elements = MergeVariations(design.Elements, variations)
				tag = provider.Name()
			}
			designs[i] = design
			tags[i] = tag
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Compositions are minted only after the whole batch has succeeded,
	// preserving the caller-supplied pattern order.
	compositions := make([]domain.Composition, len(req.Patterns))
	for i, pattern := range req.Patterns {
		compositions[i] = domain.NewComposition(pattern.Name, designs[i], tags[i])
	}
	g.logger.Debug().
		Int("patterns", len(req.Patterns)).
		Bool("copy_variation", req.UseCopyVariation).
		Msg("generated compositions")
	return compositions, nil
}

// GenerateFromPrompt is the legacy bulk mode: it asks the provider for
// count full documents from a free-form prompt, bypassing template and
// slot logic entirely. Variant naming continues from startIndex.
func (g *Generator) GenerateFromPrompt(ctx context.Context, prompt string, count int, provider copy.Provider, startIndex int) ([]domain.Composition, error) {
	if provider == nil {
		return nil, domain.ErrProviderRequired
	}
	if count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", count)
	}

	designs := make([]domain.DesignJSON, count)
	eg, gctx := errgroup.WithContext(ctx)
	for i := range designs {
		i := i
		eg.Go(func() error {
			design, err := provider.Generate(gctx, prompt, nil)
			if err != nil {
				return err
			}
			designs[i] = design
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	compositions := make([]domain.Composition, count)
	for i, design := range designs {
		name := fmt.Sprintf("Variant %d", startIndex+i+1)
		compositions[i] = domain.NewComposition(name, design, provider.Name())
	}
	return compositions, nil
}

func (g *Generator) resolveProvider(req GenerateRequest) (copy.Provider, error) {
	if req.Provider != nil {
		return req.Provider, nil
	}
	if req.ProviderName == "" {
		return nil, fmt.Errorf("%w: copy variation requested without a provider", domain.ErrProviderRequired)
	}
	return g.registry.Resolve(req.ProviderName)
}

// buildDraft assembles the document shell and the placed, styled text
// elements for one pattern, before any copy variation.
func (g *Generator) buildDraft(req GenerateRequest, pattern domain.Pattern) domain.DesignJSON {
	mapped := MapSlots(req.Punchlines, pattern)
	return domain.DesignJSON{
		Version:    domain.DesignVersion,
		Canvas:     domain.Canvas{Width: ReferenceCanvasWidth, Height: ReferenceCanvasHeight},
		Background: domain.ImageBackground(req.Asset.BlobURL, req.Asset.ID),
		Overlay: &domain.Overlay{
			Type:    pattern.Background.Type,
			Value:   pattern.Background.Value,
			Opacity: pattern.Background.OverlayOpacity,
		},
		Elements: BuildElements(mapped),
	}
}
