// Package copy implements the text-provider capability consumed by the
// layout generator: adapters that ask an external LLM for short copy
// substitutions keyed by slot id, plus a named registry for long-lived
// processes that wire providers once at startup.
package copy

import (
	"context"

	"server/internal/domain"
)

// Provider is the single capability the generation engine depends on.
// Implementations must propagate transport, auth and quota failures to the
// caller; the engine never fabricates degraded output in their place.
type Provider interface {
	// Name identifies the provider in composition provenance tags.
	Name() string

	// GenerateVariations returns replacement copy keyed by slot id for the
	// given prompt. Keys that match no slot are ignored by the merger.
	GenerateVariations(ctx context.Context, prompt string, contextAssets []domain.UserAsset) (map[string]string, error)

	// Generate is the legacy prompt-only bulk mode: a straight pass-through
	// that asks the provider for a full design document, with no merge
	// semantics. Retained for compatibility.
	Generate(ctx context.Context, prompt string, baseDesign *domain.DesignJSON) (domain.DesignJSON, error)
}
