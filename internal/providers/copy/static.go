package copy

import (
	"context"
	"strconv"
	"strings"

	"server/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const staticProviderName = "static"

// StaticProvider is a deterministic offline provider. It echoes the
// punchline lines of the variation prompt back title-cased, which keeps
// the merge path exercisable without a network, and doubles as the no-op
// stub the orchestrator runs with when variation is disabled.
type StaticProvider struct{}

// NewStaticProvider returns the offline provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (s *StaticProvider) Name() string { return staticProviderName }

// GenerateVariations scans the prompt for the `- role: "text"` lines the
// engine emits and returns each value title-cased under its role.
func (s *StaticProvider) GenerateVariations(ctx context.Context, prompt string, contextAssets []domain.UserAsset) (map[string]string, error) {
	titler := cases.Title(language.Und)
	out := make(map[string]string)
	for _, line := range strings.Split(prompt, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "- ") {
			continue
		}
		role, quoted, ok := strings.Cut(strings.TrimPrefix(line, "- "), ": ")
		if !ok {
			continue
		}
		text, err := strconv.Unquote(quoted)
		if err != nil || text == "" {
			continue
		}
		out[strings.TrimSpace(role)] = titler.String(text)
	}
	return out, nil
}

// Generate produces a minimal valid document carrying the prompt as its
// headline. Used by the legacy bulk mode when no external provider is
// configured.
func (s *StaticProvider) Generate(ctx context.Context, prompt string, baseDesign *domain.DesignJSON) (domain.DesignJSON, error) {
	headline := strings.TrimSpace(prompt)
	if r := []rune(headline); len(r) > 60 {
		headline = string(r[:60])
	}
	headline = cases.Title(language.Und).String(headline)
	return domain.DesignJSON{
		Version:    domain.DesignVersion,
		Canvas:     domain.Canvas{Width: 1080, Height: 1080},
		Background: domain.SolidBackground("#111827"),
		Elements: []domain.CanvasElement{
			domain.NewTextElement(domain.TextElement{
				ID:      "headline",
				Content: headline,
				Style: domain.TextStyle{
					FontSize:   48,
					FontFamily: "Inter",
					Color:      "#ffffff",
					FontWeight: domain.WeightBold,
					TextAlign:  domain.AlignCenter,
				},
				Position: domain.Position{X: 540, Y: 480},
				Layer:    3,
			}),
		},
	}, nil
}

var _ Provider = (*StaticProvider)(nil)
