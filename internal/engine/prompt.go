package engine

import (
	"fmt"
	"strings"

	"server/internal/domain"
)

// BuildVariationPrompt summarizes the content type, the pattern's style
// hints, and the non-empty punchline values into the single prompt sent to
// the copy provider. Punchline lines use the `- role: "text"` form the
// providers are instructed to key their substitutions by.
func BuildVariationPrompt(punchlines domain.PunchlineSet, pattern domain.Pattern) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Rewrite the following %s copy to better match this visual style: %s\n", punchlines.ContentType, pattern.PromptHints)
	sb.WriteString("Respond strictly with a flat JSON object keyed by the slot ids below.\nCurrent copy:\n")
	for _, role := range contentTypeAllowedSlots[punchlines.ContentType] {
		text := punchlines.ValueFor(role)
		if text == "" {
			continue
		}
		fmt.Fprintf(sb, "- %s: %q\n", role, text)
	}
	return sb.String()
}
