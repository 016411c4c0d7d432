package engine

import "server/internal/domain"

// MergeVariations folds a slot-id keyed substitution map into an element
// list. Only the content of matching text elements changes; style,
// position, layer, ordering and non-text elements pass through untouched.
// Substitution keys that match no element id are ignored.
func MergeVariations(elements []domain.CanvasElement, variations map[string]string) []domain.CanvasElement {
	merged := make([]domain.CanvasElement, len(elements))
	for i, el := range elements {
		if el.Type == domain.ElementText {
			if replacement, ok := variations[el.Text.ID]; ok {
				updated := *el.Text
				updated.Content = replacement
				merged[i] = domain.NewTextElement(updated)
				continue
			}
		}
		merged[i] = el
	}
	return merged
}
