package engine

import "server/internal/domain"

// elementBaseLayer reserves layers 0-2 for the background, the overlay,
// and future treatments.
const elementBaseLayer = 3

// BuildElements turns mapped slots into concrete text elements. Element
// ids are slot roles; layers follow mapping order from the base layer.
func BuildElements(mappings []SlotMapping) []domain.CanvasElement {
	elements := make([]domain.CanvasElement, 0, len(mappings))
	for i, m := range mappings {
		elements = append(elements, domain.NewTextElement(domain.TextElement{
			ID:      string(m.SlotID),
			Content: m.Text,
			Style: domain.TextStyle{
				FontSize:   FontSize(m.Slot.FontSizeScale),
				FontFamily: m.Slot.FontFamily,
				Color:      m.Slot.Color,
				FontWeight: m.Slot.FontWeight,
			},
			Position: Placement(m.Slot.Zone, m.Slot.Align),
			Layer:    elementBaseLayer + i,
		}))
	}
	return elements
}
