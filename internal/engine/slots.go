// Package engine implements the layout generation core: punchline-to-slot
// mapping, zone placement, element building, copy-variation merging, and
// the per-pattern generation orchestrator.
package engine

import "server/internal/domain"

// contentTypeAllowedSlots is the fixed, closed allow-list of slot roles
// per content type. Not configurable per call.
var contentTypeAllowedSlots = map[domain.ContentType][]domain.SlotRole{
	domain.ContentMeme:  {domain.RoleHeadline, domain.RoleCaption},
	domain.ContentAd:    {domain.RoleHeadline, domain.RoleSubheadline, domain.RoleCTA},
	domain.ContentPromo: {domain.RoleHeadline, domain.RoleSubheadline, domain.RoleCTA, domain.RoleCaption},
}

// SlotMapping pairs a pattern slot with the user copy destined for it.
type SlotMapping struct {
	SlotID domain.SlotRole
	Text   string
	Slot   domain.TextSlot
}

// MapSlots selects the pattern slots that both pass the content type's
// allow-list and have user copy, preserving pattern declaration order.
// Slots without copy are dropped entirely; no empty-text entry is emitted.
func MapSlots(punchlines domain.PunchlineSet, pattern domain.Pattern) []SlotMapping {
	allowed := make(map[domain.SlotRole]struct{})
	for _, role := range contentTypeAllowedSlots[punchlines.ContentType] {
		allowed[role] = struct{}{}
	}

	var mapped []SlotMapping
	for _, slot := range pattern.TextSlots {
		if _, ok := allowed[slot.ID]; !ok {
			continue
		}
		text := punchlines.ValueFor(slot.ID)
		if text == "" {
			continue
		}
		mapped = append(mapped, SlotMapping{SlotID: slot.ID, Text: text, Slot: slot})
	}
	return mapped
}
