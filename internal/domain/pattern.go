package domain

import "fmt"

// SlotRole is the closed set of semantic roles a text slot may carry.
type SlotRole string

const (
	RoleHeadline    SlotRole = "headline"
	RoleSubheadline SlotRole = "subheadline"
	RoleCTA         SlotRole = "cta"
	RoleCaption     SlotRole = "caption"
)

func (r SlotRole) valid() bool {
	switch r {
	case RoleHeadline, RoleSubheadline, RoleCTA, RoleCaption:
		return true
	}
	return false
}

// Zone is a qualitative vertical placement hint.
type Zone string

const (
	ZoneTop    Zone = "top"
	ZoneCenter Zone = "center"
	ZoneBottom Zone = "bottom"
)

func (z Zone) valid() bool {
	switch z {
	case ZoneTop, ZoneCenter, ZoneBottom:
		return true
	}
	return false
}

// TextSlot is a named placeholder in a pattern where copy and styling
// attach. FontSizeScale multiplies the engine's fixed base font size.
type TextSlot struct {
	ID            SlotRole   `json:"id"`
	Zone          Zone       `json:"zone"`
	Align         Align      `json:"align"`
	FontFamily    string     `json:"fontFamily"`
	FontSizeScale float64    `json:"fontSizeScale"`
	Color         string     `json:"color"`
	FontWeight    FontWeight `json:"fontWeight"`
}

func (s TextSlot) validate(path string, ve *ValidationError) {
	if !s.ID.valid() {
		ve.addf(path+".id", "unknown slot role %q", s.ID)
	}
	if !s.Zone.valid() {
		ve.addf(path+".zone", "unknown zone %q", s.Zone)
	}
	if !s.Align.valid() {
		ve.addf(path+".align", "unknown align %q", s.Align)
	}
	ve.requireNonEmpty(path+".fontFamily", s.FontFamily)
	ve.requirePositive(path+".fontSizeScale", s.FontSizeScale)
	ve.requireNonEmpty(path+".color", s.Color)
	if !s.FontWeight.valid() {
		ve.addf(path+".fontWeight", "unknown font weight %q", s.FontWeight)
	}
}

// BackgroundTreatment is the visual treatment a pattern contributes to a
// generated document. It becomes the document's overlay, not its background.
type BackgroundTreatment struct {
	Type           OverlayType `json:"type"`
	Value          string      `json:"value"`
	OverlayOpacity float64     `json:"overlayOpacity"`
}

func (b BackgroundTreatment) validate(path string, ve *ValidationError) {
	if !b.Type.valid() {
		ve.addf(path+".type", "unknown treatment type %q", b.Type)
	}
	ve.requireNonEmpty(path+".value", b.Value)
	ve.requireUnitInterval(path+".overlayOpacity", b.OverlayOpacity)
}

// Pattern is a reusable visual style template. An empty PromptHints
// disables copy variation for the pattern even when globally requested.
type Pattern struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Tags        []string            `json:"tags"`
	Background  BackgroundTreatment `json:"background"`
	TextSlots   []TextSlot          `json:"textSlots"`
	AccentColor string              `json:"accentColor"`
	PromptHints string              `json:"promptHints,omitempty"`
}

// Validate reports every schema violation in the pattern. A role declared
// by more than one slot is rejected: slot roles become element ids, and
// element ids must be unique within a generated document.
func (p Pattern) Validate() error {
	ve := &ValidationError{}
	ve.requireNonEmpty("id", p.ID)
	ve.requireNonEmpty("name", p.Name)
	p.Background.validate("background", ve)
	ve.requireNonEmpty("accentColor", p.AccentColor)
	seen := make(map[SlotRole]struct{}, len(p.TextSlots))
	for i, slot := range p.TextSlots {
		path := fmt.Sprintf("textSlots[%d]", i)
		slot.validate(path, ve)
		if _, dup := seen[slot.ID]; dup {
			ve.addf(path+".id", "duplicate slot role %q", slot.ID)
		}
		seen[slot.ID] = struct{}{}
	}
	return ve.ErrOrNil()
}
