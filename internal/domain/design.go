package domain

import (
	"encoding/json"
	"fmt"
)

// DesignVersion is the only document format revision this engine reads or
// writes. Consumers must reject any other value rather than guess.
const DesignVersion = "1.0"

// Canvas holds the logical dimensions of a design document.
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BackgroundType discriminates the background union.
type BackgroundType string

const (
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundImage    BackgroundType = "image"
)

// DefaultGradientDirection is applied when a gradient background omits its
// direction, matching the documented wire default.
const DefaultGradientDirection = 135

// Background is the tagged union behind a document's backdrop. Exactly one
// variant's fields are populated; the wire form carries only that variant.
type Background struct {
	Type BackgroundType

	// solid
	Value string

	// gradient
	From      string
	To        string
	Direction float64

	// image
	Src     string
	AssetID string
}

// SolidBackground builds the solid variant.
func SolidBackground(value string) Background {
	return Background{Type: BackgroundSolid, Value: value}
}

// GradientBackground builds the gradient variant.
func GradientBackground(from, to string, direction float64) Background {
	return Background{Type: BackgroundGradient, From: from, To: to, Direction: direction}
}

// ImageBackground builds the image variant referencing a user asset.
func ImageBackground(src, assetID string) Background {
	return Background{Type: BackgroundImage, Src: src, AssetID: assetID}
}

type solidBackgroundJSON struct {
	Type  BackgroundType `json:"type"`
	Value string         `json:"value"`
}

type gradientBackgroundJSON struct {
	Type      BackgroundType `json:"type"`
	From      string         `json:"from"`
	To        string         `json:"to"`
	Direction *float64       `json:"direction,omitempty"`
}

type imageBackgroundJSON struct {
	Type    BackgroundType `json:"type"`
	Src     string         `json:"src"`
	AssetID string         `json:"assetId,omitempty"`
}

func (b Background) MarshalJSON() ([]byte, error) {
	switch b.Type {
	case BackgroundSolid:
		return json.Marshal(solidBackgroundJSON{Type: b.Type, Value: b.Value})
	case BackgroundGradient:
		d := b.Direction
		return json.Marshal(gradientBackgroundJSON{Type: b.Type, From: b.From, To: b.To, Direction: &d})
	case BackgroundImage:
		return json.Marshal(imageBackgroundJSON{Type: b.Type, Src: b.Src, AssetID: b.AssetID})
	default:
		return nil, fmt.Errorf("background: unknown type %q", b.Type)
	}
}

func (b *Background) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type BackgroundType `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	switch tag.Type {
	case BackgroundSolid:
		var v solidBackgroundJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*b = Background{Type: tag.Type, Value: v.Value}
	case BackgroundGradient:
		var v gradientBackgroundJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		direction := float64(DefaultGradientDirection)
		if v.Direction != nil {
			direction = *v.Direction
		}
		*b = Background{Type: tag.Type, From: v.From, To: v.To, Direction: direction}
	case BackgroundImage:
		var v imageBackgroundJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*b = Background{Type: tag.Type, Src: v.Src, AssetID: v.AssetID}
	default:
		return fmt.Errorf("background: unknown type %q", tag.Type)
	}
	return nil
}

func (b Background) validate(path string, ve *ValidationError) {
	switch b.Type {
	case BackgroundSolid:
		ve.requireNonEmpty(path+".value", b.Value)
	case BackgroundGradient:
		ve.requireNonEmpty(path+".from", b.From)
		ve.requireNonEmpty(path+".to", b.To)
	case BackgroundImage:
		ve.requireNonEmpty(path+".src", b.Src)
	default:
		ve.addf(path+".type", "unknown background type %q", b.Type)
	}
}

// OverlayType discriminates translucent treatments drawn between the
// background and the elements. Shared with pattern background treatments.
type OverlayType string

const (
	OverlaySolid    OverlayType = "solid"
	OverlayGradient OverlayType = "gradient"
	OverlayTexture  OverlayType = "texture"
)

func (t OverlayType) valid() bool {
	switch t {
	case OverlaySolid, OverlayGradient, OverlayTexture:
		return true
	}
	return false
}

// Overlay is a translucent treatment painted above the background.
type Overlay struct {
	Type    OverlayType `json:"type"`
	Value   string      `json:"value"`
	Opacity float64     `json:"opacity"`
}

func (o Overlay) validate(path string, ve *ValidationError) {
	if !o.Type.valid() {
		ve.addf(path+".type", "unknown overlay type %q", o.Type)
	}
	ve.requireNonEmpty(path+".value", o.Value)
	ve.requireUnitInterval(path+".opacity", o.Opacity)
}

// FontWeight is the closed set of supported text weights.
type FontWeight string

const (
	WeightNormal    FontWeight = "normal"
	WeightBold      FontWeight = "bold"
	WeightExtrabold FontWeight = "extrabold"
)

func (w FontWeight) valid() bool {
	switch w {
	case WeightNormal, WeightBold, WeightExtrabold:
		return true
	}
	return false
}

// Align is a qualitative horizontal placement hint.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

func (a Align) valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

// Position is a point in canvas logical units.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TextStyle carries the typographic attributes of a text element.
type TextStyle struct {
	FontSize   float64    `json:"fontSize,omitempty"`
	FontFamily string     `json:"fontFamily,omitempty"`
	Color      string     `json:"color,omitempty"`
	FontWeight FontWeight `json:"fontWeight,omitempty"`
	TextAlign  Align      `json:"textAlign,omitempty"`
}

// Transform holds scale, rotation and opacity for image elements.
type Transform struct {
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
	Opacity  float64 `json:"opacity"`
}

// ShapeType enumerates the primitive shapes a shape element may draw.
type ShapeType string

const (
	ShapeRectangle ShapeType = "rectangle"
	ShapeCircle    ShapeType = "circle"
	ShapeTriangle  ShapeType = "triangle"
)

func (s ShapeType) valid() bool {
	switch s {
	case ShapeRectangle, ShapeCircle, ShapeTriangle:
		return true
	}
	return false
}

// ShapeStyle carries the fill attributes of a shape element.
type ShapeStyle struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// ElementType discriminates the canvas element union.
type ElementType string

const (
	ElementText  ElementType = "text"
	ElementImage ElementType = "image"
	ElementShape ElementType = "shape"
)

// TextElement places styled copy on the canvas.
type TextElement struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	Style    TextStyle `json:"style"`
	Position Position  `json:"position"`
	Layer    int       `json:"layer"`
}

// ImageElement places a referenced raster asset on the canvas.
type ImageElement struct {
	ID        string    `json:"id"`
	Src       string    `json:"src"`
	Transform Transform `json:"transform"`
	Position  Position  `json:"position"`
	Layer     int       `json:"layer"`
}

// ShapeElement places a primitive shape on the canvas.
type ShapeElement struct {
	ID        string     `json:"id"`
	ShapeType ShapeType  `json:"shapeType"`
	Style     ShapeStyle `json:"style"`
	Position  Position   `json:"position"`
	Layer     int        `json:"layer"`
}

// CanvasElement is the tagged union of everything a document can place on
// its canvas. Exactly one variant pointer is set, selected by Type.
type CanvasElement struct {
	Type  ElementType
	Text  *TextElement
	Image *ImageElement
	Shape *ShapeElement
}

// NewTextElement wraps a text payload in the union.
func NewTextElement(t TextElement) CanvasElement {
	return CanvasElement{Type: ElementText, Text: &t}
}

// NewImageElement wraps an image payload in the union.
func NewImageElement(i ImageElement) CanvasElement {
	return CanvasElement{Type: ElementImage, Image: &i}
}

// NewShapeElement wraps a shape payload in the union.
func NewShapeElement(s ShapeElement) CanvasElement {
	return CanvasElement{Type: ElementShape, Shape: &s}
}

// ID returns the element identifier regardless of variant.
func (e CanvasElement) ID() string {
	switch e.Type {
	case ElementText:
		return e.Text.ID
	case ElementImage:
		return e.Image.ID
	case ElementShape:
		return e.Shape.ID
	}
	return ""
}

// Layer returns the paint-order layer regardless of variant.
func (e CanvasElement) Layer() int {
	switch e.Type {
	case ElementText:
		return e.Text.Layer
	case ElementImage:
		return e.Image.Layer
	case ElementShape:
		return e.Shape.Layer
	}
	return 0
}

type textElementJSON struct {
	TextElement
	Type ElementType `json:"type"`
}

type imageElementJSON struct {
	ImageElement
	Type ElementType `json:"type"`
}

type shapeElementJSON struct {
	ShapeElement
	Type ElementType `json:"type"`
}

func (e CanvasElement) MarshalJSON() ([]byte, error) {
	switch e.Type {
	case ElementText:
		return json.Marshal(textElementJSON{TextElement: *e.Text, Type: e.Type})
	case ElementImage:
		return json.Marshal(imageElementJSON{ImageElement: *e.Image, Type: e.Type})
	case ElementShape:
		return json.Marshal(shapeElementJSON{ShapeElement: *e.Shape, Type: e.Type})
	default:
		return nil, fmt.Errorf("element: unknown type %q", e.Type)
	}
}

func (e *CanvasElement) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type ElementType `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	switch tag.Type {
	case ElementText:
		var v TextElement
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*e = NewTextElement(v)
	case ElementImage:
		var v ImageElement
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*e = NewImageElement(v)
	case ElementShape:
		var v ShapeElement
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*e = NewShapeElement(v)
	default:
		return fmt.Errorf("element: unknown type %q", tag.Type)
	}
	return nil
}

func (e CanvasElement) validate(path string, ve *ValidationError) {
	switch e.Type {
	case ElementText:
		t := e.Text
		ve.requireNonEmpty(path+".id", t.ID)
		if t.Style.FontWeight != "" && !t.Style.FontWeight.valid() {
			ve.addf(path+".style.fontWeight", "unknown font weight %q", t.Style.FontWeight)
		}
		if t.Style.TextAlign != "" && !t.Style.TextAlign.valid() {
			ve.addf(path+".style.textAlign", "unknown text align %q", t.Style.TextAlign)
		}
		if t.Layer <= 0 {
			ve.addf(path+".layer", "must be a positive integer")
		}
	case ElementImage:
		i := e.Image
		ve.requireNonEmpty(path+".id", i.ID)
		ve.requireNonEmpty(path+".src", i.Src)
		ve.requireUnitInterval(path+".transform.opacity", i.Transform.Opacity)
		if i.Layer <= 0 {
			ve.addf(path+".layer", "must be a positive integer")
		}
	case ElementShape:
		s := e.Shape
		ve.requireNonEmpty(path+".id", s.ID)
		if !s.ShapeType.valid() {
			ve.addf(path+".shapeType", "unknown shape type %q", s.ShapeType)
		}
		if s.Layer <= 0 {
			ve.addf(path+".layer", "must be a positive integer")
		}
	default:
		ve.addf(path+".type", "unknown element type %q", e.Type)
	}
}

// DesignJSON is the canonical, renderer-agnostic layout document. Element
// order is not semantic; paint order is ascending layer.
type DesignJSON struct {
	Version    string          `json:"version"`
	Canvas     Canvas          `json:"canvas"`
	Background Background      `json:"background"`
	Overlay    *Overlay        `json:"overlay,omitempty"`
	Elements   []CanvasElement `json:"elements"`
}

// Validate reports every schema violation in the document.
func (d DesignJSON) Validate() error {
	ve := &ValidationError{}
	if d.Version != DesignVersion {
		ve.addf("version", "must be %q, got %q", DesignVersion, d.Version)
	}
	ve.requirePositive("canvas.width", d.Canvas.Width)
	ve.requirePositive("canvas.height", d.Canvas.Height)
	d.Background.validate("background", ve)
	if d.Overlay != nil {
		d.Overlay.validate("overlay", ve)
	}
	seen := make(map[string]struct{}, len(d.Elements))
	for i, el := range d.Elements {
		path := fmt.Sprintf("elements[%d]", i)
		el.validate(path, ve)
		id := el.ID()
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			ve.addf(path+".id", "duplicate element id %q", id)
		}
		seen[id] = struct{}{}
	}
	return ve.ErrOrNil()
}

// ParseDesignJSON decodes and validates a document from its wire form.
func ParseDesignJSON(data []byte) (DesignJSON, error) {
	var d DesignJSON
	if err := json.Unmarshal(data, &d); err != nil {
		return DesignJSON{}, fmt.Errorf("design json: %w", err)
	}
	if err := d.Validate(); err != nil {
		return DesignJSON{}, err
	}
	return d, nil
}
