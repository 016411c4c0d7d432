package engine

import (
	"math"

	"server/internal/domain"
)

// Placement policy. All generated documents target the fixed reference
// canvas; the coordinates below do not scale with any other canvas size a
// consumer might declare.
const (
	ReferenceCanvasWidth  = 1080
	ReferenceCanvasHeight = 1080

	// BaseFontSize is multiplied by a slot's fontSizeScale.
	BaseFontSize = 48
)

var zoneY = map[domain.Zone]float64{
	domain.ZoneTop:    80,
	domain.ZoneCenter: 480,
	domain.ZoneBottom: 880,
}

var alignX = map[domain.Align]float64{
	domain.AlignLeft:   80,
	domain.AlignCenter: 540,
	domain.AlignRight:  900,
}

// Placement resolves a qualitative zone/align pair to reference-canvas
// pixel coordinates.
func Placement(zone domain.Zone, align domain.Align) domain.Position {
	return domain.Position{X: alignX[align], Y: zoneY[zone]}
}

// FontSize resolves a slot's scale factor to a concrete size.
func FontSize(scale float64) float64 {
	return math.Round(BaseFontSize * scale)
}
