// Package patterns ships the built-in visual template library.
package patterns

import "server/internal/domain"

// Presets returns the built-in pattern library in display order. Callers
// receive a fresh slice on every call and may reorder it freely.
func Presets() []domain.Pattern {
	return []domain.Pattern{
		{
			ID:          "preset-noir",
			Name:        "Neon Noir",
			Description: "Dark, edgy layout with strong contrast and neon accents.",
			Tags:        []string{"dark", "cyberpunk", "gaming", "tech"},
			Background:  domain.BackgroundTreatment{Type: domain.OverlaySolid, Value: "#0d1117", OverlayOpacity: 0.8},
			AccentColor: "#00f5d4",
			TextSlots: []domain.TextSlot{
				{ID: domain.RoleHeadline, Zone: domain.ZoneCenter, Align: domain.AlignCenter, FontFamily: "Inter", FontSizeScale: 1.5, Color: "#ffffff", FontWeight: domain.WeightExtrabold},
				{ID: domain.RoleSubheadline, Zone: domain.ZoneBottom, Align: domain.AlignCenter, FontFamily: "Inter", FontSizeScale: 0.8, Color: "#00f5d4", FontWeight: domain.WeightBold},
				{ID: domain.RoleCTA, Zone: domain.ZoneBottom, Align: domain.AlignCenter, FontFamily: "Inter", FontSizeScale: 0.7, Color: "#ffffff", FontWeight: domain.WeightBold},
				{ID: domain.RoleCaption, Zone: domain.ZoneTop, Align: domain.AlignCenter, FontFamily: "Inter", FontSizeScale: 0.8, Color: "#8b949e", FontWeight: domain.WeightNormal},
			},
			PromptHints: "Dark background, cyberpunk vibes, sharp edges.",
		},
		{
			ID:          "preset-minimalist",
			Name:        "Clean Minimalist",
			Description: "Light, airy layout focusing on whitespace and clarity.",
			Tags:        []string{"light", "clean", "corporate", "elegant"},
			Background:  domain.BackgroundTreatment{Type: domain.OverlaySolid, Value: "#ffffff", OverlayOpacity: 0.4},
			AccentColor: "#000000",
			TextSlots: []domain.TextSlot{
				{ID: domain.RoleHeadline, Zone: domain.ZoneTop, Align: domain.AlignLeft, FontFamily: "Playfair Display", FontSizeScale: 1.8, Color: "#111827", FontWeight: domain.WeightBold},
				{ID: domain.RoleSubheadline, Zone: domain.ZoneCenter, Align: domain.AlignLeft, FontFamily: "Inter", FontSizeScale: 0.9, Color: "#4b5563", FontWeight: domain.WeightNormal},
				{ID: domain.RoleCTA, Zone: domain.ZoneBottom, Align: domain.AlignLeft, FontFamily: "Inter", FontSizeScale: 0.8, Color: "#111827", FontWeight: domain.WeightBold},
				{ID: domain.RoleCaption, Zone: domain.ZoneBottom, Align: domain.AlignRight, FontFamily: "Inter", FontSizeScale: 0.6, Color: "#9ca3af", FontWeight: domain.WeightNormal},
			},
			PromptHints: "Minimalist white space, luxury feel, sophisticated typography.",
		},
		{
			ID:          "preset-bold-pop",
			Name:        "Bold Pop",
			Description: "Vibrant, high-energy layout designed to stop the scroll.",
			Tags:        []string{"vibrant", "loud", "social", "sale"},
			Background:  domain.BackgroundTreatment{Type: domain.OverlayGradient, Value: "linear-gradient(135deg, #FF6B6B 0%, #FF8E53 100%)", OverlayOpacity: 0.6},
			AccentColor: "#FFE66D",
			TextSlots: []domain.TextSlot{
				{ID: domain.RoleHeadline, Zone: domain.ZoneCenter, Align: domain.AlignCenter, FontFamily: "Impact", FontSizeScale: 2.5, Color: "#ffffff", FontWeight: domain.WeightExtrabold},
				{ID: domain.RoleSubheadline, Zone: domain.ZoneTop, Align: domain.AlignCenter, FontFamily: "Inter", FontSizeScale: 1.0, Color: "#FFE66D", FontWeight: domain.WeightBold},
				{ID: domain.RoleCTA, Zone: domain.ZoneBottom, Align: domain.AlignCenter, FontFamily: "Inter", FontSizeScale: 1.2, Color: "#111827", FontWeight: domain.WeightExtrabold},
				{ID: domain.RoleCaption, Zone: domain.ZoneBottom, Align: domain.AlignCenter, FontFamily: "Inter", FontSizeScale: 0.7, Color: "#ffffff", FontWeight: domain.WeightNormal},
			},
			PromptHints: "Loud, vibrant colors, pop-art style, highly energetic.",
		},
		{
			ID:          "preset-classic-meme",
			Name:        "Classic Meme",
			Description: "Standard top/bottom text meme format with a subtle backdrop.",
			Tags:        []string{"meme", "funny", "casual", "social"},
			Background:  domain.BackgroundTreatment{Type: domain.OverlaySolid, Value: "#000000", OverlayOpacity: 0.2},
			AccentColor: "#ffffff",
			TextSlots: []domain.TextSlot{
				{ID: domain.RoleHeadline, Zone: domain.ZoneTop, Align: domain.AlignCenter, FontFamily: "Impact", FontSizeScale: 2.0, Color: "#ffffff", FontWeight: domain.WeightExtrabold},
				{ID: domain.RoleCaption, Zone: domain.ZoneBottom, Align: domain.AlignCenter, FontFamily: "Impact", FontSizeScale: 2.0, Color: "#ffffff", FontWeight: domain.WeightExtrabold},
			},
			PromptHints: "Classic internet meme format, top and bottom text.",
		},
		{
			ID:          "preset-elegant-promo",
			Name:        "Elegant Promo",
			Description: "Sophisticated layout perfect for fashion or high-end products.",
			Tags:        []string{"luxury", "fashion", "promo", "elegant"},
			Background:  domain.BackgroundTreatment{Type: domain.OverlayGradient, Value: "linear-gradient(to bottom, transparent 0%, rgba(0,0,0,0.8) 100%)", OverlayOpacity: 0.9},
			AccentColor: "#D4AF37",
			TextSlots: []domain.TextSlot{
				{ID: domain.RoleHeadline, Zone: domain.ZoneBottom, Align: domain.AlignCenter, FontFamily: "Playfair Display", FontSizeScale: 1.6, Color: "#ffffff", FontWeight: domain.WeightBold},
				{ID: domain.RoleSubheadline, Zone: domain.ZoneBottom, Align: domain.AlignCenter, FontFamily: "Inter", FontSizeScale: 0.8, Color: "#D4AF37", FontWeight: domain.WeightNormal},
				{ID: domain.RoleCTA, Zone: domain.ZoneCenter, Align: domain.AlignCenter, FontFamily: "Inter", FontSizeScale: 0.8, Color: "#ffffff", FontWeight: domain.WeightBold},
			},
			PromptHints: "Luxury fashion promo, moody lighting, gold accents.",
		},
		{
			ID:          "preset-tech-startup",
			Name:        "Tech Startup",
			Description: "Modern, clean layout with a slight corporate edge.",
			Tags:        []string{"tech", "b2b", "corporate", "modern"},
			Background:  domain.BackgroundTreatment{Type: domain.OverlaySolid, Value: "#F3F4F6", OverlayOpacity: 0.7},
			AccentColor: "#3B82F6",
			TextSlots: []domain.TextSlot{
				{ID: domain.RoleHeadline, Zone: domain.ZoneCenter, Align: domain.AlignLeft, FontFamily: "Inter", FontSizeScale: 1.4, Color: "#1F2937", FontWeight: domain.WeightExtrabold},
				{ID: domain.RoleSubheadline, Zone: domain.ZoneCenter, Align: domain.AlignLeft, FontFamily: "Inter", FontSizeScale: 0.9, Color: "#4B5563", FontWeight: domain.WeightNormal},
				{ID: domain.RoleCTA, Zone: domain.ZoneBottom, Align: domain.AlignLeft, FontFamily: "Inter", FontSizeScale: 0.9, Color: "#ffffff", FontWeight: domain.WeightBold},
				{ID: domain.RoleCaption, Zone: domain.ZoneTop, Align: domain.AlignRight, FontFamily: "Inter", FontSizeScale: 0.7, Color: "#9CA3AF", FontWeight: domain.WeightBold},
			},
			PromptHints: "B2B tech startup style, modern, clean, trustworthy.",
		},
	}
}
