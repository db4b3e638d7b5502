package beautify

import (
	"math"
	"strings"
)

// gradientStops are the fixed color pairs of the named gradient presets.
// Custom gradients take their stops from the style instead.
var gradientStops = map[BackgroundType][2]string{
	BackgroundGradient: {"#6366f1", "#3b82f6"},
	BackgroundAurora:   {"#667eea", "#764ba2"},
	BackgroundSunset:   {"#ff6b6b", "#ffa500"},
	BackgroundOcean:    {"#00c9ff", "#92fe9d"},
	BackgroundForest:   {"#2d5016", "#3a6b1c"},
	BackgroundNeon:     {"#ff00ff", "#00ffff"},
}

const (
	glassFill = "rgba(30, 30, 46, 0.8)"
	solidFill = "#1a1a2e"
)

var backgroundOrder = []BackgroundType{
	BackgroundGradient, BackgroundAurora, BackgroundSunset, BackgroundOcean,
	BackgroundForest, BackgroundNeon, BackgroundGlass, BackgroundSolid, BackgroundCustom,
}

// framePreset is one row of the frame table. A nil color leaves the border
// color untouched.
type framePreset struct {
	width float64
	color *string
}

func strPtr(s string) *string { return &s }

var framePresets = map[FrameStyle]framePreset{
	FrameModern:  {width: 2, color: strPtr("#ffffff")},
	FrameClassic: {width: 8, color: strPtr("#f0f0f0")},
	FrameNeon:    {width: 3, color: strPtr("#00ffff")},
	FrameNone:    {width: 0},
}

// BackgroundPresets lists the background names in display order.
func BackgroundPresets() []BackgroundType {
	return append([]BackgroundType(nil), backgroundOrder...)
}

// FramePresets lists the frame names in display order.
func FramePresets() []FrameStyle {
	return []FrameStyle{FrameNone, FrameModern, FrameClassic, FrameNeon}
}

func lookupBackground(name string) (BackgroundType, bool) {
	bt := BackgroundType(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range backgroundOrder {
		if bt == known {
			return bt, true
		}
	}
	return "", false
}

// ApplyBackgroundPreset selects a background by name. Only BackgroundType
// changes, except for "custom", which also fills in any unset gradient
// colors and a non-finite angle. Unknown names return s unchanged.
func ApplyBackgroundPreset(s StyleState, name string) StyleState {
	bt, ok := lookupBackground(name)
	if !ok {
		return s
	}
	s.BackgroundType = bt
	if bt == BackgroundCustom {
		d := DefaultStyle()
		if strings.TrimSpace(s.Color1) == "" {
			s.Color1 = d.Color1
		}
		if strings.TrimSpace(s.Color2) == "" {
			s.Color2 = d.Color2
		}
		if math.IsNaN(s.GradientAngleDeg) || math.IsInf(s.GradientAngleDeg, 0) {
			s.GradientAngleDeg = d.GradientAngleDeg
		}
	}
	return s
}

// ApplyFramePreset applies a frame from the fixed table, overwriting the
// border fields. This is the only mutation allowed to change them behind
// the user's back. Unknown names return s unchanged.
func ApplyFramePreset(s StyleState, name string) StyleState {
	fs := FrameStyle(strings.ToLower(strings.TrimSpace(name)))
	p, ok := framePresets[fs]
	if !ok {
		return s
	}
	s.FrameStyle = fs
	s.BorderWidth = p.width
	if p.color != nil {
		s.BorderColor = *p.color
	}
	return s
}
