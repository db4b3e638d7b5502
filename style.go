package beautify

import (
	"math"
	"strings"
)

// BackgroundType selects the fill drawn behind the screenshot.
type BackgroundType string

const (
	BackgroundGradient BackgroundType = "gradient"
	BackgroundAurora   BackgroundType = "aurora"
	BackgroundSunset   BackgroundType = "sunset"
	BackgroundOcean    BackgroundType = "ocean"
	BackgroundForest   BackgroundType = "forest"
	BackgroundNeon     BackgroundType = "neon"
	BackgroundGlass    BackgroundType = "glass"
	BackgroundSolid    BackgroundType = "solid"
	BackgroundCustom   BackgroundType = "custom"
)

// FrameStyle names a border preset.
type FrameStyle string

const (
	FrameNone    FrameStyle = "none"
	FrameModern  FrameStyle = "modern"
	FrameClassic FrameStyle = "classic"
	FrameNeon    FrameStyle = "neon"
)

// Format is an export encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatWebP Format = "webp"
)

// ParseFormat normalises a format name. "jpeg" is accepted for jpg.
// Unknown names are returned lower-cased and fail later at encode time.
func ParseFormat(s string) Format {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	if f == "jpeg" {
		return FormatJPG
	}
	return f
}

// Extension is the file extension used in export filenames.
func (f Format) Extension() string { return string(f) }

// MIMEType of the encoded payload, or "" for unsupported formats.
func (f Format) MIMEType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPG:
		return "image/jpeg"
	case FormatWebP:
		return "image/webp"
	}
	return ""
}

const (
	// Padding is the logical margin reserved around the image on the export
	// canvas so that borders and shadows are never clipped at the edge.
	Padding = 100.0

	// MaxOutputScale bounds the export multiplier; larger values are pulled
	// down rather than allocating unbounded canvases.
	MaxOutputScale = 8
)

// StyleState is every visual parameter of one editing session. It is a value
// type: renderers receive it as an explicit argument and never retain it.
type StyleState struct {
	// Geometry
	CornerRadius float64 `json:"cornerRadius" toml:"corner_radius"`
	RotationDeg  float64 `json:"rotationDeg" toml:"rotation_deg"`
	ScalePct     float64 `json:"scalePct" toml:"scale_pct"`
	OpacityPct   float64 `json:"opacityPct" toml:"opacity_pct"`

	// Shadow. The legacy intensity ring and the explicit shadow stack.
	ShadowIntensity float64 `json:"shadowIntensity" toml:"shadow_intensity"`
	ShadowOffsetX   float64 `json:"shadowOffsetX" toml:"shadow_offset_x"`
	ShadowOffsetY   float64 `json:"shadowOffsetY" toml:"shadow_offset_y"`
	ShadowSpread    float64 `json:"shadowSpread" toml:"shadow_spread"`
	ShadowColor     string  `json:"shadowColor" toml:"shadow_color"`

	// Filters, 100 = neutral
	BrightnessPct float64 `json:"brightnessPct" toml:"brightness_pct"`
	ContrastPct   float64 `json:"contrastPct" toml:"contrast_pct"`
	SaturationPct float64 `json:"saturationPct" toml:"saturation_pct"`
	BlurPx        float64 `json:"blurPx" toml:"blur_px"`

	// Background
	BackgroundType   BackgroundType `json:"backgroundType" toml:"background_type"`
	BackgroundBlurPx float64        `json:"backgroundBlurPx" toml:"background_blur_px"`
	Color1           string         `json:"color1" toml:"color1"`
	Color2           string         `json:"color2" toml:"color2"`
	GradientAngleDeg float64        `json:"gradientAngleDeg" toml:"gradient_angle_deg"`

	// Border / frame
	BorderWidth float64    `json:"borderWidth" toml:"border_width"`
	BorderColor string     `json:"borderColor" toml:"border_color"`
	FrameStyle  FrameStyle `json:"frameStyle" toml:"frame_style"`

	// Export
	Format      Format  `json:"format" toml:"format"`
	Quality     float64 `json:"quality" toml:"quality"`
	OutputScale int     `json:"outputScale" toml:"output_scale"`
}

// DefaultStyle is the state a session starts with and returns to on reset.
func DefaultStyle() StyleState {
	return StyleState{
		CornerRadius:     20,
		ScalePct:         100,
		OpacityPct:       100,
		ShadowIntensity:  50,
		ShadowColor:      "#000000",
		BrightnessPct:    100,
		ContrastPct:      100,
		SaturationPct:    100,
		BackgroundType:   BackgroundAurora,
		BackgroundBlurPx: 10,
		Color1:           "#6366f1",
		Color2:           "#3b82f6",
		GradientAngleDeg: 135,
		BorderColor:      "#ffffff",
		FrameStyle:       FrameNone,
		Format:           FormatPNG,
		Quality:          0.9,
		OutputScale:      2,
	}
}

// Sanitize makes s safe to render. Non-finite numbers fall back to their
// defaults and values outside what the pipeline can draw are pulled back in
// range. It never fails; it is a tolerance pass, not validation.
func Sanitize(s StyleState) StyleState {
	d := DefaultStyle()

	s.CornerRadius = math.Max(0, finiteOr(s.CornerRadius, d.CornerRadius))
	s.RotationDeg = math.Mod(finiteOr(s.RotationDeg, 0), 360)
	s.ScalePct = math.Max(0, finiteOr(s.ScalePct, d.ScalePct))
	s.OpacityPct = clamp(finiteOr(s.OpacityPct, d.OpacityPct), 0, 100)

	s.ShadowIntensity = clamp(finiteOr(s.ShadowIntensity, 0), 0, 100)
	s.ShadowOffsetX = finiteOr(s.ShadowOffsetX, 0)
	s.ShadowOffsetY = finiteOr(s.ShadowOffsetY, 0)
	s.ShadowSpread = math.Max(0, finiteOr(s.ShadowSpread, 0))

	s.BrightnessPct = math.Max(0, finiteOr(s.BrightnessPct, 100))
	s.ContrastPct = math.Max(0, finiteOr(s.ContrastPct, 100))
	s.SaturationPct = math.Max(0, finiteOr(s.SaturationPct, 100))
	s.BlurPx = math.Max(0, finiteOr(s.BlurPx, 0))

	s.BackgroundBlurPx = math.Max(0, finiteOr(s.BackgroundBlurPx, 0))
	s.GradientAngleDeg = finiteOr(s.GradientAngleDeg, d.GradientAngleDeg)

	s.BorderWidth = math.Max(0, finiteOr(s.BorderWidth, 0))

	s.Quality = clamp(finiteOr(s.Quality, d.Quality), 0, 1)
	s.OutputScale = clampInt(s.OutputScale, 1, MaxOutputScale)
	return s
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
