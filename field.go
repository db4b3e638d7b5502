package beautify

import (
	"math"
	"strconv"
	"strings"
)

// Field identifies one StyleState parameter for UpdateField.
type Field int

const (
	FieldCornerRadius Field = iota
	FieldRotation
	FieldScale
	FieldOpacity
	FieldShadowIntensity
	FieldShadowOffsetX
	FieldShadowOffsetY
	FieldShadowSpread
	FieldShadowColor
	FieldBrightness
	FieldContrast
	FieldSaturation
	FieldBlur
	FieldBackgroundType
	FieldBackgroundBlur
	FieldColor1
	FieldColor2
	FieldGradientAngle
	FieldBorderWidth
	FieldBorderColor
	FieldFormat
	FieldQuality
	FieldOutputScale
)

// fieldSpec describes how a field is named and clamped.
type fieldSpec struct {
	name   string
	min    float64
	max    float64
	isText bool
}

var fieldSpecs = map[Field]fieldSpec{
	FieldCornerRadius:    {name: "corner-radius", min: 0, max: math.Inf(1)},
	FieldRotation:        {name: "rotation", min: math.Inf(-1), max: math.Inf(1)},
	FieldScale:           {name: "scale", min: 1, max: math.Inf(1)},
	FieldOpacity:         {name: "opacity", min: 0, max: 100},
	FieldShadowIntensity: {name: "shadow-intensity", min: 0, max: 100},
	FieldShadowOffsetX:   {name: "shadow-x", min: math.Inf(-1), max: math.Inf(1)},
	FieldShadowOffsetY:   {name: "shadow-y", min: math.Inf(-1), max: math.Inf(1)},
	FieldShadowSpread:    {name: "shadow-spread", min: 0, max: math.Inf(1)},
	FieldShadowColor:     {name: "shadow-color", isText: true},
	FieldBrightness:      {name: "brightness", min: 0, max: math.Inf(1)},
	FieldContrast:        {name: "contrast", min: 0, max: math.Inf(1)},
	FieldSaturation:      {name: "saturation", min: 0, max: math.Inf(1)},
	FieldBlur:            {name: "blur", min: 0, max: math.Inf(1)},
	FieldBackgroundType:  {name: "background", isText: true},
	FieldBackgroundBlur:  {name: "background-blur", min: 0, max: math.Inf(1)},
	FieldColor1:          {name: "color1", isText: true},
	FieldColor2:          {name: "color2", isText: true},
	FieldGradientAngle:   {name: "gradient-angle", min: math.Inf(-1), max: math.Inf(1)},
	FieldBorderWidth:     {name: "border-width", min: 0, max: math.Inf(1)},
	FieldBorderColor:     {name: "border-color", isText: true},
	FieldFormat:          {name: "format", isText: true},
	FieldQuality:         {name: "quality", min: 0, max: 1},
	FieldOutputScale:     {name: "output-scale", min: 1, max: MaxOutputScale},
}

// String returns the kebab-case field name.
func (f Field) String() string {
	if spec, ok := fieldSpecs[f]; ok {
		return spec.name
	}
	return "unknown"
}

// Fields lists every settable field in declaration order.
func Fields() []Field {
	out := make([]Field, 0, len(fieldSpecs))
	for f := FieldCornerRadius; f <= FieldOutputScale; f++ {
		out = append(out, f)
	}
	return out
}

// FieldByName resolves a field from its kebab-case name. Case, underscores
// and a few common aliases ("cornerRadius", "shadowX") are tolerated.
func FieldByName(name string) (Field, bool) {
	key := normalizeName(name)
	for f, spec := range fieldSpecs {
		if normalizeName(spec.name) == key {
			return f, true
		}
	}
	if f, ok := fieldAliases[key]; ok {
		return f, true
	}
	return 0, false
}

var fieldAliases = map[string]Field{
	"radius":           FieldCornerRadius,
	"rotationdeg":      FieldRotation,
	"scalepct":         FieldScale,
	"opacitypct":       FieldOpacity,
	"shadowoffsetx":    FieldShadowOffsetX,
	"shadowoffsety":    FieldShadowOffsetY,
	"brightnesspct":    FieldBrightness,
	"contrastpct":      FieldContrast,
	"saturationpct":    FieldSaturation,
	"blurpx":           FieldBlur,
	"backgroundtype":   FieldBackgroundType,
	"backgroundblurpx": FieldBackgroundBlur,
	"gradientangledeg": FieldGradientAngle,
	"scaleoutput":      FieldOutputScale,
	"exportscale":      FieldOutputScale,
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// UpdateField returns s with one field set to v. It is the only reducer the
// input layer needs: numeric values are clamped to the field's range,
// numeric strings are parsed, and anything it cannot use (unknown field,
// wrong type, NaN) leaves s unchanged. It never panics.
func UpdateField(s StyleState, f Field, v any) StyleState {
	spec, ok := fieldSpecs[f]
	if !ok {
		return s
	}

	if spec.isText {
		text, ok := v.(string)
		if !ok {
			return s
		}
		return setText(s, f, strings.TrimSpace(text))
	}

	n, ok := toFloat(v)
	if !ok {
		return s
	}
	return setNumber(s, f, clamp(n, spec.min, spec.max))
}

func setText(s StyleState, f Field, v string) StyleState {
	switch f {
	case FieldShadowColor:
		s.ShadowColor = v
	case FieldBackgroundType:
		if bt, ok := lookupBackground(v); ok {
			s.BackgroundType = bt
		}
	case FieldColor1:
		s.Color1 = v
	case FieldColor2:
		s.Color2 = v
	case FieldBorderColor:
		s.BorderColor = v
	case FieldFormat:
		s.Format = ParseFormat(v)
	}
	return s
}

func setNumber(s StyleState, f Field, v float64) StyleState {
	switch f {
	case FieldCornerRadius:
		s.CornerRadius = v
	case FieldRotation:
		s.RotationDeg = v
	case FieldScale:
		s.ScalePct = v
	case FieldOpacity:
		s.OpacityPct = v
	case FieldShadowIntensity:
		s.ShadowIntensity = v
	case FieldShadowOffsetX:
		s.ShadowOffsetX = v
	case FieldShadowOffsetY:
		s.ShadowOffsetY = v
	case FieldShadowSpread:
		s.ShadowSpread = v
	case FieldBrightness:
		s.BrightnessPct = v
	case FieldContrast:
		s.ContrastPct = v
	case FieldSaturation:
		s.SaturationPct = v
	case FieldBlur:
		s.BlurPx = v
	case FieldBackgroundBlur:
		s.BackgroundBlurPx = v
	case FieldGradientAngle:
		s.GradientAngleDeg = v
	case FieldBorderWidth:
		s.BorderWidth = v
	case FieldQuality:
		s.Quality = v
	case FieldOutputScale:
		s.OutputScale = int(math.Round(v))
	}
	return s
}

var unitless = strings.NewReplacer("%", "", "px", "", "deg", "")

// toFloat converts the value types an input widget can produce.
func toFloat(v any) (float64, bool) {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case bool:
		if x {
			n = 1
		}
	case string:
		parsed, err := strconv.ParseFloat(unitless.Replace(strings.TrimSpace(x)), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) {
		return 0, false
	}
	return n, true
}
