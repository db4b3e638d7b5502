package beautify

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

/*
Pattern / Gradient mirror github.com/fogleman/gg/blob/master/gradient.go so
fills can be handed straight to a gg.Context.
*/

type Pattern interface {
	ColorAt(x, y int) color.Color
}

type Gradient interface {
	Pattern
	AddColorStop(offset float64, color color.Color)
}

// FillKind separates angle-dependent fills from flat ones.
type FillKind int

const (
	FillLinear FillKind = iota
	FillFlat
)

// Fill is the backend-neutral background descriptor. Both renderers derive
// their output from it, so the preview and the export can't disagree about
// colors or gradient geometry.
type Fill struct {
	Kind     FillKind
	Type     BackgroundType
	From, To color.NRGBA // FillLinear stops at offsets 0 and 1
	Color    color.NRGBA // FillFlat
	AngleDeg float64
}

// BackgroundFill resolves the style's background into a Fill. Unknown
// background types fall back to the default gradient.
func BackgroundFill(s StyleState) Fill {
	angle := finiteOr(s.GradientAngleDeg, DefaultStyle().GradientAngleDeg)

	switch s.BackgroundType {
	case BackgroundGlass:
		return Fill{Kind: FillFlat, Type: BackgroundGlass, Color: ParseColor(glassFill, black)}
	case BackgroundSolid:
		return Fill{Kind: FillFlat, Type: BackgroundSolid, Color: ParseColor(solidFill, black)}
	case BackgroundCustom:
		d := DefaultStyle()
		return Fill{
			Kind:     FillLinear,
			Type:     BackgroundCustom,
			From:     ParseColor(s.Color1, ParseColor(d.Color1, black)),
			To:       ParseColor(s.Color2, ParseColor(d.Color2, black)),
			AngleDeg: angle,
		}
	}

	bt := s.BackgroundType
	stops, ok := gradientStops[bt]
	if !ok {
		bt = BackgroundGradient
		stops = gradientStops[bt]
	}
	return Fill{
		Kind:     FillLinear,
		Type:     bt,
		From:     ParseColor(stops[0], black),
		To:       ParseColor(stops[1], black),
		AngleDeg: angle,
	}
}

// Axis returns the gradient line for a w×h box. The direction (cosθ, sinθ)
// is projected through the box center and stretched to the box, so 0° runs
// left to right and 90° top to bottom whatever the aspect ratio.
func (f Fill) Axis(w, h float64) (x0, y0, x1, y1 float64) {
	rad := f.AngleDeg * math.Pi / 180
	cx, cy := w/2, h/2
	dx, dy := math.Cos(rad)*w/2, math.Sin(rad)*h/2
	return cx - dx, cy - dy, cx + dx, cy + dy
}

// Pattern builds the gg paint for a w×h pixel canvas.
func (f Fill) Pattern(w, h float64) Pattern {
	if f.Kind == FillFlat {
		return gg.NewSolidPattern(f.Color)
	}
	x0, y0, x1, y1 := f.Axis(w, h)
	var g Gradient = gg.NewLinearGradient(x0, y0, x1, y1)
	g.AddColorStop(0, f.From)
	g.AddColorStop(1, f.To)
	return g
}

// CSS renders the fill as a CSS background value for a w×h box.
func (f Fill) CSS(w, h float64) string {
	if f.Kind == FillFlat {
		return cssColor(f.Color)
	}
	angle, p0, p1 := f.cssGeometry(w, h)
	return fmt.Sprintf("linear-gradient(%sdeg, %s %s%%, %s %s%%)",
		num(angle), cssColor(f.From), num(p0), cssColor(f.To), num(p1))
}

// cssGeometry expresses Axis in CSS terms. CSS measures angles clockwise
// from "to top" and sizes the gradient line to the box corners, so the stop
// positions are moved inwards until the stops sit on the Axis endpoints.
func (f Fill) cssGeometry(w, h float64) (angle, p0, p1 float64) {
	x0, y0, x1, y1 := f.Axis(w, h)
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return normDeg(f.AngleDeg + 90), 0, 100
	}

	angle = normDeg(math.Atan2(dx, -dy) * 180 / math.Pi)
	rad := angle * math.Pi / 180
	line := math.Abs(w*math.Sin(rad)) + math.Abs(h*math.Cos(rad))
	if line == 0 {
		return angle, 0, 100
	}
	p0 = (line - length) / (2 * line) * 100
	p1 = (line + length) / (2 * line) * 100
	return angle, p0, p1
}

func normDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
