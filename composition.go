package beautify

import (
	"image/color"
	"math"
)

// Border is the stroke drawn around the image.
type Border struct {
	Width float64
	Color color.NRGBA
}

// Composition is the render plan for one style over one source size. It is
// expressed in logical units (unscaled); the export backend multiplies it by
// the output scale and the preview backend reads it as CSS pixels.
type Composition struct {
	CanvasW, CanvasH float64
	Frame            Rect // nominal image rectangle, before transform
	Radius           float64
	Fill             Fill
	BackgroundBlur   float64
	Filters          FilterChain
	Transform        TransformChain
	Opacity          float64 // 0..1
	Border           Border
	Shadows          []Shadow
}

// Compose builds the plan for a srcW×srcH source with the default padding.
func Compose(s StyleState, srcW, srcH int) Composition {
	return compose(s, srcW, srcH, Padding)
}

func compose(s StyleState, srcW, srcH int, padding float64) Composition {
	s = Sanitize(s)
	w, h := math.Max(float64(srcW), 0), math.Max(float64(srcH), 0)
	d := DefaultStyle()
	return Composition{
		CanvasW:        w + 2*padding,
		CanvasH:        h + 2*padding,
		Frame:          Rect{X: padding, Y: padding, W: w, H: h},
		Radius:         s.CornerRadius,
		Fill:           BackgroundFill(s),
		BackgroundBlur: s.BackgroundBlurPx,
		Filters:        NewFilterChain(s),
		Transform:      NewTransformChain(s),
		Opacity:        s.OpacityPct / 100,
		Border: Border{
			Width: s.BorderWidth,
			Color: ParseColor(s.BorderColor, ParseColor(d.BorderColor, white)),
		},
		Shadows: ShadowLayers(s),
	}
}

// Scaled returns the plan with every length multiplied by k. Ratios (angles,
// filter multipliers, opacity, transform scale) are left alone; the blur
// filter is a length and is scaled.
func (c Composition) Scaled(k float64) Composition {
	out := c
	out.CanvasW *= k
	out.CanvasH *= k
	out.Frame = c.Frame.Scale(k)
	out.Radius *= k
	out.BackgroundBlur *= k
	out.Border.Width *= k

	out.Filters = make(FilterChain, len(c.Filters))
	for i, f := range c.Filters {
		if f.Kind == FilterBlur {
			f.Amount *= k
		}
		out.Filters[i] = f
	}

	out.Shadows = make([]Shadow, len(c.Shadows))
	for i, sh := range c.Shadows {
		out.Shadows[i] = sh.scaled(k)
	}
	return out
}

// PixelSize is the canvas size rounded to whole pixels.
func (c Composition) PixelSize() (int, int) {
	return int(math.Round(c.CanvasW)), int(math.Round(c.CanvasH))
}
