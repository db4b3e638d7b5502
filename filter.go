package beautify

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

// FilterKind is one stage of the image filter chain.
type FilterKind int

const (
	FilterBrightness FilterKind = iota
	FilterContrast
	FilterSaturate
	FilterBlur
)

func (k FilterKind) String() string {
	switch k {
	case FilterBrightness:
		return "brightness"
	case FilterContrast:
		return "contrast"
	case FilterSaturate:
		return "saturate"
	case FilterBlur:
		return "blur"
	}
	return "unknown"
}

// Filter is a single stage. Amount is a multiplier (1 = neutral) for the
// color stages and a Gaussian standard deviation in pixels for blur.
type Filter struct {
	Kind   FilterKind
	Amount float64
}

// FilterChain is applied strictly in slice order; each stage reads the
// output of the previous one.
type FilterChain []Filter

// NewFilterChain builds brightness → contrast → saturate → blur from s.
// The order is fixed and shared by both renderers.
func NewFilterChain(s StyleState) FilterChain {
	return FilterChain{
		{Kind: FilterBrightness, Amount: s.BrightnessPct / 100},
		{Kind: FilterContrast, Amount: s.ContrastPct / 100},
		{Kind: FilterSaturate, Amount: s.SaturationPct / 100},
		{Kind: FilterBlur, Amount: s.BlurPx},
	}
}

// CSS renders the chain as a CSS filter value, every stage included.
func (c FilterChain) CSS() string {
	parts := make([]string, 0, len(c))
	for _, f := range c {
		parts = append(parts, f.CSS())
	}
	return strings.Join(parts, " ")
}

// CSS renders one stage.
func (f Filter) CSS() string {
	if f.Kind == FilterBlur {
		return fmt.Sprintf("blur(%spx)", num(f.Amount))
	}
	return fmt.Sprintf("%s(%s%%)", f.Kind, num(f.Amount*100))
}

// Neutral reports whether the stage leaves pixels untouched.
func (f Filter) Neutral() bool {
	if f.Kind == FilterBlur {
		return f.Amount <= 0
	}
	return f.Amount == 1
}

// Neutral reports whether every stage is neutral.
func (c FilterChain) Neutral() bool {
	for _, f := range c {
		if !f.Neutral() {
			return false
		}
	}
	return true
}

// Apply runs the chain over img using the CSS filter-effects formulas on
// non-premultiplied color. Neutral stages are skipped, so an all-neutral
// chain returns an unmodified copy.
func (c FilterChain) Apply(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for _, f := range c {
		if f.Neutral() {
			continue
		}
		out = f.apply(out)
	}
	return out
}

func (f Filter) apply(img *image.NRGBA) *image.NRGBA {
	switch f.Kind {
	case FilterBrightness:
		a := f.Amount
		return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
			return color.NRGBA{
				R: channel(float64(c.R) * a),
				G: channel(float64(c.G) * a),
				B: channel(float64(c.B) * a),
				A: c.A,
			}
		})
	case FilterContrast:
		a := f.Amount
		offset := 255 * (0.5 - 0.5*a)
		return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
			return color.NRGBA{
				R: channel(float64(c.R)*a + offset),
				G: channel(float64(c.G)*a + offset),
				B: channel(float64(c.B)*a + offset),
				A: c.A,
			}
		})
	case FilterSaturate:
		m := saturateMatrix(f.Amount)
		return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
			r, g, b := float64(c.R), float64(c.G), float64(c.B)
			return color.NRGBA{
				R: channel(m[0]*r + m[1]*g + m[2]*b),
				G: channel(m[3]*r + m[4]*g + m[5]*b),
				B: channel(m[6]*r + m[7]*g + m[8]*b),
				A: c.A,
			}
		})
	case FilterBlur:
		return gaussianBlur(img, f.Amount)
	}
	return img
}

// saturateMatrix is the filter-effects feColorMatrix "saturate" matrix.
func saturateMatrix(s float64) [9]float64 {
	return [9]float64{
		0.213 + 0.787*s, 0.715 - 0.715*s, 0.072 - 0.072*s,
		0.213 - 0.213*s, 0.715 + 0.285*s, 0.072 - 0.072*s,
		0.213 - 0.213*s, 0.715 - 0.715*s, 0.072 + 0.928*s,
	}
}

// applyOpacity multiplies the alpha channel by a in [0,1]. This is how the
// export backend expresses a global alpha: gg has no such state.
func applyOpacity(img *image.NRGBA, a float64) *image.NRGBA {
	if a >= 1 {
		return img
	}
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.A = channel(float64(c.A) * a)
		return c
	})
}

func channel(v float64) uint8 {
	return uint8(clamp(v, 0, 255) + 0.5)
}
