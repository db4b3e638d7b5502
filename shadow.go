package beautify

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// ShadowSource tells the two shadow layers apart.
type ShadowSource int

const (
	ShadowLegacy ShadowSource = iota
	ShadowExplicit
)

// Shadow is one drop shadow layer. Blur is a CSS blur radius: the Gaussian
// standard deviation is half of it.
type Shadow struct {
	Source  ShadowSource
	OffsetX float64
	OffsetY float64
	Blur    float64
	Color   color.NRGBA
	Alpha   float64 // multiplies Color's own alpha
}

// ShadowLayers returns the active shadow layers in paint order. The legacy
// intensity ring and the explicit shadow stack; neither replaces the other.
// No layers means no shadow is drawn at all.
//
// The legacy layer uses one formula for preview and export (offset ⌊i/2⌋,
// blur ⌊i⌋) so both backends draw the same shadow.
func ShadowLayers(s StyleState) []Shadow {
	var layers []Shadow
	if s.ShadowIntensity > 0 {
		size := math.Floor(s.ShadowIntensity / 2)
		layers = append(layers, Shadow{
			Source:  ShadowLegacy,
			OffsetY: size,
			Blur:    math.Floor(s.ShadowIntensity),
			Color:   black,
			Alpha:   s.ShadowIntensity / 100,
		})
	}
	if s.ShadowOffsetX != 0 || s.ShadowOffsetY != 0 || s.ShadowSpread != 0 {
		layers = append(layers, Shadow{
			Source:  ShadowExplicit,
			OffsetX: s.ShadowOffsetX,
			OffsetY: s.ShadowOffsetY,
			Blur:    s.ShadowSpread,
			Color:   ParseColor(s.ShadowColor, black),
			Alpha:   1,
		})
	}
	return layers
}

// CSS renders the layer as one box-shadow item.
func (sh Shadow) CSS() string {
	return fmt.Sprintf("%spx %spx %spx %s",
		num(sh.OffsetX), num(sh.OffsetY), num(sh.Blur), sh.cssColor())
}

func (sh Shadow) cssColor() string {
	a := sh.Alpha * float64(sh.Color.A) / 255
	if a >= 1 {
		return cssColor(sh.Color)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", sh.Color.R, sh.Color.G, sh.Color.B, num(a))
}

// boxShadowCSS joins layers into a box-shadow value.
func boxShadowCSS(layers []Shadow) string {
	if len(layers) == 0 {
		return "none"
	}
	parts := make([]string, len(layers))
	for i, l := range layers {
		parts[i] = l.CSS()
	}
	return strings.Join(parts, ", ")
}

// scaled returns the layer with its geometry multiplied by k.
func (sh Shadow) scaled(k float64) Shadow {
	sh.OffsetX *= k
	sh.OffsetY *= k
	sh.Blur *= k
	return sh
}

// maxKernelSigma is the widest blur run at full resolution. Wider blurs
// run on a proportionally smaller raster and are resampled back up.
const maxKernelSigma = 64.0

// gaussianBlur blurs img with standard deviation sigma. sigma is capped at
// the image diagonal; past it the result no longer changes visibly.
func gaussianBlur(img image.Image, sigma float64) *image.NRGBA {
	b := img.Bounds()
	if sigma <= 0 || b.Empty() {
		return imaging.Clone(img)
	}
	sigma = math.Min(sigma, diagonal(b))
	if sigma <= maxKernelSigma {
		return imaging.Blur(img, sigma)
	}
	f := sigma / maxKernelSigma
	w := int(math.Max(1, math.Round(float64(b.Dx())/f)))
	h := int(math.Max(1, math.Round(float64(b.Dy())/f)))
	small := imaging.Blur(imaging.Resize(img, w, h, imaging.Box), maxKernelSigma)
	return imaging.Resize(small, b.Dx(), b.Dy(), imaging.Linear)
}

func diagonal(b image.Rectangle) float64 {
	return math.Hypot(float64(b.Dx()), float64(b.Dy()))
}

// shadowTile renders one layer for the rounded rect r as an image to be
// composited at the returned origin. The shadow is painted only outside r,
// as box-shadow is, so the shape it belongs to is never darkened.
//
// Only the part of the shadow inside area is rendered. Memory use follows
// area, not the offset or blur of the layer.
func shadowTile(r Rect, radius float64, sh Shadow, area image.Rectangle) (*image.NRGBA, image.Point) {
	if area.Empty() {
		return nil, area.Min
	}
	sigma := math.Min(math.Max(sh.Blur/2, 0), diagonal(area))
	margin := math.Ceil(3*sigma) + 1

	shifted := r.Offset(sh.OffsetX, sh.OffsetY)
	limit := rectOf(area).Inset(-2*margin - 1)
	reach := r.Union(shifted).Inset(-margin).Intersect(limit).Pixels()

	tileR := reach.Intersect(area)
	if tileR.Empty() {
		return nil, tileR.Min
	}
	// shape pixels up to margin away from the tile still blur into it
	workR := reach.Intersect(tileR.Inset(-int(margin)))

	// coverage of the offset shape, blurred, at 1/f resolution
	f := math.Max(1, sigma/maxKernelSigma)
	cover := gg.NewContext(
		int(math.Ceil(float64(workR.Dx())/f)),
		int(math.Ceil(float64(workR.Dy())/f)),
	)
	cover.Scale(1/f, 1/f)
	cover.Translate(-float64(workR.Min.X), -float64(workR.Min.Y))
	cover.SetColor(white)
	fillShape(cover, shifted, radius, rectOf(workR))
	var blurred image.Image = cover.Image()
	if sigma > 0 {
		blurred = imaging.Blur(blurred, sigma/f)
	}

	w, h := tileR.Dx(), tileR.Dy()
	coverage := image.NewNRGBA(image.Rect(0, 0, w, h))
	if f == 1 {
		draw.Draw(coverage, coverage.Bounds(), blurred, tileR.Min.Sub(workR.Min), draw.Src)
	} else {
		dx, dy := float64(workR.Min.X-tileR.Min.X), float64(workR.Min.Y-tileR.Min.Y)
		draw.BiLinear.Transform(coverage, f64.Aff3{f, 0, dx, 0, f, dy}, blurred, blurred.Bounds(), draw.Src, nil)
	}

	// the shape itself punches the shadow out
	occlude := gg.NewContext(w, h)
	occlude.Translate(-float64(tileR.Min.X), -float64(tileR.Min.Y))
	occlude.SetColor(white)
	fillShape(occlude, r, radius, rectOf(tileR))
	hole := occlude.AsMask()

	tint := withAlpha(sh.Color, sh.Alpha)
	paint := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(paint, paint.Bounds(), image.NewUniform(tint), image.Point{}, draw.Src)

	tile := image.NewNRGBA(image.Rect(0, 0, w, h))
	mask := multiplyAlpha(coverage, hole)
	draw.DrawMask(tile, tile.Bounds(), paint, image.Point{}, mask, image.Point{}, draw.Over)
	return tile, tileR.Min
}

// multiplyAlpha combines the alpha of a with the inverse coverage of hole.
func multiplyAlpha(a image.Image, hole *image.Alpha) *image.Alpha {
	b := a.Bounds()
	out := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, aa := a.At(x, y).RGBA()
			inside := uint32(hole.AlphaAt(x, y).A)
			out.SetAlpha(x, y, color.Alpha{A: uint8((aa >> 8) * (255 - inside) / 255)})
		}
	}
	return out
}
