package beautify

import (
	"context"
	"fmt"
	"strings"
)

// ImageStyle holds the declarations applied to the previewed image.
type ImageStyle struct {
	BorderRadius string
	BoxShadow    string
	Filter       string
	Transform    string
	Opacity      string
	Border       string
}

// ContainerStyle is the background layer behind the image.
type ContainerStyle struct {
	Class      string
	Background string
	Filter     string
	Fill       Fill
}

// DeclarativeStyle is what the preview backend produces: plain style
// declarations for a display surface to apply.
type DeclarativeStyle struct {
	Image     ImageStyle
	Container ContainerStyle
}

// IsZero reports whether d is the empty style returned without a source.
func (d DeclarativeStyle) IsZero() bool { return d == DeclarativeStyle{} }

// CSS renders d as two rule blocks with a fixed declaration order.
func (d DeclarativeStyle) CSS() string {
	if d.IsZero() {
		return ""
	}
	var b strings.Builder
	rule(&b, ".preview-image", [][2]string{
		{"border-radius", d.Image.BorderRadius},
		{"box-shadow", d.Image.BoxShadow},
		{"filter", d.Image.Filter},
		{"transform", d.Image.Transform},
		{"opacity", d.Image.Opacity},
		{"border", d.Image.Border},
	})
	b.WriteString("\n")
	rule(&b, "."+strings.ReplaceAll(d.Container.Class, " ", "."), [][2]string{
		{"background", d.Container.Background},
		{"filter", d.Container.Filter},
	})
	return b.String()
}

func rule(b *strings.Builder, selector string, decls [][2]string) {
	fmt.Fprintf(b, "%s {\n", selector)
	for _, kv := range decls {
		fmt.Fprintf(b, "  %s: %s;\n", kv[0], kv[1])
	}
	b.WriteString("}\n")
}

// Box is the size of the preview container in CSS pixels.
type Box struct {
	W, H float64
}

// PreviewRenderer produces the live preview. Box sizes the gradient; when
// it is zero the logical export canvas for the source is used, so preview
// and export gradients share one geometry.
type PreviewRenderer struct {
	Box Box

	padding *float64
}

// RenderPreview is the pure preview function. It does no I/O and the same
// inputs always give the same output. A nil source gives the zero style.
func RenderPreview(s StyleState, src *SourceImage) DeclarativeStyle {
	return (&PreviewRenderer{}).preview(s, src)
}

// Render implements Renderer. It never fails.
func (p *PreviewRenderer) Render(_ context.Context, s StyleState, src *SourceImage) (DeclarativeStyle, error) {
	return p.preview(s, src), nil
}

func (p *PreviewRenderer) preview(s StyleState, src *SourceImage) DeclarativeStyle {
	if src == nil {
		return DeclarativeStyle{}
	}
	pad := Padding
	if p.padding != nil {
		pad = *p.padding
	}
	c := compose(s, src.Width, src.Height, pad)

	box := p.Box
	if box.W <= 0 || box.H <= 0 {
		box = Box{W: c.CanvasW, H: c.CanvasH}
	}

	border := "none"
	if c.Border.Width > 0 {
		border = fmt.Sprintf("%spx solid %s", num(c.Border.Width), cssColor(c.Border.Color))
	}

	return DeclarativeStyle{
		Image: ImageStyle{
			BorderRadius: num(c.Radius) + "px",
			BoxShadow:    boxShadowCSS(c.Shadows),
			Filter:       c.Filters.CSS(),
			Transform:    c.Transform.CSS(),
			Opacity:      num(c.Opacity),
			Border:       border,
		},
		Container: ContainerStyle{
			Class:      "preview-container bg-" + string(c.Fill.Type),
			Background: c.Fill.CSS(box.W, box.H),
			Filter:     fmt.Sprintf("blur(%spx)", num(c.BackgroundBlur)),
			Fill:       c.Fill,
		},
	}
}
