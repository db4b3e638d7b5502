package beautify

import (
	"context"
	"strings"
	"testing"
)

func TestRenderPreviewNoSource(t *testing.T) {
	if got := RenderPreview(DefaultStyle(), nil); !got.IsZero() {
		t.Errorf("RenderPreview(nil) = %+v, want zero", got)
	}
	if got := RenderPreview(DefaultStyle(), nil).CSS(); got != "" {
		t.Errorf("CSS() = %q, want empty", got)
	}
}

func TestRenderPreviewDefaults(t *testing.T) {
	src := mustAccept(t, solid(200, 100, red))
	got := RenderPreview(DefaultStyle(), src)

	want := ImageStyle{
		BorderRadius: "20px",
		BoxShadow:    "0px 25px 50px rgba(0, 0, 0, 0.5)",
		Filter:       "brightness(100%) contrast(100%) saturate(100%) blur(0px)",
		Transform:    "rotate(0deg) scale(1)",
		Opacity:      "1",
		Border:       "none",
	}
	if got.Image != want {
		t.Errorf("Image = %+v, want %+v", got.Image, want)
	}
	if got.Container.Class != "preview-container bg-aurora" {
		t.Errorf("Class = %q", got.Container.Class)
	}
	if got.Container.Filter != "blur(10px)" {
		t.Errorf("container Filter = %q, want %q", got.Container.Filter, "blur(10px)")
	}
	if !strings.HasPrefix(got.Container.Background, "linear-gradient(") {
		t.Errorf("Background = %q, want a linear-gradient", got.Container.Background)
	}
}

func TestRenderPreviewIdempotent(t *testing.T) {
	src := mustAccept(t, solid(64, 48, red))
	s := ApplyFramePreset(DefaultStyle(), "neon")
	s.RotationDeg = 12

	a := RenderPreview(s, src)
	b := RenderPreview(s, src)
	if a != b {
		t.Errorf("RenderPreview() not idempotent:\n%+v\n%+v", a, b)
	}
	if a.CSS() != b.CSS() {
		t.Error("CSS() not deterministic")
	}
}

func TestRenderPreviewBoundaries(t *testing.T) {
	src := mustAccept(t, solid(10, 10, red))

	tests := []struct {
		name   string
		mutate func(*StyleState)
		check  func(DeclarativeStyle) bool
	}{
		{"zero radius", func(s *StyleState) { s.CornerRadius = 0 }, func(d DeclarativeStyle) bool { return d.Image.BorderRadius == "0px" }},
		{"no shadow", func(s *StyleState) { s.ShadowIntensity = 0 }, func(d DeclarativeStyle) bool { return d.Image.BoxShadow == "none" }},
		{"frame", func(s *StyleState) { *s = ApplyFramePreset(*s, "modern") }, func(d DeclarativeStyle) bool { return d.Image.Border == "2px solid #ffffff" }},
		{"glass", func(s *StyleState) { s.BackgroundType = BackgroundGlass }, func(d DeclarativeStyle) bool {
			return d.Container.Background == "rgba(30, 30, 46, 0.8)" && d.Container.Class == "preview-container bg-glass"
		}},
		{"opacity", func(s *StyleState) { s.OpacityPct = 40 }, func(d DeclarativeStyle) bool { return d.Image.Opacity == "0.4" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStyle()
			tt.mutate(&s)
			if got := RenderPreview(s, src); !tt.check(got) {
				t.Errorf("RenderPreview() = %+v", got)
			}
		})
	}
}

func TestPreviewRendererBox(t *testing.T) {
	src := mustAccept(t, solid(100, 100, red))
	s := DefaultStyle()
	s.BackgroundType = BackgroundCustom
	s.Color1 = "#000000"
	s.Color2 = "#ffffff"
	s.GradientAngleDeg = 90

	r := &PreviewRenderer{Box: Box{W: 800, H: 200}}
	got, err := r.Render(context.Background(), s, src)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "linear-gradient(180deg, #000000 0%, #ffffff 100%)"
	if got.Container.Background != want {
		t.Errorf("Background = %q, want %q", got.Container.Background, want)
	}
}

func TestDeclarativeStyleCSS(t *testing.T) {
	css := RenderPreview(DefaultStyle(), mustAccept(t, solid(10, 10, red))).CSS()

	for _, want := range []string{
		".preview-image {\n",
		"  border-radius: 20px;\n",
		".preview-container.bg-aurora {\n",
		"  filter: blur(10px);\n",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS() missing %q in:\n%s", want, css)
		}
	}
}
