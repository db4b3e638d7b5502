package beautify

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

// quiet silences export logging in tests.
func quiet() Option { return WithLogger(log.New(io.Discard)) }

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func mustAccept(t *testing.T, img image.Image) *SourceImage {
	t.Helper()
	src, err := AcceptImage(pngBytes(t, img), "image/png")
	if err != nil {
		t.Fatalf("AcceptImage() error = %v", err)
	}
	return src
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	return img
}

func rgbAt(img image.Image, x, y int) [3]uint8 {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return [3]uint8{c.R, c.G, c.B}
}

// flatStyle has a solid background and nothing drawn around the image.
func flatStyle() StyleState {
	s := DefaultStyle()
	s.BackgroundType = BackgroundSolid
	s.CornerRadius = 0
	s.ShadowIntensity = 0
	s.OutputScale = 1
	return s
}

var (
	red      = color.NRGBA{R: 255, A: 255}
	blue     = color.NRGBA{B: 255, A: 255}
	solidRGB = [3]uint8{0x1a, 0x1a, 0x2e}
)
