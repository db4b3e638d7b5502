package beautify

import (
	"bytes"
	"image"
	"math"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// encode serializes img. quality in [0,1] is ignored for png.
func encode(img image.Image, f Format, quality float64) ([]byte, error) {
	buf := &bytes.Buffer{}
	var err error

	switch f {
	case FormatPNG:
		err = imaging.Encode(buf, img, imaging.PNG)
	case FormatJPG:
		err = imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality(quality)))
	case FormatWebP:
		err = webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: float32(clamp(quality, 0, 1) * 100)})
	default:
		return nil, newError(ErrCodeEncode, "unsupported export format %q", f)
	}
	if err != nil {
		return nil, wrapError(ErrCodeEncode, err, "could not encode %s", f)
	}
	return buf.Bytes(), nil
}

// jpegQuality maps [0,1] onto the encoder's 1..100.
func jpegQuality(q float64) int {
	return int(clamp(math.Round(q*100), 1, 100))
}
