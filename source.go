package beautify

import (
	"bytes"
	"image"
	"mime"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	// decoders for image.DecodeConfig and imaging.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// SourceImage is an accepted upload. Its bytes are never modified after
// AcceptImage returns; every export decodes them afresh.
type SourceImage struct {
	ID       string
	URL      string // display handle for the preview
	MIMEType string
	Bytes    []byte

	// Width and Height are 0 when the codec could not read a header.
	Width  int
	Height int
}

// AcceptImage checks the declared type and takes a private copy of data.
// Only the MIME type is validated; undecodable bytes fail at export time.
func AcceptImage(data []byte, mimeType string) (*SourceImage, error) {
	mt, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(mimeType))
	}
	if !strings.HasPrefix(mt, "image/") {
		return nil, newError(ErrCodeInvalidFileType, "please upload an image file (got %q)", mimeType)
	}

	id := uuid.New().String()
	src := &SourceImage{
		ID:       id,
		URL:      "blob:beautify/" + id,
		MIMEType: mt,
		Bytes:    bytes.Clone(data),
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(src.Bytes)); err == nil {
		src.Width, src.Height = cfg.Width, cfg.Height
	}
	return src, nil
}

// Size returns the known dimensions.
func (s *SourceImage) Size() (int, int) { return s.Width, s.Height }

// decode reads the bitmap, honouring EXIF orientation.
func (s *SourceImage) decode() (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(s.Bytes), imaging.AutoOrientation(true))
	if err != nil {
		return nil, wrapError(ErrCodeDecode, err, "could not decode %s image", s.MIMEType)
	}
	return img, nil
}
