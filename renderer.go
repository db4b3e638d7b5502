package beautify

import "context"

// Renderer turns a style and a source into some output T. Both backends
// build from the same Composition.
type Renderer[T any] interface {
	Render(ctx context.Context, s StyleState, src *SourceImage) (T, error)
}

var (
	_ Renderer[DeclarativeStyle] = (*PreviewRenderer)(nil)
	_ Renderer[*EncodedBuffer]   = (*ExportRenderer)(nil)
)
