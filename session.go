package beautify

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
)

// Session is one editing session: the current style and the current source.
// All mutation goes through its methods, which serialise on a mutex, so UI
// handlers may call them from any goroutine.
type Session struct {
	lock  sync.RWMutex
	style StyleState
	src   *SourceImage

	cfg      *config
	exporter *Exporter
	preview  *PreviewRenderer
}

// NewSession starts a session with the default style and no source.
func NewSession(opts ...Option) (*Session, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	pad := cfg.padding
	return &Session{
		style:    DefaultStyle(),
		cfg:      cfg,
		exporter: &Exporter{cfg: cfg},
		preview:  &PreviewRenderer{padding: &pad},
	}, nil
}

// Logger used by the session.
func (s *Session) Logger() *log.Logger { return s.cfg.logger }

// Upload replaces the source. On error the previous source is kept.
func (s *Session) Upload(data []byte, mimeType string) (*SourceImage, error) {
	src, err := AcceptImage(data, mimeType)
	if err != nil {
		s.cfg.logger.Warn("upload rejected", "mime", mimeType, "err", err)
		return nil, err
	}

	s.lock.Lock()
	s.src = src
	s.lock.Unlock()

	s.cfg.logger.Debug("upload", "id", src.ID, "mime", src.MIMEType, "width", src.Width, "height", src.Height)
	return src, nil
}

// Update sets one field through UpdateField and returns the new style.
func (s *Session) Update(f Field, v any) StyleState {
	return s.mutate(func(st StyleState) StyleState { return UpdateField(st, f, v) })
}

// ApplyBackgroundPreset selects a background by name.
func (s *Session) ApplyBackgroundPreset(name string) StyleState {
	return s.mutate(func(st StyleState) StyleState { return ApplyBackgroundPreset(st, name) })
}

// ApplyFramePreset selects a frame by name.
func (s *Session) ApplyFramePreset(name string) StyleState {
	return s.mutate(func(st StyleState) StyleState { return ApplyFramePreset(st, name) })
}

// SetStyle replaces the whole style.
func (s *Session) SetStyle(st StyleState) StyleState {
	return s.mutate(func(StyleState) StyleState { return st })
}

// Reset returns the style to its defaults. The source is kept.
func (s *Session) Reset() StyleState {
	return s.SetStyle(DefaultStyle())
}

func (s *Session) mutate(fn func(StyleState) StyleState) StyleState {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.style = fn(s.style)
	return s.style
}

// State returns a copy of the current style.
func (s *Session) State() StyleState {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.style
}

// Source returns the current source, or nil.
func (s *Session) Source() *SourceImage {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.src
}

func (s *Session) snapshot() (StyleState, *SourceImage) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.style, s.src
}

// Preview renders the current style for display.
func (s *Session) Preview() DeclarativeStyle {
	st, src := s.snapshot()
	return s.preview.preview(st, src)
}

// Export bakes the style and source current at call time. Edits made while
// the export runs don't affect it.
func (s *Session) Export(ctx context.Context) (*EncodedBuffer, error) {
	st, src := s.snapshot()
	return s.exporter.Export(ctx, st, src)
}

// ExportTo exports and hands the result to every sink. A sink failure is
// reported as a SinkError but the buffer is still returned.
func (s *Session) ExportTo(ctx context.Context, sinks ...Sink) (*EncodedBuffer, error) {
	buf, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	if err := deliver(ctx, buf, sinks); err != nil {
		s.cfg.logger.Error("delivery failed", "file", buf.Filename, "err", err)
		return buf, err
	}
	return buf, nil
}
