package beautify

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(append([]Option{quiet()}, opts...)...)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

func TestSessionInvalidUploadKeepsSource(t *testing.T) {
	s := newTestSession(t)
	first, err := s.Upload(pngBytes(t, solid(10, 10, red)), "image/png")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	before := s.State()
	if _, err := s.Upload([]byte("hello"), "text/plain"); !IsCode(err, ErrCodeInvalidFileType) {
		t.Fatalf("Upload(text) error = %v, want %s", err, ErrCodeInvalidFileType)
	}
	if s.Source() != first {
		t.Error("invalid upload replaced the source")
	}
	if s.State() != before {
		t.Error("invalid upload changed the style")
	}
}

func TestSessionEditing(t *testing.T) {
	s := newTestSession(t)

	s.Update(FieldCornerRadius, 40)
	s.ApplyBackgroundPreset("ocean")
	got := s.ApplyFramePreset("classic")

	if got.CornerRadius != 40 || got.BackgroundType != BackgroundOcean || got.BorderWidth != 8 {
		t.Errorf("State() = %+v", got)
	}
	if s.State() != got {
		t.Error("State() differs from the last mutation result")
	}
}

func TestSessionResetKeepsSource(t *testing.T) {
	s := newTestSession(t)
	src, _ := s.Upload(pngBytes(t, solid(10, 10, red)), "image/png")
	s.Update(FieldBlur, 4)

	if got := s.Reset(); got != DefaultStyle() {
		t.Errorf("Reset() = %+v, want defaults", got)
	}
	if s.Source() != src {
		t.Error("Reset() dropped the source")
	}
}

func TestSessionPreview(t *testing.T) {
	s := newTestSession(t)
	if !s.Preview().IsZero() {
		t.Error("Preview() without source is not zero")
	}
	s.Upload(pngBytes(t, solid(10, 10, red)), "image/png")
	if s.Preview().IsZero() {
		t.Error("Preview() with source is zero")
	}
}

func TestSessionExportTo(t *testing.T) {
	dir := t.TempDir()
	s := newTestSession(t)
	s.Upload(pngBytes(t, solid(10, 10, red)), "image/png")
	s.Update(FieldOutputScale, 1)

	var out bytes.Buffer
	buf, err := s.ExportTo(context.Background(), FileSink{Path: dir}, WriterSink{W: &out})
	if err != nil {
		t.Fatalf("ExportTo() error = %v", err)
	}

	saved, err := os.ReadFile(filepath.Join(dir, buf.Filename))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(saved, buf.Data) {
		t.Error("file contents differ from buffer")
	}
	if !bytes.Equal(out.Bytes(), buf.Data) {
		t.Error("writer contents differ from buffer")
	}
}

type failingSink struct{ err error }

func (f failingSink) Deliver(context.Context, *EncodedBuffer) error { return f.err }

func TestSessionExportToSinkError(t *testing.T) {
	s := newTestSession(t)
	s.Upload(pngBytes(t, solid(10, 10, red)), "image/png")
	s.Update(FieldOutputScale, 1)

	buf, err := s.ExportTo(context.Background(),
		failingSink{errors.New("disk full")},
		failingSink{errors.New("clipboard busy")},
	)
	if !IsCode(err, ErrCodeSink) {
		t.Fatalf("ExportTo() error = %v, want %s", err, ErrCodeSink)
	}
	if buf == nil || len(buf.Data) == 0 {
		t.Error("ExportTo() dropped the buffer on sink failure")
	}
}

func TestSessionExportNoSource(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.Export(context.Background()); !IsCode(err, ErrCodeDecode) {
		t.Errorf("Export() error = %v, want %s", err, ErrCodeDecode)
	}
}

func TestSessionConcurrentEdits(t *testing.T) {
	s := newTestSession(t)
	s.Upload(pngBytes(t, solid(8, 8, red)), "image/png")

	wg := &sync.WaitGroup{}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Update(FieldRotation, float64(i))
			_ = s.Preview()
		}(i)
	}
	wg.Wait()

	if r := s.State().RotationDeg; r < 0 || r >= 20 {
		t.Errorf("RotationDeg = %v, want one of the written values", r)
	}
}

func TestNewSessionBadOption(t *testing.T) {
	if _, err := NewSession(WithPadding(-1)); err == nil {
		t.Error("NewSession(WithPadding(-1)) error = nil")
	}
	if _, err := NewSession(WithMaxOutputScale(99)); err == nil {
		t.Error("NewSession(WithMaxOutputScale(99)) error = nil")
	}
	if _, err := NewSession(WithLogger(nil)); err == nil {
		t.Error("NewSession(WithLogger(nil)) error = nil")
	}
}

func TestSessionPadding(t *testing.T) {
	s := newTestSession(t, WithPadding(10))
	s.Upload(pngBytes(t, solid(20, 20, red)), "image/png")
	s.Update(FieldOutputScale, 1)

	buf, err := s.Export(context.Background())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if buf.Width != 40 || buf.Height != 40 {
		t.Errorf("size = %dx%d, want 40x40", buf.Width, buf.Height)
	}
}
