package beautify

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Sink consumes a finished export: a download, a clipboard, a pipe.
type Sink interface {
	Deliver(ctx context.Context, buf *EncodedBuffer) error
}

// FileSink writes the buffer to disk. When Path names an existing
// directory (or ends in a separator) the buffer's Filename is used inside it.
type FileSink struct {
	Path string
	Perm os.FileMode // 0644 when zero
}

// Deliver implements Sink.
func (f FileSink) Deliver(ctx context.Context, buf *EncodedBuffer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := f.Target(buf)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return wrapError(ErrCodeSink, err, "could not create %s", dir)
		}
	}
	perm := f.Perm
	if perm == 0 {
		perm = 0644
	}
	if err := os.WriteFile(path, buf.Data, perm); err != nil {
		return wrapError(ErrCodeSink, err, "could not save %s", path)
	}
	return nil
}

// Target is the path Deliver writes buf to.
func (f FileSink) Target(buf *EncodedBuffer) string {
	if f.Path == "" {
		return buf.Filename
	}
	if os.IsPathSeparator(f.Path[len(f.Path)-1]) {
		return filepath.Join(f.Path, buf.Filename)
	}
	if info, err := os.Stat(f.Path); err == nil && info.IsDir() {
		return filepath.Join(f.Path, buf.Filename)
	}
	return f.Path
}

// WriterSink copies the encoded bytes to W.
type WriterSink struct {
	W io.Writer
}

// Deliver implements Sink.
func (w WriterSink) Deliver(ctx context.Context, buf *EncodedBuffer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.W == nil {
		return newError(ErrCodeSink, "no writer to copy to")
	}
	n, err := w.W.Write(buf.Data)
	if err != nil {
		return wrapError(ErrCodeSink, err, "could not copy image")
	}
	if n != len(buf.Data) {
		return wrapError(ErrCodeSink, io.ErrShortWrite, "could not copy image")
	}
	return nil
}

// deliver hands buf to every sink concurrently. Failures are combined into
// one SinkError; the buffer itself is untouched.
func deliver(ctx context.Context, buf *EncodedBuffer, sinks []Sink) error {
	errs := make(chan error)
	wg := &sync.WaitGroup{}

	for _, s := range sinks {
		wg.Add(1)

		go func(s Sink) {
			defer wg.Done()
			errs <- s.Deliver(ctx, buf)
		}(s)
	}

	go func() {
		wg.Wait()
		close(errs)
	}()

	err := checkErrors(errs)
	if err == nil || IsCode(err, ErrCodeSink) && len(sinks) == 1 {
		return err
	}
	return wrapError(ErrCodeSink, err, "%s", sinkMessage(err))
}

func sinkMessage(err error) string {
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return fmt.Sprintf("%d exports could not be delivered", len(u.Unwrap()))
	}
	return "export could not be delivered"
}
