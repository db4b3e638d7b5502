package beautify

import (
	"errors"
	"fmt"
	"testing"
)

func TestError(t *testing.T) {
	cause := errors.New("eof")
	err := wrapError(ErrCodeDecode, cause, "could not decode %s", "png")

	if got, want := err.Error(), "DECODE_ERROR: could not decode png: eof"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(cause) = false")
	}
	if got := newError(ErrCodeEncode, "nope").Error(); got != "ENCODE_ERROR: nope" {
		t.Errorf("Error() = %q", got)
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("export: %w", newError(ErrCodeSink, "busy"))

	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"direct", newError(ErrCodeInvalidFileType, "x"), ErrCodeInvalidFileType},
		{"wrapped", wrapped, ErrCodeSink},
		{"plain", errors.New("x"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
			if tt.want != "" && !IsCode(tt.err, tt.want) {
				t.Errorf("IsCode(%q) = false", tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(newError(ErrCodeInvalidFileType, "please upload an image file")); got != "please upload an image file" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("raw")); got != "raw" {
		t.Errorf("UserMessage() = %q", got)
	}
}
