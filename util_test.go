package beautify

import (
	"context"
	"errors"
	"testing"
)

func feed(errs ...error) <-chan error {
	ch := make(chan error, len(errs))
	for _, err := range errs {
		ch <- err
	}
	close(ch)
	return ch
}

func TestCheckErrors(t *testing.T) {
	a, b := errors.New("a"), errors.New("b")

	if err := checkErrors(feed(nil, nil)); err != nil {
		t.Errorf("checkErrors(nils) = %v, want nil", err)
	}
	if err := checkErrors(feed(nil, a)); err != a {
		t.Errorf("checkErrors(one) = %v, want %v", err, a)
	}
	if err := checkErrors(feed(context.Canceled, context.Canceled, nil)); err != context.Canceled {
		t.Errorf("checkErrors(dups) = %v, want %v", err, context.Canceled)
	}

	err := checkErrors(feed(a, b, a))
	if !errors.Is(err, a) || !errors.Is(err, b) {
		t.Fatalf("checkErrors(a, b, a) = %v", err)
	}
	if n := len(err.(interface{ Unwrap() []error }).Unwrap()); n != 2 {
		t.Errorf("joined %d errors, want 2", n)
	}
}
