package panicutil_test

import (
	"errors"
	"testing"

	"github.com/karupanerura/pocketcache/internal/panicutil"
	"github.com/sourcegraph/conc/panics"
)

func TestCall(t *testing.T) {
	t.Parallel()

	t.Run("Normal return with no error", func(t *testing.T) {
		t.Parallel()

		if err := panicutil.Call(func() error { return nil }); err != nil {
			t.Errorf("expected no error, got: %v", err)
		}
	})

	t.Run("Normal return with error", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		if err := panicutil.Call(func() error { return expectedErr }); err != expectedErr {
			t.Errorf("expected error %v, got: %v", expectedErr, err)
		}
	})

	t.Run("Panic with string", func(t *testing.T) {
		t.Parallel()

		err := panicutil.Call(func() error {
			panic("test panic")
		})
		var recoveredErr *panics.ErrRecovered
		if !errors.As(err, &recoveredErr) {
			t.Fatalf("expected error to be of type *panics.ErrRecovered, got: %T", err)
		}
		if recoveredErr.Value != "test panic" {
			t.Errorf("expected panic value 'test panic', got: %v", recoveredErr.Value)
		}
	})

	t.Run("Panic with error", func(t *testing.T) {
		t.Parallel()

		customErr := errors.New("custom error")
		err := panicutil.Call(func() error {
			panic(customErr)
		})
		var recoveredErr *panics.ErrRecovered
		if !errors.As(err, &recoveredErr) {
			t.Fatalf("expected error to be of type *panics.ErrRecovered, got: %T", err)
		}
		if recoveredErr.Value != customErr {
			t.Errorf("expected panic value custom error, got: %v", recoveredErr.Value)
		}
	})
}
