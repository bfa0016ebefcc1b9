//go:build !linux

package syncx

import (
	"errors"
	"testing"
)

func TestLock_PriorityCeilingUnsupported(t *testing.T) {
	l := newTestLock(t, &mockLoggerAdapter{})

	if _, err := l.SetPriorityCeiling(10); !errors.Is(err, ErrSetPriorityCeiling) || CodeOf(err) != codeUnsupported {
		t.Fatalf("expected unsupported, got %v", err)
	}
	if _, err := l.PriorityCeiling(); !errors.Is(err, ErrGetPriorityCeiling) || CodeOf(err) != codeUnsupported {
		t.Fatalf("expected unsupported, got %v", err)
	}
	if _, err := NewLock(LockConfig{PriorityCeiling: 10}); !errors.Is(err, ErrInit) {
		t.Fatalf("expected ErrInit, got %v", err)
	}
}
