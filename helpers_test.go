package syncx

import (
	"fmt"
	"sync"
	"testing"
)

type mockLoggerAdapter struct {
	mu     sync.Mutex
	debugs []string
	warns  []string
	errors []string
}

func (m *mockLoggerAdapter) record(dst *[]string, message string, args []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*dst = append(*dst, fmt.Sprintf(message, args...))
}

func (m *mockLoggerAdapter) Debug(message string, args ...any) { m.record(&m.debugs, message, args) }
func (m *mockLoggerAdapter) Info(message string, args ...any)  {}
func (m *mockLoggerAdapter) Warn(message string, args ...any)  { m.record(&m.warns, message, args) }
func (m *mockLoggerAdapter) Error(message string, args ...any) { m.record(&m.errors, message, args) }

func (m *mockLoggerAdapter) errorCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.errors)
}

func (m *mockLoggerAdapter) debugCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.debugs)
}

func newTestLock(t testing.TB, logger LoggerAdapter) *Lock {
	t.Helper()
	l, err := NewLock(LockConfig{LoggerAdapter: logger})
	if err != nil {
		t.Fatalf("NewLock: %v", err)
	}
	t.Cleanup(l.Close)
	return l
}

func newTestCondition(t testing.TB, l *Lock, logger LoggerAdapter) *Condition {
	t.Helper()
	c, err := NewCondition(l, ConditionConfig{LoggerAdapter: logger})
	if err != nil {
		t.Fatalf("NewCondition: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}
