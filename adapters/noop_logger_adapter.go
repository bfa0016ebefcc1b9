package adapters

// NoOpLoggerAdapter discards every message. Use it to silence the
// diagnostics emitted by closing primitives.
type NoOpLoggerAdapter struct{}

// NewNoOpLoggerAdapter creates a new no-op logger
func NewNoOpLoggerAdapter() *NoOpLoggerAdapter {
	return &NoOpLoggerAdapter{}
}

func (n *NoOpLoggerAdapter) Debug(message string, args ...any) {}
func (n *NoOpLoggerAdapter) Info(message string, args ...any)  {}
func (n *NoOpLoggerAdapter) Warn(message string, args ...any)  {}
func (n *NoOpLoggerAdapter) Error(message string, args ...any) {}

var _ LoggerAdapter = (*NoOpLoggerAdapter)(nil)
