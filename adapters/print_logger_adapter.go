package adapters

import (
	"log"
	"os"
)

// PrintLoggerAdapter implements LoggerAdapter using standard log package
type PrintLoggerAdapter struct {
	level  LogLevel
	logger *log.Logger
}

// NewPrintLoggerAdapter creates a new print logger with the specified level
// writing to stderr.
func NewPrintLoggerAdapter(level LogLevel) *PrintLoggerAdapter {
	return NewPrintLoggerAdapterWith(log.New(os.Stderr, "", log.LstdFlags), level)
}

// NewPrintLoggerAdapterWith creates a print logger writing through logger.
func NewPrintLoggerAdapterWith(logger *log.Logger, level LogLevel) *PrintLoggerAdapter {
	return &PrintLoggerAdapter{level: level, logger: logger}
}

func (p *PrintLoggerAdapter) print(level LogLevel, message string, args []any) {
	if !p.level.Enables(level) {
		return
	}
	p.logger.Printf("["+string(level)+"] [Syncx] "+message, args...)
}

func (p *PrintLoggerAdapter) Debug(message string, args ...any) {
	p.print(LogLevelDebug, message, args)
}

func (p *PrintLoggerAdapter) Info(message string, args ...any) {
	p.print(LogLevelInfo, message, args)
}

func (p *PrintLoggerAdapter) Warn(message string, args ...any) {
	p.print(LogLevelWarn, message, args)
}

func (p *PrintLoggerAdapter) Error(message string, args ...any) {
	p.print(LogLevelError, message, args)
}
