package logger

import "io"

// MultiLogger broadcasts log messages to multiple Logger backends, e.g. the
// console and a --log-file.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a logger that writes to all provided backends in
// order.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

func (m *MultiLogger) Debug(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Debug(format, args...)
	}
}

func (m *MultiLogger) Info(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Info(format, args...)
	}
}

func (m *MultiLogger) Warning(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Warning(format, args...)
	}
}

func (m *MultiLogger) Error(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Error(format, args...)
	}
}

// Close closes all logger backends.
// Returns the first error encountered, but attempts to close all loggers.
func (m *MultiLogger) Close() error {
	var firstErr error
	for _, l := range m.loggers {
		if err := l.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

var _ Logger = (*MultiLogger)(nil)

// FileLogger is a StandardLogger that owns the writer it logs to.
type FileLogger struct {
	*StandardLogger
	closer io.Closer
	closed bool
}

// NewFileLogger logs to w at level and closes w on Close.
func NewFileLogger(w io.WriteCloser, level Level) *FileLogger {
	return &FileLogger{
		StandardLogger: NewStandardLogger(newLog(w), level),
		closer:         w,
	}
}

// Close closes the underlying writer once.
func (f *FileLogger) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.closer.Close()
}

var _ Logger = (*FileLogger)(nil)
