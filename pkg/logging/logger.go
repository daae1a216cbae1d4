package logging

import (
	"io"
	"os"
	"sync"
	"time"
)

// StreamLogger writes encoded entries to an io.Writer. Children created by
// With share the parent's writer, lock and level.
type StreamLogger struct {
	writer io.Writer
	encode encoder
	fields []Field
	shared *streamState
}

type streamState struct {
	mu    sync.Mutex
	level Level
}

// New creates a logger for the given format. Unknown formats fall back to
// JSON.
func New(writer io.Writer, level Level, format Format) *StreamLogger {
	enc := encodeJSON
	if format == FormatText {
		enc = encodeText
	}
	return &StreamLogger{
		writer: writer,
		encode: enc,
		shared: &streamState{level: level},
	}
}

// NewJSONLogger creates a JSON-lines logger.
func NewJSONLogger(writer io.Writer, level Level) *StreamLogger {
	return New(writer, level, FormatJSON)
}

// NewTextLogger creates a human-readable console logger.
func NewTextLogger(writer io.Writer, level Level) *StreamLogger {
	return New(writer, level, FormatText)
}

// NewDefaultLogger writes JSON to stderr at the level named by LOG_LEVEL,
// or INFO when unset.
func NewDefaultLogger() *StreamLogger {
	return NewJSONLogger(os.Stderr, ParseLevel(os.Getenv("LOG_LEVEL")))
}

func (l *StreamLogger) log(level Level, msg string, fields []Field) {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()

	if level < l.shared.level {
		return
	}

	entry := LogEntry{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
		Fields:  mergeFields(l.fields, fields),
	}
	l.writer.Write(l.encode(entry))
}

// mergeFields flattens preset and call-site fields; call-site keys win.
func mergeFields(preset, call []Field) map[string]any {
	if len(preset)+len(call) == 0 {
		return nil
	}
	m := make(map[string]any, len(preset)+len(call))
	for _, f := range preset {
		m[f.Key] = f.Value
	}
	for _, f := range call {
		m[f.Key] = f.Value
	}
	return m
}

func (l *StreamLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields) }
func (l *StreamLogger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields) }
func (l *StreamLogger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields) }
func (l *StreamLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields) }

// With returns a child logger carrying fields on every entry.
func (l *StreamLogger) With(fields ...Field) Logger {
	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(append(merged, l.fields...), fields...)
	return &StreamLogger{
		writer: l.writer,
		encode: l.encode,
		fields: merged,
		shared: l.shared,
	}
}

// SetLevel changes the minimum level for this logger and all its children.
func (l *StreamLogger) SetLevel(level Level) {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	l.shared.level = level
}

func (l *StreamLogger) GetLevel() Level {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	return l.shared.level
}
