package monitoring

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Component string         `json:"component"`
	EventType string         `json:"event_type"`
	Details   map[string]any `json:"details,omitempty"`
}

type logger struct {
	component string
	minLevel  LogLevel
	mu        sync.Mutex
	enc       *json.Encoder
}

// NewLogger returns a Logger writing one JSON object per line to w.
// Entries below minLevel are dropped.
func NewLogger(component string, w io.Writer, minLevel LogLevel) Logger {
	return &logger{
		component: component,
		minLevel:  minLevel,
		enc:       json.NewEncoder(w),
	}
}

func (l *logger) Log(level LogLevel, eventType string, message string, details map[string]any) {
	if level < l.minLevel {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     level.String(),
		Message:   message,
		Component: l.component,
		EventType: eventType,
		Details:   details,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}

func (l *logger) Enabled(level LogLevel) bool {
	return level >= l.minLevel
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

type Logger interface {
	Log(level LogLevel, eventType string, message string, details map[string]any)
	// Enabled reports whether entries at level would be written, so callers
	// can skip building details.
	Enabled(level LogLevel) bool
}
