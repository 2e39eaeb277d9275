// Package logger provides the append-only monitor log: timestamped,
// level-tagged lines persisted to a single file, with synchronous listener
// fan-out for console mirroring.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Level tags a log entry.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Entry is one immutable log record.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}

// Line renders the entry in the on-disk format:
// 2006-01-02T15:04:05.000Z [LEVEL] message
func (e Entry) Line() string {
	return fmt.Sprintf("%s [%s] %s", e.Time.UTC().Format("2006-01-02T15:04:05.000Z"), e.Level, e.Message)
}

// Listener receives every appended entry, synchronously, in registration
// order. A panicking listener is isolated and never fails the append.
type Listener func(Entry)

// Logger appends entries to a single log file. It is the only writer of that
// file; appends are serialized by an internal mutex.
type Logger struct {
	mu        sync.Mutex
	path      string
	listeners []Listener
	diag      zerolog.Logger
}

// New creates a logger targeting path, creating the parent directory if it
// does not exist. Directory creation failure is returned and is fatal at
// startup.
func New(path string, diag zerolog.Logger) (*Logger, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", dir, err)
	}
	return &Logger{path: path, diag: diag}, nil
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}

// Subscribe registers a listener. Register all listeners before monitoring
// starts; delivery order equals registration order.
func (l *Logger) Subscribe(fn Listener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

// Log appends a timestamped entry to the log file, then notifies listeners.
// A failed append is returned to the caller: the monitor cannot continue its
// durable-logging contract without it. Listener failures never propagate.
func (l *Logger) Log(message string, level Level) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{Time: time.Now(), Level: level, Message: message}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	_, werr := f.WriteString(entry.Line() + "\n")
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("append log entry: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("close log file: %w", cerr)
	}

	for _, fn := range l.listeners {
		l.notify(fn, entry)
	}
	return nil
}

func (l *Logger) notify(fn Listener, entry Entry) {
	defer func() {
		if r := recover(); r != nil {
			l.diag.Error().Interface("panic", r).Msg("log listener panicked")
		}
	}()
	fn(entry)
}

// Info appends an INFO entry.
func (l *Logger) Info(message string) error {
	return l.Log(message, LevelInfo)
}

// Warn appends a WARN entry.
func (l *Logger) Warn(message string) error {
	return l.Log(message, LevelWarn)
}

// Error appends an ERROR entry.
func (l *Logger) Error(message string) error {
	return l.Log(message, LevelError)
}
