package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Minimal leveled logger shared by the serve path and the CLI.
// Level is controlled with LOG_LEVEL (debug|info|warn|error).

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu    sync.RWMutex
	out   = log.New(os.Stdout, "", 0)
	level = LevelInfo
)

// Init sets the global log level (case-insensitive). Unknown values fall
// back to info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		level = LevelDebug
	case "warn", "warning":
		level = LevelWarn
	case "error":
		level = LevelError
	default:
		level = LevelInfo
	}
}

// SetOutput redirects log output; used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = log.New(w, "", 0)
}

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	switch level {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return "info"
}

func logf(l Level, tag, format string, v ...any) {
	mu.RLock()
	enabled := l >= level
	w := out
	mu.RUnlock()
	if !enabled {
		return
	}
	header := fmt.Sprintf("%s [%s] ", time.Now().Format(time.RFC3339), tag)
	w.Printf(header+format, v...)
}

func Debugf(format string, v ...any) { logf(LevelDebug, "DEBUG", format, v...) }
func Infof(format string, v ...any)  { logf(LevelInfo, "INFO", format, v...) }
func Warnf(format string, v ...any)  { logf(LevelWarn, "WARN", format, v...) }
func Errorf(format string, v ...any) { logf(LevelError, "ERROR", format, v...) }

// Fatalf logs unconditionally and exits the process.
func Fatalf(format string, v ...any) {
	logf(LevelError, "FATAL", format, v...)
	os.Exit(1)
}
