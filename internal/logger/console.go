// Package logger provides the console logger used by the manifold read
// phase. Output is timestamped, level-filtered, and colorized when writing
// to a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger writes timestamped, level-filtered messages to a writer.
// It is safe for concurrent use. Color output is enabled automatically when
// the writer is a TTY.
type ConsoleLogger struct {
	writer      io.Writer
	level       int
	colorOutput bool
	mu          sync.Mutex
}

// New creates a ConsoleLogger writing to w at the given minimum level.
// Valid levels are trace, debug, info, warn, error (case-insensitive);
// empty or invalid levels default to info. A nil writer discards all
// output.
func New(w io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		level:       levelFromString(logLevel),
		colorOutput: isTerminal(w),
	}
}

// isTerminal reports whether the writer is a TTY that supports color.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// levelFromString converts a level name to its numeric value, defaulting to
// info for empty or unrecognized names.
func levelFromString(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// levelColors maps numeric levels to their tag colors.
var levelColors = map[int]*color.Color{
	levelTrace: color.New(color.FgHiBlack),
	levelDebug: color.New(color.FgHiBlack),
	levelInfo:  color.New(color.FgCyan),
	levelWarn:  color.New(color.FgYellow),
	levelError: color.New(color.FgRed),
}

// levelTags maps numeric levels to their display tags.
var levelTags = map[int]string{
	levelTrace: "TRACE",
	levelDebug: "DEBUG",
	levelInfo:  "INFO",
	levelWarn:  "WARN",
	levelError: "ERROR",
}

// Tracef logs a trace-level message (most verbose).
func (cl *ConsoleLogger) Tracef(format string, args ...any) {
	cl.logf(levelTrace, format, args...)
}

// Debugf logs a debug-level message.
func (cl *ConsoleLogger) Debugf(format string, args ...any) {
	cl.logf(levelDebug, format, args...)
}

// Infof logs an info-level message.
func (cl *ConsoleLogger) Infof(format string, args ...any) {
	cl.logf(levelInfo, format, args...)
}

// Warnf logs a warning-level message.
func (cl *ConsoleLogger) Warnf(format string, args ...any) {
	cl.logf(levelWarn, format, args...)
}

// Errorf logs an error-level message.
func (cl *ConsoleLogger) Errorf(format string, args ...any) {
	cl.logf(levelError, format, args...)
}

func (cl *ConsoleLogger) logf(level int, format string, args ...any) {
	if cl == nil || cl.writer == nil || level < cl.level {
		return
	}

	tag := levelTags[level]
	if cl.colorOutput {
		tag = levelColors[level].Sprint(tag)
	}
	message := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] [%s] %s\n", time.Now().Format("15:04:05"), tag, message)

	cl.mu.Lock()
	defer cl.mu.Unlock()
	fmt.Fprint(cl.writer, line)
}
