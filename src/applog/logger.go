// Package applog is the process-wide leveled logger shared by the harness, the
// figure builder and both binaries. Components log through a named Logger so
// lines read "[WARN] viewer: ...".
package applog

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level is a log severity. Lines below the global level are dropped.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelTags = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("Level(%d)", int32(l))
	}
	return levelTags[l]
}

// ParseLevel accepts debug, info, warn/warning and error in any case.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelInfo, false
}

var (
	threshold  atomic.Int32
	baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)
)

func init() { threshold.Store(int32(LevelInfo)) }

// SetLogLevel sets the global level from its name. It returns false and keeps
// the current level for unknown names.
func SetLogLevel(s string) bool {
	l, ok := ParseLevel(s)
	if ok {
		threshold.Store(int32(l))
	}
	return ok
}

// GetLogLevel returns the global level.
func GetLogLevel() Level { return Level(threshold.Load()) }

// Enabled reports whether lines at l are written.
func Enabled(l Level) bool { return l >= GetLogLevel() }

// SetOutput redirects every logger.
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

// Logger tags its lines with a component name. The zero value logs untagged.
type Logger struct{ component string }

// New returns a logger for component.
func New(component string) Logger { return Logger{component: component} }

func (lg Logger) emit(l Level, format string, args []interface{}) {
	if !Enabled(l) {
		return
	}
	// Without args the message is printed as is; file names may contain %.
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if lg.component != "" {
		msg = lg.component + ": " + msg
	}
	baseLogger.Print("[" + l.String() + "] " + msg)
}

func (lg Logger) Debugf(format string, a ...interface{}) { lg.emit(LevelDebug, format, a) }
func (lg Logger) Infof(format string, a ...interface{})  { lg.emit(LevelInfo, format, a) }
func (lg Logger) Warnf(format string, a ...interface{})  { lg.emit(LevelWarn, format, a) }
func (lg Logger) Errorf(format string, a ...interface{}) { lg.emit(LevelError, format, a) }

var root Logger

func Debugf(format string, a ...interface{}) { root.emit(LevelDebug, format, a) }
func Infof(format string, a ...interface{})  { root.emit(LevelInfo, format, a) }
func Warnf(format string, a ...interface{})  { root.emit(LevelWarn, format, a) }
func Errorf(format string, a ...interface{}) { root.emit(LevelError, format, a) }

// TimeTrack logs the time since start at debug level. Use with defer.
func TimeTrack(start time.Time, label string) {
	root.emit(LevelDebug, "%s took %s", []interface{}{label, time.Since(start).Round(time.Microsecond)})
}
