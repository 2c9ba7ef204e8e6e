package logger

import (
	"context"
	"log"
	"os"
	"strings"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func parseLevel(s string) level {
	switch strings.ToLower(s) {
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

func (l level) String() string {
	switch l {
	case levelDebug:
		return "DEBUG"
	case levelWarn:
		return "WARN"
	case levelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

type implLogger struct {
	logger *log.Logger
	min    level
}

// New creates a new Logger instance writing to stdout. Unknown level names
// fall back to info.
func New(levelName string) Logger {
	return &implLogger{
		logger: log.New(os.Stdout, "", log.LstdFlags),
		min:    parseLevel(levelName),
	}
}

func (l *implLogger) logf(lv level, msg string, args ...interface{}) {
	if lv < l.min {
		return
	}
	l.logger.Printf("["+lv.String()+"] "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelDebug, msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelInfo, msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelWarn, msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelError, msg, args...)
}
