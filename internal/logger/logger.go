package logger

import (
	"context"
	"io"
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

var levelNames = map[string]level{
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

type jobIDKey struct{}

type implLogger struct {
	logger *log.Logger
	level  level
}

// New creates a Logger writing to stdout
func New(level string) Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter creates a Logger writing to w. Unknown levels fall back to info.
func NewWithWriter(w io.Writer, lvl string) Logger {
	current, ok := levelNames[strings.ToLower(lvl)]
	if !ok {
		current = levelInfo
	}
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  current,
	}
}

// WithJobID returns a context whose log lines are tagged with the given job ID.
func WithJobID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, jobIDKey{}, id)
}

func (l *implLogger) shouldLog(lvl string) bool {
	target, ok := levelNames[lvl]
	if !ok {
		return true
	}
	return target >= l.level
}

func (l *implLogger) printf(ctx context.Context, tag, msg string, args ...interface{}) {
	prefix := "[" + tag + "] "
	if ctx != nil {
		if id, ok := ctx.Value(jobIDKey{}).(string); ok && id != "" {
			prefix += "[job " + id + "] "
		}
	}
	l.logger.Printf(prefix+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.printf(ctx, "DEBUG", msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.printf(ctx, "INFO", msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.printf(ctx, "WARN", msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.printf(ctx, "ERROR", msg, args...)
	}
}

type nopLogger struct{}

// Nop returns a Logger that discards everything. Handy in tests.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(context.Context, string, ...interface{}) {}
func (nopLogger) Info(context.Context, string, ...interface{})  {}
func (nopLogger) Warn(context.Context, string, ...interface{})  {}
func (nopLogger) Error(context.Context, string, ...interface{}) {}
