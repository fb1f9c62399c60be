package log

import (
	"context"
	"log"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Logger is the interface used to log panics that occur while a document is
// printed. It is settable via gqlfmt.Logger.
type Logger interface {
	LogPanic(ctx context.Context, value interface{})
}

// LoggerFunc is a function type that implements the Logger interface.
type LoggerFunc func(ctx context.Context, value interface{})

// LogPanic calls the LoggerFunc with the given context and panic value.
func (f LoggerFunc) LogPanic(ctx context.Context, value interface{}) {
	f(ctx, value)
}

// DefaultLogger is the default logger used to log panics.
type DefaultLogger struct{}

// LogPanic is used to log recovered panic values.
func (l *DefaultLogger) LogPanic(ctx context.Context, value interface{}) {
	log.Printf("gqlfmt: panic occurred: %v\n%s\ncontext: %v", value, stack(), ctx)
}

// Logrus returns a Logger writing panics as error entries to entry.
func Logrus(entry *logrus.Entry) Logger {
	return &logrusLogger{entry: entry}
}

type logrusLogger struct {
	entry *logrus.Entry
}

func (l *logrusLogger) LogPanic(ctx context.Context, value interface{}) {
	l.entry.WithContext(ctx).WithFields(logrus.Fields{
		"panic": value,
		"stack": string(stack()),
	}).Error("gqlfmt: panic occurred")
}

func stack() []byte {
	const size = 64 << 10
	buf := make([]byte, size)
	return buf[:runtime.Stack(buf, false)]
}
