// Package log is a thin context-aware wrapper around zap. All log calls
// take a context so request-scoped data (correlation id) can be attached
// without threading loggers through every constructor.
package log

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

type options struct {
	level      zapcore.Level
	env        string
	withCaller bool
	callerSkip int
}

type Option func(*options)

func WithLogLevel(level string) Option {
	return func(o *options) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

func WithLogEnvOption(env string) Option {
	return func(o *options) { o.env = env }
}

func WithCaller(enabled bool) Option {
	return func(o *options) { o.withCaller = enabled }
}

func AddCallerSkip(skip int) Option {
	return func(o *options) { o.callerSkip = skip }
}

// Init replaces the process logger. Local environments get a
// human-readable console encoder, everything else logs JSON.
func Init(appName string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel, callerSkip: 1}
	for _, opt := range opts {
		opt(o)
	}

	cfg := zap.NewProductionConfig()
	if o.env == "local" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(o.level)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	zopts := []zap.Option{zap.Fields(zap.String("app", appName))}
	if o.withCaller {
		zopts = append(zopts, zap.WithCaller(true), zap.AddCallerSkip(o.callerSkip))
	}

	l, err := cfg.Build(zopts...)
	if err != nil {
		panic(fmt.Sprintf("log: init failed: %v", err))
	}

	mu.Lock()
	logger = l
	mu.Unlock()
}

// InitForTest installs a no-op logger. Call it from TestMain so tests
// stay quiet.
func InitForTest() {
	mu.Lock()
	logger = zap.NewNop()
	mu.Unlock()
}

func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func withCtx(ctx context.Context, fields []Field) []Field {
	if cid := CorrelationID(ctx); cid != "" {
		fields = append(fields, zap.String("correlation_id", cid))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	get().Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	get().Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	get().Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	get().Error(msg, withCtx(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...any) {
	Info(ctx, fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...any) {
	Warn(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...any) {
	Error(ctx, fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...any) {
	get().Fatal(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

// Field constructors re-exported so callers never import zap directly.

func String(key, val string) Field               { return zap.String(key, val) }
func Int(key string, val int) Field              { return zap.Int(key, val) }
func Bool(key string, val bool) Field            { return zap.Bool(key, val) }
func Duration(key string, d time.Duration) Field { return zap.Duration(key, d) }
func Time(key string, t time.Time) Field         { return zap.Time(key, t) }
func Any(key string, val any) Field              { return zap.Any(key, val) }
func Err(err error) Field                        { return zap.Error(err) }
