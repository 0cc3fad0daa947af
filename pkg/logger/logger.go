// Package logger provides a structured, levelled logger built on log/slog.
//
// Request handlers use WithCtx to get a logger pre-tagged with the request
// ID injected by the Logger middleware:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("message stored", "message_id", m.ID)
//	// → time=... level=INFO msg="message stored" request_id=a1b2c3d4 message_id=7
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/bkormos/portico/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	// Fan out to MongoDB as well when LOG_MONGO_URI is configured.
	if uri := config.Get("LOG_MONGO_URI", ""); uri != "" {
		if mh, err := NewMongoHandler(uri,
			config.Get("LOG_MONGO_DB", "portico"),
			config.Get("LOG_MONGO_COLLECTION", "logs"),
		); err == nil {
			handler = NewMultiHandler(handler, mh)
		}
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the per-request logger stored in ctx, or the base logger
// when none is present (e.g. outside an HTTP request).
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// Inject stores a pre-tagged *slog.Logger into ctx. Called by the Logger
// middleware; application code rarely needs it.
func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
