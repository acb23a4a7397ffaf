package core

import (
	"context"
	"log/slog"

	"github.com/JonMunkholm/inventory/internal/logging"
)

type contextKey string

const (
	ctxKeyClientIP  contextKey = "client_ip"
	ctxKeyUserAgent contextKey = "user_agent"
)

// ContextWithClient records who issued the request. Mutation log entries
// carry these values as a lightweight change trail.
func ContextWithClient(ctx context.Context, ip, userAgent string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyClientIP, ip)
	return context.WithValue(ctx, ctxKeyUserAgent, userAgent)
}

// ClientFromContext returns the values stored by ContextWithClient.
func ClientFromContext(ctx context.Context) (ip, userAgent string) {
	ip, _ = ctx.Value(ctxKeyClientIP).(string)
	userAgent, _ = ctx.Value(ctxKeyUserAgent).(string)
	return ip, userAgent
}

// changeLogger returns the request logger, plus client fields when known.
func changeLogger(ctx context.Context) *slog.Logger {
	logger := logging.FromContext(ctx)
	ip, ua := ClientFromContext(ctx)
	if ip != "" {
		logger = logger.With("client_ip", ip)
	}
	if ua != "" {
		logger = logger.With("user_agent", ua)
	}
	return logger
}
