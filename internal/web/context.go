package web

import (
	"context"
	"net/http"

	"github.com/JonMunkholm/inventory/internal/core"
	"github.com/JonMunkholm/inventory/internal/web/middleware"
)

// withRequestMetadata attaches the client address and User-Agent for the
// service's change log. RemoteAddr has already been through TrustedRealIP.
func withRequestMetadata(r *http.Request) context.Context {
	return core.ContextWithClient(r.Context(), middleware.ClientIP(r), r.UserAgent())
}
