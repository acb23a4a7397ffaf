package web

// errors.go turns handler errors into plain-text responses.
//
// Rule violations (validation, conflict, not found) carry messages meant for
// the client and are sent verbatim as "ERROR: <message>". Anything else is
// mapped through core.MapError so the client sees a support code while the
// technical error is logged with the request id.

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/JonMunkholm/inventory/internal/core"
	"github.com/JonMunkholm/inventory/internal/logging"
)

// respondError writes err with the status its type calls for.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classifyError(err)
	logger := logging.WithFields(r.Context(), "path", r.URL.Path, "method", r.Method, "status", status)

	switch {
	case status < http.StatusInternalServerError:
		logger.Debug("request rejected", "reason", message)
	case core.IsUserFacing(err):
		logger.Warn("request error", "error", err.Error(), "code", core.MapError(err).Code)
	default:
		logger.Error("request error", "error", err.Error(), "code", core.MapError(err).Code)
	}

	writeText(w, status, "ERROR: "+message)
}

func classifyError(err error) (int, string) {
	var (
		ve *core.ValidationError
		ce *core.ConflictError
		nf *core.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Message
	case errors.As(err, &ce):
		return http.StatusBadRequest, ce.Error()
	case errors.As(err, &nf):
		return http.StatusNotFound, nf.Error()
	default:
		return http.StatusInternalServerError, core.FormatUserError(err)
	}
}

// respondBadRequest reports a body that could not be decoded.
func respondBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Debug("malformed request body", "path", r.URL.Path, "error", err)
	writeText(w, http.StatusBadRequest, fmt.Sprintf("Error: %v", err))
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode error", "error", err)
	}
}
