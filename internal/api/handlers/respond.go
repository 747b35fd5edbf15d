package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/accordflow/engine/internal/api/types"
	appErr "github.com/accordflow/engine/pkg/errors"
	"github.com/accordflow/engine/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError logs the full error server-side and surfaces only the
// client-safe message. Driver and SQL detail never leave the process.
func writeError(w http.ResponseWriter, err error) {
	status := appErr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.L().Error("request failed", zap.Error(err))
	} else {
		logger.L().Debug("request rejected", zap.Error(err))
	}
	writeJSON(w, status, types.APIResponse{Success: false, Error: appErr.ClientMessage(err)})
}

func writeInvalid(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, types.APIResponse{Success: false, Error: msg})
}

// clientIP returns the first hop of X-Forwarded-For, falling back to the
// peer address when the request carries no forwarding header.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
