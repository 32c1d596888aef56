package handlers

import (
	"net/http"

	"filmora/internal/connectivity"
)

// StatusHandler exposes the connectivity flag so clients can show an
// offline banner without waiting for a catalog fetch to fail.
type StatusHandler struct {
	conn connectivity.Checker
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(conn connectivity.Checker) *StatusHandler {
	return &StatusHandler{conn: conn}
}

// Status reports the current connectivity state.
// GET /api/status
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"online": h.conn.Online()})
}
