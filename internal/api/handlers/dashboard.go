package handlers

import (
	"net/http"

	"github.com/accordflow/engine/internal/api/types"
	"github.com/accordflow/engine/internal/services"
)

// DashboardHandler serves the server-side aggregates behind the dashboard's
// stat tiles.
type DashboardHandler struct {
	stats services.StatsService
}

func NewDashboardHandler(stats services.StatsService) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	s, err := h.stats.Dashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: s})
}
