package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/username/dishboard/src/logger"
	"github.com/username/dishboard/src/services"
	"github.com/username/dishboard/src/utils"
)

type SheetHandler struct {
	dashboardService services.DashboardService
}

func NewSheetHandler(service services.DashboardService) *SheetHandler {
	return &SheetHandler{
		dashboardService: service,
	}
}

// HandleRefresh re-fetches the sheet on demand. On transport failure the
// previously loaded records stay in place and the caller gets a 502.
func (h *SheetHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	logger.L.Info("Handling manual sheet refresh")

	count, err := h.dashboardService.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrFetchFailed) {
			utils.SendJSONError(w, fmt.Sprintf("Error loading data from the sheet. Please check the URL and sheet permissions: %v", err), http.StatusBadGateway)
		} else if errors.Is(err, services.ErrParsingFailed) {
			utils.SendJSONError(w, fmt.Sprintf("Error parsing sheet contents: %v", err), http.StatusBadRequest)
		} else {
			utils.SendJSONError(w, "An internal error occurred while refreshing sheet data.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"success":     true,
		"records":     count,
		"lastUpdated": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		logger.L.Error("Error encoding JSON response for refresh result", "error", err)
	}
}
