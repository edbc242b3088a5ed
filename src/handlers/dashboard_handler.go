package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/username/dishboard/src/logger"
	"github.com/username/dishboard/src/models"
	"github.com/username/dishboard/src/services"
	"github.com/username/dishboard/src/utils"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(service services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: service,
	}
}

// filterFromQuery builds the filter state from query parameters. Unknown
// values pass through untouched; the filter pipeline treats anything outside
// the known windows as a passthrough, matching the sentinel "all".
func filterFromQuery(r *http.Request) models.FilterState {
	filter := models.FilterState{
		DateRange: models.RangeAll,
		Category:  "all",
		TimeSlot:  models.SlotAll,
	}
	if v := r.URL.Query().Get("range"); v != "" {
		filter.DateRange = models.DateRange(v)
	}
	if v := r.URL.Query().Get("category"); v != "" {
		filter.Category = v
	}
	if v := r.URL.Query().Get("slot"); v != "" {
		filter.TimeSlot = models.TimeSlot(v)
	}
	return filter
}

func (h *DashboardHandler) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	logger.L.Debug("Handling GetDashboard request", "range", filter.DateRange, "category", filter.Category, "slot", filter.TimeSlot)

	snapshot := h.dashboardService.Dashboard(filter)

	currentETag, etagErr := utils.GenerateETag(snapshot)
	w.Header().Set("Cache-Control", "no-cache, private")

	if etagErr == nil && currentETag != "" {
		quotedETag := fmt.Sprintf("\"%s\"", currentETag)
		w.Header().Set("ETag", quotedETag)
		for _, clientETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
			if strings.TrimSpace(clientETag) == quotedETag {
				logger.L.Debug("ETag match for dashboard snapshot", "etag", currentETag)
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	} else {
		logger.L.Warn("Proceeding without ETag check due to ETag generation error", "error", etagErr)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		logger.L.Error("Error encoding JSON response for dashboard snapshot", "error", err)
	}
}

func (h *DashboardHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.dashboardService.Categories()
	if categories == nil {
		categories = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(categories); err != nil {
		logger.L.Error("Error encoding JSON response for categories", "error", err)
	}
}
