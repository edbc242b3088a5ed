package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/dishboard/src/logger"
	"github.com/username/dishboard/src/models"
	"github.com/username/dishboard/src/services"
)

type ReportHandler struct {
	dashboardService services.DashboardService
}

func NewReportHandler(service services.DashboardService) *ReportHandler {
	return &ReportHandler{
		dashboardService: service,
	}
}

func (h *ReportHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	dateRange := models.RangeToday
	if v := r.URL.Query().Get("range"); v != "" {
		dateRange = models.DateRange(v)
	}
	logger.L.Debug("Handling GetReport request", "range", dateRange)

	report := h.dashboardService.Report(dateRange)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		logger.L.Error("Error encoding JSON response for executive report", "error", err)
	}
}
