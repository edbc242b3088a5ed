package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/username/dishboard/src/logger"
	"github.com/username/dishboard/src/services"
)

type ExportHandler struct {
	dashboardService services.DashboardService
}

func NewExportHandler(service services.DashboardService) *ExportHandler {
	return &ExportHandler{
		dashboardService: service,
	}
}

// HandleExportCSV streams the current (filtered or unfiltered) record set as
// delimited text, named with the current date.
func (h *ExportHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	filename := fmt.Sprintf("sales_data_%s.csv", time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.dashboardService.ExportCSV(w, filter); err != nil {
		// Headers are already written; all we can do is log.
		logger.L.Error("Error writing CSV export", "error", err)
	}
}
