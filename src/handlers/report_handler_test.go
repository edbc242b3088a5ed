package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/dishboard/src/models"
)

func TestReportHandler_DefaultRangeIsToday(t *testing.T) {
	stub := &stubDashboardService{
		report: models.ExecutiveReport{Title: "Daily Snapshot"},
	}
	handler := NewReportHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetReport(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RangeToday, stub.lastDateRange)

	var report models.ExecutiveReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "Daily Snapshot", report.Title)
}

func TestReportHandler_RangeFromQuery(t *testing.T) {
	stub := &stubDashboardService{
		report: models.ExecutiveReport{Title: "Weekly Business Summary"},
	}
	handler := NewReportHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/report?range=last7days", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetReport(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RangeLast7Days, stub.lastDateRange)
}
