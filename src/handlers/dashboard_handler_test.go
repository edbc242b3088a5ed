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

func TestDashboardHandler_DefaultsAndQueryMapping(t *testing.T) {
	stub := &stubDashboardService{
		snapshot: models.DashboardSnapshot{RecordCount: 7},
	}
	handler := NewDashboardHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetDashboard(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RangeAll, stub.lastFilter.DateRange)
	assert.Equal(t, "all", stub.lastFilter.Category)
	assert.Equal(t, models.SlotAll, stub.lastFilter.TimeSlot)

	req = httptest.NewRequest(http.MethodGet, "/api/dashboard?range=today&category=Main&slot=lunch", nil)
	rec = httptest.NewRecorder()
	handler.HandleGetDashboard(rec, req)

	assert.Equal(t, models.RangeToday, stub.lastFilter.DateRange)
	assert.Equal(t, "Main", stub.lastFilter.Category)
	assert.Equal(t, models.SlotLunch, stub.lastFilter.TimeSlot)

	var snapshot models.DashboardSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, 7, snapshot.RecordCount)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestDashboardHandler_ETagRoundTrip(t *testing.T) {
	stub := &stubDashboardService{
		snapshot: models.DashboardSnapshot{RecordCount: 3},
	}
	handler := NewDashboardHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetDashboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, "no-cache, private", rec.Header().Get("Cache-Control"))

	req = httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	handler.HandleGetDashboard(rec, req)

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDashboardHandler_ETagChangesWithSnapshot(t *testing.T) {
	stub := &stubDashboardService{
		snapshot: models.DashboardSnapshot{RecordCount: 3},
	}
	handler := NewDashboardHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetDashboard(rec, req)
	staleETag := rec.Header().Get("ETag")

	stub.snapshot.RecordCount = 4
	req = httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("If-None-Match", staleETag)
	rec = httptest.NewRecorder()
	handler.HandleGetDashboard(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, staleETag, rec.Header().Get("ETag"))
}

func TestDashboardHandler_GetCategories(t *testing.T) {
	stub := &stubDashboardService{categories: []string{"Drinks", "Main"}}
	handler := NewDashboardHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetCategories(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Drinks","Main"]`, rec.Body.String())
}

func TestDashboardHandler_GetCategoriesNilBecomesEmptyArray(t *testing.T) {
	stub := &stubDashboardService{}
	handler := NewDashboardHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetCategories(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
