package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/username/dishboard/src/services"
)

func TestEntryHandler_Success(t *testing.T) {
	stub := &stubEntryService{message: "Data added successfully"}
	handler := NewEntryHandler(stub)

	body := `{"scriptUrl":"https://script.example/exec","data":{"Date":"15-06-2024","Time":"13:00","Order_ID":"ORD-001","Item_Name":"Thali","Category":"Main","Quantity":1,"Unit_Price":250,"Total_Amount":250}}`
	req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleSubmitEntry(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Data added successfully"}`, rec.Body.String())
	assert.Equal(t, "https://script.example/exec", stub.lastScriptURL)
	assert.Equal(t, "ORD-001", stub.lastEntry.OrderID)
	assert.Equal(t, "Thali", stub.lastEntry.ItemName)
}

func TestEntryHandler_InvalidJSON(t *testing.T) {
	handler := NewEntryHandler(&stubEntryService{})

	req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.HandleSubmitEntry(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid entry payload"}`, rec.Body.String())
}

func TestEntryHandler_MissingScriptURL(t *testing.T) {
	stub := &stubEntryService{err: services.ErrScriptURLMissing}
	handler := NewEntryHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(`{"data":{"Order_ID":"ORD-002"}}`))
	rec := httptest.NewRecorder()
	handler.HandleSubmitEntry(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing Google Apps Script URL"}`, rec.Body.String())
}

func TestEntryHandler_ForwardFailure(t *testing.T) {
	stub := &stubEntryService{err: errors.New("script rejected entry: sheet is locked")}
	handler := NewEntryHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(`{"data":{"Order_ID":"ORD-003"}}`))
	rec := httptest.NewRecorder()
	handler.HandleSubmitEntry(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "sheet is locked")
}
