package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/username/dishboard/src/logger"
	"github.com/username/dishboard/src/models"
	"github.com/username/dishboard/src/services"
	"github.com/username/dishboard/src/utils"
)

type EntryHandler struct {
	entryService services.EntryService
}

func NewEntryHandler(service services.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: service,
	}
}

// entryRequest mirrors the submission shape of the entry form: the target
// script URL plus the row data keyed by the sheet's column names.
type entryRequest struct {
	ScriptURL string            `json:"scriptUrl"`
	Data      models.SheetEntry `json:"data"`
}

// HandleSubmitEntry forwards one new order line item to the write endpoint.
// 400 when no endpoint is configured, 500 when the forward fails; the client
// keeps its form contents for a manual retry either way.
func (h *EntryHandler) HandleSubmitEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.L.Warn("Failed to decode entry submission", "error", err)
		utils.SendJSONError(w, "Invalid entry payload", http.StatusBadRequest)
		return
	}

	message, err := h.entryService.Submit(r.Context(), req.ScriptURL, req.Data)
	if err != nil {
		if errors.Is(err, services.ErrScriptURLMissing) {
			utils.SendJSONError(w, "Missing Google Apps Script URL", http.StatusBadRequest)
		} else {
			logger.L.Warn("Entry forwarding failed", "orderId", req.Data.OrderID, "error", err)
			utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": message,
	}); err != nil {
		logger.L.Error("Error encoding JSON response for entry result", "error", err)
	}
}
