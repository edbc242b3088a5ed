package services

import (
	"context"
	"fmt"

	"github.com/username/dishboard/src/logger"
	"github.com/username/dishboard/src/models"
	"github.com/username/dishboard/src/security/validation"
	"github.com/username/dishboard/src/sheets"
)

type entryServiceImpl struct {
	defaultScriptURL string
	sheetClient      *sheets.Client
}

// NewEntryService creates the write-path service. defaultScriptURL comes
// from configuration and is used when a submission carries no URL of its own.
func NewEntryService(defaultScriptURL string, sheetClient *sheets.Client) EntryService {
	return &entryServiceImpl{
		defaultScriptURL: defaultScriptURL,
		sheetClient:      sheetClient,
	}
}

// Submit sanitizes the entry's free-text fields and forwards it to the write
// endpoint. Rejected before any network call when no endpoint is configured.
func (s *entryServiceImpl) Submit(ctx context.Context, scriptURL string, entry models.SheetEntry) (string, error) {
	if scriptURL == "" {
		scriptURL = s.defaultScriptURL
	}
	if scriptURL == "" {
		return "", ErrScriptURLMissing
	}

	entry.Date = validation.SanitizeEntryField(entry.Date)
	entry.Time = validation.SanitizeEntryField(entry.Time)
	entry.OrderID = validation.SanitizeEntryField(entry.OrderID)
	entry.ItemName = validation.SanitizeEntryField(entry.ItemName)
	entry.Category = validation.SanitizeEntryField(entry.Category)

	message, err := s.sheetClient.ForwardEntry(ctx, scriptURL, entry)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrScriptRejected, err)
	}

	logger.L.Info("Entry submitted", "orderId", entry.OrderID, "item", entry.ItemName)
	return message, nil
}
