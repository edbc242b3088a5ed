package services

import (
	"context"
	"io"
	"time"

	"github.com/username/dishboard/src/models"
)

// DashboardService owns the in-memory record set and every derived view.
// The record collection is replaced wholesale on each successful fetch or
// import; derived views are recomputed from scratch per request.
type DashboardService interface {
	// WarmUp paints from the cached record set if one exists, then refreshes
	// from the sheet in the background. Cache corruption is a cache miss,
	// never fatal.
	WarmUp(ctx context.Context)
	// Refresh fetches the sheet and swaps the record set, last-write-wins.
	// On failure the prior state is retained untouched.
	Refresh(ctx context.Context) (int, error)
	// Records returns the current record set and its fetch timestamp.
	Records() ([]models.SalesRecord, time.Time)
	// Dashboard filters the record set and computes every derived view.
	Dashboard(filter models.FilterState) models.DashboardSnapshot
	// Report composes the executive narrative for the given date window.
	Report(dateRange models.DateRange) models.ExecutiveReport
	// ImportCSV replaces the record set from an uploaded CSV file.
	ImportCSV(r io.Reader) (int, error)
	// ExportCSV writes the filtered record set as 8-column delimited text.
	ExportCSV(w io.Writer, filter models.FilterState) error
	// Categories lists the distinct categories of the unfiltered record set.
	Categories() []string
}

// EntryService forwards one new order line item to the configured write
// endpoint. Best effort: no retry, no idempotency key.
type EntryService interface {
	Submit(ctx context.Context, scriptURL string, entry models.SheetEntry) (string, error)
}
