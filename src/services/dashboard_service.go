package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/dishboard/src/logger"
	"github.com/username/dishboard/src/models"
	"github.com/username/dishboard/src/parsers"
	"github.com/username/dishboard/src/processors"
	"github.com/username/dishboard/src/sheets"
)

const (
	// Last-known-good record set and its fetch timestamp. Both survive until
	// the next successful fetch replaces them wholesale.
	ckSalesRecords = "sheet_sales_records"
	ckFetchedAt    = "sheet_fetched_at"
)

var exportHeader = []string{"Date", "Time", "Order_ID", "Item_Name", "Category", "Quantity", "Unit_Price", "Total_Amount"}

type dashboardServiceImpl struct {
	sheetURL    string
	sheetClient *sheets.Client
	csvParser   parsers.Parser

	metrics    processors.MetricsProcessor
	trend      processors.TrendProcessor
	items      processors.ItemRankingProcessor
	categories processors.CategoryProcessor
	hourly     processors.HourlyProcessor
	insights   processors.InsightProcessor
	report     processors.ReportProcessor

	recordCache *cache.Cache
}

func NewDashboardService(
	sheetURL string,
	sheetClient *sheets.Client,
	csvParser parsers.Parser,
	metrics processors.MetricsProcessor,
	trend processors.TrendProcessor,
	items processors.ItemRankingProcessor,
	categories processors.CategoryProcessor,
	hourly processors.HourlyProcessor,
	insights processors.InsightProcessor,
	report processors.ReportProcessor,
	recordCache *cache.Cache,
) DashboardService {
	return &dashboardServiceImpl{
		sheetURL:    sheetURL,
		sheetClient: sheetClient,
		csvParser:   csvParser,
		metrics:     metrics,
		trend:       trend,
		items:       items,
		categories:  categories,
		hourly:      hourly,
		insights:    insights,
		report:      report,
		recordCache: recordCache,
	}
}

// WarmUp is the two-phase startup load: a synchronous cache read paints an
// immediate view, then a background refresh reconciles with the sheet.
func (s *dashboardServiceImpl) WarmUp(ctx context.Context) {
	records, fetchedAt := s.Records()
	if len(records) > 0 {
		logger.L.Info("Painting dashboard from cached records", "recordCount", len(records), "fetchedAt", fetchedAt)
	}

	go func() {
		if _, err := s.Refresh(context.WithoutCancel(ctx)); err != nil {
			logger.L.Warn("Background refresh after startup failed, keeping cached records", "error", err)
		}
	}()
}

func (s *dashboardServiceImpl) Refresh(ctx context.Context) (int, error) {
	startTime := time.Now()
	logger.L.Info("Refresh START", "sheetConfigured", s.sheetURL != "")

	body, err := s.sheetClient.FetchCSV(ctx, s.sheetURL)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	records, err := s.csvParser.Parse(bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}

	s.swapRecords(records)
	logger.L.Info("Refresh END", "recordCount", len(records), "duration", time.Since(startTime))
	return len(records), nil
}

func (s *dashboardServiceImpl) ImportCSV(r io.Reader) (int, error) {
	records, err := s.csvParser.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}
	s.swapRecords(records)
	logger.L.Info("Imported records from uploaded CSV", "recordCount", len(records))
	return len(records), nil
}

// swapRecords replaces the record set wholesale. The last writer wins; a
// stale response overwriting a newer one is accepted under the documented
// low-frequency refresh pattern.
func (s *dashboardServiceImpl) swapRecords(records []models.SalesRecord) {
	s.recordCache.Set(ckSalesRecords, records, cache.NoExpiration)
	s.recordCache.Set(ckFetchedAt, time.Now().UTC().Format(time.RFC3339), cache.NoExpiration)
}

func (s *dashboardServiceImpl) Records() ([]models.SalesRecord, time.Time) {
	cached, found := s.recordCache.Get(ckSalesRecords)
	if !found {
		return []models.SalesRecord{}, time.Time{}
	}
	records, ok := cached.([]models.SalesRecord)
	if !ok {
		// Corrupted cache entry is a cache miss, never fatal.
		logger.L.Warn("Cached record set has unexpected type, discarding", "type", fmt.Sprintf("%T", cached))
		s.recordCache.Delete(ckSalesRecords)
		s.recordCache.Delete(ckFetchedAt)
		return []models.SalesRecord{}, time.Time{}
	}

	var fetchedAt time.Time
	if raw, found := s.recordCache.Get(ckFetchedAt); found {
		if stamp, ok := raw.(string); ok {
			if t, err := time.Parse(time.RFC3339, stamp); err == nil {
				fetchedAt = t
			}
		}
	}
	return records, fetchedAt
}

func (s *dashboardServiceImpl) Dashboard(filter models.FilterState) models.DashboardSnapshot {
	records, fetchedAt := s.Records()
	filtered := processors.ApplyFilters(records, filter)

	top, bottom := s.items.Compute(filtered)
	snapshot := models.DashboardSnapshot{
		Metrics:         s.metrics.Compute(filtered),
		Trend:           s.trend.Compute(filtered),
		TopItems:        top,
		BottomItems:     bottom,
		Categories:      s.categories.Compute(filtered),
		Hourly:          s.hourly.Compute(filtered),
		Insights:        s.insights.Compute(filtered),
		CategoryOptions: processors.UniqueCategories(records),
		RecordCount:     len(filtered),
	}
	if !fetchedAt.IsZero() {
		snapshot.LastUpdated = fetchedAt.Format(time.RFC3339)
	}
	return snapshot
}

func (s *dashboardServiceImpl) Report(dateRange models.DateRange) models.ExecutiveReport {
	records, _ := s.Records()
	filtered := processors.FilterByDateRange(records, dateRange)
	return s.report.Compute(filtered, dateRange)
}

func (s *dashboardServiceImpl) ExportCSV(w io.Writer, filter models.FilterState) error {
	records, _ := s.Records()
	filtered := processors.ApplyFilters(records, filter)

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("writing export header: %w", err)
	}
	for _, r := range filtered {
		row := []string{
			r.Date,
			r.Time,
			r.OrderID,
			r.ItemName,
			r.Category,
			strconv.Itoa(r.Quantity),
			strconv.FormatFloat(r.UnitPrice, 'f', -1, 64),
			strconv.FormatFloat(r.TotalAmount, 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing export row (OrderID: %s): %w", r.OrderID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func (s *dashboardServiceImpl) Categories() []string {
	records, _ := s.Records()
	return processors.UniqueCategories(records)
}
