package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/dishboard/src/logger"
	"github.com/username/dishboard/src/models"
	"github.com/username/dishboard/src/parsers"
	"github.com/username/dishboard/src/processors"
	"github.com/username/dishboard/src/sheets"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

const sampleCSV = "Date,Time,Order_ID,Item_Name,Category,Quantity,Unit_Price,Total_Amount\n" +
	"15-06-2024,13:05,ORD-001,Paneer Tikka,Starter,2,180,360\n" +
	"15-06-2024,20:30,ORD-002,Biryani,Main,1,320,320\n" +
	"14-06-2024,13:10,ORD-003,Masala Chai,Drinks,3,20,60\n"

// newTestDashboardService wires the service against the given sheet URL with
// a fresh cache and real processors.
func newTestDashboardService(sheetURL string) DashboardService {
	metrics := processors.NewMetricsProcessor()
	items := processors.NewItemRankingProcessor()
	categories := processors.NewCategoryProcessor()
	hourly := processors.NewHourlyProcessor()
	return NewDashboardService(
		sheetURL,
		sheets.NewClient(5*time.Second),
		parsers.NewCSVParser(),
		metrics,
		processors.NewTrendProcessor(),
		items,
		categories,
		hourly,
		processors.NewInsightProcessor(),
		processors.NewReportProcessor(metrics, items, categories, hourly),
		gocache.New(gocache.NoExpiration, 0),
	)
}

// sheetServer serves a CSV body on the export path so the URL is used as-is.
func sheetServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, string) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, server.URL + "/export?format=csv"
}

func TestDashboardService_RefreshPopulatesCache(t *testing.T) {
	_, sheetURL := sheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCSV))
	})
	service := newTestDashboardService(sheetURL)

	count, err := service.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, count)

	records, fetchedAt := service.Records()
	assert.Len(t, records, 3)
	assert.False(t, fetchedAt.IsZero())
}

func TestDashboardService_RefreshFetchFailureKeepsCachedRecords(t *testing.T) {
	failing := false
	_, sheetURL := sheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		if failing {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(sampleCSV))
	})
	service := newTestDashboardService(sheetURL)

	_, err := service.Refresh(context.Background())
	require.NoError(t, err)

	failing = true
	_, err = service.Refresh(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))

	records, _ := service.Records()
	assert.Len(t, records, 3, "failed refresh must not evict the last good records")
}

func TestDashboardService_RefreshParseFailure(t *testing.T) {
	_, sheetURL := sheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Order_ID,Total_Amount\n\"broken,100\n"))
	})
	service := newTestDashboardService(sheetURL)

	_, err := service.Refresh(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParsingFailed))
}

func TestDashboardService_ImportCSVReplacesRecords(t *testing.T) {
	service := newTestDashboardService("")

	count, err := service.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	replacement := "Order_ID,Item_Name,Category,Total_Amount\nORD-100,Thali,Main,250\n"
	count, err = service.ImportCSV(strings.NewReader(replacement))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	records, _ := service.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "ORD-100", records[0].OrderID)
}

func TestDashboardService_CorruptedCacheIsAMiss(t *testing.T) {
	recordCache := gocache.New(gocache.NoExpiration, 0)
	metrics := processors.NewMetricsProcessor()
	items := processors.NewItemRankingProcessor()
	categories := processors.NewCategoryProcessor()
	hourly := processors.NewHourlyProcessor()
	service := NewDashboardService(
		"",
		sheets.NewClient(5*time.Second),
		parsers.NewCSVParser(),
		metrics,
		processors.NewTrendProcessor(),
		items,
		categories,
		hourly,
		processors.NewInsightProcessor(),
		processors.NewReportProcessor(metrics, items, categories, hourly),
		recordCache,
	)

	recordCache.Set(ckSalesRecords, "not a record slice", gocache.NoExpiration)
	recordCache.Set(ckFetchedAt, "2024-06-15T12:00:00Z", gocache.NoExpiration)

	records, fetchedAt := service.Records()

	assert.Empty(t, records)
	assert.True(t, fetchedAt.IsZero())
	_, found := recordCache.Get(ckSalesRecords)
	assert.False(t, found, "corrupted entry should be evicted")
	_, found = recordCache.Get(ckFetchedAt)
	assert.False(t, found)
}

func TestDashboardService_DashboardSnapshot(t *testing.T) {
	service := newTestDashboardService("")
	_, err := service.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	snapshot := service.Dashboard(models.FilterState{
		DateRange: models.RangeToday,
		Category:  "all",
		TimeSlot:  models.SlotAll,
	})

	// Today resolves to 15-06-2024, leaving two orders worth 680.
	assert.Equal(t, 2, snapshot.RecordCount)
	assert.InDelta(t, 680, snapshot.Metrics.TotalRevenue, 0.001)
	assert.Equal(t, 2, snapshot.Metrics.TotalOrders)
	assert.Len(t, snapshot.Hourly, 24)
	assert.NotEmpty(t, snapshot.LastUpdated)

	// Category options come from the full record set, not the filtered view.
	assert.Equal(t, []string{"Drinks", "Main", "Starter"}, snapshot.CategoryOptions)
}

func TestDashboardService_DashboardEmptyCache(t *testing.T) {
	service := newTestDashboardService("")

	snapshot := service.Dashboard(models.FilterState{DateRange: models.RangeAll})

	assert.Zero(t, snapshot.RecordCount)
	assert.Zero(t, snapshot.Metrics.TotalRevenue)
	assert.Len(t, snapshot.Hourly, 24)
	assert.Empty(t, snapshot.LastUpdated)
}

func TestDashboardService_ReportUsesDateWindow(t *testing.T) {
	service := newTestDashboardService("")
	_, err := service.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	report := service.Report(models.RangeLast7Days)

	assert.Equal(t, "Weekly Business Summary", report.Title)
	assert.Equal(t, "Last 7 Days", report.DateRange)
}

func TestDashboardService_ExportImportRoundTrip(t *testing.T) {
	service := newTestDashboardService("")
	_, err := service.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, service.ExportCSV(&buf, models.FilterState{DateRange: models.RangeAll}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, exportHeader, rows[0])

	// Re-importing the export reproduces the same record set.
	require.NoError(t, service.ExportCSV(&buf, models.FilterState{DateRange: models.RangeAll}))
	before, _ := service.Records()
	count, err := service.ImportCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, len(before), count)
	after, _ := service.Records()
	assert.Equal(t, before, after)
}

func TestDashboardService_ExportHonorsFilters(t *testing.T) {
	service := newTestDashboardService("")
	_, err := service.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, service.ExportCSV(&buf, models.FilterState{
		DateRange: models.RangeAll,
		Category:  "Main",
	}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ORD-002", rows[1][2])
}

func TestDashboardService_Categories(t *testing.T) {
	service := newTestDashboardService("")
	_, err := service.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"Drinks", "Main", "Starter"}, service.Categories())
}
