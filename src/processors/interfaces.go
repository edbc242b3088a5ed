package processors

import (
	"github.com/username/dishboard/src/models"
)

// MetricsProcessor defines the interface for computing the headline KPIs.
type MetricsProcessor interface {
	Compute(records []models.SalesRecord) models.DashboardMetrics
}

// TrendProcessor defines the interface for the daily revenue trend.
type TrendProcessor interface {
	Compute(records []models.SalesRecord) []models.TrendPoint
}

// ItemRankingProcessor defines the interface for top/bottom item rankings.
type ItemRankingProcessor interface {
	Compute(records []models.SalesRecord) (top, bottom []models.ItemSales)
}

// CategoryProcessor defines the interface for per-category revenue shares.
type CategoryProcessor interface {
	Compute(records []models.SalesRecord) []models.CategoryPerformance
}

// HourlyProcessor defines the interface for the fixed 24-slot hourly breakdown.
type HourlyProcessor interface {
	Compute(records []models.SalesRecord) []models.HourlySales
}

// InsightProcessor defines the interface for heuristic narrative insights.
type InsightProcessor interface {
	Compute(records []models.SalesRecord) []models.Insight
}

// ReportProcessor defines the interface for composing the executive report.
type ReportProcessor interface {
	Compute(records []models.SalesRecord, dateRange models.DateRange) models.ExecutiveReport
}
