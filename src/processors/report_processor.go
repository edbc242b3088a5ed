package processors

import (
	"fmt"

	"github.com/username/dishboard/src/models"
	"github.com/username/dishboard/src/utils"
)

const maxReportActions = 3

// Fixed business thresholds for the status verdict and action cards.
// Deliberately asymmetric: a day has to fall further to be called slow.
const (
	strongDayThreshold   = 10
	slowDayThreshold     = -15
	trendDeltaThreshold  = 5
	monthlyRecordCount   = 50
	stockUpQuantity      = 10
	runOfferQuantity     = 3
	staffingPeakMultiple = 5
)

// reportProcessor implements the ReportProcessor interface by composing the
// other aggregation processors into one narrative object.
type reportProcessor struct {
	metrics    MetricsProcessor
	items      ItemRankingProcessor
	categories CategoryProcessor
	hourly     HourlyProcessor
}

func NewReportProcessor(
	metrics MetricsProcessor,
	items ItemRankingProcessor,
	categories CategoryProcessor,
	hourly HourlyProcessor,
) ReportProcessor {
	return &reportProcessor{
		metrics:    metrics,
		items:      items,
		categories: categories,
		hourly:     hourly,
	}
}

func (p *reportProcessor) Compute(records []models.SalesRecord, dateRange models.DateRange) models.ExecutiveReport {
	metrics := p.metrics.Compute(records)
	hourly := p.hourly.Compute(records)
	categories := p.categories.Compute(records)
	topItems, bottomItems := p.items.Compute(records)

	title, dateLabel := reportTitle(records, dateRange)

	return models.ExecutiveReport{
		Title:     title,
		DateRange: dateLabel,
		Status:    statusVerdict(metrics.RevenueChange),
		Revenue:   revenueSummary(metrics),
		Hero: models.HeroItems{
			TopItem:      itemHighlight(topItems),
			BestCategory: categoryHighlight(categories, 0),
		},
		Attention: models.AttentionItems{
			SlowItem:    itemHighlight(bottomItems),
			LowCategory: categoryHighlight(categories, len(categories)-1),
		},
		TimeStory: models.TimeStory{
			PeakWindow: peakWindowLabel(hourly),
			HourlyBars: hourly,
		},
		Actions: reportActions(topItems, bottomItems, hourly, metrics),
	}
}

// reportTitle picks the monthly, weekly, or daily framing. A "thismonth"
// request or anything over 50 records reads as a monthly summary labeled by
// the first record's month; "last7days" is weekly with a literal label;
// everything else is a daily snapshot using the first record's date verbatim.
func reportTitle(records []models.SalesRecord, dateRange models.DateRange) (title, dateLabel string) {
	title = "Daily Snapshot"
	dateLabel = "N/A"
	if len(records) > 0 {
		dateLabel = records[0].Date
	}

	if dateRange == models.RangeThisMonth || len(records) > monthlyRecordCount {
		title = "Monthly Performance Summary"
		if len(records) > 0 {
			dateLabel = utils.MonthYearLabel(records[0].Date)
		}
	} else if dateRange == models.RangeLast7Days {
		title = "Weekly Business Summary"
		dateLabel = "Last 7 Days"
	}
	return title, dateLabel
}

func statusVerdict(revenueChange float64) models.ReportStatus {
	if revenueChange > strongDayThreshold {
		return models.ReportStatus{
			Label:       "Strong Day",
			Color:       models.StatusGreen,
			Description: "Excellent! You have outperformed your recent average.",
		}
	}
	if revenueChange < slowDayThreshold {
		return models.ReportStatus{
			Label:       "Slow Day",
			Color:       models.StatusRed,
			Description: "Business was quieter than usual today.",
		}
	}
	return models.ReportStatus{
		Label:       "Average Day",
		Color:       models.StatusYellow,
		Description: "Steady performance. Business is behaving normally.",
	}
}

func revenueSummary(metrics models.DashboardMetrics) models.RevenueSummary {
	summary := models.RevenueSummary{
		Value:      utils.FormatCurrency(metrics.TotalRevenue),
		Trend:      models.TrendNeutral,
		TrendLabel: "Consistent",
	}
	if metrics.RevenueChange > trendDeltaThreshold {
		summary.Trend = models.TrendUp
		summary.TrendLabel = "Better than usual"
	} else if metrics.RevenueChange < -trendDeltaThreshold {
		summary.Trend = models.TrendDown
		summary.TrendLabel = "Below average"
	}
	return summary
}

// itemHighlight takes the first ranked item, with a literal "N/A" fallback
// when no data exists.
func itemHighlight(ranked []models.ItemSales) models.ItemHighlight {
	if len(ranked) == 0 {
		return models.ItemHighlight{Name: "N/A", Quantity: 0}
	}
	return models.ItemHighlight{Name: ranked[0].Name, Quantity: ranked[0].Quantity}
}

func categoryHighlight(categories []models.CategoryPerformance, idx int) models.CategoryHighlight {
	if idx < 0 || idx >= len(categories) {
		return models.CategoryHighlight{Name: "N/A", Revenue: 0}
	}
	return models.CategoryHighlight{Name: categories[idx].Name, Revenue: categories[idx].Value}
}

// peakWindowLabel joins the first flagged peak hour to the last. The flagged
// hours are not contiguous (14:00-19:00 is off-peak); the label still spans
// first to last rather than detecting runs.
func peakWindowLabel(hourly []models.HourlySales) string {
	var peaks []models.HourlySales
	for _, h := range hourly {
		if h.IsPeak {
			peaks = append(peaks, h)
		}
	}
	if len(peaks) == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%s - %s", peaks[0].Hour, peaks[len(peaks)-1].Hour)
}

// reportActions emits the fixed-priority action cards, capped at 3, with a
// guaranteed non-empty fallback.
func reportActions(topItems, bottomItems []models.ItemSales, hourly []models.HourlySales, metrics models.DashboardMetrics) []models.ReportAction {
	hero := itemHighlight(topItems)
	slow := itemHighlight(bottomItems)

	var actions []models.ReportAction
	if hero.Quantity > stockUpQuantity {
		actions = append(actions, models.ReportAction{
			Title: fmt.Sprintf("Stock up on %s", hero.Name),
			Icon:  "📦",
			Color: "green",
		})
	}
	if slow.Quantity < runOfferQuantity {
		actions = append(actions, models.ReportAction{
			Title: fmt.Sprintf("Run offer on %s", slow.Name),
			Icon:  "🏷️",
			Color: "amber",
		})
	}
	for _, h := range hourly {
		if h.IsPeak && h.Sales > metrics.AverageBillValue*staffingPeakMultiple {
			actions = append(actions, models.ReportAction{
				Title: "Extra staff for peak hours",
				Icon:  "👥",
				Color: "blue",
			})
			break
		}
	}
	if len(actions) == 0 {
		actions = append(actions, models.ReportAction{
			Title: "All good! Maintain current operations",
			Icon:  "✨",
			Color: "purple",
		})
	}
	if len(actions) > maxReportActions {
		actions = actions[:maxReportActions]
	}
	return actions
}
