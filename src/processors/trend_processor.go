package processors

import (
	"github.com/username/dishboard/src/models"
)

// trendProcessor implements the TrendProcessor interface.
type trendProcessor struct{}

func NewTrendProcessor() TrendProcessor {
	return &trendProcessor{}
}

// Compute groups revenue by calendar date, emitted in true calendar order.
func (p *trendProcessor) Compute(records []models.SalesRecord) []models.TrendPoint {
	dailyRevenue := make(map[string]float64)
	for _, r := range records {
		dailyRevenue[r.Date] += r.TotalAmount
	}

	trend := []models.TrendPoint{}
	for _, date := range distinctDatesAscending(records) {
		trend = append(trend, models.TrendPoint{
			Date:    date,
			Revenue: dailyRevenue[date],
		})
	}
	return trend
}
