package processors

import (
	"fmt"

	"github.com/username/dishboard/src/models"
	"github.com/username/dishboard/src/utils"
)

// hourlyProcessor implements the HourlyProcessor interface.
type hourlyProcessor struct{}

func NewHourlyProcessor() HourlyProcessor {
	return &hourlyProcessor{}
}

// Compute always emits exactly 24 slots, "00:00" through "23:00", regardless
// of data sparsity. The peak flag follows the static business-hours rule,
// independent of actual observed volume.
func (p *hourlyProcessor) Compute(records []models.SalesRecord) []models.HourlySales {
	sales := hourlyRevenue(records)

	hourly := make([]models.HourlySales, 0, 24)
	for hour := 0; hour < 24; hour++ {
		hourly = append(hourly, models.HourlySales{
			Hour:   fmt.Sprintf("%02d:00", hour),
			Sales:  sales[hour],
			IsPeak: isStaticPeakHour(hour),
		})
	}
	return hourly
}

// hourlyRevenue sums revenue per hour-of-day; unparsable times are skipped.
func hourlyRevenue(records []models.SalesRecord) map[int]float64 {
	sales := make(map[int]float64)
	for _, r := range records {
		if hour, ok := utils.ParseHour(r.Time); ok {
			sales[hour] += r.TotalAmount
		}
	}
	return sales
}

// isStaticPeakHour flags the designated lunch (12-14) and dinner (19-21)
// business hours.
func isStaticPeakHour(hour int) bool {
	return (hour >= 12 && hour <= 14) || (hour >= 19 && hour <= 21)
}
