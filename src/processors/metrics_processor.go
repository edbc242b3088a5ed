package processors

import (
	"github.com/username/dishboard/src/models"
)

// metricsProcessor implements the MetricsProcessor interface.
type metricsProcessor struct{}

func NewMetricsProcessor() MetricsProcessor {
	return &metricsProcessor{}
}

// Compute derives the headline KPIs. Order counting is by distinct order ID,
// never by line-item count. The day-over-day deltas always compare the two
// most recent calendar dates present in whatever record set is passed in.
func (p *metricsProcessor) Compute(records []models.SalesRecord) models.DashboardMetrics {
	var totalRevenue float64
	orderIDs := make(map[string]bool)
	for _, r := range records {
		totalRevenue += r.TotalAmount
		orderIDs[r.OrderID] = true
	}
	totalOrders := len(orderIDs)

	averageBillValue := 0.0
	if totalOrders > 0 {
		averageBillValue = totalRevenue / float64(totalOrders)
	}

	revenueChange, ordersChange := dayOverDayChange(records)

	return models.DashboardMetrics{
		TotalRevenue:     totalRevenue,
		TotalOrders:      totalOrders,
		AverageBillValue: averageBillValue,
		RevenueChange:    revenueChange,
		OrdersChange:     ordersChange,
	}
}

func dayOverDayChange(records []models.SalesRecord) (revenueChange, ordersChange float64) {
	dates := distinctDatesAscending(records)
	if len(dates) < 2 {
		return 0, 0
	}
	latestDate := dates[len(dates)-1]
	previousDate := dates[len(dates)-2]

	var latestRevenue, previousRevenue float64
	latestOrders := make(map[string]bool)
	previousOrders := make(map[string]bool)
	for _, r := range records {
		switch r.Date {
		case latestDate:
			latestRevenue += r.TotalAmount
			latestOrders[r.OrderID] = true
		case previousDate:
			previousRevenue += r.TotalAmount
			previousOrders[r.OrderID] = true
		}
	}

	if previousRevenue > 0 {
		revenueChange = (latestRevenue - previousRevenue) / previousRevenue * 100
	}
	if len(previousOrders) > 0 {
		ordersChange = float64(len(latestOrders)-len(previousOrders)) / float64(len(previousOrders)) * 100
	}
	return revenueChange, ordersChange
}
