package processors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/username/dishboard/src/models"
)

const maxInsights = 3

// insightProcessor implements the InsightProcessor interface.
type insightProcessor struct{}

func NewInsightProcessor() InsightProcessor {
	return &insightProcessor{}
}

// Compute emits up to 3 heuristic messages in fixed priority order: top
// seller (over 20% of total units), slow mover (under 3% among more than 3
// items), and a staffing note naming the top 2 revenue hours. A condition
// that does not hold is silently omitted; the list is never padded.
func (p *insightProcessor) Compute(records []models.SalesRecord) []models.Insight {
	insights := []models.Insight{}
	if len(records) == 0 {
		return insights
	}

	totalQuantity := 0
	for _, r := range records {
		totalQuantity += r.Quantity
	}
	items := rankItemsByQuantity(records)

	if len(items) > 0 && totalQuantity > 0 {
		topItem := items[0]
		if float64(topItem.Quantity)/float64(totalQuantity)*100 > 20 {
			insights = append(insights, models.Insight{
				Type:    models.InsightSuccess,
				Message: fmt.Sprintf("%s is your top seller today - ensure stock availability", topItem.Name),
				Icon:    "🔥",
			})
		}
	}

	if len(items) > 3 && totalQuantity > 0 {
		slowItem := items[len(items)-1]
		share := float64(slowItem.Quantity) / float64(totalQuantity) * 100
		if share < 3 && slowItem.Quantity > 0 {
			insights = append(insights, models.Insight{
				Type:    models.InsightWarning,
				Message: fmt.Sprintf("%s sales are low - consider promoting or bundling it", slowItem.Name),
				Icon:    "💡",
			})
		}
	}

	if labels := topRevenueHourLabels(records); len(labels) > 0 {
		insights = append(insights, models.Insight{
			Type:    models.InsightInfo,
			Message: fmt.Sprintf("Peak sales during %s - plan staffing accordingly", strings.Join(labels, " and ")),
			Icon:    "👥",
		})
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// topRevenueHourLabels names the top 2 hours by absolute revenue. Hours in
// the lunch or dinner windows get their named label; everything else gets a
// bare hour label.
func topRevenueHourLabels(records []models.SalesRecord) []string {
	revenue := hourlyRevenue(records)

	hours := make([]int, 0, len(revenue))
	for hour, sales := range revenue {
		if sales > 0 {
			hours = append(hours, hour)
		}
	}
	sort.Slice(hours, func(i, j int) bool {
		if revenue[hours[i]] != revenue[hours[j]] {
			return revenue[hours[i]] > revenue[hours[j]]
		}
		return hours[i] < hours[j]
	})
	if len(hours) > 2 {
		hours = hours[:2]
	}

	labels := make([]string, 0, len(hours))
	for _, hour := range hours {
		switch {
		case hour >= 12 && hour <= 14:
			labels = append(labels, "lunch (12-2 PM)")
		case hour >= 19 && hour <= 21:
			labels = append(labels, "dinner (7-9 PM)")
		default:
			labels = append(labels, fmt.Sprintf("%d:00 hour", hour))
		}
	}
	return labels
}
