package processors

import (
	"sort"

	"github.com/username/dishboard/src/models"
)

// categoryProcessor implements the CategoryProcessor interface.
type categoryProcessor struct{}

func NewCategoryProcessor() CategoryProcessor {
	return &categoryProcessor{}
}

// Compute groups revenue by category and attaches each category's percentage
// share of the total, sorted by revenue descending. Every percentage is 0
// when total revenue is 0.
func (p *categoryProcessor) Compute(records []models.SalesRecord) []models.CategoryPerformance {
	revenue := make(map[string]float64)
	var total float64
	for _, r := range records {
		revenue[r.Category] += r.TotalAmount
		total += r.TotalAmount
	}

	categories := make([]models.CategoryPerformance, 0, len(revenue))
	for name, value := range revenue {
		percentage := 0.0
		if total > 0 {
			percentage = value / total * 100
		}
		categories = append(categories, models.CategoryPerformance{
			Name:       name,
			Value:      value,
			Percentage: percentage,
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Value != categories[j].Value {
			return categories[i].Value > categories[j].Value
		}
		return categories[i].Name < categories[j].Name
	})
	return categories
}
