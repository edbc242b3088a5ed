package processors

import (
	"sort"

	"github.com/username/dishboard/src/models"
)

const rankingSize = 5

// itemRankingProcessor implements the ItemRankingProcessor interface.
type itemRankingProcessor struct{}

func NewItemRankingProcessor() ItemRankingProcessor {
	return &itemRankingProcessor{}
}

// Compute groups records by item name and ranks strictly by total quantity
// descending. Top is the first 5; bottom is the last 5 reversed so the single
// slowest item comes first. With fewer than 10 distinct items the two lists
// overlap; that is accepted, not deduplicated.
func (p *itemRankingProcessor) Compute(records []models.SalesRecord) (top, bottom []models.ItemSales) {
	items := rankItemsByQuantity(records)
	if len(items) == 0 {
		return []models.ItemSales{}, []models.ItemSales{}
	}

	topCount := rankingSize
	if topCount > len(items) {
		topCount = len(items)
	}
	top = append([]models.ItemSales{}, items[:topCount]...)

	bottomStart := len(items) - rankingSize
	if bottomStart < 0 {
		bottomStart = 0
	}
	tail := items[bottomStart:]
	bottom = make([]models.ItemSales, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		bottom = append(bottom, tail[i])
	}
	return top, bottom
}

// rankItemsByQuantity returns per-item totals sorted by quantity descending.
// Ties break alphabetically so the ranking is deterministic.
func rankItemsByQuantity(records []models.SalesRecord) []models.ItemSales {
	totals := make(map[string]*models.ItemSales)
	for _, r := range records {
		item, ok := totals[r.ItemName]
		if !ok {
			item = &models.ItemSales{Name: r.ItemName}
			totals[r.ItemName] = item
		}
		item.Quantity += r.Quantity
		item.Revenue += r.TotalAmount
	}

	items := make([]models.ItemSales, 0, len(totals))
	for _, item := range totals {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		return items[i].Name < items[j].Name
	})
	return items
}
