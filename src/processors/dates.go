package processors

import (
	"sort"

	"github.com/username/dishboard/src/models"
	"github.com/username/dishboard/src/utils"
)

// distinctDatesAscending returns the distinct calendar dates present in the
// record set, sorted by true calendar order (not string order). Dates that
// fail to parse sort before everything else via the zero time.
func distinctDatesAscending(records []models.SalesRecord) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, r := range records {
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool {
		return utils.ParseDate(dates[i]).Before(utils.ParseDate(dates[j]))
	})
	return dates
}

// UniqueCategories returns every distinct category in the record set, sorted.
func UniqueCategories(records []models.SalesRecord) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, r := range records {
		if !seen[r.Category] {
			seen[r.Category] = true
			categories = append(categories, r.Category)
		}
	}
	sort.Strings(categories)
	return categories
}
