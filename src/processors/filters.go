package processors

import (
	"github.com/username/dishboard/src/models"
	"github.com/username/dishboard/src/utils"
)

// The three filters are independent conjunctive predicates; composing them in
// any order yields the same result. All date windows are data-relative:
// "today" is the most recent date present in the records, never wall-clock.

// FilterByDateRange narrows records to the requested data-relative window.
func FilterByDateRange(records []models.SalesRecord, dateRange models.DateRange) []models.SalesRecord {
	if dateRange == models.RangeAll {
		return records
	}

	dates := distinctDatesAscending(records)
	if len(dates) == 0 {
		return []models.SalesRecord{}
	}
	latestDate := dates[len(dates)-1]

	switch dateRange {
	case models.RangeToday:
		return keep(records, func(r models.SalesRecord) bool {
			return r.Date == latestDate
		})
	case models.RangeYesterday:
		// Falls back to the latest date when only one date exists.
		yesterdayDate := latestDate
		if len(dates) > 1 {
			yesterdayDate = dates[len(dates)-2]
		}
		return keep(records, func(r models.SalesRecord) bool {
			return r.Date == yesterdayDate
		})
	case models.RangeLast7Days:
		// The 7 most recent distinct dates present, not a rolling 7x24h window.
		start := len(dates) - 7
		if start < 0 {
			start = 0
		}
		recent := make(map[string]bool, 7)
		for _, d := range dates[start:] {
			recent[d] = true
		}
		return keep(records, func(r models.SalesRecord) bool {
			return recent[r.Date]
		})
	case models.RangeThisMonth:
		latest := utils.ParseDate(latestDate)
		return keep(records, func(r models.SalesRecord) bool {
			t := utils.ParseDate(r.Date)
			return t.Month() == latest.Month() && t.Year() == latest.Year()
		})
	default:
		return records
	}
}

// FilterByCategory keeps records matching the category exactly; the sentinel
// "all" (or an empty selection) passes everything through.
func FilterByCategory(records []models.SalesRecord, category string) []models.SalesRecord {
	if category == "all" || category == "" {
		return records
	}
	return keep(records, func(r models.SalesRecord) bool {
		return r.Category == category
	})
}

// FilterByTimeSlot keeps records whose hour falls in the selected slot.
// Records with an unparsable time are excluded from any specific slot.
func FilterByTimeSlot(records []models.SalesRecord, slot models.TimeSlot) []models.SalesRecord {
	if slot == models.SlotAll {
		return records
	}
	return keep(records, func(r models.SalesRecord) bool {
		hour, ok := utils.ParseHour(r.Time)
		if !ok {
			return false
		}
		switch slot {
		case models.SlotMorning:
			return hour >= 6 && hour < 12
		case models.SlotLunch:
			return hour >= 12 && hour < 16
		case models.SlotDinner:
			return hour >= 19 && hour < 23
		default:
			return true
		}
	})
}

// ApplyFilters runs the full pipeline: date window, category, time slot.
func ApplyFilters(records []models.SalesRecord, filter models.FilterState) []models.SalesRecord {
	filtered := FilterByDateRange(records, filter.DateRange)
	filtered = FilterByCategory(filtered, filter.Category)
	return FilterByTimeSlot(filtered, filter.TimeSlot)
}

func keep(records []models.SalesRecord, predicate func(models.SalesRecord) bool) []models.SalesRecord {
	kept := []models.SalesRecord{}
	for _, r := range records {
		if predicate(r) {
			kept = append(kept, r)
		}
	}
	return kept
}
