package models

// SalesRecord represents a single order line item parsed from the sheet.
// A record is only retained when it carries an order ID and a positive
// total amount; every other malformed field is coerced to its zero value.
type SalesRecord struct {
	Date        string  `json:"date"` // DD-MM-YYYY
	Time        string  `json:"time"` // HH:MM
	OrderID     string  `json:"orderId"`
	ItemName    string  `json:"itemName"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalAmount float64 `json:"totalAmount"`
}

// SheetEntry is one new order line item as submitted by the entry form.
// Field names mirror the sheet's column headers so the Apps Script write
// endpoint can append the row verbatim.
type SheetEntry struct {
	Date        string  `json:"Date"`
	Time        string  `json:"Time"`
	OrderID     string  `json:"Order_ID"`
	ItemName    string  `json:"Item_Name"`
	Category    string  `json:"Category"`
	Quantity    int     `json:"Quantity"`
	UnitPrice   float64 `json:"Unit_Price"`
	TotalAmount float64 `json:"Total_Amount"`
}

// DashboardMetrics holds the headline KPIs recomputed on every filter change.
// RevenueChange and OrdersChange compare the two most recent calendar dates
// present in the record set, not wall-clock days.
type DashboardMetrics struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalOrders      int     `json:"totalOrders"`
	AverageBillValue float64 `json:"averageBillValue"`
	RevenueChange    float64 `json:"revenueChange"`
	OrdersChange     float64 `json:"ordersChange"`
}

// TrendPoint is one day of revenue on the trend chart.
type TrendPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// ItemSales aggregates one menu item across the record set.
type ItemSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// CategoryPerformance is one category's revenue and its share of the total.
type CategoryPerformance struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// HourlySales is one of the fixed 24 hour-of-day buckets. IsPeak is a static
// business-hours flag (lunch 12-14, dinner 19-21), not a computed peak.
type HourlySales struct {
	Hour   string  `json:"hour"` // "00:00".."23:00"
	Sales  float64 `json:"sales"`
	IsPeak bool    `json:"isPeak"`
}

// InsightType classifies a heuristic insight message.
type InsightType string

const (
	InsightSuccess InsightType = "success"
	InsightWarning InsightType = "warning"
	InsightInfo    InsightType = "info"
)

// Insight is one heuristic narrative message shown on the dashboard.
type Insight struct {
	Type    InsightType `json:"type"`
	Message string      `json:"message"`
	Icon    string      `json:"icon"`
}

// DateRange selects a data-relative date window. "today" means the most
// recent date present in the data, not the wall-clock date.
type DateRange string

const (
	RangeToday     DateRange = "today"
	RangeYesterday DateRange = "yesterday"
	RangeLast7Days DateRange = "last7days"
	RangeThisMonth DateRange = "thismonth"
	RangeAll       DateRange = "all"
)

// TimeSlot selects a time-of-day window.
type TimeSlot string

const (
	SlotAll     TimeSlot = "all"
	SlotMorning TimeSlot = "morning" // hour in [6,12)
	SlotLunch   TimeSlot = "lunch"   // hour in [12,16)
	SlotDinner  TimeSlot = "dinner"  // hour in [19,23)
)

// FilterState is the user-selected narrowing applied before aggregation.
type FilterState struct {
	DateRange DateRange `json:"dateRange"`
	Category  string    `json:"category"`
	TimeSlot  TimeSlot  `json:"timeSlot"`
}

// DashboardSnapshot bundles every derived view the dashboard renders for
// one filter state. All fields are recomputed from scratch on each request.
type DashboardSnapshot struct {
	Metrics     DashboardMetrics      `json:"metrics"`
	Trend       []TrendPoint          `json:"trend"`
	TopItems    []ItemSales           `json:"topItems"`
	BottomItems []ItemSales           `json:"bottomItems"`
	Categories  []CategoryPerformance `json:"categories"`
	Hourly      []HourlySales         `json:"hourly"`
	Insights    []Insight             `json:"insights"`
	// CategoryOptions lists every category in the unfiltered record set so
	// the filter control stays populated regardless of the current filter.
	CategoryOptions []string `json:"categoryOptions"`
	RecordCount     int      `json:"recordCount"`
	LastUpdated     string   `json:"lastUpdated,omitempty"` // RFC 3339
}
