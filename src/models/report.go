package models

// StatusColor is the closed set of verdict colors on the executive report.
type StatusColor string

const (
	StatusGreen  StatusColor = "green"
	StatusYellow StatusColor = "yellow"
	StatusRed    StatusColor = "red"
)

// TrendDirection is the closed set of revenue trend arrows.
type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

// ReportStatus is the day's verdict: is this good or bad?
type ReportStatus struct {
	Label       string      `json:"label"`
	Color       StatusColor `json:"color"`
	Description string      `json:"description"`
}

// RevenueSummary is the formatted headline revenue with its trend direction.
type RevenueSummary struct {
	Value      string         `json:"value"`
	Trend      TrendDirection `json:"trend"`
	TrendLabel string         `json:"trendLabel"`
}

// ItemHighlight surfaces one item as a hero or attention pick.
type ItemHighlight struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CategoryHighlight surfaces one category as a hero or attention pick.
type CategoryHighlight struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// HeroItems are the report's positive highlights.
type HeroItems struct {
	TopItem      ItemHighlight     `json:"topItem"`
	BestCategory CategoryHighlight `json:"bestCategory"`
}

// AttentionItems are the report's improvement opportunities.
type AttentionItems struct {
	SlowItem    ItemHighlight     `json:"slowItem"`
	LowCategory CategoryHighlight `json:"lowCategory"`
}

// TimeStory is the 24-bar hourly narrative with its peak window label.
type TimeStory struct {
	PeakWindow string        `json:"peakWindow"`
	HourlyBars []HourlySales `json:"hourlyBars"`
}

// ReportAction is one recommended action card.
type ReportAction struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ExecutiveReport is the composed narrative snapshot rendered as a
// printable report.
type ExecutiveReport struct {
	Title     string         `json:"title"`
	DateRange string         `json:"dateRange"`
	Status    ReportStatus   `json:"status"`
	Revenue   RevenueSummary `json:"revenue"`
	Hero      HeroItems      `json:"heroItems"`
	Attention AttentionItems `json:"attentionItems"`
	TimeStory TimeStory      `json:"timeStory"`
	Actions   []ReportAction `json:"actions"`
}
