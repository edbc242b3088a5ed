package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/username/dishboard/src/models"
)

// Expected column headers, name- and case-sensitive. Unknown columns are
// ignored; missing columns yield zero-valued fields.
const (
	colDate        = "Date"
	colTime        = "Time"
	colOrderID     = "Order_ID"
	colItemName    = "Item_Name"
	colCategory    = "Category"
	colQuantity    = "Quantity"
	colUnitPrice   = "Unit_Price"
	colTotalAmount = "Total_Amount"
)

// CSVParser turns header-keyed delimited text into retained sales records.
// Rows are never rejected for bad values; numeric fields coerce to zero and
// the post-parse retention filter (order ID present, positive total) decides
// what survives.
type CSVParser struct{}

func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

func (p *CSVParser) Parse(r io.Reader) ([]models.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV records: %w", err)
	}

	var records []models.SalesRecord
	for _, row := range rows {
		record := models.SalesRecord{
			Date:        field(row, columns, colDate),
			Time:        field(row, columns, colTime),
			OrderID:     field(row, columns, colOrderID),
			ItemName:    field(row, columns, colItemName),
			Category:    field(row, columns, colCategory),
			Quantity:    parseIntOrZero(field(row, columns, colQuantity)),
			UnitPrice:   parseFloatOrZero(field(row, columns, colUnitPrice)),
			TotalAmount: parseFloatOrZero(field(row, columns, colTotalAmount)),
		}
		if record.OrderID == "" || record.TotalAmount <= 0 {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func field(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseIntOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
