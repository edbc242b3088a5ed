package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVParser_ParsesSheetExport(t *testing.T) {
	parser := NewCSVParser()

	csvData := "Date,Time,Order_ID,Item_Name,Category,Quantity,Unit_Price,Total_Amount\n" +
		"15-06-2024,13:05,ORD-001,Paneer Tikka,Starter,2,180,360\n" +
		"15-06-2024,13:05,ORD-001,Butter Naan,Breads,4,40,160.50\n"

	records, err := parser.Parse(strings.NewReader(csvData))

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "15-06-2024", records[0].Date)
	assert.Equal(t, "13:05", records[0].Time)
	assert.Equal(t, "ORD-001", records[0].OrderID)
	assert.Equal(t, "Paneer Tikka", records[0].ItemName)
	assert.Equal(t, "Starter", records[0].Category)
	assert.Equal(t, 2, records[0].Quantity)
	assert.InDelta(t, 180, records[0].UnitPrice, 0.001)
	assert.InDelta(t, 360, records[0].TotalAmount, 0.001)
	assert.InDelta(t, 160.50, records[1].TotalAmount, 0.001)
}

func TestCSVParser_ColumnsMatchedByHeaderNotPosition(t *testing.T) {
	parser := NewCSVParser()

	// Reordered columns plus an unknown one.
	csvData := "Total_Amount,Order_ID,Notes,Item_Name\n" +
		"250,ORD-002,spicy,Biryani\n"

	records, err := parser.Parse(strings.NewReader(csvData))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ORD-002", records[0].OrderID)
	assert.Equal(t, "Biryani", records[0].ItemName)
	assert.InDelta(t, 250, records[0].TotalAmount, 0.001)
	assert.Empty(t, records[0].Date)
	assert.Zero(t, records[0].Quantity)
}

func TestCSVParser_HeaderWhitespaceTrimmed(t *testing.T) {
	parser := NewCSVParser()

	csvData := " Order_ID , Total_Amount \n" +
		"ORD-003, 99.5 \n"

	records, err := parser.Parse(strings.NewReader(csvData))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ORD-003", records[0].OrderID)
	assert.InDelta(t, 99.5, records[0].TotalAmount, 0.001)
}

func TestCSVParser_RetentionFilter(t *testing.T) {
	parser := NewCSVParser()

	csvData := "Order_ID,Item_Name,Quantity,Total_Amount\n" +
		",Orphan Row,1,100\n" + // no order ID
		"ORD-004,Free Sample,1,0\n" + // zero total
		"ORD-005,Refund,1,-50\n" + // negative total
		"ORD-006,Masala Chai,abc,xyz\n" + // numbers coerce to zero, then dropped
		"ORD-007,Thali,1,250\n"

	records, err := parser.Parse(strings.NewReader(csvData))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ORD-007", records[0].OrderID)
}

func TestCSVParser_ShortRowsYieldEmptyFields(t *testing.T) {
	parser := NewCSVParser()

	csvData := "Order_ID,Item_Name,Category,Total_Amount\n" +
		"ORD-008,Dosa\n"

	records, err := parser.Parse(strings.NewReader(csvData))

	require.NoError(t, err)
	// Total_Amount missing from the short row coerces to 0, so it is dropped.
	assert.Empty(t, records)
}

func TestCSVParser_EmptyInputIsHeaderError(t *testing.T) {
	parser := NewCSVParser()

	_, err := parser.Parse(strings.NewReader(""))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read CSV header")
}

func TestCSVParser_MalformedQuotingIsError(t *testing.T) {
	parser := NewCSVParser()

	csvData := "Order_ID,Total_Amount\n" +
		"\"ORD-009,100\n"

	_, err := parser.Parse(strings.NewReader(csvData))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read CSV records")
}

func TestCSVParser_HeaderOnlyYieldsNoRecords(t *testing.T) {
	parser := NewCSVParser()

	records, err := parser.Parse(strings.NewReader("Order_ID,Total_Amount\n"))

	require.NoError(t, err)
	assert.Empty(t, records)
}
