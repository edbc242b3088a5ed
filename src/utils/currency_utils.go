package utils

import (
	"math"
	"strconv"
)

// FormatCurrency renders an amount as whole rupees with Indian digit
// grouping, e.g. 1234567.8 -> "₹12,34,568". The amount is rounded to the
// nearest rupee; paise are never shown on the dashboard.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	rounded := int64(math.Round(math.Abs(amount)))
	formatted := "₹" + groupIndianDigits(strconv.FormatInt(rounded, 10))
	if negative {
		return "-" + formatted
	}
	return formatted
}

// groupIndianDigits inserts commas per the Indian numbering system: the last
// three digits form one group, every group before that has two digits.
func groupIndianDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	result := ""
	for _, g := range groups {
		result += g + ","
	}
	return result + tail
}

// FormatPercentage renders a percentage delta with an explicit sign for
// positive values, e.g. "+12.5%".
func FormatPercentage(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return sign + strconv.FormatFloat(value, 'f', 1, 64) + "%"
}
