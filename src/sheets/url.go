package sheets

import (
	"fmt"
	"regexp"
	"strings"
)

// Patterns that extract the document ID from the Google Sheets URL shapes
// users actually paste.
var sheetIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`),
	regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`),
}

var validSheetURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https://docs\.google\.com/spreadsheets/d/[a-zA-Z0-9-_]+`),
	regexp.MustCompile(`^[a-zA-Z0-9-_]{25,}$`), // just the document ID
}

// CSVExportURL derives the machine-readable CSV export URL from a sheet URL.
// If no pattern matches, the input is assumed to already be a document ID.
func CSVExportURL(sheetURL string) string {
	for _, pattern := range sheetIDPatterns {
		if match := pattern.FindStringSubmatch(sheetURL); len(match) > 1 {
			return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", match[1])
		}
	}

	if strings.Contains(sheetURL, "export?format=csv") {
		return sheetURL
	}

	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", sheetURL)
}

// IsValidSheetURL reports whether the input looks like a Google Sheets URL
// or a bare document ID.
func IsValidSheetURL(url string) bool {
	if url == "" {
		return false
	}
	for _, pattern := range validSheetURLPatterns {
		if pattern.MatchString(url) {
			return true
		}
	}
	return false
}
