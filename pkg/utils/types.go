package utils

// QueryFacts holds the numeric and calendar facts extracted from a query.
type QueryFacts struct {
	Budget       float64
	DurationDays int
	Month        string
}

// MonthNames lists lowercase English month names in calendar order.
var MonthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}
