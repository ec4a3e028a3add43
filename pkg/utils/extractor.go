package utils

import (
	"regexp"
	"strconv"
	"strings"

	"kitematch-service/pkg/logger"
)

// QueryExtractor pulls budget, duration and month facts out of free-text
// queries with fixed regular expressions.
type QueryExtractor struct {
	logger logger.Logger
}

// NewQueryExtractor creates a new query extractor with dependencies
func NewQueryExtractor(logger logger.Logger) *QueryExtractor {
	return &QueryExtractor{
		logger: logger,
	}
}

var (
	// "€2500", "2500€", "2500 eur", "budget of 2500", "under 3000", "2500 budget"
	budgetRe = regexp.MustCompile(`(?i)€\s*(\d{2,6})|(\d{2,6})\s*(?:€|eur\b|euros?\b)|budget\s*(?:of|is|:)?\s*€?\s*(\d{2,6})|(?:under|below|max(?:imum)?)\s*€?\s*(\d{2,6})|(\d{2,6})\s*budget\b`)
	// "7 days", "7-day", "10 day trip"
	durationDaysRe = regexp.MustCompile(`(?i)(\d{1,2})\s*-?\s*days?\b`)
	// "2 weeks", "one week" is not matched; digits only
	durationWeeksRe = regexp.MustCompile(`(?i)(\d{1,2})\s*-?\s*weeks?\b`)
)

// ParseInt converts string to int
func ParseInt(value string) int {
	parsedValue, _ := strconv.Atoi(value)
	return parsedValue
}

// ExtractBudget returns the first monetary amount found, or 0.
func (e *QueryExtractor) ExtractBudget(text string) float64 {
	match := budgetRe.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	for _, group := range match[1:] {
		if group != "" {
			amount, err := strconv.ParseFloat(group, 64)
			if err != nil {
				continue
			}
			e.logger.Debug("Extracted budget", "amount", amount)
			return amount
		}
	}
	return 0
}

// ExtractDurationDays returns the requested trip length in days, or 0.
// Week counts are converted to days; an explicit day count wins.
func (e *QueryExtractor) ExtractDurationDays(text string) int {
	if match := durationDaysRe.FindStringSubmatch(text); match != nil {
		return ParseInt(match[1])
	}
	if match := durationWeeksRe.FindStringSubmatch(text); match != nil {
		return ParseInt(match[1]) * 7
	}
	return 0
}

// ExtractMonth returns the first month name mentioned, lowercase, or "".
func (e *QueryExtractor) ExtractMonth(text string) string {
	lower := strings.ToLower(text)
	for _, month := range MonthNames {
		if strings.Contains(lower, month) {
			return month
		}
	}
	return ""
}

// ExtractFacts runs all extractors over one query.
func (e *QueryExtractor) ExtractFacts(text string) QueryFacts {
	return QueryFacts{
		Budget:       e.ExtractBudget(text),
		DurationDays: e.ExtractDurationDays(text),
		Month:        e.ExtractMonth(text),
	}
}
