package utils

import (
	"testing"

	"kitematch-service/pkg/logger"
)

func newTestExtractor() *QueryExtractor {
	return NewQueryExtractor(logger.NewNop())
}

func TestExtractBudget(t *testing.T) {
	e := newTestExtractor()
	cases := []struct {
		text string
		want float64
	}{
		{"€2500 budget, February", 2500},
		{"around 2200 euros", 2200},
		{"budget of 1800", 1800},
		{"budget: 1800", 1800},
		{"keep it under 2000", 2000},
		{"2500 budget for the whole trip", 2500},
		{"maximum 3000 please", 3000},
		{"no numbers here", 0},
		{"7 days in June", 0},
	}
	for _, c := range cases {
		if got := e.ExtractBudget(c.text); got != c.want {
			t.Errorf("ExtractBudget(%q) = %f, want %f", c.text, got, c.want)
		}
	}
}

func TestExtractDurationDays(t *testing.T) {
	e := newTestExtractor()
	cases := []struct {
		text string
		want int
	}{
		{"a 10 day trip", 10},
		{"7-day downwinder", 7},
		{"2 weeks off work", 14},
		{"maybe 1 week", 7},
		// An explicit day count wins over a week count.
		{"2 weeks, but 10 days would also work", 10},
		{"no duration mentioned", 0},
	}
	for _, c := range cases {
		if got := e.ExtractDurationDays(c.text); got != c.want {
			t.Errorf("ExtractDurationDays(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestExtractMonth(t *testing.T) {
	e := newTestExtractor()
	cases := []struct {
		text string
		want string
	}{
		{"I can go in February", "february"},
		{"OCTOBER works for me", "october"},
		{"sometime next year", ""},
	}
	for _, c := range cases {
		if got := e.ExtractMonth(c.text); got != c.want {
			t.Errorf("ExtractMonth(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExtractFacts(t *testing.T) {
	e := newTestExtractor()
	facts := e.ExtractFacts("Intermediate rider, €2500 budget, 7 days in February")
	want := QueryFacts{Budget: 2500, DurationDays: 7, Month: "february"}
	if facts != want {
		t.Fatalf("ExtractFacts = %+v, want %+v", facts, want)
	}
}

func TestParseInt(t *testing.T) {
	if got := ParseInt("42"); got != 42 {
		t.Fatalf("ParseInt(\"42\") = %d", got)
	}
	if got := ParseInt("not a number"); got != 0 {
		t.Fatalf("ParseInt on garbage = %d, want 0", got)
	}
}
