package templates

import (
	"fmt"

	"kitematch-service/internal/domain/entity"
)

// Summary builds the one-line natural language summary for the top match.
func Summary(top *entity.MatchResult, totalMatches int) string {
	switch top.Kind {
	case entity.SubjectTrip:
		trip := top.Trip
		skillNote := "all levels welcome"
		if trip.SkillLevel != entity.SkillAll {
			skillNote = fmt.Sprintf("geared to %s riders", trip.SkillLevel)
		}
		return fmt.Sprintf(
			"Your best match is the %s safari, %d days from €%.0f (%s). %d option(s) fit what you asked for.",
			trip.Destination, trip.DurationDays, trip.PriceFrom, skillNote, totalMatches,
		)
	case entity.SubjectSpot:
		spot := top.Spot
		return fmt.Sprintf(
			"The spot that fits you best is %s (fly into %s). %d option(s) matched your request.",
			spot.Name, spot.AirportCode, totalMatches,
		)
	}
	return fmt.Sprintf("%d option(s) matched your request.", totalMatches)
}

// NeedMoreCriteria is the normal-path response text when nothing matched.
// Absence of matches is expected, not a failure.
func NeedMoreCriteria() string {
	return "I couldn't narrow things down yet. Tell me the month you want to travel, " +
		"your skill level, or your budget, and I'll find the right safari for you."
}

// Fallback is the apology summary used when nothing could be computed.
func Fallback() string {
	return "Sorry, something went wrong on our side while looking for trips. " +
		"Our crew can still help you directly, just get in touch."
}

// ModelSystemPrompt instructs the external model to polish the summary
// without inventing trips.
func ModelSystemPrompt() string {
	return "You are kAIte, the booking assistant of a kiteboarding safari operator. " +
		"Rewrite the given recommendation summary as one short, friendly sentence. " +
		"Mention only destinations, prices and dates present in the input. " +
		"Never invent trips, prices or availability."
}
