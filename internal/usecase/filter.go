package usecase

import (
	"strings"

	"kitematch-service/internal/domain/entity"
)

// FilterTrips narrows the trip catalog to candidates satisfying every
// provided criterion (logical AND). A zero-valued criterion is skipped;
// zero criteria return the catalog unchanged. Input order is preserved
// and nothing is mutated.
func FilterTrips(trips []entity.TripOffering, c entity.Criteria) []entity.TripOffering {
	if c.IsZero() {
		return trips
	}
	out := make([]entity.TripOffering, 0, len(trips))
	for _, trip := range trips {
		if tripMatches(&trip, c) {
			out = append(out, trip)
		}
	}
	return out
}

func tripMatches(trip *entity.TripOffering, c entity.Criteria) bool {
	if c.SkillLevel != "" && !trip.MatchesSkill(c.SkillLevel) {
		return false
	}
	if c.Budget > 0 && trip.PriceFrom > c.Budget {
		return false
	}
	if c.Month != "" && trip.StartMonth() != strings.ToLower(c.Month) {
		return false
	}
	if c.Destination != "" && !containsFold(trip.Destination, c.Destination) {
		return false
	}
	if c.DurationDays > 0 && trip.DurationDays != c.DurationDays {
		return false
	}
	return true
}

// FilterSpots narrows the kitespot catalog. The countries table maps
// airport codes to country names; a spot whose code has no entry simply
// has no country classification and cannot match a country criterion.
func FilterSpots(spots []entity.KitespotLocation, countries map[string]string, c entity.Criteria) []entity.KitespotLocation {
	if c.Country == "" && c.Destination == "" {
		return spots
	}
	out := make([]entity.KitespotLocation, 0, len(spots))
	for _, spot := range spots {
		if spotMatches(&spot, countries, c) {
			out = append(out, spot)
		}
	}
	return out
}

func spotMatches(spot *entity.KitespotLocation, countries map[string]string, c entity.Criteria) bool {
	if c.Country != "" {
		country := countries[spot.AirportCode]
		if country == "" || !containsFold(country, c.Country) {
			return false
		}
	}
	if c.Destination != "" && !containsFold(spot.Name, c.Destination) {
		// A country match is enough when the destination criterion was
		// derived from the same country mention.
		if c.Country == "" || !strings.EqualFold(c.Destination, c.Country) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
