package usecase

import (
	"fmt"
	"sort"
	"strings"

	"kitematch-service/internal/domain/entity"
)

// LowAvailabilityThreshold is the remaining-slot count at or below which a
// trip earns the scarcity bonus and an urgency note. Both outputs share
// this constant.
const LowAvailabilityThreshold = 3

// popularAirports is the fixed allowlist of airports that mark a kitespot
// as an established destination.
var popularAirports = map[string]bool{
	"ANU": true, // Antigua
	"SSH": true, // Sharm El Sheikh
	"HRG": true, // Hurghada
	"FOR": true, // Fortaleza
	"AUA": true, // Aruba
	"SID": true, // Cape Verde
	"CAH": true, // Cagliari
}

// Scorer assigns comparable additive scores to filtered candidates and
// ranks them. Given identical inputs it is fully deterministic.
type Scorer struct {
	weights Weights
}

// NewScorer creates a new scorer
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// ScoreTrips scores filtered trips against the criteria that filtered
// them. Results are sorted by descending score; ties keep catalog order.
// Reasons are emitted in the order bonuses are applied, and the score is
// clamped only after all terms are summed so clamping never reorders.
func (s *Scorer) ScoreTrips(trips []entity.TripOffering, c entity.Criteria) []entity.MatchResult {
	out := make([]entity.MatchResult, 0, len(trips))
	for idx := range trips {
		trip := trips[idx]
		score := s.weights.TripBase
		reasons := []string{}

		if c.Month != "" && trip.StartMonth() == strings.ToLower(c.Month) {
			score += s.weights.MonthMatch
			reasons = append(reasons, fmt.Sprintf("Departs in %s, exactly when you want to travel", titleMonth(c.Month)))
		}
		if c.SkillLevel != "" {
			if trip.SkillLevel == c.SkillLevel {
				score += s.weights.SkillExact
				reasons = append(reasons, fmt.Sprintf("Designed for %s riders", c.SkillLevel))
			} else if trip.SkillLevel == entity.SkillAll {
				score += s.weights.SkillAll
				reasons = append(reasons, "Open to all skill levels, including yours")
			}
		}
		if c.Budget > 0 {
			switch {
			case trip.PriceFrom <= 0.8*c.Budget:
				score += s.weights.BudgetGreatValue
				reasons = append(reasons, fmt.Sprintf("Great value: from €%.0f, well under your €%.0f budget", trip.PriceFrom, c.Budget))
			case trip.PriceFrom <= c.Budget:
				score += s.weights.BudgetGoodFit
				reasons = append(reasons, fmt.Sprintf("Fits your budget at €%.0f", trip.PriceFrom))
			case trip.PriceFrom <= 1.2*c.Budget:
				score += s.weights.BudgetStretch
				reasons = append(reasons, fmt.Sprintf("Slightly over budget at €%.0f, but close", trip.PriceFrom))
			}
		}
		if c.Destination != "" && containsFold(trip.Destination, c.Destination) {
			score += s.weights.DestinationMatch
			reasons = append(reasons, fmt.Sprintf("Sails %s, the destination you asked about", trip.Destination))
		}

		total := trip.TotalAvailability()
		if total <= LowAvailabilityThreshold {
			score += s.weights.Scarcity
			reasons = append(reasons, fmt.Sprintf("Only %d spots left across all cabins", total))
		}

		// Every positive score carries at least one justification.
		if len(reasons) == 0 {
			reasons = append(reasons, "Matches your search")
		}

		if score > s.weights.MaxScore {
			score = s.weights.MaxScore
		}

		result := entity.MatchResult{
			Kind:    entity.SubjectTrip,
			Trip:    &trip,
			Score:   score,
			Reasons: reasons,
		}
		if total <= LowAvailabilityThreshold {
			result.Urgency = fmt.Sprintf("Only %d spots left, this safari books out fast", total)
		}
		out = append(out, result)
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	return out
}

// ScoreSpots scores filtered kitespots. Wishlist membership is a bonus and
// an already-visited spot takes a penalty; candidates whose total goes
// negative are dropped from the output (zero is kept).
func (s *Scorer) ScoreSpots(spots []entity.KitespotLocation, countries map[string]string, c entity.Criteria, profile *entity.UserProfile) []entity.MatchResult {
	out := make([]entity.MatchResult, 0, len(spots))
	for idx := range spots {
		spot := spots[idx]
		score := s.weights.SpotBase
		reasons := []string{}
		country := countries[spot.AirportCode]
		description := strings.ToLower(spot.Description)

		if c.Country != "" && country != "" && containsFold(country, c.Country) {
			score += s.weights.SpotCountry
			reasons = append(reasons, fmt.Sprintf("Located in %s", country))
		}
		if spot.Description != "" {
			score += s.weights.SpotDescribed
			reasons = append(reasons, "Well documented spot with local knowledge")
		}
		if popularAirports[spot.AirportCode] {
			score += s.weights.SpotPopular
			reasons = append(reasons, fmt.Sprintf("Easy to reach via %s, a well-served airport", spot.AirportCode))
		}
		if c.SkillLevel != "" && matchesSkillTheme(description, c.SkillLevel) {
			score += s.weights.SpotSkillTheme
			reasons = append(reasons, fmt.Sprintf("Conditions suit %s riders", c.SkillLevel))
		}
		if c.WaterType != "" && strings.Contains(description, strings.ToLower(c.WaterType)) {
			score += s.weights.SpotWaterTheme
			reasons = append(reasons, fmt.Sprintf("Known for %s conditions", c.WaterType))
		}
		if profile != nil {
			if profile.OnWishlist(spot.ID) {
				score += s.weights.SpotWishlist
				reasons = append(reasons, "Already on your wishlist")
			}
			if profile.HasVisited(spot.ID) {
				score -= s.weights.SpotVisitedPenalty
				reasons = append(reasons, "You have been here before")
			}
		}

		if score < 0 {
			continue
		}
		if score > s.weights.MaxScore {
			score = s.weights.MaxScore
		}
		if len(reasons) == 0 {
			reasons = append(reasons, "Matches your search")
		}

		out = append(out, entity.MatchResult{
			Kind:    entity.SubjectSpot,
			Spot:    &spot,
			Score:   score,
			Reasons: reasons,
		})
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	return out
}

func titleMonth(month string) string {
	if month == "" {
		return month
	}
	lower := strings.ToLower(month)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// matchesSkillTheme maps a requested skill level onto description
// wording: sheltered flat water reads as beginner friendly, waves and
// strong wind as advanced territory.
func matchesSkillTheme(description, skill string) bool {
	if strings.Contains(description, skill) {
		return true
	}
	switch skill {
	case entity.SkillBeginner:
		return strings.Contains(description, "flat") ||
			strings.Contains(description, "lagoon") ||
			strings.Contains(description, "shallow")
	case entity.SkillAdvanced:
		return strings.Contains(description, "waves") ||
			strings.Contains(description, "strong wind")
	}
	return false
}
