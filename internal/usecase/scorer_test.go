package usecase

import (
	"reflect"
	"testing"
	"time"

	"kitematch-service/internal/domain/entity"
)

func makeTrip(id string, price float64, skill, destination string, month time.Month, availability int) entity.TripOffering {
	return entity.TripOffering{
		ID:           id,
		Destination:  destination,
		StartDate:    time.Date(2026, month, 7, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, month, 14, 0, 0, 0, 0, time.UTC),
		DurationDays: 7,
		PriceFrom:    price,
		Currency:     "EUR",
		Availability: map[string]int{"shared": availability},
		SkillLevel:   skill,
	}
}

// Cheaper relative to the budget never scores lower.
func TestScoreTrips_BudgetMonotonic(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	cheap := makeTrip("cheap", 1500, entity.SkillAll, "Greece", time.June, 6)
	pricey := makeTrip("pricey", 2400, entity.SkillAll, "Greece", time.June, 6)
	criteria := entity.Criteria{Budget: 2500}

	results := scorer.ScoreTrips([]entity.TripOffering{cheap, pricey}, criteria)
	if results[0].Trip.ID != "cheap" {
		t.Fatalf("expected cheap trip first, got %s", results[0].Trip.ID)
	}
	if results[0].Score < results[1].Score {
		t.Fatalf("cheap scored %f below pricey %f", results[0].Score, results[1].Score)
	}
}

// Exact skill match must always score >= a skill "all" match.
func TestScoreTrips_ExactSkillDominatesAll(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	exact := makeTrip("exact", 2000, entity.SkillIntermediate, "Greece", time.June, 6)
	open := makeTrip("open", 2000, entity.SkillAll, "Greece", time.June, 6)
	criteria := entity.Criteria{SkillLevel: entity.SkillIntermediate}

	results := scorer.ScoreTrips([]entity.TripOffering{open, exact}, criteria)
	if results[0].Trip.ID != "exact" {
		t.Fatalf("expected exact skill match first, got %s", results[0].Trip.ID)
	}
}

// Identical inputs must give bit-identical output.
func TestScoreTrips_Deterministic(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	trips := []entity.TripOffering{
		makeTrip("a", 2400, entity.SkillIntermediate, "Antigua", time.February, 4),
		makeTrip("b", 2200, entity.SkillAll, "Greece", time.June, 6),
		makeTrip("c", 1800, entity.SkillBeginner, "Egypt", time.October, 8),
	}
	criteria := entity.Criteria{SkillLevel: entity.SkillIntermediate, Budget: 2500, Month: "february"}

	first := scorer.ScoreTrips(trips, criteria)
	second := scorer.ScoreTrips(trips, criteria)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("scoring is not deterministic")
	}
}

// Equal-scoring candidates keep catalog order.
func TestScoreTrips_StableTies(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	trips := []entity.TripOffering{
		makeTrip("first", 2000, entity.SkillAll, "Greece", time.June, 6),
		makeTrip("second", 2000, entity.SkillAll, "Greece", time.June, 6),
	}
	results := scorer.ScoreTrips(trips, entity.Criteria{})
	if results[0].Trip.ID != "first" || results[1].Trip.ID != "second" {
		t.Fatalf("tie order broken: %s, %s", results[0].Trip.ID, results[1].Trip.ID)
	}
	if results[0].Score != results[1].Score {
		t.Fatalf("identical trips scored differently: %f vs %f", results[0].Score, results[1].Score)
	}
}

func TestScoreTrips_ScarcityBonusAndUrgency(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	scarce := makeTrip("scarce", 2000, entity.SkillAll, "Greece", time.June, 2)
	plenty := makeTrip("plenty", 2000, entity.SkillAll, "Greece", time.June, 10)

	results := scorer.ScoreTrips([]entity.TripOffering{plenty, scarce}, entity.Criteria{})
	byID := map[string]entity.MatchResult{}
	for _, r := range results {
		byID[r.Trip.ID] = r
	}

	if byID["scarce"].Score <= byID["plenty"].Score {
		t.Fatalf("scarce trip did not get the scarcity bonus: %f vs %f", byID["scarce"].Score, byID["plenty"].Score)
	}
	if byID["scarce"].Urgency == "" {
		t.Fatal("scarce trip has no urgency message")
	}
	if byID["plenty"].Urgency != "" {
		t.Fatalf("plenty trip has urgency %q, want none", byID["plenty"].Urgency)
	}
}

func TestScoreTrips_ClampedAfterSumming(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	trip := makeTrip("max", 1500, entity.SkillIntermediate, "Antigua", time.February, 1)
	criteria := entity.Criteria{
		SkillLevel:  entity.SkillIntermediate,
		Budget:      2500,
		Month:       "february",
		Destination: "Antigua",
	}
	results := scorer.ScoreTrips([]entity.TripOffering{trip}, criteria)
	if results[0].Score != DefaultWeights().MaxScore {
		t.Fatalf("score %f, want clamped to %f", results[0].Score, DefaultWeights().MaxScore)
	}
	// Every fired bonus still leaves a reason even when clamped.
	if len(results[0].Reasons) < 5 {
		t.Fatalf("got %d reasons, want one per fired bonus", len(results[0].Reasons))
	}
}

func TestScoreTrips_ReasonsNonEmptyForPositiveScores(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	results := scorer.ScoreTrips(testTrips(), entity.Criteria{Month: "february"})
	for _, r := range results {
		if r.Score > 0 && len(r.Reasons) == 0 {
			t.Fatalf("trip %s scored %f with no reasons", r.Trip.ID, r.Score)
		}
	}
}

// A candidate that survives filtering without firing any bonus still owes
// the caller a justification for its base score.
func TestScoreTrips_BaseScoreCarriesReason(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	results := scorer.ScoreTrips(testTrips(), entity.Criteria{})
	for _, r := range results {
		if len(r.Reasons) == 0 {
			t.Fatalf("trip %s scored %f with empty reasons", r.Trip.ID, r.Score)
		}
	}
}

func TestScoreSpots_BaseScoreCarriesReason(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	spots := []entity.KitespotLocation{
		{ID: "bare", Name: "Bare Spot", AirportCode: "XXX", CountryCode: "ATG"},
	}
	results := scorer.ScoreSpots(spots, nil, entity.Criteria{}, nil)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Score <= 0 || len(results[0].Reasons) == 0 {
		t.Fatalf("spot scored %f with %d reasons, want a positive score with a reason", results[0].Score, len(results[0].Reasons))
	}
}

func TestScoreSpots_VisitedPenaltyExcludesNegative(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	spots := []entity.KitespotLocation{
		{ID: "visited", Name: "Old Haunt", AirportCode: "XXX", CountryCode: "ATG"},
		{ID: "fresh", Name: "New Bay", AirportCode: "YYY", CountryCode: "ATG"},
	}
	profile := &entity.UserProfile{VisitedSpots: []string{"visited"}}

	results := scorer.ScoreSpots(spots, nil, entity.Criteria{}, profile)
	// visited: base 30 - penalty 40 = -10, excluded
	if len(results) != 1 || results[0].Spot.ID != "fresh" {
		t.Fatalf("got %d results, want only the unvisited spot", len(results))
	}
}

func TestScoreSpots_WishlistBonus(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	spots := []entity.KitespotLocation{
		{ID: "wished", Name: "Dream Spot", AirportCode: "XXX", CountryCode: "ATG"},
		{ID: "plain", Name: "Plain Spot", AirportCode: "YYY", CountryCode: "ATG"},
	}
	profile := &entity.UserProfile{Wishlist: []string{"wished"}}

	results := scorer.ScoreSpots(spots, nil, entity.Criteria{}, profile)
	if results[0].Spot.ID != "wished" {
		t.Fatalf("wishlisted spot not first, got %s", results[0].Spot.ID)
	}
}

func TestScoreSpots_PopularAirportAndDescription(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	spots := []entity.KitespotLocation{
		{ID: "plain", Name: "Plain Spot", AirportCode: "XXX", CountryCode: "ATG"},
		{
			ID: "hansons", Name: "Hansons Bay", AirportCode: "ANU", CountryCode: "ATG",
			Description: "Shallow flat water bay behind a reef.",
		},
	}
	results := scorer.ScoreSpots(spots, map[string]string{"ANU": "Antigua and Barbuda"}, entity.Criteria{Country: "Antigua", SkillLevel: entity.SkillBeginner}, nil)
	if results[0].Spot.ID != "hansons" {
		t.Fatalf("expected hansons first, got %s", results[0].Spot.ID)
	}
	if len(results[0].Reasons) < 3 {
		t.Fatalf("got %d reasons, want country, description, airport and skill-theme reasons", len(results[0].Reasons))
	}
}
