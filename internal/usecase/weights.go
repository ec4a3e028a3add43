package usecase

import (
	"encoding/json"
	"fmt"
	"os"
)

// Weights defines the additive scoring bonuses. The exact numbers are
// tunable product configuration; the qualitative orderings (month > skill,
// exact skill > "all", monotonic budget tiers) must be preserved when
// tuning.
type Weights struct {
	TripBase         float64 `json:"trip_base"`
	MonthMatch       float64 `json:"month_match"`
	SkillExact       float64 `json:"skill_exact"`
	SkillAll         float64 `json:"skill_all"`
	BudgetGreatValue float64 `json:"budget_great_value"` // price <= 0.8 * budget
	BudgetGoodFit    float64 `json:"budget_good_fit"`    // price <= budget
	BudgetStretch    float64 `json:"budget_stretch"`     // price <= 1.2 * budget
	DestinationMatch float64 `json:"destination_match"`
	Scarcity         float64 `json:"scarcity"`

	SpotBase           float64 `json:"spot_base"`
	SpotCountry        float64 `json:"spot_country"`
	SpotDescribed      float64 `json:"spot_described"`
	SpotPopular        float64 `json:"spot_popular"`
	SpotSkillTheme     float64 `json:"spot_skill_theme"`
	SpotWaterTheme     float64 `json:"spot_water_theme"`
	SpotWishlist       float64 `json:"spot_wishlist"`
	SpotVisitedPenalty float64 `json:"spot_visited_penalty"`

	MaxScore float64 `json:"max_score"`
}

// DefaultWeights returns the baseline scoring policy.
func DefaultWeights() Weights {
	return Weights{
		TripBase:         50,
		MonthMatch:       30,
		SkillExact:       25,
		SkillAll:         15,
		BudgetGreatValue: 20,
		BudgetGoodFit:    12,
		BudgetStretch:    6,
		DestinationMatch: 15,
		Scarcity:         10,

		SpotBase:           30,
		SpotCountry:        20,
		SpotDescribed:      10,
		SpotPopular:        15,
		SpotSkillTheme:     10,
		SpotWaterTheme:     10,
		SpotWishlist:       15,
		SpotVisitedPenalty: 40,

		MaxScore: 100,
	}
}

// LoadWeightsFromFile loads weights from a JSON file, falling back to
// defaults on read errors.
func LoadWeightsFromFile(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return w, fmt.Errorf("unmarshal weights: %w", err)
	}
	return w, nil
}
