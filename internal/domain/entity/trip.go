package entity

import (
	"fmt"
	"strings"
	"time"
)

// Skill levels a trip can target. SkillAll matches any requested level.
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
	SkillAll          = "all"
)

// WindProfile describes the expected wind conditions for a trip.
type WindProfile struct {
	AverageKnots float64 `json:"average_knots"`
	Direction    string  `json:"direction"`
	Reliability  string  `json:"reliability"` // high, medium, low
}

// TripOffering is a bookable multi-day kite safari. Offerings are loaded
// once at startup and never mutated by request handling.
type TripOffering struct {
	ID           string             `json:"id"`
	Destination  string             `json:"destination"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `json:"end_date"`
	DurationDays int                `json:"duration_days"`
	PriceFrom    float64            `json:"price_from"`
	Currency     string             `json:"currency"`
	CabinPricing map[string]float64 `json:"cabin_pricing"`
	Availability map[string]int     `json:"availability"`
	SkillLevel   string             `json:"skill_level"`
	Wind         WindProfile        `json:"wind"`
	Highlights   []string           `json:"highlights"`
	Includes     []string           `json:"includes"`
}

// StartMonth returns the lowercase English month name of the departure date.
func (t *TripOffering) StartMonth() string {
	return strings.ToLower(t.StartDate.Month().String())
}

// TotalAvailability sums the remaining slots across all cabin tiers.
func (t *TripOffering) TotalAvailability() int {
	total := 0
	for _, n := range t.Availability {
		total += n
	}
	return total
}

// MatchesSkill reports whether the trip fits the requested skill level.
// An offering targeting all levels fits any request.
func (t *TripOffering) MatchesSkill(level string) bool {
	return t.SkillLevel == level || t.SkillLevel == SkillAll
}

// Validate checks the record at catalog-load time. A failure here is fatal:
// a corrupted catalog must never reach the matching pipeline.
func (t *TripOffering) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("trip has empty id")
	}
	if t.Destination == "" {
		return fmt.Errorf("trip %s: empty destination", t.ID)
	}
	if !t.EndDate.After(t.StartDate) {
		return fmt.Errorf("trip %s: end date not after start date", t.ID)
	}
	days := int(t.EndDate.Sub(t.StartDate).Hours() / 24)
	if t.DurationDays != days {
		return fmt.Errorf("trip %s: duration_days %d does not match date range (%d)", t.ID, t.DurationDays, days)
	}
	if t.PriceFrom < 0 {
		return fmt.Errorf("trip %s: negative price_from", t.ID)
	}
	for tier, price := range t.CabinPricing {
		if price < t.PriceFrom {
			return fmt.Errorf("trip %s: cabin %s priced below price_from", t.ID, tier)
		}
	}
	for tier, n := range t.Availability {
		if n < 0 {
			return fmt.Errorf("trip %s: negative availability for cabin %s", t.ID, tier)
		}
	}
	switch t.SkillLevel {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillAll:
	default:
		return fmt.Errorf("trip %s: unknown skill level %q", t.ID, t.SkillLevel)
	}
	return nil
}
