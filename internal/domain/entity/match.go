package entity

// Subject kinds a MatchResult can carry.
const (
	SubjectTrip = "trip"
	SubjectSpot = "spot"
)

// MatchResult is a scored, ranked candidate. Exactly one of Trip or Spot is
// set, indicated by Kind. Results are new value objects; scoring never
// mutates catalog records.
type MatchResult struct {
	Kind    string            `json:"kind"`
	Trip    *TripOffering     `json:"trip,omitempty"`
	Spot    *KitespotLocation `json:"spot,omitempty"`
	Score   float64           `json:"score"`
	Reasons []string          `json:"reasons"`
	Urgency string            `json:"urgency,omitempty"`
}

// SuggestedAction is a next-step the presentation layer can render as a
// call-to-action.
type SuggestedAction struct {
	Label  string `json:"label"`
	Kind   string `json:"kind"`
	Target string `json:"target,omitempty"`
}

// RecommendationResponse is the payload returned for every query. Every
// code path yields one of these, including total failure.
type RecommendationResponse struct {
	SummaryText      string            `json:"summary_text"`
	Matches          []MatchResult     `json:"matches"`
	SuggestedActions []SuggestedAction `json:"suggested_actions"`
}
