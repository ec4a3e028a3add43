package usecase

import (
	"kitematch-service/internal/domain/entity"
	"kitematch-service/templates"
)

// DefaultTopN caps how many matches a response carries when the caller
// does not say otherwise.
const DefaultTopN = 3

// Formatter turns ranked matches into the user-facing response payload.
// It is a pure transformation.
type Formatter struct {
	topN int
}

// NewFormatter creates a new formatter; topN <= 0 selects the default cap.
func NewFormatter(topN int) *Formatter {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Formatter{topN: topN}
}

// BuildResponse packages the top-N matches with a summary and suggested
// next steps. An empty ranked list yields the "need more criteria"
// response, never an error.
func (f *Formatter) BuildResponse(results []entity.MatchResult) entity.RecommendationResponse {
	if len(results) == 0 {
		return f.NeedMoreCriteria()
	}

	top := results
	if len(top) > f.topN {
		top = top[:f.topN]
	}

	actions := []entity.SuggestedAction{}
	if top[0].Kind == entity.SubjectTrip {
		actions = append(actions, entity.SuggestedAction{
			Label:  "View availability",
			Kind:   "view_availability",
			Target: top[0].Trip.ID,
		})
	} else {
		actions = append(actions, entity.SuggestedAction{
			Label:  "See spot details",
			Kind:   "view_spot",
			Target: top[0].Spot.ID,
		})
	}
	if len(top) > 1 {
		actions = append(actions, entity.SuggestedAction{Label: "Compare your matches", Kind: "compare"})
	}
	actions = append(actions, entity.SuggestedAction{Label: "Talk to the crew", Kind: "contact"})

	return entity.RecommendationResponse{
		SummaryText:      templates.Summary(&top[0], len(results)),
		Matches:          top,
		SuggestedActions: actions,
	}
}

// NeedMoreCriteria asks the rider for month, skill level or budget.
func (f *Formatter) NeedMoreCriteria() entity.RecommendationResponse {
	return entity.RecommendationResponse{
		SummaryText: templates.NeedMoreCriteria(),
		Matches:     []entity.MatchResult{},
		SuggestedActions: []entity.SuggestedAction{
			{Label: "Browse all trips", Kind: "list_trips"},
			{Label: "Talk to the crew", Kind: "contact"},
		},
	}
}

// Fallback is the total-failure response: apology summary, no matches,
// a way to reach a human. Callers must never see an empty payload.
func (f *Formatter) Fallback() entity.RecommendationResponse {
	return entity.RecommendationResponse{
		SummaryText: templates.Fallback(),
		Matches:     []entity.MatchResult{},
		SuggestedActions: []entity.SuggestedAction{
			{Label: "Contact us", Kind: "contact"},
		},
	}
}
