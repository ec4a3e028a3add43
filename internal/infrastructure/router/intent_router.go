package router

import (
	"strings"

	"kitematch-service/internal/domain/entity"
	"kitematch-service/pkg/logger"
)

// IntentGroup binds one intent to the keywords that trigger it.
type IntentGroup struct {
	Intent   entity.Intent
	Keywords []string
}

// IntentRouter resolves a query to an intent by checking registered
// keyword groups in order. Registration order is the priority order:
// the first group with any keyword match wins. This is a policy choice,
// not a score.
type IntentRouter struct {
	groups []IntentGroup
	logger logger.Logger
}

// NewIntentRouter creates a new intent router
func NewIntentRouter(logger logger.Logger) *IntentRouter {
	return &IntentRouter{
		groups: make([]IntentGroup, 0),
		logger: logger,
	}
}

// Register appends a keyword group at the lowest priority so far.
func (r *IntentRouter) Register(group IntentGroup) {
	r.groups = append(r.groups, group)
	r.logger.Debug("Registered intent group", "intent", group.Intent, "keywords", len(group.Keywords))
}

// Resolve returns the intent for a query, or IntentGeneral when no group
// matches. Matching is case-insensitive substring containment.
func (r *IntentRouter) Resolve(text string) entity.Intent {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return entity.IntentGeneral
	}
	for _, group := range r.groups {
		for _, keyword := range group.Keywords {
			if strings.Contains(lower, keyword) {
				return group.Intent
			}
		}
	}
	return entity.IntentGeneral
}

// DefaultGroups returns the standard priority ordering:
// book > compare > plan > recommend > search > information.
func DefaultGroups() []IntentGroup {
	return []IntentGroup{
		{Intent: entity.IntentBook, Keywords: []string{
			"book", "reserve", "reservation", "sign me up", "deposit", "pay now",
		}},
		{Intent: entity.IntentCompare, Keywords: []string{
			"compare", "versus", " vs ", "difference between", "which is better",
		}},
		{Intent: entity.IntentPlan, Keywords: []string{
			"plan", "itinerary", "organize", "organise",
		}},
		{Intent: entity.IntentRecommend, Keywords: []string{
			"recommend", "suggest", "best for me", "what should", "advice", "advise",
		}},
		{Intent: entity.IntentSearch, Keywords: []string{
			"find", "search", "show me", "looking for", "any trips", "available",
		}},
		{Intent: entity.IntentInformation, Keywords: []string{
			"what is", "how does", "tell me about", "explain", "weather", "wind", "info",
		}},
	}
}

// NewDefaultIntentRouter creates a router with the default groups
// registered in priority order.
func NewDefaultIntentRouter(logger logger.Logger) *IntentRouter {
	r := NewIntentRouter(logger)
	for _, group := range DefaultGroups() {
		r.Register(group)
	}
	return r
}
