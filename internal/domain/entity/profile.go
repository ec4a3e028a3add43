package entity

// Preferences captures rider tastes collected over a conversation.
type Preferences struct {
	WaterTypes      []string `json:"water_types,omitempty"`
	WindMinKnots    float64  `json:"wind_min_knots,omitempty"`
	WindMaxKnots    float64  `json:"wind_max_knots,omitempty"`
	BudgetTier      string   `json:"budget_tier,omitempty"`
	GroupSize       int      `json:"group_size,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
}

// UserProfile is the ephemeral per-conversation rider profile. It is built
// from user input or defaults and is not required for a correct answer.
type UserProfile struct {
	SkillLevel   string      `json:"skill_level,omitempty"`
	Preferences  Preferences `json:"preferences,omitempty"`
	VisitedSpots []string    `json:"visited_spots,omitempty"`
	Wishlist     []string    `json:"wishlist,omitempty"`
}

// HasVisited reports whether the rider has already been to the spot.
func (p *UserProfile) HasVisited(spotID string) bool {
	for _, id := range p.VisitedSpots {
		if id == spotID {
			return true
		}
	}
	return false
}

// OnWishlist reports whether the spot is on the rider's wishlist.
func (p *UserProfile) OnWishlist(spotID string) bool {
	for _, id := range p.Wishlist {
		if id == spotID {
			return true
		}
	}
	return false
}
