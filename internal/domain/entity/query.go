package entity

// Intent is the classified purpose of a user query.
type Intent string

const (
	IntentSearch      Intent = "search"
	IntentRecommend   Intent = "recommend"
	IntentCompare     Intent = "compare"
	IntentPlan        Intent = "plan"
	IntentBook        Intent = "book"
	IntentInformation Intent = "information"
	IntentGeneral     Intent = "general"
)

// ExtractedEntities holds everything the interpreter could pull out of a
// free-text query. Extraction is deliberately permissive: a query that
// mentions two countries populates both.
type ExtractedEntities struct {
	Countries    []string `json:"countries,omitempty"`
	Locations    []string `json:"locations,omitempty"`
	SkillLevels  []string `json:"skill_levels,omitempty"`
	WaterTypes   []string `json:"water_types,omitempty"`
	Activities   []string `json:"activities,omitempty"`
	Budget       float64  `json:"budget,omitempty"`
	Month        string   `json:"month,omitempty"`
	DurationDays int      `json:"duration_days,omitempty"`
}

// IsEmpty reports whether nothing at all was extracted.
func (e *ExtractedEntities) IsEmpty() bool {
	return len(e.Countries) == 0 && len(e.Locations) == 0 &&
		len(e.SkillLevels) == 0 && len(e.WaterTypes) == 0 &&
		len(e.Activities) == 0 && e.Budget == 0 && e.Month == "" &&
		e.DurationDays == 0
}

// Criteria is the filter/score input derived from extracted entities or
// supplied explicitly by a caller. A zero-valued field means the
// corresponding filter is skipped.
type Criteria struct {
	Country      string  `json:"country,omitempty"`
	Destination  string  `json:"destination,omitempty"`
	SkillLevel   string  `json:"skill_level,omitempty"`
	Budget       float64 `json:"budget,omitempty"`
	Month        string  `json:"month,omitempty"`
	DurationDays int     `json:"duration_days,omitempty"`
	WaterType    string  `json:"water_type,omitempty"`
}

// IsZero reports whether no criterion is set; filtering with zero criteria
// returns the catalog unchanged.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}
