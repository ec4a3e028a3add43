package usecase

import (
	"sort"
	"strings"

	"kitematch-service/internal/domain/entity"
	"kitematch-service/internal/infrastructure/router"
	"kitematch-service/pkg/logger"
	"kitematch-service/pkg/utils"
)

// Entity vocabularies. Keys are the lowercase phrases scanned for in the
// query, values the canonical form collected into the entity sets.
// Extraction is permissive: every matching phrase contributes.
var countryVocab = map[string]string{
	"antigua":    "Antigua",
	"barbuda":    "Antigua",
	"greece":     "Greece",
	"greek":      "Greece",
	"sardinia":   "Italy",
	"italy":      "Italy",
	"egypt":      "Egypt",
	"red sea":    "Egypt",
	"brazil":     "Brazil",
	"cape verde": "Cape Verde",
	"morocco":    "Morocco",
	"spain":      "Spain",
	"aruba":      "Aruba",
	"australia":  "Australia",
	"zanzibar":   "Tanzania",
	"tanzania":   "Tanzania",
	"dominican":  "Dominican Republic",
	"turks":      "Turks and Caicos",
}

var locationVocab = map[string]string{
	"punta trettu": "Punta Trettu",
	"jericoacoara": "Jericoacoara",
	"cabarete":     "Cabarete",
	"dakhla":       "Dakhla",
	"tarifa":       "Tarifa",
	"el gouna":     "El Gouna",
	"hansons bay":  "Hansons Bay",
}

var skillVocab = map[string]string{
	"beginner":     entity.SkillBeginner,
	"newbie":       entity.SkillBeginner,
	"never kited":  entity.SkillBeginner,
	"first time":   entity.SkillBeginner,
	"learn":        entity.SkillBeginner,
	"intermediate": entity.SkillIntermediate,
	"advanced":     entity.SkillAdvanced,
	"expert":       entity.SkillAdvanced,
	"pro rider":    entity.SkillAdvanced,
}

var waterVocab = map[string]string{
	"flat water": "flat",
	"flatwater":  "flat",
	"flat-water": "flat",
	"lagoon":     "flat",
	"waves":      "waves",
	"wave":       "waves",
	"swell":      "waves",
	"choppy":     "chop",
	"chop":       "chop",
}

var activityVocab = map[string]string{
	"kitesurf":   "kiteboarding",
	"kiteboard":  "kiteboarding",
	"kiting":     "kiteboarding",
	"wingfoil":   "wingfoiling",
	"wing foil":  "wingfoiling",
	"foil":       "foiling",
	"downwinder": "downwinder",
	"snorkel":    "snorkeling",
	"diving":     "diving",
}

// Interpreter maps free-text input to a structured (intent, entities)
// pair. It is a pure function of the query text plus optional prior turns.
type Interpreter struct {
	router    *router.IntentRouter
	extractor *utils.QueryExtractor
	logger    logger.Logger
}

// NewInterpreter creates a new interpreter
func NewInterpreter(r *router.IntentRouter, extractor *utils.QueryExtractor, logger logger.Logger) *Interpreter {
	return &Interpreter{
		router:    r,
		extractor: extractor,
		logger:    logger,
	}
}

// Interpret classifies a query and extracts entities. Empty or
// unrecognizable input resolves to IntentGeneral with empty entities;
// it is never an error. Prior turns only widen the text scanned for
// entities, they never change the intent of the current query.
func (i *Interpreter) Interpret(text string, turns []entity.ConversationTurn) (entity.Intent, entity.ExtractedEntities) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return entity.IntentGeneral, entity.ExtractedEntities{}
	}

	intent := i.router.Resolve(trimmed)

	scanText := trimmed
	for _, turn := range turns {
		if turn.Role == entity.RoleUser {
			scanText += "\n" + turn.Text
		}
	}
	entities := i.extractEntities(scanText)

	i.logger.Debug("Interpreted query", "intent", intent, "empty_entities", entities.IsEmpty())
	return intent, entities
}

func (i *Interpreter) extractEntities(text string) entity.ExtractedEntities {
	lower := strings.ToLower(text)

	out := entity.ExtractedEntities{
		Countries:   collectVocab(lower, countryVocab),
		Locations:   collectVocab(lower, locationVocab),
		SkillLevels: collectVocab(lower, skillVocab),
		WaterTypes:  collectVocab(lower, waterVocab),
		Activities:  collectVocab(lower, activityVocab),
	}

	facts := i.extractor.ExtractFacts(text)
	out.Budget = facts.Budget
	out.Month = facts.Month
	out.DurationDays = facts.DurationDays
	return out
}

// collectVocab gathers the canonical values of all matching phrases,
// de-duplicated, ordered by first mention in the text.
func collectVocab(lower string, vocab map[string]string) []string {
	firstAt := make(map[string]int)
	for phrase, canonical := range vocab {
		pos := strings.Index(lower, phrase)
		if pos < 0 {
			continue
		}
		if prev, ok := firstAt[canonical]; !ok || pos < prev {
			firstAt[canonical] = pos
		}
	}
	out := make([]string, 0, len(firstAt))
	for canonical := range firstAt {
		out = append(out, canonical)
	}
	sort.Slice(out, func(a, b int) bool {
		if firstAt[out[a]] != firstAt[out[b]] {
			return firstAt[out[a]] < firstAt[out[b]]
		}
		return out[a] < out[b]
	})
	return out
}

// CriteriaFromEntities derives the filter criteria from extracted
// entities. Only the first value of each set feeds the conjunctive
// filter; the full sets stay available to the caller.
func CriteriaFromEntities(entities entity.ExtractedEntities) entity.Criteria {
	c := entity.Criteria{
		Budget:       entities.Budget,
		Month:        entities.Month,
		DurationDays: entities.DurationDays,
	}
	if len(entities.Locations) > 0 {
		c.Destination = entities.Locations[0]
	} else if len(entities.Countries) > 0 {
		c.Destination = entities.Countries[0]
	}
	if len(entities.Countries) > 0 {
		c.Country = entities.Countries[0]
	}
	if len(entities.SkillLevels) > 0 {
		c.SkillLevel = entities.SkillLevels[0]
	}
	if len(entities.WaterTypes) > 0 {
		c.WaterType = entities.WaterTypes[0]
	}
	return c
}
