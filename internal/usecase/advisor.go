package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kitematch-service/internal/domain/entity"
	"kitematch-service/internal/domain/repository"
	"kitematch-service/pkg/logger"
	"kitematch-service/pkg/metrics"
	"kitematch-service/templates"
)

// Advisor is the top-level orchestrator: it interprets a query, filters
// and scores the immutable catalog, formats the result, and optionally
// asks the external model to polish the summary. Each call is stateless
// apart from the catalog; prior turns only add continuity context.
type Advisor struct {
	catalog       *entity.Catalog
	interpreter   *Interpreter
	scorer        *Scorer
	formatter     *Formatter
	conversations repository.ConversationRepository
	model         ModelClient
	modelTimeout  time.Duration
	logger        logger.Logger
	metrics       *metrics.Metrics
}

// NewAdvisor creates a new advisor. model may be nil (offline mode) and
// metrics may be nil (tests).
func NewAdvisor(
	catalog *entity.Catalog,
	interpreter *Interpreter,
	scorer *Scorer,
	formatter *Formatter,
	conversations repository.ConversationRepository,
	model ModelClient,
	modelTimeout time.Duration,
	logger logger.Logger,
	m *metrics.Metrics,
) *Advisor {
	return &Advisor{
		catalog:       catalog,
		interpreter:   interpreter,
		scorer:        scorer,
		formatter:     formatter,
		conversations: conversations,
		model:         model,
		modelTimeout:  modelTimeout,
		logger:        logger,
		metrics:       m,
	}
}

// Recommend implements the single logical operation of the engine: free
// text in, structured recommendation out. Every code path returns a
// usable response; only corrupted-catalog class failures would surface as
// errors, and none exist after load-time validation.
func (a *Advisor) Recommend(ctx context.Context, query string, profile *entity.UserProfile, sessionID string) (entity.RecommendationResponse, error) {
	started := time.Now()
	if a.metrics != nil {
		a.metrics.QueriesProcessed.Inc()
		defer func() { a.metrics.QueryTime.Observe(time.Since(started).Seconds()) }()
	}

	turns := a.loadTurns(ctx, sessionID)
	intent, entities := a.interpreter.Interpret(query, turns)
	criteria := CriteriaFromEntities(entities)
	a.logger.Info("Processing query", "intent", intent, "session", sessionID)

	// A query with no recognizable intent and no entities has nothing to
	// match against; asking for criteria beats echoing the whole catalog.
	var results []entity.MatchResult
	if intent != entity.IntentGeneral || !entities.IsEmpty() {
		results = a.match(intent, entities, criteria, profile)
	}
	response := a.formatter.BuildResponse(results)
	response = a.enrichSummary(ctx, query, response)

	if a.metrics != nil {
		a.metrics.RecommendationsReturned.Add(float64(len(response.Matches)))
	}
	a.saveTurns(ctx, sessionID, query, response.SummaryText)
	return response, nil
}

// match runs the filter and scorer over trips, and over kitespots when
// the query points at places rather than packages. Both result sets are
// merged and re-ranked; ties keep insertion order (trips first).
func (a *Advisor) match(intent entity.Intent, entities entity.ExtractedEntities, criteria entity.Criteria, profile *entity.UserProfile) []entity.MatchResult {
	filtered := FilterTrips(a.catalog.Trips, criteria)
	results := a.scorer.ScoreTrips(filtered, criteria)

	wantSpots := intent == entity.IntentInformation ||
		len(entities.Locations) > 0 ||
		(len(entities.Countries) > 0 && len(results) == 0)
	if wantSpots {
		spots := FilterSpots(a.catalog.Spots, a.catalog.Countries, criteria)
		spotResults := a.scorer.ScoreSpots(spots, a.catalog.Countries, criteria, profile)
		results = mergeRanked(results, spotResults)
	}
	return results
}

// mergeRanked merges two individually sorted result lists into one list
// sorted by descending score, stable across the pair.
func mergeRanked(a, b []entity.MatchResult) []entity.MatchResult {
	out := make([]entity.MatchResult, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j].Score > a[i].Score {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// enrichSummary asks the external model to rewrite the summary. Any
// failure (network, timeout, breaker open, empty reply) keeps the locally
// built text; the error never propagates.
func (a *Advisor) enrichSummary(ctx context.Context, query string, response entity.RecommendationResponse) entity.RecommendationResponse {
	if a.model == nil {
		return response
	}
	modelCtx, cancel := context.WithTimeout(ctx, a.modelTimeout)
	defer cancel()

	input := fmt.Sprintf("Rider asked: %q\nSummary to rewrite: %s", query, response.SummaryText)
	text, err := a.model.Complete(modelCtx, templates.ModelSystemPrompt(), input)
	if err != nil || strings.TrimSpace(text) == "" {
		a.logger.Warn("External model unavailable, using local summary", "error", err)
		if a.metrics != nil {
			a.metrics.ModelFallbacks.Inc()
		}
		return response
	}
	response.SummaryText = strings.TrimSpace(text)
	return response
}

func (a *Advisor) loadTurns(ctx context.Context, sessionID string) []entity.ConversationTurn {
	if a.conversations == nil || sessionID == "" {
		return nil
	}
	turns, err := a.conversations.RecentTurns(ctx, sessionID, 6)
	if err != nil {
		a.logger.Warn("Failed to load conversation history", "session", sessionID, "error", err)
		if a.metrics != nil {
			a.metrics.ErrorsCount.WithLabelValues("load_turns").Inc()
		}
		return nil
	}
	return turns
}

func (a *Advisor) saveTurns(ctx context.Context, sessionID, query, summary string) {
	if a.conversations == nil || sessionID == "" {
		return
	}
	now := time.Now().UTC()
	for _, turn := range []*entity.ConversationTurn{
		{SessionID: sessionID, Role: entity.RoleUser, Text: query, CreatedAt: now},
		{SessionID: sessionID, Role: entity.RoleAssistant, Text: summary, CreatedAt: now},
	} {
		if err := a.conversations.SaveTurn(ctx, turn); err != nil {
			a.logger.Warn("Failed to persist conversation turn", "session", sessionID, "error", err)
			if a.metrics != nil {
				a.metrics.ErrorsCount.WithLabelValues("save_turn").Inc()
			}
		}
	}
}

// Fallback returns the total-failure response. Exposed so the transport
// layer can answer even when the advisor itself cannot run.
func (a *Advisor) Fallback() entity.RecommendationResponse {
	return a.formatter.Fallback()
}
