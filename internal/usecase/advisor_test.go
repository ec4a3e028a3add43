package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"kitematch-service/internal/domain/entity"
	"kitematch-service/internal/domain/repository"
	"kitematch-service/internal/infrastructure/router"
	memrepo "kitematch-service/internal/interface/repository"
	"kitematch-service/pkg/logger"
	"kitematch-service/pkg/utils"
)

type stubModel struct {
	reply string
	err   error
	calls int
}

func (s *stubModel) Complete(ctx context.Context, system, user string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func newTestAdvisor(model ModelClient, conversations repository.ConversationRepository) *Advisor {
	log := logger.NewNop()
	catalog := &entity.Catalog{
		Trips: testTrips(),
		Spots: testSpots(),
		Countries: map[string]string{
			"CNS": "Australia",
			"AUA": "Aruba",
		},
	}
	interpreter := NewInterpreter(router.NewDefaultIntentRouter(log), utils.NewQueryExtractor(log), log)
	return NewAdvisor(catalog, interpreter, NewScorer(DefaultWeights()), NewFormatter(3), conversations, model, time.Second, log, nil)
}

// The canonical end-to-end case: skill + budget + month against a catalog
// where exactly one trip satisfies everything.
func TestRecommend_RanksMatchingTripFirst(t *testing.T) {
	advisor := newTestAdvisor(nil, nil)
	response, err := advisor.Recommend(context.Background(), "Intermediate, €2500 budget, February.", nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(response.Matches) == 0 {
		t.Fatal("no matches returned")
	}
	top := response.Matches[0]
	if top.Kind != entity.SubjectTrip || top.Trip.Destination != "Antigua" {
		t.Fatalf("top match = %+v, want the Antigua trip", top)
	}
	if top.Trip.PriceFrom > 2500 {
		t.Fatalf("top price %f exceeds the stated budget", top.Trip.PriceFrom)
	}
	if !strings.Contains(response.SummaryText, "Antigua") {
		t.Fatalf("summary %q does not mention Antigua", response.SummaryText)
	}
}

func TestRecommend_GibberishGetsGenericResponse(t *testing.T) {
	advisor := newTestAdvisor(nil, nil)
	response, err := advisor.Recommend(context.Background(), "asdkjh qweqwe", nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.SummaryText == "" {
		t.Fatal("summary is empty")
	}
	if len(response.Matches) != 0 {
		t.Fatalf("matches = %d, want none for an unrecognizable query", len(response.Matches))
	}
	if len(response.SuggestedActions) == 0 {
		t.Fatal("no suggested actions")
	}
}

func TestRecommend_ImpossibleBudgetStillAnswers(t *testing.T) {
	advisor := newTestAdvisor(nil, nil)
	response, err := advisor.Recommend(context.Background(), "find a trip, budget of 10", nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(response.Matches) != 0 {
		t.Fatalf("matches = %d, want none for an impossible budget", len(response.Matches))
	}
	if !strings.Contains(strings.ToLower(response.SummaryText), "budget") {
		t.Fatalf("summary %q should ask for more criteria", response.SummaryText)
	}
}

func TestRecommend_ModelFailureFallsBackToLocalSummary(t *testing.T) {
	model := &stubModel{err: errors.New("upstream down")}
	advisor := newTestAdvisor(model, nil)
	response, err := advisor.Recommend(context.Background(), "Intermediate, €2500 budget, February.", nil, "")
	if err != nil {
		t.Fatalf("model failure must not propagate, got %v", err)
	}
	if model.calls != 1 {
		t.Fatalf("model called %d times, want 1", model.calls)
	}
	if !strings.Contains(response.SummaryText, "Antigua") {
		t.Fatalf("local fallback summary lost: %q", response.SummaryText)
	}
}

func TestRecommend_ModelReplyReplacesSummary(t *testing.T) {
	model := &stubModel{reply: "Antigua in February is calling your name!"}
	advisor := newTestAdvisor(model, nil)
	response, err := advisor.Recommend(context.Background(), "Intermediate, €2500 budget, February.", nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.SummaryText != model.reply {
		t.Fatalf("summary = %q, want the model reply", response.SummaryText)
	}
}

func TestRecommend_PersistsConversationTurns(t *testing.T) {
	conversations := memrepo.NewMemoryConversationRepository()
	advisor := newTestAdvisor(nil, conversations)

	_, err := advisor.Recommend(context.Background(), "find trips in Greece", nil, "session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	turns, err := conversations.RecentTurns(context.Background(), "session-1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("got %d turns, want user + assistant", len(turns))
	}
	if turns[0].Role != entity.RoleUser || turns[1].Role != entity.RoleAssistant {
		t.Fatalf("turn roles = %s, %s", turns[0].Role, turns[1].Role)
	}
}

// A search with no narrowing criteria scores the whole catalog at the
// base rate; every returned match must still explain itself.
func TestRecommend_BroadSearchStillGivesReasons(t *testing.T) {
	advisor := newTestAdvisor(nil, nil)
	response, err := advisor.Recommend(context.Background(), "find me a trip", nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(response.Matches) == 0 {
		t.Fatal("no matches returned")
	}
	for _, match := range response.Matches {
		if match.Score > 0 && len(match.Reasons) == 0 {
			t.Fatalf("match %s scored %f with empty reasons", match.Trip.ID, match.Score)
		}
	}
}

func TestRecommend_CountryQueryReachesSpots(t *testing.T) {
	advisor := newTestAdvisor(nil, nil)
	// No trip sails Australia, so the engine falls through to kitespots.
	response, err := advisor.Recommend(context.Background(), "show me spots in Australia", nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(response.Matches) == 0 {
		t.Fatal("no matches returned")
	}
	if response.Matches[0].Kind != entity.SubjectSpot {
		t.Fatalf("top match kind = %s, want spot", response.Matches[0].Kind)
	}
	if response.Matches[0].Spot.AirportCode != "CNS" {
		t.Fatalf("top spot = %s, want the Australian spot", response.Matches[0].Spot.AirportCode)
	}
}
