package router

import (
	"testing"

	"kitematch-service/internal/domain/entity"
	"kitematch-service/pkg/logger"
)

func TestResolve_DefaultGroupsPriority(t *testing.T) {
	r := NewDefaultIntentRouter(logger.NewNop())

	cases := []struct {
		text string
		want entity.Intent
	}{
		{"I want to book the Antigua trip", entity.IntentBook},
		// Booking outranks everything else when keywords collide.
		{"compare and recommend, then book it", entity.IntentBook},
		{"compare Greece versus Egypt", entity.IntentCompare},
		{"help me plan an itinerary", entity.IntentPlan},
		{"recommend something for a beginner", entity.IntentRecommend},
		{"find trips under 2000", entity.IntentSearch},
		{"tell me about the wind in October", entity.IntentInformation},
		{"hello there", entity.IntentGeneral},
	}
	for _, c := range cases {
		if got := r.Resolve(c.text); got != c.want {
			t.Errorf("Resolve(%q) = %s, want %s", c.text, got, c.want)
		}
	}
}

func TestResolve_EmptyAndWhitespace(t *testing.T) {
	r := NewDefaultIntentRouter(logger.NewNop())
	for _, text := range []string{"", "   ", "\t\n"} {
		if got := r.Resolve(text); got != entity.IntentGeneral {
			t.Errorf("Resolve(%q) = %s, want general", text, got)
		}
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	r := NewDefaultIntentRouter(logger.NewNop())
	if got := r.Resolve("BOOK ME IN"); got != entity.IntentBook {
		t.Fatalf("Resolve uppercase = %s, want book", got)
	}
}

func TestResolve_RegistrationOrderIsPriority(t *testing.T) {
	r := NewIntentRouter(logger.NewNop())
	r.Register(IntentGroup{Intent: entity.IntentSearch, Keywords: []string{"trip"}})
	r.Register(IntentGroup{Intent: entity.IntentBook, Keywords: []string{"trip"}})

	// Both groups match; the first registered one wins.
	if got := r.Resolve("trip please"); got != entity.IntentSearch {
		t.Fatalf("Resolve = %s, want the earlier-registered search group", got)
	}
}

func TestResolve_NoGroupsFallsBackToGeneral(t *testing.T) {
	r := NewIntentRouter(logger.NewNop())
	if got := r.Resolve("book a trip"); got != entity.IntentGeneral {
		t.Fatalf("Resolve with no groups = %s, want general", got)
	}
}
