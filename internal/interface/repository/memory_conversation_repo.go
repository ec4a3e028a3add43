package repository

import (
	"context"
	"sync"

	"kitematch-service/internal/domain/entity"
	"kitematch-service/internal/domain/repository"
)

// MemoryConversationRepository keeps chat turns in process memory. Used
// when no MongoDB is configured and in tests.
type MemoryConversationRepository struct {
	mu    sync.RWMutex
	turns map[string][]entity.ConversationTurn
}

// NewMemoryConversationRepository creates a new in-memory conversation repository
func NewMemoryConversationRepository() *MemoryConversationRepository {
	return &MemoryConversationRepository{
		turns: make(map[string][]entity.ConversationTurn),
	}
}

var _ repository.ConversationRepository = (*MemoryConversationRepository)(nil)

// SaveTurn stores one chat turn.
func (r *MemoryConversationRepository) SaveTurn(ctx context.Context, turn *entity.ConversationTurn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.turns[turn.SessionID] = append(r.turns[turn.SessionID], *turn)
	return nil
}

// RecentTurns returns up to limit turns for a session, oldest first.
func (r *MemoryConversationRepository) RecentTurns(ctx context.Context, sessionID string, limit int) ([]entity.ConversationTurn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	turns := r.turns[sessionID]
	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	out := make([]entity.ConversationTurn, len(turns))
	copy(out, turns)
	return out, nil
}
