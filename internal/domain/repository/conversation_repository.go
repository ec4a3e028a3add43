package repository

import (
	"context"

	"kitematch-service/internal/domain/entity"
)

// ConversationRepository stores chat turns per session for continuity.
type ConversationRepository interface {
	SaveTurn(ctx context.Context, turn *entity.ConversationTurn) error
	RecentTurns(ctx context.Context, sessionID string, limit int) ([]entity.ConversationTurn, error)
}
