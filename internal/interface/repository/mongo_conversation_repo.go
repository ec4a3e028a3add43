package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kitematch-service/internal/domain/entity"
	"kitematch-service/internal/domain/repository"
	"kitematch-service/pkg/logger"
)

// MongoConversationRepository implements the ConversationRepository
// interface backed by MongoDB.
type MongoConversationRepository struct {
	collection *mongo.Collection
	logger     logger.Logger
}

// NewMongoConversationRepository creates a new Mongo conversation repository
func NewMongoConversationRepository(db *mongo.Database, logger logger.Logger) *MongoConversationRepository {
	return &MongoConversationRepository{
		collection: db.Collection("conversation_turns"),
		logger:     logger,
	}
}

var _ repository.ConversationRepository = (*MongoConversationRepository)(nil)

// SaveTurn stores one chat turn.
func (r *MongoConversationRepository) SaveTurn(ctx context.Context, turn *entity.ConversationTurn) error {
	_, err := r.collection.InsertOne(ctx, turn)
	if err != nil {
		r.logger.Error("Failed to insert conversation turn", "session", turn.SessionID, "error", err)
		return err
	}
	return nil
}

// RecentTurns returns up to limit turns for a session, oldest first.
func (r *MongoConversationRepository) RecentTurns(ctx context.Context, sessionID string, limit int) ([]entity.ConversationTurn, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var turns []entity.ConversationTurn
	if err := cursor.All(ctx, &turns); err != nil {
		return nil, err
	}

	// Reverse: the query sorts newest-first to apply the limit.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}
