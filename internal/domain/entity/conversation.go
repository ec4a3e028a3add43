package entity

import "time"

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is one message in a chat session. Turns are persisted
// best-effort: losing one never fails a query.
type ConversationTurn struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	SessionID string    `bson:"sessionId" json:"session_id"`
	Role      string    `bson:"role" json:"role"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
