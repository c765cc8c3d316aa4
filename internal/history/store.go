package history

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vijay-kumar-79/ZCoder/internal/models"
)

// DefaultHistoryLimit bounds how much chat history hydrates a late joiner.
const DefaultHistoryLimit = 100

// Store is the durable, append-only chat message gateway.
type Store struct{ col *mongo.Collection }

// NewStore binds the messages collection and ensures the room/time index
// backing the Recent query.
func NewStore(c *Client) (*Store, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}

	colName := os.Getenv("MESSAGES_COLLECTION")
	if colName == "" {
		colName = "messages"
	}

	col := db.Collection(colName)
	s := &Store{col: col}

	_, _ = s.col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "roomId", Value: 1}, {Key: "timestamp", Value: 1}},
	})

	return s, nil
}

// Append durably stores one chat entry and returns it with the
// server-assigned timestamp.
func (s *Store) Append(ctx context.Context, roomID, username, message string) (models.ChatMessage, error) {
	msg := models.ChatMessage{
		RoomID:    roomID,
		Username:  username,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if _, err := s.col.InsertOne(ctx, msg); err != nil {
		return models.ChatMessage{}, err
	}
	return msg, nil
}

// Recent returns up to limit messages for a room, ascending by
// timestamp. The newest messages win when the room has more than limit.
func (s *Store) Recent(ctx context.Context, roomID string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.col.Find(ctx, bson.M{"roomId": roomID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ChatMessage
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}

	// The query walks newest-first; flip back to ascending for clients.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
