package models

import "time"

// ChatMessage is one durable chat entry. Messages are append-only:
// never mutated or deleted after the write.
type ChatMessage struct {
	RoomID    string    `bson:"roomId" json:"roomId"`
	Username  string    `bson:"username" json:"username"`
	Message   string    `bson:"message" json:"message"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
