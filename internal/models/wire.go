package models

import "time"

/*** Room channel wire format ***/

// WSFrame is the envelope for every event on the room channel.
// Types: "join-room","room-init","user-joined","room-users",
// "send-msg","recieve-msg","text-edit","user-left","error".
type WSFrame struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// JoinRequest is the payload of the client's initial "join-room" frame.
type JoinRequest struct {
	Username string `json:"username"`
	RoomID   string `json:"roomId"`
}

// RoomInit is sent to the joining channel only, reflecting membership
// after the joiner's own addition.
type RoomInit struct {
	Users            []string      `json:"users"`
	SharedText       string        `json:"sharedText"`
	PreviousMessages []ChatMessage `json:"previousMessages"`
}

// ChatSend is the payload of a client "send-msg" frame.
type ChatSend struct {
	RoomID   string `json:"roomId"`
	Message  string `json:"message"`
	Username string `json:"username"`
}

// ChatBroadcast is the payload of the "recieve-msg" frame fanned out to
// the room. Clients match the event name byte for byte, typo included.
type ChatBroadcast struct {
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// TextEdit is the payload of a client "text-edit" frame. The server
// rebroadcasts only the text, verbatim, to the other members.
type TextEdit struct {
	RoomID string `json:"roomId"`
	Text   string `json:"text"`
}
