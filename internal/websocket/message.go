package websocket

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Actions the feed itself sends or answers.
const (
	ActionPing  = "ping"
	ActionPong  = "pong"
	ActionError = "error"
)

// Message defines the structure for websocket messages.
type Message struct {
	Action  string `json:"action"`
	Payload any    `json:"payload,omitempty"`
}

func encode(msg Message) []byte {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Str("action", msg.Action).Msg("Failed to encode websocket message")
		return nil
	}
	return data
}

// NewPongMessage answers a client ping.
func NewPongMessage() []byte {
	return encode(Message{Action: ActionPong})
}

// NewErrorMessage reports a problem back to a single client.
func NewErrorMessage(message string) []byte {
	return encode(Message{Action: ActionError, Payload: map[string]string{"message": message}})
}
