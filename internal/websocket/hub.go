package websocket

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

const broadcastQueueSize = 256

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Outbound messages for every client.
	Broadcast chan []byte

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// Replies addressed to a single client.
	reply chan directMessage
}

type directMessage struct {
	client *Client
	data   []byte
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan []byte, broadcastQueueSize),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		reply:      make(chan directMessage),
		clients:    make(map[*Client]bool),
	}
}

// Run starts the Hub's message processing loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
			log.Info().Int("total_clients", len(h.clients)).Msg("Client connected")
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				log.Info().Int("total_clients", len(h.clients)).Msg("Client disconnected")
			}
		case m := <-h.reply:
			if _, ok := h.clients[m.client]; !ok {
				continue
			}
			select {
			case m.client.Send <- m.data:
			default:
			}
		case message := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Slow consumer.
					close(client.Send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Publish queues an activity message for every connected client. It never
// blocks; when the queue is full the message is dropped.
func (h *Hub) Publish(action string, payload any) {
	data, err := json.Marshal(Message{Action: action, Payload: payload})
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("Failed to encode activity message")
		return
	}
	select {
	case h.Broadcast <- data:
	default:
		log.Warn().Str("action", action).Msg("Broadcast queue full, dropping activity message")
	}
}
