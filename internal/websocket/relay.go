package websocket

import (
	"context"
	"encoding/json"

	"ai-docauthor-be/internal/pkg/logger"
	"ai-docauthor-be/pkg/events"

	"github.com/google/uuid"
)

// Relay consumes the progress topic and routes each event to the hub
// room of the document it belongs to.
type Relay struct {
	bus    *events.Bus
	hub    *Hub
	logger logger.ILogger
}

func NewRelay(bus *events.Bus, hub *Hub, log logger.ILogger) *Relay {
	return &Relay{bus: bus, hub: hub, logger: log}
}

// Run blocks until ctx is cancelled or the bus closes.
func (r *Relay) Run(ctx context.Context) error {
	messages, err := r.bus.Subscribe(ctx, events.TopicProgress)
	if err != nil {
		return err
	}

	for msg := range messages {
		var payload struct {
			DocumentID string `json:"document_id"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			r.logger.Warn("Relay", "Dropping malformed progress event", map[string]interface{}{"error": err.Error()})
			msg.Ack()
			continue
		}

		docID, err := uuid.Parse(payload.DocumentID)
		if err != nil {
			r.logger.Warn("Relay", "Progress event without document id", map[string]interface{}{"payload": string(msg.Payload)})
			msg.Ack()
			continue
		}

		r.hub.BroadcastToDocument(docID, msg.Payload)
		msg.Ack()
	}
	return nil
}
