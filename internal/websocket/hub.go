package websocket

import (
	"sync"

	"ai-docauthor-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// Hub fans generation progress out to every browser tab watching a document.
type Hub struct {
	// Registered clients map: DocumentID -> List of Clients (multi-tab)
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.DocumentID] = append(h.clients[client.DocumentID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"document_id": client.DocumentID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.DocumentID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.DocumentID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.DocumentID]) == 0 {
					delete(h.clients, client.DocumentID)
					h.logger.Info("Hub", "Document room emptied", map[string]interface{}{"document_id": client.DocumentID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastToDocument sends a pre-serialized message to every client
// watching the given document. The read lock is held across the sends: Run
// closes Send channels only under the write lock, so no send here can hit
// a closed channel. A client whose buffer is full just misses this event;
// the read pump tears down connections that are actually dead.
func (h *Hub) BroadcastToDocument(docID uuid.UUID, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[docID] {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping event", map[string]interface{}{"document_id": docID})
		}
	}
}
