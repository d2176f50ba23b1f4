package websocket

import (
	"sync"

	"PvtCall/internal/utils"
)

// Hub tracks live websocket clients by connection ID and owns all writes to
// their send channels. Incoming messages and disconnects are dispatched from
// the client read pumps, not from the run loop, so the loop stays free to
// serve sends while the engine is processing an event.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	sendOne    chan sendReq
	quit       chan struct{}

	// OnMessage receives every inbound client event. Called from the
	// client's read pump.
	OnMessage func(IncomingMessage)
	// OnDisconnect fires once per connection after its transport closes.
	OnDisconnect func(clientID string)

	mu sync.RWMutex
}

type sendReq struct {
	ClientID string
	Message  OutgoingMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		sendOne:    make(chan sendReq),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	utils.Log.Info("hub started")
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.ID] = c
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c.ID]; ok {
				delete(h.clients, c.ID)
				close(c.Send)
			}
			h.mu.Unlock()

		case req := <-h.sendOne:
			h.mu.RLock()
			client, ok := h.clients[req.ClientID]
			h.mu.RUnlock()
			if !ok {
				continue
			}
			select {
			case client.Send <- req.Message:
			default:
				// Slow or half-dead consumer; drop rather than
				// stall the loop.
			}

		case <-h.quit:
			h.mu.Lock()
			for _, c := range h.clients {
				close(c.Send)
			}
			h.clients = make(map[string]*Client)
			h.mu.Unlock()
		}
	}
}

// Send queues a message for a single client. Best-effort: unknown clients
// and full buffers drop the message.
func (h *Hub) Send(clientID string, msg OutgoingMessage) {
	h.sendOne <- sendReq{ClientID: clientID, Message: msg}
}

// Count reports the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Close() {
	close(h.quit)
}
