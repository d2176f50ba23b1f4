package match

import (
	"sync"

	"PvtCall/internal/utils"
	ws "PvtCall/internal/websocket"
)

// Sender delivers an outbound message to a single connection. Delivery is
// best-effort: the transport drops the message if the connection is gone or
// its buffer is full, and the engine never waits on it.
type Sender interface {
	Send(clientID string, msg ws.OutgoingMessage)
}

// Engine pairs connected clients into two-party rooms and relays signaling
// and chat envelopes between room members. All shared state (registry,
// waiting pool, room table) lives behind one mutex; every inbound event runs
// to completion before the next one touches the maps, which is what makes
// pairing atomic and disconnects race-free.
type Engine struct {
	mu       sync.Mutex
	registry *registry
	pool     *waitingPool
	rooms    *roomTable
	sender   Sender
}

func NewEngine(sender Sender) *Engine {
	return &Engine{
		registry: newRegistry(),
		pool:     newWaitingPool(),
		rooms:    newRoomTable(),
		sender:   sender,
	}
}

// HandleMessage dispatches an inbound transport event to the matching
// operation. Unknown events are dropped.
func (e *Engine) HandleMessage(msg ws.IncomingMessage) {
	switch msg.Event {
	case EventFindMatch:
		e.FindMatch(msg.From)
	case EventNext:
		e.Next(msg.From)
	case EventLeave:
		e.Leave(msg.From)
	default:
		if relayEvents[msg.Event] {
			e.Relay(msg.From, msg.Event, msg.Data)
			return
		}
		utils.Log.Warn("unknown event", "event", msg.Event, "client", msg.From)
	}
}

// Connect registers a new live connection. The client starts idle: it is in
// neither the waiting pool nor a room until it asks for a match.
func (e *Engine) Connect(id, username string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.registry.register(id, username)
	utils.Log.Info("client connected", "client", id, "online", e.registry.count())
}

// Disconnect unwinds whatever state the connection held. Safe to call for
// clients that were idle, waiting, paired, or already gone.
func (e *Engine) Disconnect(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.leaveRoomLocked(id)
	e.pool.remove(id)
	e.registry.unregister(id)
	utils.Log.Info("client disconnected", "client", id, "online", e.registry.count())
}

// FindMatch pairs the client with the longest-waiting live candidate, or
// enqueues it at the tail. Any prior room or pool membership is cleared first
// so a duplicate request self-heals instead of corrupting state.
func (e *Engine) FindMatch(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.registry.exists(id) {
		return
	}
	e.leaveRoomLocked(id)
	e.pool.remove(id)

	for {
		candidate, ok := e.pool.dequeueNext()
		if !ok {
			break
		}
		// A queued client may have disconnected before being matched.
		// Its pool entry was removed on disconnect, but never pair
		// anything the registry no longer knows.
		if !e.registry.exists(candidate) {
			continue
		}
		rid, err := e.rooms.create(id, candidate)
		if err != nil {
			utils.Log.Error("room create failed", "err", err)
			return
		}
		utils.Log.Info("matched", "room", rid, "initiator", id, "responder", candidate)
		// The requesting side initiates the peer handshake; exactly one
		// initiator per room is required for negotiation to converge.
		e.sender.Send(id, ws.OutgoingMessage{
			Event: EventMatched,
			Data:  map[string]any{"roomId": rid, "initiator": true},
		})
		e.sender.Send(candidate, ws.OutgoingMessage{
			Event: EventMatched,
			Data:  map[string]any{"roomId": rid, "initiator": false},
		})
		return
	}

	e.pool.enqueue(id)
	e.sender.Send(id, ws.OutgoingMessage{Event: EventWaiting})
}

// Relay forwards an opaque envelope to the other member of the sender's room.
// The room is always resolved server-side from the sender's identity; a
// caller-supplied roomId in the payload is stripped and ignored, so an
// envelope can never cross into a room the sender is not part of. Unpaired
// senders are dropped silently.
func (e *Engine) Relay(from, event string, data map[string]any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	partner, ok := e.rooms.partnerOf(from)
	if !ok {
		return
	}
	payload := make(map[string]any, len(data))
	for k, v := range data {
		if k == "roomId" {
			continue
		}
		payload[k] = v
	}
	if event == EventChatMessage {
		if u := e.registry.username(from); u != "" {
			payload["username"] = u
		}
	}
	e.sender.Send(partner, ws.OutgoingMessage{Event: event, Data: payload})
}

// Leave tears down the client's room or pool membership. The caller gets a
// left-room event only when there was something to leave; a repeated leave is
// a no-op.
func (e *Engine) Leave(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	left := e.leaveRoomLocked(id)
	if e.pool.remove(id) {
		left = true
	}
	if left {
		e.sender.Send(id, ws.OutgoingMessage{Event: EventLeftRoom})
	}
}

// Next leaves the current room and tells the caller it is idle again. The
// client re-issues find-match on its own schedule; by the time that arrives
// the teardown here has fully completed, so a new pairing can never race the
// partner-left notification.
func (e *Engine) Next(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.leaveRoomLocked(id)
	e.pool.remove(id)
	e.sender.Send(id, ws.OutgoingMessage{Event: EventLeftRoom})
}

// Online reports the number of live connections.
func (e *Engine) Online() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.count()
}

// leaveRoomLocked destroys the client's room, if any, and notifies the other
// member. Callers hold e.mu. Reports whether a room was actually left.
func (e *Engine) leaveRoomLocked(id string) bool {
	rid, ok := e.rooms.roomOfClient(id)
	if !ok {
		return false
	}
	partner, _ := e.rooms.partnerOf(id)
	e.rooms.destroy(rid)
	if partner != "" {
		e.sender.Send(partner, ws.OutgoingMessage{Event: EventPartnerLeft})
	}
	utils.Log.Info("room closed", "room", rid)
	return true
}
