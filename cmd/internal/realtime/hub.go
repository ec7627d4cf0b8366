package realtime

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	v1 "spark/shared/contracts/realtime/v1"
)

// Room name prefixes. Identity rooms are derived from the authenticated user and
// never change by client action; idea rooms grow and shrink only through
// explicit join/leave control messages.
const (
	userRoomPrefix = "user:"
	ideaRoomPrefix = "idea:"
)

// UserRoom returns the identity room name for a user.
func UserRoom(userID string) string { return userRoomPrefix + userID }

// IdeaRoom returns the room name for an idea discussion thread.
func IdeaRoom(ideaID string) string { return ideaRoomPrefix + ideaID }

// Hub is the single source of truth for live connections and room membership,
// and the backend of the Emitter write path.
//
// It is a constructed service object: the composition root owns one Hub per
// process and injects it into the websocket gateway and into business-logic
// callers. State lives for the process lifetime only; a restart drops all
// connections and rooms, and clients are expected to reconnect and re-join.
//
// Known limitation: the indices are purely in-memory, so one process must own
// all realtime connections. A multi-instance deployment would need an external
// broker behind the emit path.
//
// Concurrency guarantees:
// - One mutex guards both membership indices, so no caller ever observes
//   room->conns updated and conn->rooms not (or vice versa).
// - Emits snapshot the target set under the lock, then enqueue without blocking.
// - Fan-out is panic-safe because Client.Send is never closed by the server.
type Hub struct {
	log *slog.Logger

	mu     sync.Mutex
	conns  map[string]*Client            // conn id -> client
	byUser map[string]map[string]*Client // user id -> conn id -> client (identity rooms)
	rooms  map[string]map[string]*Client // idea room name -> conn id -> client
	joined map[string]map[string]bool    // conn id -> idea room names
}

// NewHub constructs a Hub instance.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:    log,
		conns:  make(map[string]*Client),
		byUser: make(map[string]map[string]*Client),
		rooms:  make(map[string]map[string]*Client),
		joined: make(map[string]map[string]bool),
	}
}

// Register admits a client and auto-joins its identity room.
// It is called exactly once per admitted connection, after authentication.
func (h *Hub) Register(c *Client) {
	if h == nil || c == nil || c.ConnID == "" {
		return
	}

	h.mu.Lock()
	h.conns[c.ConnID] = c

	devices := h.byUser[c.UserID]
	if devices == nil {
		devices = make(map[string]*Client)
		h.byUser[c.UserID] = devices
	}
	devices[c.ConnID] = c

	metricConnections.Set(float64(len(h.conns)))
	h.mu.Unlock()

	h.log.Info("hub.register", "conn_id", c.ConnID, "user_id", c.UserID)
}

// Unregister removes a connection from every room it belongs to and deletes it.
// Idempotent: unregistering an unknown or already-removed id is a no-op.
func (h *Hub) Unregister(connID string) {
	if h == nil || connID == "" {
		return
	}

	h.mu.Lock()
	c, ok := h.conns[connID]
	if !ok {
		h.mu.Unlock()
		return
	}
	delete(h.conns, connID)

	if devices := h.byUser[c.UserID]; devices != nil {
		delete(devices, connID)
		if len(devices) == 0 {
			delete(h.byUser, c.UserID)
		}
	}

	for room := range h.joined[connID] {
		h.dropFromRoomLocked(room, connID)
	}
	delete(h.joined, connID)

	metricConnections.Set(float64(len(h.conns)))
	metricIdeaRooms.Set(float64(len(h.rooms)))
	h.mu.Unlock()

	// Signal client shutdown after removing from membership.
	// This ordering avoids race windows where an emitter still holds a pointer
	// while the client goroutines are being torn down.
	c.Close()

	h.log.Info("hub.unregister", "conn_id", connID, "user_id", c.UserID)
}

// Get returns the client for a connection id.
func (h *Hub) Get(connID string) (*Client, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.conns[connID]
	return c, ok
}

// Len returns the number of currently registered connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.conns)
}

// Join adds a registered connection to an idea room.
// Idempotent: joining a room already joined has no additional effect.
func (h *Hub) Join(connID, ideaID string) {
	ideaID = strings.TrimSpace(ideaID)
	if h == nil || connID == "" || ideaID == "" {
		return
	}
	room := IdeaRoom(ideaID)

	h.mu.Lock()
	c, ok := h.conns[connID]
	if !ok {
		h.mu.Unlock()
		return
	}

	members := h.rooms[room]
	if members == nil {
		members = make(map[string]*Client)
		h.rooms[room] = members
	}
	members[connID] = c

	set := h.joined[connID]
	if set == nil {
		set = make(map[string]bool)
		h.joined[connID] = set
	}
	set[room] = true

	metricIdeaRooms.Set(float64(len(h.rooms)))
	h.mu.Unlock()

	h.log.Info("hub.room.join", "room", room, "conn_id", connID)
}

// Leave removes a connection from an idea room.
// Idempotent: leaving a room not joined has no effect.
func (h *Hub) Leave(connID, ideaID string) {
	ideaID = strings.TrimSpace(ideaID)
	if h == nil || connID == "" || ideaID == "" {
		return
	}
	room := IdeaRoom(ideaID)

	h.mu.Lock()
	h.dropFromRoomLocked(room, connID)
	if set := h.joined[connID]; set != nil {
		delete(set, room)
		if len(set) == 0 {
			delete(h.joined, connID)
		}
	}
	metricIdeaRooms.Set(float64(len(h.rooms)))
	h.mu.Unlock()

	h.log.Info("hub.room.leave", "room", room, "conn_id", connID)
}

func (h *Hub) dropFromRoomLocked(room, connID string) {
	members := h.rooms[room]
	if members == nil {
		return
	}
	delete(members, connID)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

// MembersOf returns the connection ids currently in a room.
// Unknown rooms yield an empty set, never an error.
func (h *Hub) MembersOf(room string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var members map[string]*Client
	if userID, ok := strings.CutPrefix(room, userRoomPrefix); ok {
		members = h.byUser[userID]
	} else {
		members = h.rooms[room]
	}

	out := make([]string, 0, len(members))
	for id := range members {
		out = append(out, id)
	}
	return out
}

// ---- emitter ----

// EmitToIdea fans an event out to every connection currently in the idea room.
func (h *Hub) EmitToIdea(ideaID, event string, payload any) {
	metricEventsEmitted.WithLabelValues(emitScopeIdea).Inc()

	h.mu.Lock()
	targets := snapshotLocked(h.rooms[IdeaRoom(ideaID)])
	h.mu.Unlock()

	h.deliver(targets, event, payload)
}

// EmitToUser fans an event out to every connection authenticated as userID
// (multi-device: all of a user's live connections receive it).
func (h *Hub) EmitToUser(userID, event string, payload any) {
	metricEventsEmitted.WithLabelValues(emitScopeUser).Inc()

	h.mu.Lock()
	targets := snapshotLocked(h.byUser[userID])
	h.mu.Unlock()

	h.deliver(targets, event, payload)
}

// EmitToAll fans an event out to every registered connection regardless of
// room membership. Used for coarse "go refetch" signals so no idea-level
// authorization is needed inside this layer.
func (h *Hub) EmitToAll(event string, payload any) {
	metricEventsEmitted.WithLabelValues(emitScopeAll).Inc()

	h.mu.Lock()
	targets := snapshotLocked(h.conns)
	h.mu.Unlock()

	h.deliver(targets, event, payload)
}

func snapshotLocked(members map[string]*Client) []*Client {
	if len(members) == 0 {
		return nil
	}
	out := make([]*Client, 0, len(members))
	for _, c := range members {
		out = append(out, c)
	}
	return out
}

// deliver enqueues one envelope per target, isolating failures per connection:
// a closing client or a full queue is counted and skipped, never aborting the
// remaining fan-out and never surfacing to the emit caller.
func (h *Hub) deliver(targets []*Client, event string, payload any) {
	if len(targets) == 0 {
		// Nobody to notify; not an error.
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("emit.marshal.fail", "event", event, "err", err)
		return
	}
	env := newEventEnvelope(event, raw, time.Now().UTC())

	for _, c := range targets {
		if c == nil {
			continue
		}

		select {
		case <-c.Done():
			// Skip clients that are shutting down.
			metricDeliveriesDropped.Inc()
			continue
		default:
		}

		select {
		case c.Send <- env:
			metricDeliveries.Inc()
		default:
			// Drop rather than block the whole fan-out.
			metricDeliveriesDropped.Inc()
			h.log.Info("emit.drop", "event", event, "conn_id", c.ConnID)
		}
	}
}

func newEventEnvelope(event string, payload json.RawMessage, ts time.Time) v1.Envelope {
	id, _ := NewEnvelopeID(ts)
	return v1.Envelope{
		V:       v1.Version,
		Type:    event,
		ID:      id,
		TS:      ts,
		Payload: payload,
	}
}
