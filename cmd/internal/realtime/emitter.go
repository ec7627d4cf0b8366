package realtime

// Emitter is the write path business-logic callers use to publish domain
// events. Delivery is fire-and-forget: no acknowledgement, no retry, and no
// replay for connections that are offline or not yet joined at emission time.
// Per-connection delivery order matches emission call order.
type Emitter interface {
	// EmitToIdea delivers to every connection currently in the idea room.
	EmitToIdea(ideaID, event string, payload any)
	// EmitToUser delivers to every connection authenticated as userID.
	EmitToUser(userID, event string, payload any)
	// EmitToAll delivers to every registered connection.
	EmitToAll(event string, payload any)
}

var _ Emitter = (*Hub)(nil)
