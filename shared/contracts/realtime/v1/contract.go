// Package v1 defines the Spark Realtime Protocol v1 contract.
//
// This package is intentionally stable and dependency-light.
// It is shared between server and clients to keep the wire protocol authoritative.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Version is the protocol version identifier embedded into every envelope.
const Version = "v1"

// Control types (client -> server).
const (
	// TypeJoinIdea subscribes the connection to an idea room.
	TypeJoinIdea = "join:idea"
	// TypeLeaveIdea unsubscribes the connection from an idea room.
	TypeLeaveIdea = "leave:idea"
)

// Event types (server -> client).
const (
	// TypeReplyCreated carries the full reply record, scoped to one idea room.
	TypeReplyCreated = "reply:created"
	// TypeReplyDeleted carries the deleted reply id, scoped to one idea room.
	TypeReplyDeleted = "reply:deleted"
	// TypeReplyReaction carries the updated reaction set of a reply, scoped to one idea room.
	TypeReplyReaction = "reply:reaction"
	// TypeIdeasUpdated signals that an idea summary changed and the list should be refetched.
	// It is broadcast to all connections and deliberately carries only the idea id.
	TypeIdeasUpdated = "ideas:updated"

	// TypeError is a generic error envelope (server -> client).
	TypeError = "error"
)

// Envelope is the canonical wire wrapper.
type Envelope struct {
	V       string          `json:"v"`
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	TS      time.Time       `json:"ts,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Validate performs strict structural validation for an Envelope.
func (e Envelope) Validate() error {
	if strings.TrimSpace(e.V) == "" {
		return errors.New("missing field: v")
	}
	if e.V != Version {
		return fmt.Errorf("unsupported protocol version: %q", e.V)
	}
	if strings.TrimSpace(e.Type) == "" {
		return errors.New("missing field: type")
	}

	switch e.Type {
	case TypeJoinIdea,
		TypeLeaveIdea,
		TypeReplyCreated,
		TypeReplyDeleted,
		TypeReplyReaction,
		TypeIdeasUpdated,
		TypeError:
		return nil
	default:
		return fmt.Errorf("unknown type: %q", e.Type)
	}
}

// ---- Payloads ----

// IdeaScopePayload names the idea room for join/leave requests and their echoes.
type IdeaScopePayload struct {
	IdeaID string `json:"idea_id"`
}

// ReplyDeletedPayload identifies a removed reply.
type ReplyDeletedPayload struct {
	ID string `json:"id"`
}

// ReplyReactionPayload carries the full reaction set of a reply after a change.
// Reactions stay opaque here: their shape is owned by the REST layer that emits them.
type ReplyReactionPayload struct {
	ReplyID   string          `json:"reply_id"`
	Reactions json.RawMessage `json:"reactions"`
}

// IdeasUpdatedPayload signals which idea changed. Clients refetch instead of
// receiving the record, so no idea-level authorization is needed at this layer.
type IdeasUpdatedPayload struct {
	IdeaID string `json:"idea_id"`
}

// ErrorPayload is a generic error response payload.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
