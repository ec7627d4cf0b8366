package v1

import (
	"strings"
	"testing"
	"time"
)

func TestEnvelope_Validate(t *testing.T) {
	t.Parallel()

	valid := Envelope{
		V:    Version,
		Type: TypeJoinIdea,
		ID:   "env-1",
		TS:   time.Now().UTC(),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid envelope, got %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*Envelope)
		wantErr string
	}{
		{name: "missing v", mutate: func(e *Envelope) { e.V = "" }, wantErr: "missing field: v"},
		{name: "wrong version", mutate: func(e *Envelope) { e.V = "v0" }, wantErr: "unsupported protocol version"},
		{name: "missing type", mutate: func(e *Envelope) { e.Type = "" }, wantErr: "missing field: type"},
		{name: "unknown type", mutate: func(e *Envelope) { e.Type = "nope" }, wantErr: "unknown type"},
	}

	for _, tc := range cases {
		env := valid
		tc.mutate(&env)
		err := env.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestEnvelope_Validate_AllKnownTypes(t *testing.T) {
	t.Parallel()

	types := []string{
		TypeJoinIdea,
		TypeLeaveIdea,
		TypeReplyCreated,
		TypeReplyDeleted,
		TypeReplyReaction,
		TypeIdeasUpdated,
		TypeError,
	}

	for _, typ := range types {
		env := Envelope{V: Version, Type: typ}
		if err := env.Validate(); err != nil {
			t.Fatalf("type %q: expected valid, got %v", typ, err)
		}
	}
}
