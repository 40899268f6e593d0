// Package event holds the domain events emitted by application services and
// the envelope they travel in.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Event is a fact produced by a successful mutation.
type Event interface {
	EventName() string
}

// Dispatcher delivers events after the unit of work that produced them commits.
type Dispatcher interface {
	Dispatch(ctx context.Context, events ...Event) error
}

const NameRecruitmentProcessCreated = "recruitment_process.created"

// RecruitmentProcessCreated is emitted when a user applies to a recruitment.
type RecruitmentProcessCreated struct {
	RecruitmentProcessID string `json:"recruitment_process_id"`
}

func (RecruitmentProcessCreated) EventName() string { return NameRecruitmentProcessCreated }

// Envelope is the wire form of an event.
type Envelope struct {
	Name       string          `json:"name"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

func NewEnvelope(ev Event, now time.Time) (Envelope, error) {
	b, err := json.Marshal(ev)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s: %w", ev.EventName(), err)
	}
	return Envelope{Name: ev.EventName(), OccurredAt: now.UTC(), Payload: b}, nil
}

// Decode turns an envelope back into its typed event.
func Decode(env Envelope) (Event, error) {
	switch env.Name {
	case NameRecruitmentProcessCreated:
		var ev RecruitmentProcessCreated
		if err := json.Unmarshal(env.Payload, &ev); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Name, err)
		}
		return ev, nil
	default:
		return nil, fmt.Errorf("unknown event %q", env.Name)
	}
}
