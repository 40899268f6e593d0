package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeCarriesProcessID(t *testing.T) {
	at := time.Date(2026, 1, 1, 9, 0, 0, 0, time.FixedZone("KST", 9*3600))

	env, err := NewEnvelope(RecruitmentProcessCreated{RecruitmentProcessID: "p-1"}, at)
	require.NoError(t, err)

	assert.Equal(t, NameRecruitmentProcessCreated, env.Name)
	assert.Equal(t, time.UTC, env.OccurredAt.Location())
	assert.JSONEq(t, `{"recruitment_process_id":"p-1"}`, string(env.Payload))

	ev, err := Decode(env)
	require.NoError(t, err)
	assert.Equal(t, RecruitmentProcessCreated{RecruitmentProcessID: "p-1"}, ev)
}

func TestDecodeRejectsUnknownEvent(t *testing.T) {
	_, err := Decode(Envelope{Name: "team.exploded", Payload: json.RawMessage(`{}`)})
	assert.Error(t, err)

	_, err = Decode(Envelope{Name: NameRecruitmentProcessCreated, Payload: json.RawMessage(`[`)})
	assert.Error(t, err)
}
