package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/job-recruitment/internal/domain/event"
)

type fakePublisher struct {
	bodies []any
	err    error
}

func (p *fakePublisher) PublishJSON(ctx context.Context, body any) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	if p.err != nil {
		return p.err
	}
	p.bodies = append(p.bodies, body)
	return nil
}

func TestRabbitDispatcherPublishesEnvelopes(t *testing.T) {
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	pub := &fakePublisher{}
	d := NewRabbitDispatcher(pub, nil)
	d.Now = func() time.Time { return at }

	err := d.Dispatch(context.Background(),
		event.RecruitmentProcessCreated{RecruitmentProcessID: "p-1"},
		event.RecruitmentProcessCreated{RecruitmentProcessID: "p-2"},
	)
	require.NoError(t, err)
	require.Len(t, pub.bodies, 2)

	env, ok := pub.bodies[0].(event.Envelope)
	require.True(t, ok)
	assert.Equal(t, event.NameRecruitmentProcessCreated, env.Name)
	assert.Equal(t, at, env.OccurredAt)
	assert.JSONEq(t, `{"recruitment_process_id":"p-1"}`, string(env.Payload))
}

func TestRabbitDispatcherWrapsPublishError(t *testing.T) {
	boom := errors.New("channel closed")
	d := NewRabbitDispatcher(&fakePublisher{err: boom}, nil)

	err := d.Dispatch(context.Background(), event.RecruitmentProcessCreated{RecruitmentProcessID: "p-1"})

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), event.NameRecruitmentProcessCreated)
}

func TestLogDispatcher(t *testing.T) {
	logger, hook := logtest.NewNullLogger()

	err := LogDispatcher{Logger: logger}.Dispatch(context.Background(), event.RecruitmentProcessCreated{RecruitmentProcessID: "p-1"})
	require.NoError(t, err)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, event.NameRecruitmentProcessCreated, hook.LastEntry().Data["event"])
}
