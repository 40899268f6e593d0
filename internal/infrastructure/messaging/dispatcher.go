// Package messaging delivers domain events outside the process.
package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/internal/domain/event"
)

// Publisher sends one JSON message. helpers.RabbitPublisher satisfies it.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// RabbitDispatcher wraps each event in an envelope and publishes it to the events queue.
type RabbitDispatcher struct {
	Pub    Publisher
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewRabbitDispatcher(pub Publisher, logger *logrus.Logger) *RabbitDispatcher {
	return &RabbitDispatcher{Pub: pub, Logger: logger, Now: time.Now}
}

func (d *RabbitDispatcher) Dispatch(ctx context.Context, events ...event.Event) error {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	for _, ev := range events {
		env, err := event.NewEnvelope(ev, now())
		if err != nil {
			return err
		}
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = d.Pub.PublishJSON(c, env)
		cancel()
		if err != nil {
			return fmt.Errorf("publish %s: %w", env.Name, err)
		}
		if d.Logger != nil {
			d.Logger.WithField("event", env.Name).Debug("event published")
		}
	}
	return nil
}

// LogDispatcher only logs events. Used when no broker is configured.
type LogDispatcher struct {
	Logger *logrus.Logger
}

func (d LogDispatcher) Dispatch(_ context.Context, events ...event.Event) error {
	if d.Logger == nil {
		return nil
	}
	for _, ev := range events {
		d.Logger.WithFields(logrus.Fields{"event": ev.EventName(), "payload": ev}).Info("event dispatched")
	}
	return nil
}

var (
	_ event.Dispatcher = (*RabbitDispatcher)(nil)
	_ event.Dispatcher = LogDispatcher{}
)
