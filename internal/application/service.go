package application

import (
	"context"
	"expvar"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	repo "github.com/oksasatya/job-recruitment/internal/domain/repository"
)

// transitions counts applied status changes, keyed "<entity>.<action>".
var transitions = expvar.NewMap("recruitment_transitions")

// base carries what every service needs: a unit-of-work boundary, a clock and a logger.
type base struct {
	Tx     repo.Transactor
	Logger *logrus.Logger
	Now    func() time.Time
}

func (b *base) now() time.Time {
	if b.Now == nil {
		return time.Now().UTC()
	}
	return b.Now()
}

func (b *base) withinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if b.Tx == nil {
		return fn(ctx)
	}
	return b.Tx.WithinTx(ctx, fn)
}

func (b *base) applied(kind, id string, action entity.Action, status string) {
	transitions.Add(kind+"."+string(action), 1)
	if b.Logger != nil {
		b.Logger.WithFields(logrus.Fields{
			"entity": kind,
			"id":     id,
			"action": action,
			"status": status,
		}).Info("transition applied")
	}
}

func (b *base) warn(err error, msg string, fields logrus.Fields) {
	if b.Logger != nil {
		b.Logger.WithError(err).WithFields(fields).Warn(msg)
	}
}
