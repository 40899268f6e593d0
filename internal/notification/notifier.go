// Package notification reacts to domain events delivered by the event worker.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/config"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
	"github.com/oksasatya/job-recruitment/internal/domain/event"
	repo "github.com/oksasatya/job-recruitment/internal/domain/repository"
	mailtpl "github.com/oksasatya/job-recruitment/pkg/mailer/templates"
)

// Sender delivers one rendered email. mailer.Mailgun satisfies it.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// ErrPermanent marks failures that will not go away on redelivery.
var ErrPermanent = errors.New("permanent notification failure")

type Notifier struct {
	Processes    repo.RecruitmentProcessRepository
	Recruitments repo.RecruitmentRepository
	Teams        repo.TeamRepository
	Users        repo.UserRepository
	Resumes      repo.ResumeRepository
	Sender       Sender
	Config       *config.Config
	Logger       *logrus.Logger
}

// Handle decodes env and runs the matching reaction.
func (n *Notifier) Handle(ctx context.Context, env event.Envelope) error {
	ev, err := event.Decode(env)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPermanent, err)
	}
	switch e := ev.(type) {
	case event.RecruitmentProcessCreated:
		return n.processCreated(ctx, e, env.OccurredAt)
	default:
		return fmt.Errorf("%w: no handler for %s", ErrPermanent, env.Name)
	}
}

// processCreated mails the team leader about a new application.
func (n *Notifier) processCreated(ctx context.Context, e event.RecruitmentProcessCreated, at time.Time) error {
	p, err := n.Processes.GetByID(ctx, e.RecruitmentProcessID)
	if err != nil {
		return permanentIfMissing(err)
	}
	rec, err := n.Recruitments.GetByID(ctx, p.RecruitmentID)
	if err != nil {
		return permanentIfMissing(err)
	}
	team, err := n.Teams.GetByID(ctx, rec.TeamID)
	if err != nil {
		return permanentIfMissing(err)
	}
	leader, err := n.Users.GetByID(ctx, team.LeaderID)
	if err != nil {
		return permanentIfMissing(err)
	}
	applicant, err := n.Users.GetByID(ctx, p.UserID)
	if err != nil {
		return permanentIfMissing(err)
	}
	resume, err := n.Resumes.GetByID(ctx, p.ResumeID)
	if err != nil {
		return permanentIfMissing(err)
	}

	data := mailtpl.NewProcessCreatedData(n.Config, leader.Nickname, leader.Email,
		mailtpl.WithApplicant(applicant.Nickname, applicant.Email),
		mailtpl.WithRecruitment(team.Name, rec.Title),
		mailtpl.WithResume(resume.Title),
		mailtpl.WithProcessID(p.ID),
		mailtpl.WithAppliedAt(at),
	)
	subject, text, html, err := mailtpl.Render(mailtpl.ProcessCreated, data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPermanent, err)
	}

	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := n.Sender.Send(c, leader.Email, subject, text, html); err != nil {
		return fmt.Errorf("send to %s: %w", leader.Email, err)
	}
	if n.Logger != nil {
		n.Logger.WithFields(logrus.Fields{
			"recruitment_process_id": p.ID,
			"team_id":                team.ID,
		}).Info("process created notification sent")
	}
	return nil
}

func permanentIfMissing(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrPermanent, err)
	}
	return err
}
