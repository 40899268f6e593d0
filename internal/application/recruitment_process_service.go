package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
	"github.com/oksasatya/job-recruitment/internal/domain/event"
	repo "github.com/oksasatya/job-recruitment/internal/domain/repository"
)

type RecruitmentProcessService struct {
	base
	Processes    repo.RecruitmentProcessRepository
	Recruitments repo.RecruitmentRepository
	Teams        repo.TeamRepository
	Users        repo.UserRepository
	Resumes      repo.ResumeRepository
	Events       event.Dispatcher
}

func NewRecruitmentProcessService(
	processes repo.RecruitmentProcessRepository,
	recruitments repo.RecruitmentRepository,
	teams repo.TeamRepository,
	users repo.UserRepository,
	resumes repo.ResumeRepository,
	tx repo.Transactor,
	events event.Dispatcher,
	logger *logrus.Logger,
) *RecruitmentProcessService {
	return &RecruitmentProcessService{
		base:         base{Tx: tx, Logger: logger},
		Processes:    processes,
		Recruitments: recruitments,
		Teams:        teams,
		Users:        users,
		Resumes:      resumes,
		Events:       events,
	}
}

// Create applies userID to a recruitment with one of their resumes. Once the
// unit of work commits the pending events are dispatched.
func (s *RecruitmentProcessService) Create(ctx context.Context, recruitmentID, userID, resumeID string) (*entity.RecruitmentProcess, error) {
	p, pending, err := s.Apply(ctx, recruitmentID, userID, resumeID)
	if err != nil {
		return nil, err
	}
	s.dispatch(ctx, pending...)
	return p, nil
}

// Apply commits the new process and returns the events it produced without
// delivering them.
func (s *RecruitmentProcessService) Apply(ctx context.Context, recruitmentID, userID, resumeID string) (*entity.RecruitmentProcess, []event.Event, error) {
	var out *entity.RecruitmentProcess
	err := s.withinTx(ctx, func(ctx context.Context) error {
		rec, err := s.Recruitments.GetByID(ctx, recruitmentID)
		if err != nil {
			return err
		}
		u, err := s.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		res, err := s.Resumes.GetByID(ctx, resumeID)
		if err != nil {
			return err
		}
		if !res.IsOwnedBy(u.ID) {
			return errs.Unauthorized("user %s does not own resume %s", u.ID, res.ID)
		}
		if res.IsDeleted() {
			return errs.InvalidState("resume %s is deleted", res.ID)
		}
		if rec.IsDeleted() {
			return errs.InvalidState("recruitment %s is deleted", rec.ID)
		}
		p, err := entity.NewRecruitmentProcess(rec.ID, u.ID, res.ID, s.now())
		if err != nil {
			return err
		}
		if err := s.Processes.Create(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"recruitment_process_id": out.ID,
			"recruitment_id":         out.RecruitmentID,
			"user_id":                out.UserID,
		}).Info("recruitment process created")
	}
	return out, []event.Event{event.RecruitmentProcessCreated{RecruitmentProcessID: out.ID}}, nil
}

func (s *RecruitmentProcessService) dispatch(ctx context.Context, events ...event.Event) {
	if s.Events == nil || len(events) == 0 {
		return
	}
	if err := s.Events.Dispatch(ctx, events...); err != nil {
		s.warn(err, "event dispatch failed", logrus.Fields{"events": len(events)})
	}
}

func (s *RecruitmentProcessService) Get(ctx context.Context, processID string) (*entity.RecruitmentProcess, error) {
	return s.Processes.GetByID(ctx, processID)
}

// ListByRecruitment lists the applications to a recruitment for the team that owns it.
func (s *RecruitmentProcessService) ListByRecruitment(ctx context.Context, recruitmentID, teamID, leaderID string) ([]*entity.RecruitmentProcess, error) {
	rec, err := s.Recruitments.GetByID(ctx, recruitmentID)
	if err != nil {
		return nil, err
	}
	if err := authorizeTeam(ctx, s.Teams, rec, teamID, leaderID); err != nil {
		return nil, err
	}
	return s.Processes.ListByRecruitment(ctx, recruitmentID)
}

func (s *RecruitmentProcessService) InProgress(ctx context.Context, processID, teamID, leaderID string) (*entity.RecruitmentProcess, error) {
	return s.transition(ctx, processID, teamID, leaderID, entity.ActionInProgress, (*entity.RecruitmentProcess).InProgress)
}

func (s *RecruitmentProcessService) Pass(ctx context.Context, processID, teamID, leaderID string) (*entity.RecruitmentProcess, error) {
	return s.transition(ctx, processID, teamID, leaderID, entity.ActionPass, (*entity.RecruitmentProcess).Pass)
}

func (s *RecruitmentProcessService) Cancel(ctx context.Context, processID, teamID, leaderID string) (*entity.RecruitmentProcess, error) {
	return s.transition(ctx, processID, teamID, leaderID, entity.ActionCancel, (*entity.RecruitmentProcess).Cancel)
}

func (s *RecruitmentProcessService) Fail(ctx context.Context, processID, teamID, leaderID string) (*entity.RecruitmentProcess, error) {
	return s.transition(ctx, processID, teamID, leaderID, entity.ActionFail, (*entity.RecruitmentProcess).Fail)
}

// transition authorizes the acting team against the process's recruitment and
// only then invokes the state change.
func (s *RecruitmentProcessService) transition(ctx context.Context, processID, teamID, leaderID string, action entity.Action, apply func(*entity.RecruitmentProcess, time.Time) error) (*entity.RecruitmentProcess, error) {
	var out *entity.RecruitmentProcess
	err := s.withinTx(ctx, func(ctx context.Context) error {
		p, err := s.Processes.GetByID(ctx, processID)
		if err != nil {
			return err
		}
		rec, err := s.Recruitments.GetByID(ctx, p.RecruitmentID)
		if err != nil {
			return err
		}
		if err := authorizeTeam(ctx, s.Teams, rec, teamID, leaderID); err != nil {
			return err
		}
		if err := apply(p, s.now()); err != nil {
			return err
		}
		if err := s.Processes.Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.applied("recruitment_process", out.ID, action, string(out.Status))
	return out, nil
}
