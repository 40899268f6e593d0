package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
	repo "github.com/oksasatya/job-recruitment/internal/domain/repository"
)

type ResumeService struct {
	base
	Resumes repo.ResumeRepository
	Users   repo.UserRepository
}

func NewResumeService(resumes repo.ResumeRepository, users repo.UserRepository, tx repo.Transactor, logger *logrus.Logger) *ResumeService {
	return &ResumeService{
		base:    base{Tx: tx, Logger: logger},
		Resumes: resumes,
		Users:   users,
	}
}

type ResumeInput struct {
	Title           string
	Content         string
	TrainingHistory string
}

func (s *ResumeService) Create(ctx context.Context, userID string, in ResumeInput) (*entity.Resume, error) {
	var out *entity.Resume
	err := s.withinTx(ctx, func(ctx context.Context) error {
		u, err := s.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		r, err := entity.NewResume(u.ID, in.Title, in.Content, in.TrainingHistory, s.now())
		if err != nil {
			return err
		}
		if err := s.Resumes.Create(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"resume_id": out.ID, "user_id": out.UserID}).Info("resume created")
	}
	return out, nil
}

// Get returns a resume to its owner only.
func (s *ResumeService) Get(ctx context.Context, resumeID, userID string) (*entity.Resume, error) {
	r, err := s.Resumes.GetByID(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if !r.IsOwnedBy(userID) {
		return nil, errs.Unauthorized("user %s does not own resume %s", userID, resumeID)
	}
	return r, nil
}

func (s *ResumeService) ListByUser(ctx context.Context, userID string) ([]*entity.Resume, error) {
	return s.Resumes.ListByUser(ctx, userID)
}

func (s *ResumeService) Update(ctx context.Context, resumeID, userID string, in ResumeInput) (*entity.Resume, error) {
	return s.mutate(ctx, resumeID, userID, entity.ActionUpdate, func(r *entity.Resume, now time.Time) error {
		return r.Update(in.Title, in.Content, in.TrainingHistory, now)
	})
}

func (s *ResumeService) Activate(ctx context.Context, resumeID, userID string) (*entity.Resume, error) {
	return s.mutate(ctx, resumeID, userID, entity.ActionActivate, func(r *entity.Resume, now time.Time) error {
		return r.Activate(now)
	})
}

func (s *ResumeService) Inactivate(ctx context.Context, resumeID, userID string) (*entity.Resume, error) {
	return s.mutate(ctx, resumeID, userID, entity.ActionInactivate, func(r *entity.Resume, now time.Time) error {
		return r.Inactivate(now)
	})
}

func (s *ResumeService) Delete(ctx context.Context, resumeID, userID string) (*entity.Resume, error) {
	return s.mutate(ctx, resumeID, userID, entity.ActionDelete, func(r *entity.Resume, now time.Time) error {
		return r.Delete(now)
	})
}

func (s *ResumeService) mutate(ctx context.Context, resumeID, userID string, action entity.Action, fn func(r *entity.Resume, now time.Time) error) (*entity.Resume, error) {
	var out *entity.Resume
	err := s.withinTx(ctx, func(ctx context.Context) error {
		r, err := s.Resumes.GetByID(ctx, resumeID)
		if err != nil {
			return err
		}
		if !r.IsOwnedBy(userID) {
			return errs.Unauthorized("user %s does not own resume %s", userID, resumeID)
		}
		if err := fn(r, s.now()); err != nil {
			return err
		}
		if err := s.Resumes.Update(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.applied("resume", out.ID, action, string(out.Status))
	return out, nil
}
