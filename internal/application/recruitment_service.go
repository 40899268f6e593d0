package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
	repo "github.com/oksasatya/job-recruitment/internal/domain/repository"
)

// RecruitmentIndex is a full-text index over recruitments.
type RecruitmentIndex interface {
	Index(ctx context.Context, r *entity.Recruitment) error
	Delete(ctx context.Context, id string) error
	// Search returns the ids of the best matches, best first.
	Search(ctx context.Context, query string, size int) ([]string, error)
}

type RecruitmentService struct {
	base
	Recruitments repo.RecruitmentRepository
	Teams        repo.TeamRepository
	Index        RecruitmentIndex
}

func NewRecruitmentService(recruitments repo.RecruitmentRepository, teams repo.TeamRepository, tx repo.Transactor, index RecruitmentIndex, logger *logrus.Logger) *RecruitmentService {
	return &RecruitmentService{
		base:         base{Tx: tx, Logger: logger},
		Recruitments: recruitments,
		Teams:        teams,
		Index:        index,
	}
}

// Create opens a recruitment in CREATED state for an ACTIVATED team led by leaderID.
func (s *RecruitmentService) Create(ctx context.Context, teamID, leaderID, title, content string) (*entity.Recruitment, error) {
	var out *entity.Recruitment
	err := s.withinTx(ctx, func(ctx context.Context) error {
		t, err := s.Teams.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		if !t.IsLeader(leaderID) {
			return errs.Unauthorized("user %s does not lead team %s", leaderID, teamID)
		}
		if !t.IsActivated() {
			return errs.InvalidState("team %s is inactivated", teamID)
		}
		r, err := entity.NewRecruitment(t.ID, title, content, s.now())
		if err != nil {
			return err
		}
		if err := s.Recruitments.Create(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"recruitment_id": out.ID, "team_id": out.TeamID}).Info("recruitment created")
	}
	s.reindex(ctx, out)
	return out, nil
}

func (s *RecruitmentService) Get(ctx context.Context, recruitmentID string) (*entity.Recruitment, error) {
	return s.Recruitments.GetByID(ctx, recruitmentID)
}

func (s *RecruitmentService) ListByTeam(ctx context.Context, teamID string) ([]*entity.Recruitment, error) {
	if _, err := s.Teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.Recruitments.ListByTeam(ctx, teamID)
}

func (s *RecruitmentService) Update(ctx context.Context, recruitmentID, teamID, leaderID, title, content string) (*entity.Recruitment, error) {
	return s.mutate(ctx, recruitmentID, teamID, leaderID, entity.ActionUpdate, func(r *entity.Recruitment, now time.Time) error {
		return r.Update(title, content, now)
	})
}

func (s *RecruitmentService) Activate(ctx context.Context, recruitmentID, teamID, leaderID string, closedAt time.Time) (*entity.Recruitment, error) {
	return s.mutate(ctx, recruitmentID, teamID, leaderID, entity.ActionActivate, func(r *entity.Recruitment, now time.Time) error {
		return r.Activate(closedAt, now)
	})
}

func (s *RecruitmentService) Inactivate(ctx context.Context, recruitmentID, teamID, leaderID string) (*entity.Recruitment, error) {
	return s.mutate(ctx, recruitmentID, teamID, leaderID, entity.ActionInactivate, func(r *entity.Recruitment, now time.Time) error {
		return r.Inactivate(now)
	})
}

func (s *RecruitmentService) ExtendClosedAt(ctx context.Context, recruitmentID, teamID, leaderID string, closedAt time.Time) (*entity.Recruitment, error) {
	return s.mutate(ctx, recruitmentID, teamID, leaderID, entity.ActionExtendClosedAt, func(r *entity.Recruitment, now time.Time) error {
		return r.ExtendClosedAt(closedAt, now)
	})
}

func (s *RecruitmentService) Delete(ctx context.Context, recruitmentID, teamID, leaderID string) (*entity.Recruitment, error) {
	return s.mutate(ctx, recruitmentID, teamID, leaderID, entity.ActionDelete, func(r *entity.Recruitment, now time.Time) error {
		return r.Delete(now)
	})
}

// mutate loads the recruitment, checks that leaderID leads teamID and that
// teamID owns the recruitment, then applies fn.
func (s *RecruitmentService) mutate(ctx context.Context, recruitmentID, teamID, leaderID string, action entity.Action, fn func(r *entity.Recruitment, now time.Time) error) (*entity.Recruitment, error) {
	var out *entity.Recruitment
	err := s.withinTx(ctx, func(ctx context.Context) error {
		r, err := s.Recruitments.GetByID(ctx, recruitmentID)
		if err != nil {
			return err
		}
		if err := authorizeTeam(ctx, s.Teams, r, teamID, leaderID); err != nil {
			return err
		}
		if err := fn(r, s.now()); err != nil {
			return err
		}
		if err := s.Recruitments.Update(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.applied("recruitment", out.ID, action, string(out.Status))
	s.reindex(ctx, out)
	return out, nil
}

// authorizeTeam requires leaderID to lead teamID and teamID to own r.
func authorizeTeam(ctx context.Context, teams repo.TeamRepository, r *entity.Recruitment, teamID, leaderID string) error {
	t, err := teams.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if !t.IsLeader(leaderID) {
		return errs.Unauthorized("user %s does not lead team %s", leaderID, teamID)
	}
	if !r.IsOwnedBy(t.ID) {
		return errs.Unauthorized("team %s does not own recruitment %s", teamID, r.ID)
	}
	return nil
}

// reindex keeps the search index in step after commit. Index failures are
// logged and never fail the mutation.
func (s *RecruitmentService) reindex(ctx context.Context, r *entity.Recruitment) {
	if s.Index == nil {
		return
	}
	var err error
	if r.IsDeleted() {
		err = s.Index.Delete(ctx, r.ID)
	} else {
		err = s.Index.Index(ctx, r)
	}
	if err != nil {
		s.warn(err, "recruitment index failed", logrus.Fields{"recruitment_id": r.ID})
	}
}

// Search runs a full-text query and returns the matching recruitments that are
// still open. Ids the index returns but the store no longer has are skipped.
func (s *RecruitmentService) Search(ctx context.Context, query string, size int) ([]*entity.Recruitment, error) {
	if s.Index == nil {
		return []*entity.Recruitment{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	ids, err := s.Index.Search(ctx, query, size)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Recruitment, 0, len(ids))
	for _, id := range ids {
		r, err := s.Recruitments.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if r.Status != entity.RecruitmentActivated {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
