package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
	repo "github.com/oksasatya/job-recruitment/internal/domain/repository"
)

type ReviewService struct {
	base
	Reviews repo.ReviewRepository
	Teams   repo.TeamRepository
	Users   repo.UserRepository
}

func NewReviewService(reviews repo.ReviewRepository, teams repo.TeamRepository, users repo.UserRepository, tx repo.Transactor, logger *logrus.Logger) *ReviewService {
	return &ReviewService{
		base:    base{Tx: tx, Logger: logger},
		Reviews: reviews,
		Teams:   teams,
		Users:   users,
	}
}

// Create writes a review of an ACTIVATED team and returns it with the team's
// recomputed average point.
func (s *ReviewService) Create(ctx context.Context, userID, teamID, content string, score int64) (*entity.Review, *entity.Team, error) {
	var (
		review *entity.Review
		team   *entity.Team
	)
	err := s.withinTx(ctx, func(ctx context.Context) error {
		u, err := s.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		t, err := s.Teams.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		if !t.IsActivated() {
			return errs.InvalidState("team %s is inactivated", t.ID)
		}
		r, err := entity.NewReview(u.ID, t.ID, content, score, s.now())
		if err != nil {
			return err
		}
		if err := s.Reviews.Create(ctx, r); err != nil {
			return err
		}
		if t, err = s.recompute(ctx, t.ID); err != nil {
			return err
		}
		review, team = r, t
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"review_id":     review.ID,
			"team_id":       team.ID,
			"average_point": team.AveragePoint,
		}).Info("review created")
	}
	return review, team, nil
}

func (s *ReviewService) Update(ctx context.Context, reviewID, userID, content string, score int64) (*entity.Review, *entity.Team, error) {
	return s.mutate(ctx, reviewID, userID, entity.ActionUpdate, func(r *entity.Review, now time.Time) error {
		return r.Update(content, score, now)
	})
}

func (s *ReviewService) Activate(ctx context.Context, reviewID, userID string) (*entity.Review, *entity.Team, error) {
	return s.mutate(ctx, reviewID, userID, entity.ActionActivate, func(r *entity.Review, now time.Time) error {
		return r.Activate(now)
	})
}

func (s *ReviewService) Inactivate(ctx context.Context, reviewID, userID string) (*entity.Review, *entity.Team, error) {
	return s.mutate(ctx, reviewID, userID, entity.ActionInactivate, func(r *entity.Review, now time.Time) error {
		return r.Inactivate(now)
	})
}

func (s *ReviewService) mutate(ctx context.Context, reviewID, userID string, action entity.Action, fn func(r *entity.Review, now time.Time) error) (*entity.Review, *entity.Team, error) {
	var (
		review *entity.Review
		team   *entity.Team
	)
	err := s.withinTx(ctx, func(ctx context.Context) error {
		r, err := s.Reviews.GetByID(ctx, reviewID)
		if err != nil {
			return err
		}
		if !r.IsWrittenBy(userID) {
			return errs.Unauthorized("user %s did not write review %s", userID, reviewID)
		}
		if err := fn(r, s.now()); err != nil {
			return err
		}
		if err := s.Reviews.Update(ctx, r); err != nil {
			return err
		}
		t, err := s.recompute(ctx, r.TeamID)
		if err != nil {
			return err
		}
		review, team = r, t
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	s.applied("review", review.ID, action, string(review.Status))
	return review, team, nil
}

// recompute sets the team's average point to the mean score of its ACTIVATED
// reviews, 0 when there are none.
func (s *ReviewService) recompute(ctx context.Context, teamID string) (*entity.Team, error) {
	t, err := s.Teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	active, err := s.Reviews.ListByTeamAndStatus(ctx, teamID, entity.StatusActivated)
	if err != nil {
		return nil, err
	}
	if err := t.ApplyAveragePoint(entity.AverageScore(active), s.now()); err != nil {
		return nil, err
	}
	if err := s.Teams.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
