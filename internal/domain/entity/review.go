package entity

import (
	"time"

	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

// Accepted review scores.
const (
	MinReviewScore = 1
	MaxReviewScore = 5
)

// Review is a user's rating of a team. Only ACTIVATED reviews count toward the
// team's average point.
type Review struct {
	ID        string
	UserID    string
	TeamID    string
	Content   string
	Score     int64
	Status    ActivationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReview(userID, teamID, content string, score int64, now time.Time) (*Review, error) {
	if isBlank(userID) {
		return nil, errs.InvalidArgument("review author is required")
	}
	if isBlank(teamID) {
		return nil, errs.InvalidArgument("review team is required")
	}
	if err := validateReview(content, score); err != nil {
		return nil, err
	}
	return &Review{
		UserID:    userID,
		TeamID:    teamID,
		Content:   content,
		Score:     score,
		Status:    StatusActivated,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func validateReview(content string, score int64) error {
	if isBlank(content) {
		return errs.InvalidArgument("review content is required")
	}
	if score < MinReviewScore || score > MaxReviewScore {
		return errs.InvalidArgument("score must be within [%d, %d], got %d", MinReviewScore, MaxReviewScore, score)
	}
	return nil
}

func (r *Review) Update(content string, score int64, now time.Time) error {
	if _, err := ActivationTransition(r.Status, ActionUpdate); err != nil {
		return err
	}
	if err := validateReview(content, score); err != nil {
		return err
	}
	r.Content = content
	r.Score = score
	r.UpdatedAt = now
	return nil
}

func (r *Review) Activate(now time.Time) error   { return r.transition(ActionActivate, now) }
func (r *Review) Inactivate(now time.Time) error { return r.transition(ActionInactivate, now) }

func (r *Review) transition(action Action, now time.Time) error {
	next, err := ActivationTransition(r.Status, action)
	if err != nil {
		return err
	}
	r.Status = next
	r.UpdatedAt = now
	return nil
}

func (r *Review) IsWrittenBy(userID string) bool { return userID != "" && r.UserID == userID }

func (r *Review) IsActivated() bool { return r.Status == StatusActivated }

// AverageScore is the mean score of the ACTIVATED reviews, 0 when there are none.
func AverageScore(reviews []*Review) float64 {
	var sum, n int64
	for _, r := range reviews {
		if !r.IsActivated() {
			continue
		}
		sum += r.Score
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
