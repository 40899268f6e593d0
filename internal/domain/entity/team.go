package entity

import (
	"math"
	"time"

	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

// Bounds of a team's average review point.
const (
	MinAveragePoint = 0
	MaxAveragePoint = 5
)

// Team is an organization led by a single user. LeaderID is a reference, the
// leader is loaded through the user repository when needed.
type Team struct {
	ID           string
	Name         string
	Description  string
	Logo         string
	MemberNum    int64
	LeaderID     string
	AveragePoint int64
	Status       ActivationStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewTeam(name, description, logo string, memberNum int64, leaderID string, now time.Time) (*Team, error) {
	if err := validateTeam(name, memberNum); err != nil {
		return nil, err
	}
	if isBlank(leaderID) {
		return nil, errs.InvalidArgument("team leader is required")
	}
	return &Team{
		Name:         name,
		Description:  description,
		Logo:         logo,
		MemberNum:    memberNum,
		LeaderID:     leaderID,
		AveragePoint: 0,
		Status:       StatusActivated,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func validateTeam(name string, memberNum int64) error {
	if isBlank(name) {
		return errs.InvalidArgument("team name is required")
	}
	if memberNum < 0 {
		return errs.InvalidArgument("member count must not be negative, got %d", memberNum)
	}
	return nil
}

// Update changes the profile of an ACTIVATED team.
func (t *Team) Update(name, description string, memberNum int64, now time.Time) error {
	if _, err := ActivationTransition(t.Status, ActionUpdate); err != nil {
		return err
	}
	if err := validateTeam(name, memberNum); err != nil {
		return err
	}
	t.Name = name
	t.Description = description
	t.MemberNum = memberNum
	t.UpdatedAt = now
	return nil
}

func (t *Team) ChangeLogo(url string, now time.Time) error {
	if _, err := ActivationTransition(t.Status, ActionUpdate); err != nil {
		return err
	}
	if isBlank(url) {
		return errs.InvalidArgument("logo url is required")
	}
	t.Logo = url
	t.UpdatedAt = now
	return nil
}

// ApplyAveragePoint stores point rounded to the nearest integer. How the point
// is computed is up to the caller.
func (t *Team) ApplyAveragePoint(point float64, now time.Time) error {
	if math.IsNaN(point) || point < MinAveragePoint || point > MaxAveragePoint {
		return errs.InvalidArgument("average point must be within [%d, %d], got %v", MinAveragePoint, MaxAveragePoint, point)
	}
	t.AveragePoint = int64(math.Round(point))
	t.UpdatedAt = now
	return nil
}

func (t *Team) Activate(now time.Time) error {
	return t.transition(ActionActivate, now)
}

func (t *Team) Inactivate(now time.Time) error {
	return t.transition(ActionInactivate, now)
}

func (t *Team) transition(action Action, now time.Time) error {
	next, err := ActivationTransition(t.Status, action)
	if err != nil {
		return err
	}
	t.Status = next
	t.UpdatedAt = now
	return nil
}

func (t *Team) IsLeader(userID string) bool { return userID != "" && t.LeaderID == userID }

func (t *Team) IsActivated() bool { return t.Status == StatusActivated }
