package entity

import (
	"time"

	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

// Recruitment is a job posting owned by a team. ClosedAt is only set while the
// posting is ACTIVATED.
type Recruitment struct {
	ID        string
	TeamID    string
	Title     string
	Content   string
	Status    RecruitmentStatus
	ClosedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewRecruitment(teamID, title, content string, now time.Time) (*Recruitment, error) {
	if isBlank(teamID) {
		return nil, errs.InvalidArgument("recruitment team is required")
	}
	if err := validateRecruitment(title, content); err != nil {
		return nil, err
	}
	return &Recruitment{
		TeamID:    teamID,
		Title:     title,
		Content:   content,
		Status:    RecruitmentCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func validateRecruitment(title, content string) error {
	if isBlank(title) {
		return errs.InvalidArgument("recruitment title is required")
	}
	if isBlank(content) {
		return errs.InvalidArgument("recruitment content is required")
	}
	return nil
}

// Activate opens the posting until closedAt, which must be in the future.
func (r *Recruitment) Activate(closedAt, now time.Time) error {
	next, err := RecruitmentTransition(r.Status, ActionActivate)
	if err != nil {
		return err
	}
	if !closedAt.After(now) {
		return errs.InvalidArgument("closed at %s must be after now", closedAt.Format(time.RFC3339))
	}
	r.Status = next
	r.ClosedAt = &closedAt
	r.UpdatedAt = now
	return nil
}

func (r *Recruitment) Inactivate(now time.Time) error {
	next, err := RecruitmentTransition(r.Status, ActionInactivate)
	if err != nil {
		return err
	}
	r.Status = next
	r.ClosedAt = nil
	r.UpdatedAt = now
	return nil
}

// ExtendClosedAt moves the closing time of an ACTIVATED posting later.
func (r *Recruitment) ExtendClosedAt(closedAt, now time.Time) error {
	if _, err := RecruitmentTransition(r.Status, ActionExtendClosedAt); err != nil {
		return err
	}
	if !closedAt.After(now) {
		return errs.InvalidArgument("closed at %s must be after now", closedAt.Format(time.RFC3339))
	}
	if r.ClosedAt != nil && !closedAt.After(*r.ClosedAt) {
		return errs.InvalidArgument("closed at %s must be after the current %s", closedAt.Format(time.RFC3339), r.ClosedAt.Format(time.RFC3339))
	}
	r.ClosedAt = &closedAt
	r.UpdatedAt = now
	return nil
}

func (r *Recruitment) Update(title, content string, now time.Time) error {
	if _, err := RecruitmentTransition(r.Status, ActionUpdate); err != nil {
		return err
	}
	if err := validateRecruitment(title, content); err != nil {
		return err
	}
	r.Title = title
	r.Content = content
	r.UpdatedAt = now
	return nil
}

func (r *Recruitment) Delete(now time.Time) error {
	next, err := RecruitmentTransition(r.Status, ActionDelete)
	if err != nil {
		return err
	}
	r.Status = next
	r.ClosedAt = nil
	r.UpdatedAt = now
	return nil
}

func (r *Recruitment) IsOwnedBy(teamID string) bool { return teamID != "" && r.TeamID == teamID }

func (r *Recruitment) IsDeleted() bool { return r.Status == RecruitmentDeleted }
