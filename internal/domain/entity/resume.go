package entity

import (
	"time"

	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

// Resume is an application document owned by a user. DELETED is terminal.
type Resume struct {
	ID              string
	UserID          string
	Title           string
	Content         string
	TrainingHistory string
	Status          ResumeStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewResume(userID, title, content, trainingHistory string, now time.Time) (*Resume, error) {
	if isBlank(userID) {
		return nil, errs.InvalidArgument("resume owner is required")
	}
	if err := validateResume(title, content); err != nil {
		return nil, err
	}
	return &Resume{
		UserID:          userID,
		Title:           title,
		Content:         content,
		TrainingHistory: trainingHistory,
		Status:          ResumeCreated,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func validateResume(title, content string) error {
	if isBlank(title) {
		return errs.InvalidArgument("resume title is required")
	}
	if isBlank(content) {
		return errs.InvalidArgument("resume content is required")
	}
	return nil
}

func (r *Resume) Update(title, content, trainingHistory string, now time.Time) error {
	if _, err := ResumeTransition(r.Status, ActionUpdate); err != nil {
		return err
	}
	if err := validateResume(title, content); err != nil {
		return err
	}
	r.Title = title
	r.Content = content
	r.TrainingHistory = trainingHistory
	r.UpdatedAt = now
	return nil
}

func (r *Resume) Activate(now time.Time) error   { return r.transition(ActionActivate, now) }
func (r *Resume) Inactivate(now time.Time) error { return r.transition(ActionInactivate, now) }
func (r *Resume) Delete(now time.Time) error     { return r.transition(ActionDelete, now) }

func (r *Resume) transition(action Action, now time.Time) error {
	next, err := ResumeTransition(r.Status, action)
	if err != nil {
		return err
	}
	r.Status = next
	r.UpdatedAt = now
	return nil
}

func (r *Resume) IsOwnedBy(userID string) bool { return userID != "" && r.UserID == userID }

func (r *Resume) IsDeleted() bool { return r.Status == ResumeDeleted }
