package entity

import (
	"time"

	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

// RecruitmentProcess tracks one application: a user's resume submitted to a
// recruitment. It references, but does not own, all three.
//
//	CREATED -> IN_PROGRESS -> PASSED
//	CREATED -> CANCELED
//	CREATED | IN_PROGRESS -> FAILED
type RecruitmentProcess struct {
	ID            string
	RecruitmentID string
	UserID        string
	ResumeID      string
	Status        ProcessStatus
	ClosedAt      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewRecruitmentProcess(recruitmentID, userID, resumeID string, now time.Time) (*RecruitmentProcess, error) {
	if isBlank(recruitmentID) {
		return nil, errs.InvalidArgument("recruitment is required")
	}
	if isBlank(userID) {
		return nil, errs.InvalidArgument("user is required")
	}
	if isBlank(resumeID) {
		return nil, errs.InvalidArgument("resume is required")
	}
	return &RecruitmentProcess{
		RecruitmentID: recruitmentID,
		UserID:        userID,
		ResumeID:      resumeID,
		Status:        ProcessCreated,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// InProgress marks the documents as passed; the interview stage begins.
func (p *RecruitmentProcess) InProgress(now time.Time) error {
	return p.transition(ActionInProgress, now)
}

func (p *RecruitmentProcess) Pass(now time.Time) error {
	return p.transition(ActionPass, now)
}

func (p *RecruitmentProcess) Cancel(now time.Time) error {
	return p.transition(ActionCancel, now)
}

func (p *RecruitmentProcess) Fail(now time.Time) error {
	return p.transition(ActionFail, now)
}

func (p *RecruitmentProcess) transition(action Action, now time.Time) error {
	next, err := ProcessTransition(p.Status, action)
	if err != nil {
		return err
	}
	p.Status = next
	if next == ProcessCanceled || next == ProcessFailed {
		closedAt := now
		p.ClosedAt = &closedAt
	}
	p.UpdatedAt = now
	return nil
}

// IsClosed reports whether the process reached a terminal status.
func (p *RecruitmentProcess) IsClosed() bool {
	switch p.Status {
	case ProcessPassed, ProcessCanceled, ProcessFailed:
		return true
	}
	return false
}
