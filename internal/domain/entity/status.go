package entity

import (
	"strings"

	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

// ActivationStatus is shared by User, Team and Review.
type ActivationStatus string

const (
	StatusActivated   ActivationStatus = "ACTIVATED"
	StatusInactivated ActivationStatus = "INACTIVATED"
)

// RecruitmentStatus describes the lifecycle of a job posting.
type RecruitmentStatus string

const (
	RecruitmentCreated     RecruitmentStatus = "CREATED"
	RecruitmentActivated   RecruitmentStatus = "ACTIVATED"
	RecruitmentInactivated RecruitmentStatus = "INACTIVATED"
	RecruitmentDeleted     RecruitmentStatus = "DELETED"
)

// ResumeStatus describes the lifecycle of a resume.
type ResumeStatus string

const (
	ResumeCreated     ResumeStatus = "CREATED"
	ResumeActivated   ResumeStatus = "ACTIVATED"
	ResumeInactivated ResumeStatus = "INACTIVATED"
	ResumeDeleted     ResumeStatus = "DELETED"
)

// ProcessStatus describes the screening stage of a recruitment process.
type ProcessStatus string

const (
	ProcessCreated    ProcessStatus = "CREATED"
	ProcessInProgress ProcessStatus = "IN_PROGRESS"
	ProcessPassed     ProcessStatus = "PASSED"
	ProcessCanceled   ProcessStatus = "CANCELED"
	ProcessFailed     ProcessStatus = "FAILED"
)

// Action names a guarded operation on an entity.
type Action string

const (
	ActionActivate       Action = "activate"
	ActionInactivate     Action = "inactivate"
	ActionUpdate         Action = "update"
	ActionDelete         Action = "delete"
	ActionExtendClosedAt Action = "extend_closed_at"
	ActionInProgress     Action = "in_progress"
	ActionPass           Action = "pass"
	ActionCancel         Action = "cancel"
	ActionFail           Action = "fail"
)

// rule lists the source states an action accepts. An empty target keeps the
// current status.
type rule[S ~string] struct {
	from []S
	to   S
}

type table[S ~string] map[Action]rule[S]

var activationTransitions = table[ActivationStatus]{
	ActionActivate:   {from: []ActivationStatus{StatusInactivated}, to: StatusActivated},
	ActionInactivate: {from: []ActivationStatus{StatusActivated}, to: StatusInactivated},
	ActionUpdate:     {from: []ActivationStatus{StatusActivated}},
}

var recruitmentTransitions = table[RecruitmentStatus]{
	ActionActivate:       {from: []RecruitmentStatus{RecruitmentCreated, RecruitmentInactivated}, to: RecruitmentActivated},
	ActionInactivate:     {from: []RecruitmentStatus{RecruitmentActivated}, to: RecruitmentInactivated},
	ActionExtendClosedAt: {from: []RecruitmentStatus{RecruitmentActivated}},
	ActionUpdate:         {from: []RecruitmentStatus{RecruitmentCreated, RecruitmentActivated, RecruitmentInactivated}},
	ActionDelete:         {from: []RecruitmentStatus{RecruitmentCreated, RecruitmentActivated, RecruitmentInactivated}, to: RecruitmentDeleted},
}

var resumeTransitions = table[ResumeStatus]{
	ActionActivate:   {from: []ResumeStatus{ResumeCreated, ResumeInactivated}, to: ResumeActivated},
	ActionInactivate: {from: []ResumeStatus{ResumeCreated, ResumeActivated}, to: ResumeInactivated},
	ActionUpdate:     {from: []ResumeStatus{ResumeCreated, ResumeActivated, ResumeInactivated}},
	ActionDelete:     {from: []ResumeStatus{ResumeCreated, ResumeActivated, ResumeInactivated}, to: ResumeDeleted},
}

var processTransitions = table[ProcessStatus]{
	ActionInProgress: {from: []ProcessStatus{ProcessCreated}, to: ProcessInProgress},
	ActionPass:       {from: []ProcessStatus{ProcessInProgress}, to: ProcessPassed},
	ActionCancel:     {from: []ProcessStatus{ProcessCreated}, to: ProcessCanceled},
	ActionFail:       {from: []ProcessStatus{ProcessCreated, ProcessInProgress}, to: ProcessFailed},
}

func (t table[S]) next(entity string, current S, action Action) (S, error) {
	r, ok := t[action]
	if !ok {
		return current, errs.InvalidState("%s: unknown action %q", entity, action)
	}
	for _, s := range r.from {
		if s == current {
			if r.to == "" {
				return current, nil
			}
			return r.to, nil
		}
	}
	return current, errs.InvalidState("%s: cannot %s from %s (allowed from %s)", entity, action, current, joinStates(r.from))
}

func joinStates[S ~string](states []S) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// ActivationTransition returns the status reached by applying action to an
// ACTIVATED/INACTIVATED entity.
func ActivationTransition(current ActivationStatus, action Action) (ActivationStatus, error) {
	return activationTransitions.next("activation", current, action)
}

// RecruitmentTransition returns the status reached by applying action to a recruitment.
func RecruitmentTransition(current RecruitmentStatus, action Action) (RecruitmentStatus, error) {
	return recruitmentTransitions.next("recruitment", current, action)
}

// ResumeTransition returns the status reached by applying action to a resume.
func ResumeTransition(current ResumeStatus, action Action) (ResumeStatus, error) {
	return resumeTransitions.next("resume", current, action)
}

// ProcessTransition returns the status reached by applying action to a
// recruitment process.
func ProcessTransition(current ProcessStatus, action Action) (ProcessStatus, error) {
	return processTransitions.next("recruitment process", current, action)
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
