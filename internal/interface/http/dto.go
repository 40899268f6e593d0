package handlers

import (
	"time"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
)

type userView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	Interest  string    `json:"interest"`
	Age       int64     `json:"age"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserView(u *entity.User) userView {
	return userView{
		ID:        u.ID,
		Email:     u.Email,
		Nickname:  u.Nickname,
		Interest:  u.Interest,
		Age:       u.Age,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type teamView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Logo         string    `json:"logo"`
	MemberNum    int64     `json:"member_num"`
	LeaderID     string    `json:"leader_id"`
	AveragePoint int64     `json:"average_point"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toTeamView(t *entity.Team) teamView {
	return teamView{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		Logo:         t.Logo,
		MemberNum:    t.MemberNum,
		LeaderID:     t.LeaderID,
		AveragePoint: t.AveragePoint,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

type resumeView struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	TrainingHistory string    `json:"training_history"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toResumeView(r *entity.Resume) resumeView {
	return resumeView{
		ID:              r.ID,
		UserID:          r.UserID,
		Title:           r.Title,
		Content:         r.Content,
		TrainingHistory: r.TrainingHistory,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type recruitmentView struct {
	ID        string     `json:"id"`
	TeamID    string     `json:"team_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Status    string     `json:"status"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toRecruitmentView(r *entity.Recruitment) recruitmentView {
	return recruitmentView{
		ID:        r.ID,
		TeamID:    r.TeamID,
		Title:     r.Title,
		Content:   r.Content,
		Status:    string(r.Status),
		ClosedAt:  r.ClosedAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type processView struct {
	ID            string     `json:"id"`
	RecruitmentID string     `json:"recruitment_id"`
	UserID        string     `json:"user_id"`
	ResumeID      string     `json:"resume_id"`
	Status        string     `json:"status"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toProcessView(p *entity.RecruitmentProcess) processView {
	return processView{
		ID:            p.ID,
		RecruitmentID: p.RecruitmentID,
		UserID:        p.UserID,
		ResumeID:      p.ResumeID,
		Status:        string(p.Status),
		ClosedAt:      p.ClosedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type reviewView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TeamID    string    `json:"team_id"`
	Content   string    `json:"content"`
	Score     int64     `json:"score"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toReviewView(r *entity.Review) reviewView {
	return reviewView{
		ID:        r.ID,
		UserID:    r.UserID,
		TeamID:    r.TeamID,
		Content:   r.Content,
		Score:     r.Score,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func mapSlice[T, V any](in []T, fn func(T) V) []V {
	out := make([]V, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
