package repository

import (
	"context"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
)

// Lookups by id return an errs.NotFound failure when the row does not exist.

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}

type TeamRepository interface {
	Create(ctx context.Context, t *entity.Team) error
	GetByID(ctx context.Context, id string) (*entity.Team, error)
	Update(ctx context.Context, t *entity.Team) error
}

type ResumeRepository interface {
	Create(ctx context.Context, r *entity.Resume) error
	GetByID(ctx context.Context, id string) (*entity.Resume, error)
	Update(ctx context.Context, r *entity.Resume) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Resume, error)
}

type RecruitmentRepository interface {
	Create(ctx context.Context, r *entity.Recruitment) error
	GetByID(ctx context.Context, id string) (*entity.Recruitment, error)
	Update(ctx context.Context, r *entity.Recruitment) error
	ListByTeam(ctx context.Context, teamID string) ([]*entity.Recruitment, error)
}

type RecruitmentProcessRepository interface {
	Create(ctx context.Context, p *entity.RecruitmentProcess) error
	GetByID(ctx context.Context, id string) (*entity.RecruitmentProcess, error)
	Update(ctx context.Context, p *entity.RecruitmentProcess) error
	ListByRecruitment(ctx context.Context, recruitmentID string) ([]*entity.RecruitmentProcess, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	Update(ctx context.Context, r *entity.Review) error
	ListByTeamAndStatus(ctx context.Context, teamID string, status entity.ActivationStatus) ([]*entity.Review, error)
}

// Transactor runs fn as one unit of work: committed when fn returns nil,
// rolled back otherwise. Repositories called with the ctx passed to fn take
// part in the same unit of work.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
