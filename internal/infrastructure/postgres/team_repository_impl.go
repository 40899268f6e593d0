package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
)

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

func (r *TeamRepository) Create(ctx context.Context, t *entity.Team) error {
	id := uuid.NewString()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO teams (id, name, description, logo, member_num, leader_id, average_point, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, id, t.Name, t.Description, t.Logo, t.MemberNum, t.LeaderID, t.AveragePoint, t.Status, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (*entity.Team, error) {
	t := &entity.Team{}
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT id::text, name, description, logo, member_num, leader_id::text, average_point, status, created_at, updated_at
		FROM teams
		WHERE id = $1`+lockClause(ctx), id).
		Scan(&t.ID, &t.Name, &t.Description, &t.Logo, &t.MemberNum, &t.LeaderID, &t.AveragePoint,
			&t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "team", id)
	}
	return t, nil
}

func (r *TeamRepository) Update(ctx context.Context, t *entity.Team) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE teams
		SET name = $2, description = $3, logo = $4, member_num = $5, average_point = $6, status = $7, updated_at = $8
		WHERE id = $1
	`, t.ID, t.Name, t.Description, t.Logo, t.MemberNum, t.AveragePoint, t.Status, t.UpdatedAt)
	if err != nil {
		return err
	}
	return expectOne(tag, "team", t.ID)
}
