package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
)

type RecruitmentRepository struct {
	pool *pgxpool.Pool
}

func NewRecruitmentRepository(pool *pgxpool.Pool) *RecruitmentRepository {
	return &RecruitmentRepository{pool: pool}
}

const recruitmentColumns = `id::text, team_id::text, title, content, status, closed_at, created_at, updated_at`

func scanRecruitment(row interface{ Scan(dest ...any) error }) (*entity.Recruitment, error) {
	rec := &entity.Recruitment{}
	err := row.Scan(&rec.ID, &rec.TeamID, &rec.Title, &rec.Content, &rec.Status, &rec.ClosedAt,
		&rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}

func (r *RecruitmentRepository) Create(ctx context.Context, rec *entity.Recruitment) error {
	id := uuid.NewString()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO recruitments (id, team_id, title, content, status, closed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, rec.TeamID, rec.Title, rec.Content, rec.Status, rec.ClosedAt, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return err
	}
	rec.ID = id
	return nil
}

func (r *RecruitmentRepository) GetByID(ctx context.Context, id string) (*entity.Recruitment, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT `+recruitmentColumns+`
		FROM recruitments
		WHERE id = $1`+lockClause(ctx), id)
	rec, err := scanRecruitment(row)
	if err != nil {
		return nil, notFound(err, "recruitment", id)
	}
	return rec, nil
}

func (r *RecruitmentRepository) Update(ctx context.Context, rec *entity.Recruitment) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE recruitments
		SET title = $2, content = $3, status = $4, closed_at = $5, updated_at = $6
		WHERE id = $1
	`, rec.ID, rec.Title, rec.Content, rec.Status, rec.ClosedAt, rec.UpdatedAt)
	if err != nil {
		return err
	}
	return expectOne(tag, "recruitment", rec.ID)
}

func (r *RecruitmentRepository) ListByTeam(ctx context.Context, teamID string) ([]*entity.Recruitment, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+recruitmentColumns+`
		FROM recruitments
		WHERE team_id = $1 AND status <> $2
		ORDER BY created_at`, teamID, entity.RecruitmentDeleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Recruitment, 0)
	for rows.Next() {
		rec, err := scanRecruitment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
