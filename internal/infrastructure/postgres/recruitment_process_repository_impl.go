package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
)

type RecruitmentProcessRepository struct {
	pool *pgxpool.Pool
}

func NewRecruitmentProcessRepository(pool *pgxpool.Pool) *RecruitmentProcessRepository {
	return &RecruitmentProcessRepository{pool: pool}
}

const processColumns = `id::text, recruitment_id::text, user_id::text, resume_id::text, status, closed_at, created_at, updated_at`

func scanProcess(row interface{ Scan(dest ...any) error }) (*entity.RecruitmentProcess, error) {
	p := &entity.RecruitmentProcess{}
	err := row.Scan(&p.ID, &p.RecruitmentID, &p.UserID, &p.ResumeID, &p.Status, &p.ClosedAt,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *RecruitmentProcessRepository) Create(ctx context.Context, p *entity.RecruitmentProcess) error {
	id := uuid.NewString()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO recruitment_processes (id, recruitment_id, user_id, resume_id, status, closed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, p.RecruitmentID, p.UserID, p.ResumeID, p.Status, p.ClosedAt, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *RecruitmentProcessRepository) GetByID(ctx context.Context, id string) (*entity.RecruitmentProcess, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT `+processColumns+`
		FROM recruitment_processes
		WHERE id = $1`+lockClause(ctx), id)
	p, err := scanProcess(row)
	if err != nil {
		return nil, notFound(err, "recruitment process", id)
	}
	return p, nil
}

func (r *RecruitmentProcessRepository) Update(ctx context.Context, p *entity.RecruitmentProcess) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE recruitment_processes
		SET status = $2, closed_at = $3, updated_at = $4
		WHERE id = $1
	`, p.ID, p.Status, p.ClosedAt, p.UpdatedAt)
	if err != nil {
		return err
	}
	return expectOne(tag, "recruitment process", p.ID)
}

func (r *RecruitmentProcessRepository) ListByRecruitment(ctx context.Context, recruitmentID string) ([]*entity.RecruitmentProcess, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+processColumns+`
		FROM recruitment_processes
		WHERE recruitment_id = $1
		ORDER BY created_at`, recruitmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.RecruitmentProcess, 0)
	for rows.Next() {
		p, err := scanProcess(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
