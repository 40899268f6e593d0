package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
)

type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) *ResumeRepository {
	return &ResumeRepository{pool: pool}
}

const resumeColumns = `id::text, user_id::text, title, content, training_history, status, created_at, updated_at`

func scanResume(row interface{ Scan(dest ...any) error }) (*entity.Resume, error) {
	res := &entity.Resume{}
	err := row.Scan(&res.ID, &res.UserID, &res.Title, &res.Content, &res.TrainingHistory,
		&res.Status, &res.CreatedAt, &res.UpdatedAt)
	return res, err
}

func (r *ResumeRepository) Create(ctx context.Context, res *entity.Resume) error {
	id := uuid.NewString()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO resumes (id, user_id, title, content, training_history, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, res.UserID, res.Title, res.Content, res.TrainingHistory, res.Status, res.CreatedAt, res.UpdatedAt)
	if err != nil {
		return err
	}
	res.ID = id
	return nil
}

func (r *ResumeRepository) GetByID(ctx context.Context, id string) (*entity.Resume, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT `+resumeColumns+`
		FROM resumes
		WHERE id = $1`+lockClause(ctx), id)
	res, err := scanResume(row)
	if err != nil {
		return nil, notFound(err, "resume", id)
	}
	return res, nil
}

func (r *ResumeRepository) Update(ctx context.Context, res *entity.Resume) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE resumes
		SET title = $2, content = $3, training_history = $4, status = $5, updated_at = $6
		WHERE id = $1
	`, res.ID, res.Title, res.Content, res.TrainingHistory, res.Status, res.UpdatedAt)
	if err != nil {
		return err
	}
	return expectOne(tag, "resume", res.ID)
}

func (r *ResumeRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Resume, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+resumeColumns+`
		FROM resumes
		WHERE user_id = $1
		ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Resume, 0)
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
