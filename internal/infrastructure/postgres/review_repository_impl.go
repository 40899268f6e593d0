package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

const reviewColumns = `id::text, user_id::text, team_id::text, content, score, status, created_at, updated_at`

func scanReview(row interface{ Scan(dest ...any) error }) (*entity.Review, error) {
	rv := &entity.Review{}
	err := row.Scan(&rv.ID, &rv.UserID, &rv.TeamID, &rv.Content, &rv.Score, &rv.Status,
		&rv.CreatedAt, &rv.UpdatedAt)
	return rv, err
}

func (r *ReviewRepository) Create(ctx context.Context, rv *entity.Review) error {
	id := uuid.NewString()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO reviews (id, user_id, team_id, content, score, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, rv.UserID, rv.TeamID, rv.Content, rv.Score, rv.Status, rv.CreatedAt, rv.UpdatedAt)
	if err != nil {
		return err
	}
	rv.ID = id
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews
		WHERE id = $1`+lockClause(ctx), id)
	rv, err := scanReview(row)
	if err != nil {
		return nil, notFound(err, "review", id)
	}
	return rv, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *entity.Review) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE reviews
		SET content = $2, score = $3, status = $4, updated_at = $5
		WHERE id = $1
	`, rv.ID, rv.Content, rv.Score, rv.Status, rv.UpdatedAt)
	if err != nil {
		return err
	}
	return expectOne(tag, "review", rv.ID)
}

func (r *ReviewRepository) ListByTeamAndStatus(ctx context.Context, teamID string, status entity.ActivationStatus) ([]*entity.Review, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews
		WHERE team_id = $1 AND status = $2`, teamID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
