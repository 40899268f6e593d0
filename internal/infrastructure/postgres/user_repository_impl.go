package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id::text, email, password_hash, nickname, interest, age, status, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Nickname, &u.Interest, &u.Age,
		&u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	id := uuid.NewString()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO users (id, email, password_hash, nickname, interest, age, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, id, u.Email, u.Password, u.Nickname, u.Interest, u.Age, u.Status, u.CreatedAt, u.UpdatedAt)
	if isUniqueViolation(err, "users_email_key") {
		return errs.WithCode(errs.KindInvalidArgument, errs.CodeAlreadyUsedEmail, "email "+u.Email+" is already used")
	}
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`+lockClause(ctx), id)
	u, err := scanUser(row)
	if err != nil {
		return nil, notFound(err, "user", id)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, notFound(err, "user", email)
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE users
		SET password_hash = $2, nickname = $3, interest = $4, age = $5, status = $6, updated_at = $7
		WHERE id = $1
	`, u.ID, u.Password, u.Nickname, u.Interest, u.Age, u.Status, u.UpdatedAt)
	if err != nil {
		return err
	}
	return expectOne(tag, "user", u.ID)
}
