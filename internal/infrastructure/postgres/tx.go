package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/job-recruitment/internal/domain/errs"
	"github.com/oksasatya/job-recruitment/internal/domain/repository"
)

// querier is the part of pgxpool.Pool and pgx.Tx the repositories use.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// Transactor opens one pgx transaction per unit of work and carries it in the context.
type Transactor struct {
	pool *pgxpool.Pool
}

func NewTransactor(pool *pgxpool.Pool) *Transactor {
	return &Transactor{pool: pool}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// conn returns the transaction carried by ctx, or the pool.
func conn(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// lockClause locks loaded rows until commit when a transaction is open.
func lockClause(ctx context.Context) string {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return " FOR UPDATE"
	}
	return ""
}

const (
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
)

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
}

// notFound turns pgx.ErrNoRows into the domain NotFound failure. An id that
// is not a valid UUID cannot match any row and is reported the same way.
func notFound(err error, entity, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound(entity, id)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
		return errs.NotFound(entity, id)
	}
	return err
}

func expectOne(tag pgconn.CommandTag, entity, id string) error {
	if tag.RowsAffected() == 0 {
		return errs.NotFound(entity, id)
	}
	return nil
}

var (
	_ repository.UserRepository               = (*UserRepository)(nil)
	_ repository.TeamRepository               = (*TeamRepository)(nil)
	_ repository.ResumeRepository             = (*ResumeRepository)(nil)
	_ repository.RecruitmentRepository        = (*RecruitmentRepository)(nil)
	_ repository.RecruitmentProcessRepository = (*RecruitmentProcessRepository)(nil)
	_ repository.ReviewRepository             = (*ReviewRepository)(nil)
	_ repository.Transactor                   = (*Transactor)(nil)
)
