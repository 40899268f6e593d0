package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/job-recruitment/config"
	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/pkg/helpers"
)

const (
	leaderEmail    = "leader@example.com"
	applicantEmail = "applicant@example.com"
	demoPassword   = "password123"
)

type seeded struct {
	LeaderID      string
	ApplicantID   string
	TeamID        string
	RecruitmentID string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	out, err := seed(context.Background(), db, time.Now().UTC())
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	fmt.Printf("seeded leader=%s applicant=%s password=%s\n", leaderEmail, applicantEmail, demoPassword)
	fmt.Printf("team=%s recruitment=%s\n", out.TeamID, out.RecruitmentID)
}

// seed upserts two demo users and, when the leader has no team yet, a team
// with one open recruitment. Running it twice leaves a single team.
func seed(ctx context.Context, db *sql.DB, now time.Time) (seeded, error) {
	var out seeded
	hash, err := helpers.HashPassword(demoPassword)
	if err != nil {
		return out, fmt.Errorf("hash password: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return out, err
	}
	defer func() { _ = tx.Rollback() }()

	if out.LeaderID, err = upsertUser(ctx, tx, leaderEmail, hash, "demoLeader", "hiring", 35, now); err != nil {
		return out, err
	}
	if out.ApplicantID, err = upsertUser(ctx, tx, applicantEmail, hash, "demoApplicant", "golang", 27, now); err != nil {
		return out, err
	}

	err = tx.QueryRowContext(ctx, `SELECT id::text FROM teams WHERE leader_id = $1 LIMIT 1`, out.LeaderID).Scan(&out.TeamID)
	switch {
	case err == nil:
		return out, tx.Commit()
	case !errors.Is(err, sql.ErrNoRows):
		return out, fmt.Errorf("find team: %w", err)
	}

	team, err := entity.NewTeam("Platform", "Builds the hiring platform", "", 5, out.LeaderID, now)
	if err != nil {
		return out, err
	}
	team.ID = uuid.NewString()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO teams (id, name, description, logo, member_num, leader_id, average_point, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, team.ID, team.Name, team.Description, team.Logo, team.MemberNum, team.LeaderID, team.AveragePoint, team.Status, team.CreatedAt, team.UpdatedAt); err != nil {
		return out, fmt.Errorf("insert team: %w", err)
	}
	out.TeamID = team.ID

	rec, err := entity.NewRecruitment(team.ID, "Backend engineer (Go)", "Own services built on gin and pgx.", now)
	if err != nil {
		return out, err
	}
	if err := rec.Activate(now.AddDate(0, 1, 0), now); err != nil {
		return out, err
	}
	rec.ID = uuid.NewString()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO recruitments (id, team_id, title, content, status, closed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, rec.ID, rec.TeamID, rec.Title, rec.Content, rec.Status, rec.ClosedAt, rec.CreatedAt, rec.UpdatedAt); err != nil {
		return out, fmt.Errorf("insert recruitment: %w", err)
	}
	out.RecruitmentID = rec.ID

	return out, tx.Commit()
}

func upsertUser(ctx context.Context, tx *sql.Tx, email, hash, nickname, interest string, age int64, now time.Time) (string, error) {
	u, err := entity.NewUser(email, hash, nickname, interest, age, now)
	if err != nil {
		return "", err
	}
	var id string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (id, email, password_hash, nickname, interest, age, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (email) DO UPDATE SET nickname = EXCLUDED.nickname, updated_at = EXCLUDED.updated_at
		RETURNING id::text
	`, uuid.NewString(), u.Email, u.Password, u.Nickname, u.Interest, u.Age, u.Status, u.CreatedAt, u.UpdatedAt).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert user %s: %w", email, err)
	}
	return id, nil
}
