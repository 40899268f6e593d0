package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
	repo "github.com/oksasatya/job-recruitment/internal/domain/repository"
)

// ObjectUploader stores a blob and returns its public URL.
type ObjectUploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

type TeamService struct {
	base
	Teams   repo.TeamRepository
	Users   repo.UserRepository
	Storage ObjectUploader
}

func NewTeamService(teams repo.TeamRepository, users repo.UserRepository, tx repo.Transactor, storage ObjectUploader, logger *logrus.Logger) *TeamService {
	return &TeamService{
		base:    base{Tx: tx, Logger: logger},
		Teams:   teams,
		Users:   users,
		Storage: storage,
	}
}

type TeamInput struct {
	Name        string
	Description string
	Logo        string
	MemberNum   int64
}

// Create registers a team led by leaderID. The leader must be an ACTIVATED user.
func (s *TeamService) Create(ctx context.Context, leaderID string, in TeamInput) (*entity.Team, error) {
	var out *entity.Team
	err := s.withinTx(ctx, func(ctx context.Context) error {
		leader, err := s.Users.GetByID(ctx, leaderID)
		if err != nil {
			return err
		}
		if !leader.IsActivated() {
			return errs.InvalidState("user %s is inactivated and cannot lead a team", leader.ID)
		}
		t, err := entity.NewTeam(in.Name, in.Description, in.Logo, in.MemberNum, leader.ID, s.now())
		if err != nil {
			return err
		}
		if err := s.Teams.Create(ctx, t); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"team_id": out.ID, "leader_id": out.LeaderID}).Info("team created")
	}
	return out, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (*entity.Team, error) {
	return s.Teams.GetByID(ctx, teamID)
}

func (s *TeamService) Update(ctx context.Context, teamID, leaderID string, in TeamInput) (*entity.Team, error) {
	return s.mutate(ctx, teamID, leaderID, entity.ActionUpdate, func(t *entity.Team, now time.Time) error {
		return t.Update(in.Name, in.Description, in.MemberNum, now)
	})
}

func (s *TeamService) Activate(ctx context.Context, teamID, leaderID string) (*entity.Team, error) {
	return s.mutate(ctx, teamID, leaderID, entity.ActionActivate, func(t *entity.Team, now time.Time) error {
		return t.Activate(now)
	})
}

func (s *TeamService) Inactivate(ctx context.Context, teamID, leaderID string) (*entity.Team, error) {
	return s.mutate(ctx, teamID, leaderID, entity.ActionInactivate, func(t *entity.Team, now time.Time) error {
		return t.Inactivate(now)
	})
}

// UploadLogo stores the image under logos/<team>/ and points the team at it.
// Leadership is checked before anything is uploaded.
func (s *TeamService) UploadLogo(ctx context.Context, teamID, leaderID string, r io.Reader, filename, contentType string) (*entity.Team, error) {
	if s.Storage == nil {
		return nil, errs.InvalidState("logo storage is not configured")
	}
	t, err := s.Teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !t.IsLeader(leaderID) {
		return nil, errs.Unauthorized("user %s does not lead team %s", leaderID, teamID)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("logos", teamID, uuid.NewString()+ext))
	url, err := s.Storage.Upload(ctx, objectPath, contentType, r)
	if err != nil {
		s.warn(err, "logo upload failed", logrus.Fields{"team_id": teamID})
		return nil, err
	}
	return s.mutate(ctx, teamID, leaderID, entity.ActionUpdate, func(t *entity.Team, now time.Time) error {
		return t.ChangeLogo(url, now)
	})
}

func (s *TeamService) mutate(ctx context.Context, teamID, leaderID string, action entity.Action, fn func(t *entity.Team, now time.Time) error) (*entity.Team, error) {
	var out *entity.Team
	err := s.withinTx(ctx, func(ctx context.Context) error {
		t, err := s.Teams.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		if !t.IsLeader(leaderID) {
			return errs.Unauthorized("user %s does not lead team %s", leaderID, teamID)
		}
		if err := fn(t, s.now()); err != nil {
			return err
		}
		if err := s.Teams.Update(ctx, t); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.applied("team", out.ID, action, string(out.Status))
	return out, nil
}
