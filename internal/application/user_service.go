package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
	repo "github.com/oksasatya/job-recruitment/internal/domain/repository"
	"github.com/oksasatya/job-recruitment/pkg/helpers"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const sessionTTL = 24 * time.Hour

type UserService struct {
	base
	Users repo.UserRepository
	JWT   *helpers.JWTManager
	Redis *redis.Client
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

func NewUserService(users repo.UserRepository, tx repo.Transactor, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *UserService {
	return &UserService{
		base:  base{Tx: tx, Logger: logger},
		Users: users,
		JWT:   jwt,
		Redis: rdb,
	}
}

type CreateUserInput struct {
	Email    string
	Password string
	Nickname string
	Interest string
	Age      int64
}

// Create signs a user up. The password is stored as a bcrypt hash.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	hash := ""
	if strings.TrimSpace(in.Password) != "" {
		h, err := helpers.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	u, err := entity.NewUser(strings.ToLower(strings.TrimSpace(in.Email)), hash, in.Nickname, in.Interest, in.Age, s.now())
	if err != nil {
		return nil, err
	}
	err = s.withinTx(ctx, func(ctx context.Context) error {
		return s.Users.Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user created")
	}
	return u, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return s.Users.GetByID(ctx, userID)
}

func (s *UserService) ChangeInformation(ctx context.Context, userID, nickname, interest string, age int64) (*entity.User, error) {
	return s.mutate(ctx, userID, entity.ActionUpdate, func(u *entity.User, now time.Time) error {
		return u.ChangeInformation(nickname, interest, age, now)
	})
}

// ChangePassword replaces the password after checking the current one.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if strings.TrimSpace(next) == "" {
		return errs.InvalidArgument("new password must not be blank")
	}
	hash, err := helpers.HashPassword(next)
	if err != nil {
		return err
	}
	_, err = s.mutate(ctx, userID, entity.ActionUpdate, func(u *entity.User, now time.Time) error {
		if !helpers.CompareHashAndPassword(u.Password, current) {
			return errs.InvalidArgument("current password does not match")
		}
		return u.ChangePassword(hash, now)
	})
	return err
}

func (s *UserService) Activate(ctx context.Context, userID string) (*entity.User, error) {
	return s.mutate(ctx, userID, entity.ActionActivate, func(u *entity.User, now time.Time) error {
		return u.Activate(now)
	})
}

// Inactivate also ends the user's session.
func (s *UserService) Inactivate(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.mutate(ctx, userID, entity.ActionInactivate, func(u *entity.User, now time.Time) error {
		return u.Inactivate(now)
	})
	if err != nil {
		return nil, err
	}
	s.Logout(ctx, userID)
	return u, nil
}

func (s *UserService) mutate(ctx context.Context, userID string, action entity.Action, fn func(u *entity.User, now time.Time) error) (*entity.User, error) {
	var out *entity.User
	err := s.withinTx(ctx, func(ctx context.Context) error {
		u, err := s.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if err := fn(u, s.now()); err != nil {
			return err
		}
		if err := s.Users.Update(ctx, u); err != nil {
			return err
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.applied("user", out.ID, action, string(out.Status))
	return out, nil
}

// Authenticate validates email/password and returns the user without issuing tokens.
// Inactivated users cannot sign in.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.verifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !u.IsActivated() {
		return nil, errs.InvalidState("user %s is inactivated", u.ID)
	}
	return u, nil
}

// verifyCredentials matches email/password whatever the user's status. Unknown
// emails still pay for one bcrypt comparison.
func (s *UserService) verifyCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			helpers.CompareDummyPassword(password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Reactivate lets an inactivated user back in with their credentials and
// starts a new session.
func (s *UserService) Reactivate(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.verifyCredentials(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	u, err = s.Activate(ctx, u.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user reactivated")
	}
	return u, pair, nil
}

// IssueTokens generates access/refresh tokens and records a session in Redis.
func (s *UserService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	pair, err := s.tokens(u.ID, sid)
	if err != nil {
		s.warn(err, "generate tokens failed", logrus.Fields{"user_id": u.ID})
		return TokenPair{}, err
	}

	if s.Redis != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"nickname":   u.Nickname,
			"sid":        sid,
			"created_at": s.now().Format(time.RFC3339Nano),
		}
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, sessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil {
			s.warn(rErr, "redis pipeline failed", logrus.Fields{"key": key})
		}
	}
	return pair, nil
}

func (s *UserService) tokens(userID, sid string) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(userID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(userID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user signed in")
	}
	return u, pair, nil
}

// Refresh rotates the session id and both tokens. The refresh token must carry
// the session id currently stored for the user.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil || !u.IsActivated() {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	if !s.SessionValid(ctx, u.ID, claims.SessionID) {
		return TokenPair{}, "", ErrInvalidCredentials
	}

	sid := uuid.NewString()
	pair, err := s.tokens(u.ID, sid)
	if err != nil {
		return TokenPair{}, "", err
	}
	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"sid":        sid,
			"updated_at": s.now().Format(time.RFC3339Nano),
		})
		pipe.Expire(ctx, key, sessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil {
			s.warn(rErr, "redis pipeline failed", logrus.Fields{"key": key})
		}
	}
	return pair, u.ID, nil
}

// SessionValid reports whether sid is the live session of the user. Without
// Redis every well-formed token is accepted.
func (s *UserService) SessionValid(ctx context.Context, userID, sid string) bool {
	if s.Redis == nil {
		return true
	}
	data, err := s.Redis.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil || len(data) == 0 {
		return false
	}
	return data["sid"] == sid
}

func (s *UserService) Logout(ctx context.Context, userID string) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, sessionKey(userID)); err != nil {
		s.warn(err, "redis delete session failed", logrus.Fields{"user_id": userID})
	}
}
