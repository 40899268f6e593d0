package application

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

func withRedis(t *testing.T, f *fixture) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	f.users.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = f.users.Redis.Close() })
	return mr
}

func TestUserCreateHashesPassword(t *testing.T) {
	f := newFixture(t)

	u, err := f.users.Create(context.Background(), CreateUserInput{
		Email: " Alice@Example.com ", Password: "secret", Nickname: "alice", Age: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "secret", u.Password)
	assert.Equal(t, entity.StatusActivated, u.Status)
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.user(t, "alice@example.com")

	_, err := f.users.Create(context.Background(), CreateUserInput{
		Email: "ALICE@example.com", Password: "secret", Nickname: "again",
	})

	assert.ErrorIs(t, err, errs.ErrAlreadyUsedEmail)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestUserCreateRejectsBlankPassword(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.Create(context.Background(), CreateUserInput{Email: "a@example.com", Password: "  ", Nickname: "a"})

	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestUserChangeInformation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.user(t, "alice@example.com")

	u, err := f.users.ChangeInformation(ctx, u.ID, "changed", "rust", 31)
	require.NoError(t, err)
	assert.Equal(t, "changed", u.Nickname)
	assert.EqualValues(t, 31, u.Age)

	_, err = f.users.Inactivate(ctx, u.ID)
	require.NoError(t, err)

	_, err = f.users.ChangeInformation(ctx, u.ID, "again", "go", 32)
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	stored, err := f.users.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed", stored.Nickname)
}

func TestUserChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.user(t, "alice@example.com")

	err := f.users.ChangePassword(ctx, u.ID, "wrong", "next-secret")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	require.NoError(t, f.users.ChangePassword(ctx, u.ID, "password", "next-secret"))

	_, err = f.users.Authenticate(ctx, u.Email, "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.users.Authenticate(ctx, u.Email, "next-secret")
	assert.NoError(t, err)
}

func TestUserLoginAndRefresh(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	mr := withRedis(t, f)
	u := f.user(t, "alice@example.com")

	_, pair, err := f.users.Login(ctx, "alice@example.com", "password")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	key := sessionKey(u.ID)
	require.True(t, mr.Exists(key))
	firstSID := mr.HGet(key, "sid")
	assert.NotEmpty(t, firstSID)
	assert.True(t, mr.TTL(key) > 0)

	claims, err := f.users.JWT.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, f.users.SessionValid(ctx, u.ID, claims.SessionID))

	next, uid, err := f.users.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)
	assert.NotEqual(t, firstSID, mr.HGet(key, "sid"))

	_, _, err = f.users.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials, "rotated refresh token must not be reusable")

	f.users.Logout(ctx, u.ID)
	assert.False(t, mr.Exists(key))
	_, _, err = f.users.Refresh(ctx, next.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserLoginRejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	withRedis(t, f)
	u := f.user(t, "alice@example.com")

	_, _, err := f.users.Login(ctx, "nobody@example.com", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = f.users.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.users.Inactivate(ctx, u.ID)
	require.NoError(t, err)
	_, _, err = f.users.Login(ctx, "alice@example.com", "password")
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestUserInactivateEndsSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	mr := withRedis(t, f)
	u := f.user(t, "alice@example.com")

	_, _, err := f.users.Login(ctx, "alice@example.com", "password")
	require.NoError(t, err)

	_, err = f.users.Inactivate(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, mr.Exists(sessionKey(u.ID)))

	_, err = f.users.Inactivate(ctx, u.ID)
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	u, err = f.users.Activate(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, u.IsActivated())
}

func TestUserReactivateWithCredentials(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	mr := withRedis(t, f)
	u := f.user(t, "alice@example.com")

	_, _, err := f.users.Reactivate(ctx, "alice@example.com", "password")
	assert.ErrorIs(t, err, errs.ErrInvalidState, "already active")

	_, err = f.users.Inactivate(ctx, u.ID)
	require.NoError(t, err)

	_, _, err = f.users.Reactivate(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = f.users.Reactivate(ctx, "nobody@example.com", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	stored, err := f.users.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactivated, stored.Status)

	u, pair, err := f.users.Reactivate(ctx, " Alice@example.com ", "password")
	require.NoError(t, err)
	assert.True(t, u.IsActivated())
	claims, err := f.users.JWT.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, claims.SessionID, mr.HGet(sessionKey(u.ID), "sid"))

	_, _, err = f.users.Login(ctx, "alice@example.com", "password")
	assert.NoError(t, err)
}
