package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

func newTestUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser("email", "password", "nickname", "interest", 10, now)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	u, err := NewUser("email", "password", "nickname", "interest", 10, now)
	require.NoError(t, err)

	assert.Equal(t, "email", u.Email)
	assert.Equal(t, "password", u.Password)
	assert.Equal(t, "nickname", u.Nickname)
	assert.Equal(t, "interest", u.Interest)
	assert.EqualValues(t, 10, u.Age)
	assert.Equal(t, StatusActivated, u.Status)
	assert.Equal(t, now, u.CreatedAt)
}

func TestNewUserRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name                      string
		email, password, nickname string
		age                       int64
	}{
		{"empty email", "", "password", "nickname", 10},
		{"blank email", "  ", "password", "nickname", 10},
		{"empty password", "email", "", "nickname", 10},
		{"empty nickname", "email", "password", "", 10},
		{"blank nickname", "email", "password", "\t", 10},
		{"negative age", "email", "password", "nickname", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.email, tt.password, tt.nickname, "interest", tt.age, now)
			assert.ErrorIs(t, err, errs.ErrInvalidArgument)
			assert.Nil(t, u)
		})
	}
}

func TestUserChangeInformation(t *testing.T) {
	u := newTestUser(t)
	later := now.Add(1)

	require.NoError(t, u.ChangeInformation("changeNickName", "changeInterest", 11, later))

	assert.Equal(t, "changeNickName", u.Nickname)
	assert.Equal(t, "changeInterest", u.Interest)
	assert.EqualValues(t, 11, u.Age)
	assert.Equal(t, later, u.UpdatedAt)
}

func TestUserChangeInformationRejectsInvalidInput(t *testing.T) {
	u := newTestUser(t)

	assert.ErrorIs(t, u.ChangeInformation("", "interest", 10, now), errs.ErrInvalidArgument)
	assert.ErrorIs(t, u.ChangeInformation("nickname", "interest", -1, now), errs.ErrInvalidArgument)
	assert.Equal(t, "nickname", u.Nickname)
	assert.EqualValues(t, 10, u.Age)
}

func TestUserChangeInformationWhenInactivated(t *testing.T) {
	u := newTestUser(t)
	require.NoError(t, u.Inactivate(now))

	err := u.ChangeInformation("changeNickName", "changeInterest", 10, now)

	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, "nickname", u.Nickname)
}

func TestUserActivationToggle(t *testing.T) {
	u := newTestUser(t)

	assert.ErrorIs(t, u.Activate(now), errs.ErrInvalidState)

	require.NoError(t, u.Inactivate(now))
	assert.Equal(t, StatusInactivated, u.Status)
	assert.ErrorIs(t, u.Inactivate(now), errs.ErrInvalidState)

	require.NoError(t, u.Activate(now))
	assert.True(t, u.IsActivated())
}

func TestUserChangePassword(t *testing.T) {
	u := newTestUser(t)

	assert.ErrorIs(t, u.ChangePassword(" ", now), errs.ErrInvalidArgument)
	require.NoError(t, u.ChangePassword("new-hash", now))
	assert.Equal(t, "new-hash", u.Password)
}
