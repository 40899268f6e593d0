package entity

import (
	"time"

	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

// User is the aggregate root for accounts.
// Password holds a bcrypt hash once the account is persisted.
type User struct {
	ID        string
	Email     string
	Password  string
	Nickname  string
	Interest  string
	Age       int64
	Status    ActivationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser validates the sign-up fields and returns an ACTIVATED user.
func NewUser(email, password, nickname, interest string, age int64, now time.Time) (*User, error) {
	if isBlank(email) {
		return nil, errs.InvalidArgument("email is required")
	}
	if isBlank(password) {
		return nil, errs.InvalidArgument("password is required")
	}
	if err := validateProfile(nickname, age); err != nil {
		return nil, err
	}
	return &User{
		Email:     email,
		Password:  password,
		Nickname:  nickname,
		Interest:  interest,
		Age:       age,
		Status:    StatusActivated,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func validateProfile(nickname string, age int64) error {
	if isBlank(nickname) {
		return errs.InvalidArgument("nickname is required")
	}
	if age < 0 {
		return errs.InvalidArgument("age must not be negative, got %d", age)
	}
	return nil
}

// ChangeInformation updates the profile of an ACTIVATED user.
func (u *User) ChangeInformation(nickname, interest string, age int64, now time.Time) error {
	if _, err := ActivationTransition(u.Status, ActionUpdate); err != nil {
		return err
	}
	if err := validateProfile(nickname, age); err != nil {
		return err
	}
	u.Nickname = nickname
	u.Interest = interest
	u.Age = age
	u.UpdatedAt = now
	return nil
}

// ChangePassword replaces the stored password hash.
func (u *User) ChangePassword(hash string, now time.Time) error {
	if _, err := ActivationTransition(u.Status, ActionUpdate); err != nil {
		return err
	}
	if isBlank(hash) {
		return errs.InvalidArgument("password is required")
	}
	u.Password = hash
	u.UpdatedAt = now
	return nil
}

func (u *User) Activate(now time.Time) error {
	return u.transition(ActionActivate, now)
}

func (u *User) Inactivate(now time.Time) error {
	return u.transition(ActionInactivate, now)
}

func (u *User) transition(action Action, now time.Time) error {
	next, err := ActivationTransition(u.Status, action)
	if err != nil {
		return err
	}
	u.Status = next
	u.UpdatedAt = now
	return nil
}

func (u *User) IsActivated() bool { return u.Status == StatusActivated }
