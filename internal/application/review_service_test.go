package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

func TestReviewAverageFollowsActiveReviews(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	leader := f.user(t, "leader@example.com")
	alice := f.user(t, "alice@example.com")
	bob := f.user(t, "bob@example.com")
	team := f.team(t, leader)

	_, tm, err := f.reviews.Create(ctx, alice.ID, team.ID, "great", 5)
	require.NoError(t, err)
	assert.EqualValues(t, 5, tm.AveragePoint)

	second, tm, err := f.reviews.Create(ctx, bob.ID, team.ID, "meh", 2)
	require.NoError(t, err)
	assert.EqualValues(t, 4, tm.AveragePoint, "mean 3.5 rounds to 4")

	_, tm, err = f.reviews.Inactivate(ctx, second.ID, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, tm.AveragePoint)

	_, tm, err = f.reviews.Activate(ctx, second.ID, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 4, tm.AveragePoint)

	_, tm, err = f.reviews.Update(ctx, second.ID, bob.ID, "better", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, tm.AveragePoint)

	stored, err := f.teams.Get(ctx, team.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stored.AveragePoint)
}

func TestReviewAverageDropsToZeroWithoutActiveReviews(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	leader := f.user(t, "leader@example.com")
	alice := f.user(t, "alice@example.com")
	team := f.team(t, leader)

	r, _, err := f.reviews.Create(ctx, alice.ID, team.ID, "fine", 4)
	require.NoError(t, err)

	_, tm, err := f.reviews.Inactivate(ctx, r.ID, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, tm.AveragePoint)
}

func TestReviewGuards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	leader := f.user(t, "leader@example.com")
	alice := f.user(t, "alice@example.com")
	bob := f.user(t, "bob@example.com")
	team := f.team(t, leader)

	_, _, err := f.reviews.Create(ctx, alice.ID, team.ID, "bad score", 6)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	r, _, err := f.reviews.Create(ctx, alice.ID, team.ID, "ok", 3)
	require.NoError(t, err)

	_, _, err = f.reviews.Inactivate(ctx, r.ID, bob.ID)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	_, _, err = f.reviews.Activate(ctx, r.ID, alice.ID)
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	_, err = f.teams.Inactivate(ctx, team.ID, leader.ID)
	require.NoError(t, err)
	_, _, err = f.reviews.Create(ctx, bob.ID, team.ID, "late", 2)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
