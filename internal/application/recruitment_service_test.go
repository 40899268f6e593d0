package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

func TestRecruitmentLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	leader := f.user(t, "leader@example.com")
	team := f.team(t, leader)
	rec := f.recruitment(t, team)
	assert.Equal(t, entity.RecruitmentCreated, rec.Status)

	closedAt := clock.Add(24 * time.Hour)
	rec, err := f.recruits.Activate(ctx, rec.ID, team.ID, leader.ID, closedAt)
	require.NoError(t, err)
	assert.Equal(t, entity.RecruitmentActivated, rec.Status)
	require.NotNil(t, rec.ClosedAt)

	later := closedAt.Add(24 * time.Hour)
	rec, err = f.recruits.ExtendClosedAt(ctx, rec.ID, team.ID, leader.ID, later)
	require.NoError(t, err)
	assert.Equal(t, later, *rec.ClosedAt)

	_, err = f.recruits.ExtendClosedAt(ctx, rec.ID, team.ID, leader.ID, closedAt)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	rec, err = f.recruits.Inactivate(ctx, rec.ID, team.ID, leader.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RecruitmentInactivated, rec.Status)
	assert.Nil(t, rec.ClosedAt)

	rec, err = f.recruits.Delete(ctx, rec.ID, team.ID, leader.ID)
	require.NoError(t, err)
	assert.True(t, rec.IsDeleted())
	assert.Contains(t, f.index.deleted, rec.ID)

	_, err = f.recruits.Activate(ctx, rec.ID, team.ID, leader.ID, closedAt)
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	list, err := f.recruits.ListByTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecruitmentRequiresActivatedTeamAndLeader(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	leader := f.user(t, "leader@example.com")
	other := f.user(t, "other@example.com")
	team := f.team(t, leader)

	_, err := f.recruits.Create(ctx, team.ID, other.ID, "title", "content")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = f.teams.Inactivate(ctx, team.ID, leader.ID)
	require.NoError(t, err)
	_, err = f.recruits.Create(ctx, team.ID, leader.ID, "title", "content")
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestRecruitmentMutationByForeignTeamIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	leader := f.user(t, "leader@example.com")
	other := f.user(t, "other@example.com")
	team := f.team(t, leader)
	otherTeam := f.team(t, other)
	rec := f.recruitment(t, team)

	_, err := f.recruits.Update(ctx, rec.ID, otherTeam.ID, other.ID, "hijacked", "content")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	stored, err := f.recruits.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "backend engineer", stored.Title)
}

func TestRecruitmentActivateRejectsPastClosedAt(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	leader := f.user(t, "leader@example.com")
	team := f.team(t, leader)
	rec := f.recruitment(t, team)

	_, err := f.recruits.Activate(ctx, rec.ID, team.ID, leader.ID, clock.Add(-time.Minute))
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	stored, err := f.recruits.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RecruitmentCreated, stored.Status)
}

func TestRecruitmentSearchReturnsOpenPostings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	leader := f.user(t, "leader@example.com")
	team := f.team(t, leader)
	open := f.recruitment(t, team)
	f.recruitment(t, team)

	_, err := f.recruits.Activate(ctx, open.ID, team.ID, leader.ID, clock.Add(time.Hour))
	require.NoError(t, err)

	found, err := f.recruits.Search(ctx, "backend", 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, open.ID, found[0].ID)
}

func TestRecruitmentIndexFailureIsLogged(t *testing.T) {
	f := newFixture(t)
	f.index.err = errBoom
	leader := f.user(t, "leader@example.com")

	rec := f.recruitment(t, f.team(t, leader))

	assert.NotEmpty(t, rec.ID)
	require.NotNil(t, f.logs.LastEntry())
	assert.Equal(t, "recruitment index failed", f.logs.LastEntry().Message)
}
