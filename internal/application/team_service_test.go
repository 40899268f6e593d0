package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

func TestTeamCreateRequiresActivatedLeader(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	leader := f.user(t, "leader@example.com")

	_, err := f.users.Inactivate(ctx, leader.ID)
	require.NoError(t, err)

	_, err = f.teams.Create(ctx, leader.ID, TeamInput{Name: "team", MemberNum: 1})
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	_, err = f.teams.Create(ctx, "missing", TeamInput{Name: "team", MemberNum: 1})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestTeamMutationsAreLeaderOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	leader := f.user(t, "leader@example.com")
	other := f.user(t, "other@example.com")
	team := f.team(t, leader)

	_, err := f.teams.Update(ctx, team.ID, other.ID, TeamInput{Name: "renamed", MemberNum: 1})
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = f.teams.Inactivate(ctx, team.ID, other.ID)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	stored, err := f.teams.Get(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "team", stored.Name)
	assert.Equal(t, entity.StatusActivated, stored.Status)

	updated, err := f.teams.Update(ctx, team.ID, leader.ID, TeamInput{Name: "renamed", Description: "d", MemberNum: 7})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.EqualValues(t, 7, updated.MemberNum)
}

func TestTeamActivationToggle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	leader := f.user(t, "leader@example.com")
	team := f.team(t, leader)

	_, err := f.teams.Activate(ctx, team.ID, leader.ID)
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	team, err = f.teams.Inactivate(ctx, team.ID, leader.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactivated, team.Status)

	_, err = f.teams.Update(ctx, team.ID, leader.ID, TeamInput{Name: "x", MemberNum: 1})
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	team, err = f.teams.Activate(ctx, team.ID, leader.ID)
	require.NoError(t, err)
	assert.True(t, team.IsActivated())
}

func TestTeamUploadLogo(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	leader := f.user(t, "leader@example.com")
	other := f.user(t, "other@example.com")
	team := f.team(t, leader)

	_, err := f.teams.UploadLogo(ctx, team.ID, other.ID, strings.NewReader("png"), "logo.PNG", "image/png")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Empty(t, f.uploader.paths)

	team, err = f.teams.UploadLogo(ctx, team.ID, leader.ID, strings.NewReader("png"), "logo.PNG", "image/png")
	require.NoError(t, err)
	require.Len(t, f.uploader.paths, 1)
	assert.True(t, strings.HasPrefix(f.uploader.paths[0], "logos/"+team.ID+"/"))
	assert.True(t, strings.HasSuffix(f.uploader.paths[0], ".png"))
	assert.Equal(t, "png", f.uploader.body)
	assert.Equal(t, "https://storage.example/"+f.uploader.paths[0], team.Logo)
}

func TestTeamUploadLogoFailureLeavesTeam(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.uploader.err = errBoom
	leader := f.user(t, "leader@example.com")
	team := f.team(t, leader)

	_, err := f.teams.UploadLogo(ctx, team.ID, leader.ID, strings.NewReader("png"), "logo.png", "image/png")
	assert.ErrorIs(t, err, errBoom)

	stored, err := f.teams.Get(ctx, team.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Logo)
}
