package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

func TestResumeLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	r := f.resume(t, owner)
	assert.Equal(t, entity.ResumeCreated, r.Status)

	r, err := f.resumes.Activate(ctx, r.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ResumeActivated, r.Status)

	r, err = f.resumes.Update(ctx, r.ID, owner.ID, ResumeInput{Title: "new", Content: "body", TrainingHistory: "bootcamp"})
	require.NoError(t, err)
	assert.Equal(t, "new", r.Title)
	assert.Equal(t, "bootcamp", r.TrainingHistory)

	r, err = f.resumes.Inactivate(ctx, r.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ResumeInactivated, r.Status)

	r, err = f.resumes.Delete(ctx, r.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, r.IsDeleted())

	_, err = f.resumes.Activate(ctx, r.ID, owner.ID)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestResumeIsOwnerOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	other := f.user(t, "other@example.com")
	r := f.resume(t, owner)

	_, err := f.resumes.Update(ctx, r.ID, other.ID, ResumeInput{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = f.resumes.Delete(ctx, r.ID, other.ID)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = f.resumes.Get(ctx, r.ID, other.ID)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	stored, err := f.resumes.Get(ctx, r.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "title", stored.Title)
	assert.Equal(t, entity.ResumeCreated, stored.Status)
}

func TestResumeListByUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	other := f.user(t, "other@example.com")
	f.resume(t, owner)
	f.resume(t, owner)
	f.resume(t, other)

	list, err := f.resumes.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestResumeCreateValidates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")

	_, err := f.resumes.Create(ctx, owner.ID, ResumeInput{Title: " ", Content: "c"})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = f.resumes.Create(ctx, "missing", ResumeInput{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
