package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/job-recruitment/internal/domain/errs"
)

func TestNewReview(t *testing.T) {
	r, err := NewReview("user-1", "team-1", "great team", 4, now)
	require.NoError(t, err)

	assert.Equal(t, StatusActivated, r.Status)
	assert.EqualValues(t, 4, r.Score)
	assert.True(t, r.IsWrittenBy("user-1"))
}

func TestNewReviewRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
		score   int64
	}{
		{"blank content", " ", 3},
		{"score below range", "ok", MinReviewScore - 1},
		{"score above range", "ok", MaxReviewScore + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReview("user-1", "team-1", tt.content, tt.score, now)
			assert.ErrorIs(t, err, errs.ErrInvalidArgument)
			assert.Nil(t, r)
		})
	}
}

func TestReviewActivationToggle(t *testing.T) {
	r, err := NewReview("user-1", "team-1", "content", 3, now)
	require.NoError(t, err)

	assert.ErrorIs(t, r.Activate(now), errs.ErrInvalidState)
	require.NoError(t, r.Inactivate(now))
	assert.ErrorIs(t, r.Inactivate(now), errs.ErrInvalidState)
	assert.ErrorIs(t, r.Update("content", 4, now), errs.ErrInvalidState)
	require.NoError(t, r.Activate(now))
}

func TestAverageScore(t *testing.T) {
	active := func(score int64) *Review { return &Review{Score: score, Status: StatusActivated} }
	inactive := func(score int64) *Review { return &Review{Score: score, Status: StatusInactivated} }

	assert.Equal(t, 0.0, AverageScore(nil))
	assert.Equal(t, 4.0, AverageScore([]*Review{active(3), active(5)}))
	assert.Equal(t, 3.0, AverageScore([]*Review{active(3), inactive(1)}))
	assert.Equal(t, 0.0, AverageScore([]*Review{inactive(5)}))
}
