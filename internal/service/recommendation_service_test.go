package service

import (
	"testing"

	"barprep_backend/internal/model"
	"barprep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshCreatesWeakAreaRecommendation(t *testing.T) {
	env := newTestEnv(t)

	err := env.recommender.RefreshForSubject(&model.UserAnalytics{
		UserID:         1,
		Subject:        "evidence",
		TotalQuestions: 3,
		MasteryLevel:   33,
	})
	require.NoError(t, err)

	recs, err := env.recommender.ListOpen(1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, model.RecommendationWeakArea, recs[0].Type)
	assert.Equal(t, "evidence", recs[0].Subject)
	assert.Equal(t, 2, recs[0].Priority)
	assert.Contains(t, recs[0].Content, "evidence")
}

func TestRefreshSkipsStrongOrThinSubjects(t *testing.T) {
	env := newTestEnv(t)

	// Mastery at the ceiling.
	require.NoError(t, env.recommender.RefreshForSubject(&model.UserAnalytics{
		UserID: 1, Subject: "torts", TotalQuestions: 10, MasteryLevel: 60,
	}))
	// Too few questions to judge.
	require.NoError(t, env.recommender.RefreshForSubject(&model.UserAnalytics{
		UserID: 1, Subject: "contracts", TotalQuestions: 2, MasteryLevel: 0,
	}))

	recs, err := env.recommender.ListOpen(1)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRefreshTracksPriorityWithoutDuplicating(t *testing.T) {
	env := newTestEnv(t)

	row := &model.UserAnalytics{UserID: 1, Subject: "evidence", TotalQuestions: 3, MasteryLevel: 45}
	require.NoError(t, env.recommender.RefreshForSubject(row))

	row.TotalQuestions = 6
	row.MasteryLevel = 10
	require.NoError(t, env.recommender.RefreshForSubject(row))

	recs, err := env.recommender.ListOpen(1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 4, recs[0].Priority)
}

func TestWeakAreaPriorityScale(t *testing.T) {
	assert.Equal(t, 5, weakAreaPriority(0))
	assert.Equal(t, 4, weakAreaPriority(15))
	assert.Equal(t, 3, weakAreaPriority(30))
	assert.Equal(t, 2, weakAreaPriority(45))
	assert.Equal(t, 1, weakAreaPriority(59))
}

func TestListOpenOrdersByPriority(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.recommender.RefreshForSubject(&model.UserAnalytics{
		UserID: 1, Subject: "real-property", TotalQuestions: 4, MasteryLevel: 55,
	}))
	require.NoError(t, env.recommender.RefreshForSubject(&model.UserAnalytics{
		UserID: 1, Subject: "evidence", TotalQuestions: 4, MasteryLevel: 5,
	}))

	recs, err := env.recommender.ListOpen(1)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "evidence", recs[0].Subject)
}

func TestCompleteRecommendation(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.recommender.RefreshForSubject(&model.UserAnalytics{
		UserID: 1, Subject: "evidence", TotalQuestions: 3, MasteryLevel: 20,
	}))
	recs, err := env.recommender.ListOpen(1)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec, err := env.recommender.Complete(recs[0].ID)
	require.NoError(t, err)
	assert.True(t, rec.Completed)

	_, err = env.recommender.Complete(recs[0].ID)
	assert.ErrorIs(t, err, util.ErrRecommendationClosed)

	open, err := env.recommender.ListOpen(1)
	require.NoError(t, err)
	assert.Empty(t, open)
}
