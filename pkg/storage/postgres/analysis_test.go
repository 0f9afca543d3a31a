package postgres_test

import (
	"context"
	"testing"
	"time"

	"careeros/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Analyses(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	pending, err := pg.StoreAnalysis(ctx, domain.JdAnalysis{
		RunID:  domain.NewRunID(),
		UserID: "user_1",
		Status: domain.AnalysisStatusPending,
		JDText: "We are hiring a Go engineer",
	})
	require.NoError(t, err)
	require.Equal(t, domain.AnalysisStatusPending, pending.Status)
	require.False(t, pending.CreatedAt.IsZero())

	found, err := pg.AnalysisByID(ctx, "user_1", pending.RunID)
	require.NoError(t, err)
	require.Equal(t, pending.RunID, found.RunID)

	other, err := pg.AnalysisByID(ctx, "user_2", pending.RunID)
	require.NoError(t, err)
	require.Nil(t, other, "analyses are scoped to their owner")

	var completed []domain.RunID
	for i := 0; i < 3; i++ {
		a, err := pg.StoreAnalysis(ctx, domain.JdAnalysis{
			RunID:   domain.NewRunID(),
			UserID:  "user_1",
			Status:  domain.AnalysisStatusComplete,
			JDText:  "jd",
			Results: []byte(`{"match_score":80}`),
		})
		require.NoError(t, err)
		completed = append(completed, a.RunID)
		time.Sleep(5 * time.Millisecond)
	}

	history, err := pg.CompletedAnalyses(ctx, "user_1", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, completed[2], history[0].RunID)
	require.Equal(t, completed[1], history[1].RunID)
	require.JSONEq(t, `{"match_score":80}`, string(history[0].Results))

	changed, err := pg.FailAnalysis(ctx, pending.RunID, "dispatch failed")
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = pg.FailAnalysis(ctx, completed[0], "dispatch failed")
	require.NoError(t, err)
	require.False(t, changed, "terminal analyses are left alone")

	failed, err := pg.AnalysisByID(ctx, "user_1", pending.RunID)
	require.NoError(t, err)
	require.Equal(t, domain.AnalysisStatusFailed, failed.Status)
	require.Equal(t, "dispatch failed", failed.ErrorMessage)

	deleted, err := pg.DeleteAnalysis(ctx, "user_1", completed[0])
	require.NoError(t, err)
	require.Equal(t, completed[0], deleted.RunID)

	deleted, err = pg.DeleteAnalysis(ctx, "user_1", completed[0])
	require.NoError(t, err)
	require.Nil(t, deleted)
}

func TestPgSQL_FailStaleAnalyses(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	stale, err := pg.StoreAnalysis(ctx, domain.JdAnalysis{
		RunID: domain.NewRunID(), UserID: "user_1", Status: domain.AnalysisStatusAnalyzing, JDText: "jd",
	})
	require.NoError(t, err)
	fresh, err := pg.StoreAnalysis(ctx, domain.JdAnalysis{
		RunID: domain.NewRunID(), UserID: "user_1", Status: domain.AnalysisStatusPending, JDText: "jd",
	})
	require.NoError(t, err)
	done, err := pg.StoreAnalysis(ctx, domain.JdAnalysis{
		RunID: domain.NewRunID(), UserID: "user_1", Status: domain.AnalysisStatusComplete, JDText: "jd",
	})
	require.NoError(t, err)

	_, err = pg.DB.ExecContext(ctx,
		`UPDATE jd_analyses SET updated_at = now() - interval '1 hour' WHERE run_id IN ($1, $2)`,
		stale.RunID.String(), done.RunID.String())
	require.NoError(t, err)

	n, err := pg.FailStaleAnalyses(ctx, time.Now().Add(-30*time.Minute), "timed out")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err := pg.AnalysisByID(ctx, "user_1", stale.RunID)
	require.NoError(t, err)
	require.Equal(t, domain.AnalysisStatusFailed, got.Status)
	require.Equal(t, "timed out", got.ErrorMessage)

	got, err = pg.AnalysisByID(ctx, "user_1", fresh.RunID)
	require.NoError(t, err)
	require.Equal(t, domain.AnalysisStatusPending, got.Status)
}
