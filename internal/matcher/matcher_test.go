package matcher_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"careeros/internal/dispatch"
	"careeros/internal/matcher"
	"careeros/pkg/broker"
	"careeros/pkg/domain"
	"careeros/pkg/serrors"
	"careeros/pkg/storage"
	mockstorage "careeros/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const userID = domain.UserID("user_2abc")

func newTestMatcher(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, matcher.Matcher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	m := matcher.New(st, matcher.Options{
		MinJDLength:  100,
		HistoryLimit: 20,
		Queue:        broker.JDAnalysisQueue,
		MaxAttempts:  5,
	})

	return ctrl, st, m
}

// expectWithTx wires Storage.WithTx to execute its callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestMatcher_Analyze(t *testing.T) {
	ctrl, st, m := newTestMatcher(t)
	jd := strings.Repeat("Senior Go engineer building payment systems. ", 5)

	var stored domain.JdAnalysis
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreAnalysis(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a domain.JdAnalysis) (*domain.JdAnalysis, error) {
				stored = a

				return &a, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				job, ok := args.(dispatch.JobArgs)
				require.True(t, ok)
				require.Equal(t, broker.JDAnalysisQueue, job.Queue)
				require.Equal(t, dispatch.SubjectAnalysis, job.Subject.Kind)
				require.Equal(t, 5, job.InsertOpts().MaxAttempts)

				var msg broker.AnalysisMessage
				require.NoError(t, json.Unmarshal(job.Payload, &msg))
				require.Equal(t, userID.String(), msg.ClerkID)
				require.Equal(t, stored.RunID.String(), msg.RunID)

				return true, nil
			})
	})

	runID, err := m.Analyze(context.Background(), userID, jd)
	require.NoError(t, err)
	require.Equal(t, stored.RunID, runID)
	require.Equal(t, domain.AnalysisStatusPending, stored.Status)
	require.Equal(t, jd, stored.JDText)
	require.Equal(t, userID, stored.UserID)
}

func TestMatcher_Analyze_TooShort(t *testing.T) {
	_, _, m := newTestMatcher(t)

	_, err := m.Analyze(context.Background(), userID, "Go dev wanted")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "Job Description text is too short.", serrors.MessageOf(err))
}

func TestMatcher_Analyze_DispatchFails(t *testing.T) {
	ctrl, st, m := newTestMatcher(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreAnalysis(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a domain.JdAnalysis) (*domain.JdAnalysis, error) { return &a, nil })
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("db down"))
	})

	_, err := m.Analyze(context.Background(), userID, strings.Repeat("x", 100))
	require.ErrorContains(t, err, "db down")
}

func TestMatcher_Status(t *testing.T) {
	_, st, m := newTestMatcher(t)
	runID := domain.NewRunID()

	st.EXPECT().AnalysisByID(gomock.Any(), userID, runID).
		Return(&domain.JdAnalysis{RunID: runID, Status: domain.AnalysisStatusFailed, ErrorMessage: "bad jd"}, nil)

	a, err := m.Status(context.Background(), userID, runID)
	require.NoError(t, err)
	require.Equal(t, "bad jd", a.ErrorMessage)

	st.EXPECT().AnalysisByID(gomock.Any(), userID, runID).Return(nil, nil)
	_, err = m.Status(context.Background(), userID, runID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestMatcher_Results(t *testing.T) {
	_, st, m := newTestMatcher(t)
	runID := domain.NewRunID()
	updated := time.Date(2026, 4, 2, 15, 4, 5, 0, time.UTC)

	st.EXPECT().AnalysisByID(gomock.Any(), userID, runID).Return(&domain.JdAnalysis{
		RunID:     runID,
		Status:    domain.AnalysisStatusComplete,
		Results:   json.RawMessage(`{"match_score":82,"jd_summary":{"job_title":"SRE"}}`),
		UpdatedAt: updated,
	}, nil)
	st.EXPECT().LatestPartialProfile(gomock.Any(), userID, domain.PartialProfileStatusValidated).
		Return(&domain.PartialProfile{FileName: "jane-doe.pdf"}, nil)

	res, err := m.Results(context.Background(), userID, runID)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"match_score": 82,
		"jd_summary": {"job_title": "SRE"},
		"meta": {"fileName": "jane-doe.pdf", "analyzedAt": "2026-04-02T15:04:05Z"}
	}`, string(res))
}

func TestMatcher_Results_DefaultFileName(t *testing.T) {
	_, st, m := newTestMatcher(t)
	runID := domain.NewRunID()

	st.EXPECT().AnalysisByID(gomock.Any(), userID, runID).
		Return(&domain.JdAnalysis{RunID: runID, Status: domain.AnalysisStatusComplete}, nil)
	st.EXPECT().LatestPartialProfile(gomock.Any(), userID, domain.PartialProfileStatusValidated).Return(nil, nil)

	res, err := m.Results(context.Background(), userID, runID)
	require.NoError(t, err)

	var decoded struct {
		Meta struct {
			FileName string `json:"fileName"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(res, &decoded))
	require.Equal(t, "resume.pdf", decoded.Meta.FileName)
}

func TestMatcher_Results_NotComplete(t *testing.T) {
	_, st, m := newTestMatcher(t)
	runID := domain.NewRunID()

	st.EXPECT().AnalysisByID(gomock.Any(), userID, runID).
		Return(&domain.JdAnalysis{RunID: runID, Status: domain.AnalysisStatusAnalyzing}, nil)

	_, err := m.Results(context.Background(), userID, runID)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "Analysis is not complete. Current status: analyzing", serrors.MessageOf(err))
}

func TestMatcher_History(t *testing.T) {
	_, st, m := newTestMatcher(t)
	first, second := domain.NewRunID(), domain.NewRunID()
	created := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	st.EXPECT().CompletedAnalyses(gomock.Any(), userID, uint(20)).Return([]domain.JdAnalysis{
		{
			RunID:     first,
			CreatedAt: created,
			Results:   json.RawMessage(`{"match_score":91.5,"jd_summary":{"job_title":"Go Engineer","company":"Acme"}}`),
		},
		{
			RunID:     second,
			CreatedAt: created.Add(-time.Hour),
			Results:   json.RawMessage(`{}`),
		},
	}, nil)

	history, err := m.History(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, []domain.AnalysisSummary{
		{RunID: first, Date: created, JobTitle: "Go Engineer", Company: "Acme", Score: 91.5},
		{RunID: second, Date: created.Add(-time.Hour), JobTitle: "Unknown Job", Company: "Unknown Company", Score: 0},
	}, history)
}

func TestMatcher_Delete(t *testing.T) {
	_, st, m := newTestMatcher(t)
	runID := domain.NewRunID()

	st.EXPECT().DeleteAnalysis(gomock.Any(), userID, runID).Return(&domain.JdAnalysis{RunID: runID}, nil)
	require.NoError(t, m.Delete(context.Background(), userID, runID))

	st.EXPECT().DeleteAnalysis(gomock.Any(), userID, runID).Return(nil, nil)
	require.ErrorIs(t, m.Delete(context.Background(), userID, runID), serrors.ErrNotFound)
}
