package v1handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"careeros/pkg/domain"
	"careeros/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAnalyzeJD(t *testing.T) {
	api := newTestAPI(t, nil)
	runID := domain.NewRunID()

	api.matcher.EXPECT().Analyze(gomock.Any(), testUser, "Senior Go engineer").Return(runID, nil)

	rec := api.do(t, http.MethodPost, "/api/matcher/analyze", map[string]string{"jdText": "Senior Go engineer"})
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.JSONEq(t, `{"runId":"`+runID.String()+`"}`, rec.Body.String())
}

func TestAnalyzeJD_TooShort(t *testing.T) {
	api := newTestAPI(t, nil)

	api.matcher.EXPECT().Analyze(gomock.Any(), testUser, "").
		Return(domain.RunID{}, serrors.With(serrors.ErrBadRequest, "Job Description text is too short."))

	rec := api.do(t, http.MethodPost, "/api/matcher/analyze", `{}`)
	body := requireError(t, rec, http.StatusBadRequest, serrors.ErrBadRequest)
	require.Equal(t, "Job Description text is too short.", body.Message)
}

func TestAnalysisStatus(t *testing.T) {
	api := newTestAPI(t, nil)
	runID := domain.NewRunID()

	api.matcher.EXPECT().Status(gomock.Any(), testUser, runID).Return(&domain.JdAnalysis{
		RunID:        runID,
		Status:       domain.AnalysisStatusFailed,
		ErrorMessage: "analysis timed out",
	}, nil)

	rec := api.do(t, http.MethodGet, "/api/matcher/status/"+runID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"failed","error":"analysis timed out"}`, rec.Body.String())
}

func TestAnalysisStatus_MalformedID(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(t, http.MethodGet, "/api/matcher/status/not-a-uuid", nil)
	body := requireError(t, rec, http.StatusNotFound, serrors.ErrNotFound)
	require.Equal(t, "Analysis not found.", body.Message)
}

func TestAnalysisResults(t *testing.T) {
	api := newTestAPI(t, nil)
	runID := domain.NewRunID()

	api.matcher.EXPECT().Results(gomock.Any(), testUser, runID).
		Return(json.RawMessage(`{"match_score":82,"meta":{"fileName":"cv.pdf"}}`), nil)

	rec := api.do(t, http.MethodGet, "/api/matcher/results/"+runID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"match_score":82,"meta":{"fileName":"cv.pdf"}}`, rec.Body.String())
}

func TestAnalysisResults_NotComplete(t *testing.T) {
	api := newTestAPI(t, nil)
	runID := domain.NewRunID()

	api.matcher.EXPECT().Results(gomock.Any(), testUser, runID).
		Return(nil, serrors.With(serrors.ErrBadRequest, "Analysis is not complete. Current status: analyzing"))

	rec := api.do(t, http.MethodGet, "/api/matcher/results/"+runID.String(), nil)
	body := requireError(t, rec, http.StatusBadRequest, serrors.ErrBadRequest)
	require.Equal(t, "Analysis is not complete. Current status: analyzing", body.Message)
}

func TestAnalysisHistory(t *testing.T) {
	api := newTestAPI(t, nil)
	runID := domain.NewRunID()
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	api.matcher.EXPECT().History(gomock.Any(), testUser).Return([]domain.AnalysisSummary{
		{RunID: runID, Date: date, JobTitle: "SRE", Company: "Acme", Score: 77},
	}, nil)

	rec := api.do(t, http.MethodGet, "/api/matcher/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{
		"runId": "`+runID.String()+`",
		"date": "2026-04-01T00:00:00Z",
		"jobTitle": "SRE",
		"company": "Acme",
		"score": 77
	}]`, rec.Body.String())
}

func TestDeleteAnalysis(t *testing.T) {
	api := newTestAPI(t, nil)
	runID := domain.NewRunID()

	api.matcher.EXPECT().Delete(gomock.Any(), testUser, runID).Return(nil)
	rec := api.do(t, http.MethodDelete, "/api/matcher/"+runID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Analysis deleted successfully"}`, rec.Body.String())

	api.matcher.EXPECT().Delete(gomock.Any(), testUser, runID).
		Return(serrors.With(serrors.ErrNotFound, "Analysis not found."))
	rec = api.do(t, http.MethodDelete, "/api/matcher/"+runID.String(), nil)
	requireError(t, rec, http.StatusNotFound, serrors.ErrNotFound)
}
