package domain_test

import (
	"encoding/json"
	"testing"

	"careeros/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestIDsMarshalAsUUIDStrings(t *testing.T) {
	runID := domain.NewRunID()

	b, err := json.Marshal(map[string]any{"runId": runID})
	require.NoError(t, err)
	require.JSONEq(t, `{"runId":"`+runID.String()+`"}`, string(b))

	var decoded struct {
		RunID domain.RunID `json:"runId"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, runID, decoded.RunID)

	_, err = domain.ParseSessionID("not-a-uuid")
	require.Error(t, err)
}

func TestLogEntryLine(t *testing.T) {
	require.Equal(t, "[SUCCESS] found 12 jobs", domain.LogEntry{Level: domain.LogLevelSuccess, Message: "found 12 jobs"}.Line())
	require.Equal(t, "[INFO] searching adzuna", domain.LogEntry{Message: "searching adzuna"}.Line())
}

func TestEnums(t *testing.T) {
	require.True(t, domain.StageScreening.Valid())
	require.False(t, domain.Stage("archived").Valid())
	require.True(t, domain.PriorityHigh.Valid())
	require.False(t, domain.Priority("urgent").Valid())
	require.True(t, domain.TrackedJobSourceMatcher.Valid())
	require.False(t, domain.TrackedJobSource("linkedin").Valid())
	require.True(t, domain.InterviewResultUnknown.Valid())
	require.False(t, domain.InterviewResult("maybe").Valid())

	require.True(t, domain.AnalysisStatusFailed.Terminal())
	require.False(t, domain.AnalysisStatus("analyzing_with_graph").Terminal())
	require.True(t, domain.SessionStatusCompleted.Terminal())
	require.False(t, domain.SessionStatusRunning.Terminal())
}
