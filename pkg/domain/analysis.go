package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RunID identifies a JD analysis run.
type RunID uuid.UUID

func NewRunID() RunID { return RunID(uuid.New()) }

func ParseRunID(s string) (RunID, error) {
	id, err := uuid.Parse(s)

	return RunID(id), err
}

func (id RunID) String() string { return uuid.UUID(id).String() }

func (id RunID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *RunID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// AnalysisStatus is the progress of a JD analysis. The worker may report
// intermediate values beyond the ones listed here, which are stored as-is.
type AnalysisStatus string

const (
	AnalysisStatusPending    AnalysisStatus = "pending"
	AnalysisStatusValidating AnalysisStatus = "validating"
	AnalysisStatusParsingJD  AnalysisStatus = "parsing_jd"
	AnalysisStatusAnalyzing  AnalysisStatus = "analyzing"
	AnalysisStatusComplete   AnalysisStatus = "complete"
	AnalysisStatusFailed     AnalysisStatus = "failed"
)

// Terminal reports whether the analysis will not change anymore.
func (s AnalysisStatus) Terminal() bool {
	return s == AnalysisStatusComplete || s == AnalysisStatusFailed
}

// JdAnalysis is a request to match a job description against the user's profile.
type JdAnalysis struct {
	RunID  RunID
	UserID UserID
	Status AnalysisStatus
	JDText string
	// ErrorMessage is set when the analysis failed.
	ErrorMessage string
	// Results is the worker's report, e.g. match_score, jd_summary and suggestions.
	Results json.RawMessage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AnalysisSummary is the history view of a completed analysis.
type AnalysisSummary struct {
	RunID    RunID     `json:"runId"`
	Date     time.Time `json:"date"`
	JobTitle string    `json:"jobTitle"`
	Company  string    `json:"company"`
	Score    float64   `json:"score"`
}
