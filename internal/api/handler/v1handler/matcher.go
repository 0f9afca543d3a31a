package v1handler

import (
	"net/http"

	"careeros/pkg/domain"
)

const analysisNotFound = "Analysis not found."

type AnalyzeRequest struct {
	JDText string `json:"jdText"`
}

type AnalyzeResponse struct {
	RunID domain.RunID `json:"runId"`
}

type AnalysisStatusResponse struct {
	Status domain.AnalysisStatus `json:"status"`
	Error  string                `json:"error,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// AnalyzeJD queues a match of the posted job description against the profile.
func (h Handler) AnalyzeJD(w http.ResponseWriter, r *http.Request) error {
	var req AnalyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	runID, err := h.deps.Matcher.Analyze(r.Context(), GetUserIDFromContext(r.Context()), req.JDText)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusAccepted, AnalyzeResponse{RunID: runID})

	return nil
}

func (h Handler) AnalysisStatus(w http.ResponseWriter, r *http.Request) error {
	runID, err := pathID(r, "runId", domain.ParseRunID, analysisNotFound)
	if err != nil {
		return err
	}

	a, err := h.deps.Matcher.Status(r.Context(), GetUserIDFromContext(r.Context()), runID)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, AnalysisStatusResponse{Status: a.Status, Error: a.ErrorMessage})

	return nil
}

// AnalysisResults returns the worker's report of a complete analysis.
func (h Handler) AnalysisResults(w http.ResponseWriter, r *http.Request) error {
	runID, err := pathID(r, "runId", domain.ParseRunID, analysisNotFound)
	if err != nil {
		return err
	}

	res, err := h.deps.Matcher.Results(r.Context(), GetUserIDFromContext(r.Context()), runID)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, res)

	return nil
}

func (h Handler) AnalysisHistory(w http.ResponseWriter, r *http.Request) error {
	history, err := h.deps.Matcher.History(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}
	if history == nil {
		history = []domain.AnalysisSummary{}
	}

	writeJSON(w, http.StatusOK, history)

	return nil
}

func (h Handler) DeleteAnalysis(w http.ResponseWriter, r *http.Request) error {
	runID, err := pathID(r, "runId", domain.ParseRunID, analysisNotFound)
	if err != nil {
		return err
	}

	if err := h.deps.Matcher.Delete(r.Context(), GetUserIDFromContext(r.Context()), runID); err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Analysis deleted successfully"})

	return nil
}
