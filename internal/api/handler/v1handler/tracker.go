package v1handler

import (
	"fmt"
	"net/http"

	"careeros/internal/tracker"
	"careeros/pkg/domain"
)

const jobNotFound = "Job not found"

// TrackerResponse is the envelope of every tracker response.
type TrackerResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}

type NoteRequest struct {
	Content string `json:"content"`
}

type BulkStageRequest struct {
	JobIDs []string     `json:"jobIds"`
	Stage  domain.Stage `json:"stage"`
}

func trackerData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, TrackerResponse{Success: true, Data: data})
}

func (h Handler) CreateTrackedJob(w http.ResponseWriter, r *http.Request) error {
	var input tracker.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		return err
	}

	job, err := h.deps.Tracker.Create(r.Context(), GetUserIDFromContext(r.Context()), input)
	if err != nil {
		return err //nolint: wrapcheck
	}

	trackerData(w, http.StatusCreated, job)

	return nil
}

// ListTrackedJobs supports the stage, priority, company and search filters.
func (h Handler) ListTrackedJobs(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	jobs, err := h.deps.Tracker.List(r.Context(), GetUserIDFromContext(r.Context()), domain.TrackedJobFilter{
		Stage:    domain.Stage(q.Get("stage")),
		Priority: domain.Priority(q.Get("priority")),
		Company:  q.Get("company"),
		Search:   q.Get("search"),
	})
	if err != nil {
		return err //nolint: wrapcheck
	}
	if jobs == nil {
		jobs = []domain.TrackedJob{}
	}

	count := len(jobs)
	writeJSON(w, http.StatusOK, TrackerResponse{Success: true, Count: &count, Data: jobs})

	return nil
}

func (h Handler) GetTrackedJob(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", domain.ParseTrackedJobID, jobNotFound)
	if err != nil {
		return err
	}

	job, err := h.deps.Tracker.Get(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		return err //nolint: wrapcheck
	}

	trackerData(w, http.StatusOK, job)

	return nil
}

func (h Handler) UpdateTrackedJob(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", domain.ParseTrackedJobID, jobNotFound)
	if err != nil {
		return err
	}
	var patch tracker.Patch
	if err := decodeJSON(r, &patch); err != nil {
		return err
	}

	job, err := h.deps.Tracker.Update(r.Context(), GetUserIDFromContext(r.Context()), id, patch)
	if err != nil {
		return err //nolint: wrapcheck
	}

	trackerData(w, http.StatusOK, job)

	return nil
}

func (h Handler) DeleteTrackedJob(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", domain.ParseTrackedJobID, jobNotFound)
	if err != nil {
		return err
	}

	if err := h.deps.Tracker.Delete(r.Context(), GetUserIDFromContext(r.Context()), id); err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, TrackerResponse{Success: true, Message: "Job deleted successfully"})

	return nil
}

func (h Handler) AddNote(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", domain.ParseTrackedJobID, jobNotFound)
	if err != nil {
		return err
	}
	var req NoteRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	job, err := h.deps.Tracker.AddNote(r.Context(), GetUserIDFromContext(r.Context()), id, req.Content)
	if err != nil {
		return err //nolint: wrapcheck
	}

	trackerData(w, http.StatusOK, job)

	return nil
}

func (h Handler) AddReminder(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", domain.ParseTrackedJobID, jobNotFound)
	if err != nil {
		return err
	}
	var input tracker.ReminderInput
	if err := decodeJSON(r, &input); err != nil {
		return err
	}

	job, err := h.deps.Tracker.AddReminder(r.Context(), GetUserIDFromContext(r.Context()), id, input)
	if err != nil {
		return err //nolint: wrapcheck
	}

	trackerData(w, http.StatusOK, job)

	return nil
}

func (h Handler) AddInterview(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", domain.ParseTrackedJobID, jobNotFound)
	if err != nil {
		return err
	}
	var input tracker.InterviewInput
	if err := decodeJSON(r, &input); err != nil {
		return err
	}

	job, err := h.deps.Tracker.AddInterview(r.Context(), GetUserIDFromContext(r.Context()), id, input)
	if err != nil {
		return err //nolint: wrapcheck
	}

	trackerData(w, http.StatusOK, job)

	return nil
}

func (h Handler) AddAttachment(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id", domain.ParseTrackedJobID, jobNotFound)
	if err != nil {
		return err
	}
	var input tracker.AttachmentInput
	if err := decodeJSON(r, &input); err != nil {
		return err
	}

	job, err := h.deps.Tracker.AddAttachment(r.Context(), GetUserIDFromContext(r.Context()), id, input)
	if err != nil {
		return err //nolint: wrapcheck
	}

	trackerData(w, http.StatusOK, job)

	return nil
}

// BulkUpdateStage moves several jobs to one stage.
func (h Handler) BulkUpdateStage(w http.ResponseWriter, r *http.Request) error {
	var req BulkStageRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	res, err := h.deps.Tracker.BulkUpdateStage(r.Context(), GetUserIDFromContext(r.Context()), req.JobIDs, req.Stage)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, TrackerResponse{
		Success: true,
		Message: fmt.Sprintf("Updated %d jobs to stage: %s", res.Requested, req.Stage),
		Data:    res,
	})

	return nil
}
