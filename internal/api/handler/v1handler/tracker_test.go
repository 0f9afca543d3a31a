package v1handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"careeros/internal/tracker"
	"careeros/pkg/domain"
	"careeros/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Count   *int   `json:"count"`
	Message string `json:"message"`
}

func TestCreateTrackedJob(t *testing.T) {
	api := newTestAPI(t, nil)
	id := domain.NewTrackedJobID()

	api.tracker.EXPECT().Create(gomock.Any(), testUser, gomock.Any()).DoAndReturn(
		func(_ context.Context, userID domain.UserID, in tracker.CreateInput) (*domain.TrackedJob, error) {
			require.Equal(t, "SRE", in.Title)
			require.Equal(t, "Acme", in.Company)

			return &domain.TrackedJob{ID: id, UserID: userID, Title: in.Title, Company: in.Company, Stage: domain.StageSaved}, nil
		})

	rec := api.do(t, http.MethodPost, "/api/tracker/jobs", map[string]string{"title": "SRE", "company": "Acme"})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody[envelope[domain.TrackedJob]](t, rec)
	require.True(t, body.Success)
	require.Nil(t, body.Count)
	require.Equal(t, id, body.Data.ID)
	require.Equal(t, domain.StageSaved, body.Data.Stage)
}

func TestCreateTrackedJob_Invalid(t *testing.T) {
	api := newTestAPI(t, nil)

	api.tracker.EXPECT().Create(gomock.Any(), testUser, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrBadRequest, "Title and company are required"))

	rec := api.do(t, http.MethodPost, "/api/tracker/jobs", `{"title":"SRE"}`)
	requireError(t, rec, http.StatusBadRequest, serrors.ErrBadRequest)
}

func TestListTrackedJobs(t *testing.T) {
	api := newTestAPI(t, nil)

	api.tracker.EXPECT().List(gomock.Any(), testUser, domain.TrackedJobFilter{
		Stage:    domain.StageApplied,
		Priority: domain.PriorityHigh,
		Company:  "acme",
		Search:   "go dev",
	}).Return([]domain.TrackedJob{{Title: "Go Dev"}, {Title: "Senior Go Dev"}}, nil)

	rec := api.do(t, http.MethodGet, "/api/tracker/jobs?stage=applied&priority=high&company=acme&search=go+dev", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[envelope[[]domain.TrackedJob]](t, rec)
	require.True(t, body.Success)
	require.NotNil(t, body.Count)
	require.Equal(t, 2, *body.Count)
	require.Len(t, body.Data, 2)
}

func TestListTrackedJobs_Empty(t *testing.T) {
	api := newTestAPI(t, nil)

	api.tracker.EXPECT().List(gomock.Any(), testUser, domain.TrackedJobFilter{}).Return(nil, nil)

	rec := api.do(t, http.MethodGet, "/api/tracker/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rec.Body.String())
}

func TestGetTrackedJob_NotFound(t *testing.T) {
	api := newTestAPI(t, nil)
	id := domain.NewTrackedJobID()

	api.tracker.EXPECT().Get(gomock.Any(), testUser, id).Return(nil, serrors.With(serrors.ErrNotFound, "Job not found"))

	rec := api.do(t, http.MethodGet, "/api/tracker/jobs/"+id.String(), nil)
	body := requireError(t, rec, http.StatusNotFound, serrors.ErrNotFound)
	require.Equal(t, "Job not found", body.Message)

	rec = api.do(t, http.MethodGet, "/api/tracker/jobs/123", nil)
	requireError(t, rec, http.StatusNotFound, serrors.ErrNotFound)
}

func TestUpdateTrackedJob(t *testing.T) {
	api := newTestAPI(t, nil)
	id := domain.NewTrackedJobID()

	api.tracker.EXPECT().Update(gomock.Any(), testUser, id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, _ domain.TrackedJobID, p tracker.Patch) (*domain.TrackedJob, error) {
			require.NotNil(t, p.Stage)
			require.Equal(t, domain.StageInterview, *p.Stage)
			require.Equal(t, "Recruiter call went well", p.StageChangeNote)
			require.Nil(t, p.Title)

			return &domain.TrackedJob{ID: id, Stage: *p.Stage}, nil
		})

	rec := api.do(t, http.MethodPatch, "/api/tracker/jobs/"+id.String(),
		`{"stage":"interview","stageChangeNote":"Recruiter call went well"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[envelope[domain.TrackedJob]](t, rec)
	require.Equal(t, domain.StageInterview, body.Data.Stage)
}

func TestDeleteTrackedJob(t *testing.T) {
	api := newTestAPI(t, nil)
	id := domain.NewTrackedJobID()

	api.tracker.EXPECT().Delete(gomock.Any(), testUser, id).Return(nil)

	rec := api.do(t, http.MethodDelete, "/api/tracker/jobs/"+id.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true,"message":"Job deleted successfully"}`, rec.Body.String())
}

func TestTrackedJobSubResources(t *testing.T) {
	id := domain.NewTrackedJobID()
	job := &domain.TrackedJob{ID: id}

	tests := []struct {
		name   string
		path   string
		body   string
		expect func(api *testAPI)
	}{
		{
			name: "note",
			path: "/notes",
			body: `{"content":"Follow up next week"}`,
			expect: func(api *testAPI) {
				api.tracker.EXPECT().AddNote(gomock.Any(), testUser, id, "Follow up next week").Return(job, nil)
			},
		},
		{
			name: "reminder",
			path: "/reminders",
			body: `{"date":"2026-05-01","message":"Send thank you note"}`,
			expect: func(api *testAPI) {
				api.tracker.EXPECT().AddReminder(gomock.Any(), testUser, id, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ domain.UserID, _ domain.TrackedJobID, in tracker.ReminderInput) (*domain.TrackedJob, error) {
						require.NotNil(t, in.Date)
						require.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), in.Date.Time)
						require.Equal(t, "Send thank you note", in.Message)

						return job, nil
					})
			},
		},
		{
			name: "interview",
			path: "/interviews",
			body: `{"round":"Onsite","interviewers":"Ada, Grace"}`,
			expect: func(api *testAPI) {
				api.tracker.EXPECT().AddInterview(gomock.Any(), testUser, id, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ domain.UserID, _ domain.TrackedJobID, in tracker.InterviewInput) (*domain.TrackedJob, error) {
						require.Equal(t, "Onsite", in.Round)
						require.Equal(t, "Ada, Grace", in.Interviewers)

						return job, nil
					})
			},
		},
		{
			name: "attachment",
			path: "/attachments",
			body: `{"fileName":"offer.pdf","fileUrl":"https://files.example.com/offer.pdf"}`,
			expect: func(api *testAPI) {
				api.tracker.EXPECT().AddAttachment(gomock.Any(), testUser, id, tracker.AttachmentInput{
					FileName: "offer.pdf",
					FileURL:  "https://files.example.com/offer.pdf",
				}).Return(job, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, nil)
			tt.expect(api)

			rec := api.do(t, http.MethodPost, "/api/tracker/jobs/"+id.String()+tt.path, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			body := decodeBody[envelope[domain.TrackedJob]](t, rec)
			require.True(t, body.Success)
			require.Equal(t, id, body.Data.ID)
		})
	}
}

func TestBulkUpdateStage(t *testing.T) {
	api := newTestAPI(t, nil)
	ids := []string{domain.NewTrackedJobID().String(), domain.NewTrackedJobID().String()}

	api.tracker.EXPECT().BulkUpdateStage(gomock.Any(), testUser, ids, domain.StageRejected).
		Return(&tracker.BulkResult{Requested: 2, Updated: 1}, nil)

	rec := api.do(t, http.MethodPatch, "/api/tracker/jobs/bulk/stage", map[string]any{"jobIds": ids, "stage": "rejected"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"success": true,
		"message": "Updated 2 jobs to stage: rejected",
		"data": {"requested": 2, "updated": 1}
	}`, rec.Body.String())
}

func TestBulkUpdateStage_Invalid(t *testing.T) {
	api := newTestAPI(t, nil)

	api.tracker.EXPECT().BulkUpdateStage(gomock.Any(), testUser, gomock.Nil(), domain.StageRejected).
		Return(nil, serrors.With(serrors.ErrBadRequest, "Job IDs array is required"))

	rec := api.do(t, http.MethodPatch, "/api/tracker/jobs/bulk/stage", `{"stage":"rejected"}`)
	body := requireError(t, rec, http.StatusBadRequest, serrors.ErrBadRequest)
	require.Equal(t, "Job IDs array is required", body.Message)
}
