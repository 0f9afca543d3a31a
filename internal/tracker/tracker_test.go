package tracker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"careeros/internal/tracker"
	"careeros/pkg/domain"
	"careeros/pkg/serrors"
	"careeros/pkg/storage"
	mockstorage "careeros/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const userID = domain.UserID("user_2abc")

var testNow = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC) //nolint: gochecknoglobals

func newTestTracker(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, tracker.Tracker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, tracker.NewWithClock(st, func() time.Time { return testNow })
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

func returnJob(_ context.Context, job domain.TrackedJob) (*domain.TrackedJob, error) {
	return &job, nil
}

func TestTracker_Create_Defaults(t *testing.T) {
	_, st, tr := newTestTracker(t)

	st.EXPECT().StoreTrackedJob(gomock.Any(), gomock.Any()).DoAndReturn(returnJob)

	job, err := tr.Create(context.Background(), userID, tracker.CreateInput{
		Title:     "  Platform Engineer ",
		Company:   "Acme",
		ApplyLink: "https://acme.dev/jobs/9?utm_medium=email",
		Notes:     []tracker.NoteInput{{Content: "referral from Sam"}, {Content: " "}},
	})
	require.NoError(t, err)

	require.Equal(t, userID, job.UserID)
	require.Equal(t, "Platform Engineer", job.Title)
	require.Equal(t, domain.StageSaved, job.Stage)
	require.Equal(t, domain.PriorityMedium, job.Priority)
	require.Equal(t, domain.TrackedJobSourceManual, job.Source)
	require.Equal(t, "Full-time", job.JobType)
	require.Equal(t, "https://acme.dev/jobs/9", job.ApplyLink)
	require.Len(t, job.Notes, 1)
	require.Equal(t, []domain.StatusChange{
		{Stage: domain.StageSaved, ChangedAt: testNow, Note: "Job saved to tracker"},
	}, job.StatusHistory)
}

func TestTracker_Create_FromMatcher(t *testing.T) {
	_, st, tr := newTestTracker(t)

	st.EXPECT().StoreTrackedJob(gomock.Any(), gomock.Any()).DoAndReturn(returnJob)

	score := 73.5
	job, err := tr.Create(context.Background(), userID, tracker.CreateInput{
		Title:      "Data Engineer",
		Company:    "Globex",
		Stage:      domain.StageApplied,
		Source:     domain.TrackedJobSourceMatcher,
		MatchScore: &score,
		Priority:   domain.PriorityHigh,
		Interviews: []tracker.InterviewInput{{Round: "Phone screen"}},
	})
	require.NoError(t, err)

	require.Equal(t, domain.StageApplied, job.StatusHistory[0].Stage)
	require.Equal(t, domain.InterviewResultPending, job.Interviews[0].Result)
	require.InDelta(t, 73.5, *job.MatchScore, 0.001)
}

func TestTracker_Create_Validation(t *testing.T) {
	_, _, tr := newTestTracker(t)

	cases := map[string]tracker.CreateInput{
		"missing title":    {Company: "Acme"},
		"missing company":  {Title: "SRE"},
		"invalid stage":    {Title: "SRE", Company: "Acme", Stage: "archived"},
		"invalid priority": {Title: "SRE", Company: "Acme", Priority: "urgent"},
		"invalid source":   {Title: "SRE", Company: "Acme", Source: "linkedin"},
		"invalid result": {Title: "SRE", Company: "Acme",
			Interviews: []tracker.InterviewInput{{Round: "Onsite", Result: "maybe"}}},
		"interview without round": {Title: "SRE", Company: "Acme", Interviews: []tracker.InterviewInput{{}}},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tr.Create(context.Background(), userID, input)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestTracker_List(t *testing.T) {
	_, st, tr := newTestTracker(t)

	filter := domain.TrackedJobFilter{Stage: domain.StageApplied, Company: " acme "}
	st.EXPECT().TrackedJobs(gomock.Any(), userID, domain.TrackedJobFilter{Stage: domain.StageApplied, Company: "acme"}).
		Return([]domain.TrackedJob{baseJob()}, nil)

	jobs, err := tr.List(context.Background(), userID, filter)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	_, err = tr.List(context.Background(), userID, domain.TrackedJobFilter{Priority: "urgent"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestTracker_Get_NotFound(t *testing.T) {
	_, st, tr := newTestTracker(t)
	id := domain.NewTrackedJobID()

	st.EXPECT().TrackedJobByID(gomock.Any(), userID, id, false).Return(nil, nil)

	_, err := tr.Get(context.Background(), userID, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestTracker_Update(t *testing.T) {
	ctrl, st, tr := newTestTracker(t)
	job := baseJob()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TrackedJobByID(gomock.Any(), userID, job.ID, true).Return(&job, nil)
		tx.EXPECT().UpdateTrackedJob(gomock.Any(), gomock.Any()).DoAndReturn(returnJob)
	})

	stage := domain.StageOffer
	updated, err := tr.Update(context.Background(), userID, job.ID, tracker.Patch{Stage: &stage})
	require.NoError(t, err)
	require.Equal(t, domain.StageOffer, updated.Stage)
	require.Len(t, updated.StatusHistory, 2)
	require.Equal(t, testNow, updated.StatusHistory[1].ChangedAt)
}

func TestTracker_Update_NotFound(t *testing.T) {
	ctrl, st, tr := newTestTracker(t)
	id := domain.NewTrackedJobID()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TrackedJobByID(gomock.Any(), userID, id, true).Return(nil, nil)
	})

	_, err := tr.Update(context.Background(), userID, id, tracker.Patch{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestTracker_Update_InvalidPatchSkipsWrite(t *testing.T) {
	ctrl, st, tr := newTestTracker(t)
	job := baseJob()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TrackedJobByID(gomock.Any(), userID, job.ID, true).Return(&job, nil)
	})

	priority := domain.Priority("urgent")
	_, err := tr.Update(context.Background(), userID, job.ID, tracker.Patch{Priority: &priority})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestTracker_Delete(t *testing.T) {
	_, st, tr := newTestTracker(t)
	job := baseJob()

	st.EXPECT().DeleteTrackedJob(gomock.Any(), userID, job.ID).Return(&job, nil)
	require.NoError(t, tr.Delete(context.Background(), userID, job.ID))

	st.EXPECT().DeleteTrackedJob(gomock.Any(), userID, job.ID).Return(nil, nil)
	require.ErrorIs(t, tr.Delete(context.Background(), userID, job.ID), serrors.ErrNotFound)

	st.EXPECT().DeleteTrackedJob(gomock.Any(), userID, job.ID).Return(nil, errors.New("db down"))
	require.ErrorContains(t, tr.Delete(context.Background(), userID, job.ID), "db down")
}

func TestTracker_AddNote(t *testing.T) {
	ctrl, st, tr := newTestTracker(t)
	job := baseJob()

	_, err := tr.AddNote(context.Background(), userID, job.ID, "   ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TrackedJobByID(gomock.Any(), userID, job.ID, true).Return(&job, nil)
		tx.EXPECT().UpdateTrackedJob(gomock.Any(), gomock.Any()).DoAndReturn(returnJob)
	})

	updated, err := tr.AddNote(context.Background(), userID, job.ID, "sent thank-you email")
	require.NoError(t, err)
	require.Len(t, updated.Notes, 1)
	require.Equal(t, "sent thank-you email", updated.Notes[0].Content)
	require.Equal(t, testNow, updated.Notes[0].CreatedAt)
}

func TestTracker_AddReminder(t *testing.T) {
	ctrl, st, tr := newTestTracker(t)
	job := baseJob()

	_, err := tr.AddReminder(context.Background(), userID, job.ID, tracker.ReminderInput{Message: "follow up"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TrackedJobByID(gomock.Any(), userID, job.ID, true).Return(&job, nil)
		tx.EXPECT().UpdateTrackedJob(gomock.Any(), gomock.Any()).DoAndReturn(returnJob)
	})

	date := tracker.Date{Time: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)}
	updated, err := tr.AddReminder(context.Background(), userID, job.ID,
		tracker.ReminderInput{Date: &date, Message: "follow up"})
	require.NoError(t, err)
	require.Len(t, updated.Reminders, 1)
	require.False(t, updated.Reminders[0].Completed)
	require.Equal(t, date.Time, updated.Reminders[0].Date)
}

func TestTracker_AddInterview(t *testing.T) {
	ctrl, st, tr := newTestTracker(t)
	job := baseJob()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TrackedJobByID(gomock.Any(), userID, job.ID, true).Return(&job, nil)
		tx.EXPECT().UpdateTrackedJob(gomock.Any(), gomock.Any()).DoAndReturn(returnJob)
	})

	updated, err := tr.AddInterview(context.Background(), userID, job.ID, tracker.InterviewInput{
		Round:        "System design",
		Interviewers: "Ada, Linus",
		Result:       domain.InterviewResultPassed,
	})
	require.NoError(t, err)
	require.Len(t, updated.Interviews, 1)
	require.Equal(t, domain.InterviewResultPassed, updated.Interviews[0].Result)
	require.Nil(t, updated.Interviews[0].ScheduledDate)
}

func TestTracker_AddAttachment(t *testing.T) {
	ctrl, st, tr := newTestTracker(t)
	job := baseJob()

	_, err := tr.AddAttachment(context.Background(), userID, job.ID, tracker.AttachmentInput{FileName: "cv.pdf"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TrackedJobByID(gomock.Any(), userID, job.ID, true).Return(&job, nil)
		tx.EXPECT().UpdateTrackedJob(gomock.Any(), gomock.Any()).DoAndReturn(returnJob)
	})

	updated, err := tr.AddAttachment(context.Background(), userID, job.ID, tracker.AttachmentInput{
		FileName: "cover-letter.pdf",
		FileURL:  "https://files.careeros.dev/cover-letter.pdf",
	})
	require.NoError(t, err)
	require.Len(t, updated.Attachments, 1)
	require.Equal(t, "application/pdf", updated.Attachments[0].FileType)
	require.Equal(t, testNow, updated.Attachments[0].UploadedAt)
}

func TestTracker_BulkUpdateStage(t *testing.T) {
	ctrl, st, tr := newTestTracker(t)

	moving := baseJob()
	already := baseJob()
	already.Stage = domain.StageRejected

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TrackedJobsByIDs(gomock.Any(), userID, gomock.Len(2), true).
			Return([]domain.TrackedJob{moving, already}, nil)
		tx.EXPECT().UpdateTrackedJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job domain.TrackedJob) (*domain.TrackedJob, error) {
				require.Equal(t, moving.ID, job.ID)
				require.Equal(t, domain.StageRejected, job.Stage)
				require.Equal(t, domain.StatusChange{Stage: domain.StageRejected, ChangedAt: testNow, Note: "Bulk update"},
					job.StatusHistory[len(job.StatusHistory)-1])

				return &job, nil
			})
	})

	res, err := tr.BulkUpdateStage(context.Background(), userID,
		[]string{moving.ID.String(), already.ID.String(), "not-an-id"}, domain.StageRejected)
	require.NoError(t, err)
	require.Equal(t, &tracker.BulkResult{Requested: 3, Updated: 1}, res)
}

func TestTracker_BulkUpdateStage_Validation(t *testing.T) {
	_, _, tr := newTestTracker(t)

	_, err := tr.BulkUpdateStage(context.Background(), userID, nil, domain.StageApplied)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = tr.BulkUpdateStage(context.Background(), userID, []string{"x"}, "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = tr.BulkUpdateStage(context.Background(), userID, []string{"x"}, "archived")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	res, err := tr.BulkUpdateStage(context.Background(), userID, []string{"x"}, domain.StageApplied)
	require.NoError(t, err)
	require.Equal(t, 0, res.Updated)
}
