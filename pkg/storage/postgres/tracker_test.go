package postgres_test

import (
	"context"
	"testing"
	"time"

	"careeros/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTrackedJob(user domain.UserID, title, company string) domain.TrackedJob {
	now := time.Now().UTC().Truncate(time.Millisecond)

	return domain.TrackedJob{
		ID:       domain.NewTrackedJobID(),
		UserID:   user,
		Title:    title,
		Company:  company,
		Location: "Remote",
		JobType:  "Full-time",
		Stage:    domain.StageSaved,
		StatusHistory: []domain.StatusChange{
			{Stage: domain.StageSaved, ChangedAt: now, Note: "Job saved"},
		},
		Source:   domain.TrackedJobSourceManual,
		Priority: domain.PriorityMedium,
	}
}

func TestPgSQL_TrackedJobs_CRUD(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	score := 88.5
	job := newTrackedJob("user_1", "Go Engineer", "Acme")
	job.MatchScore = &score
	job.Badges = []string{"Remote"}

	stored, err := pg.StoreTrackedJob(ctx, job)
	require.NoError(t, err)
	require.Equal(t, job.ID, stored.ID)
	require.Equal(t, &score, stored.MatchScore)
	require.Len(t, stored.StatusHistory, 1)
	require.Empty(t, stored.Notes)
	require.NotNil(t, stored.Notes)

	got, err := pg.TrackedJobByID(ctx, "user_1", job.ID, false)
	require.NoError(t, err)
	require.Equal(t, "Acme", got.Company)

	got, err = pg.TrackedJobByID(ctx, "user_2", job.ID, false)
	require.NoError(t, err)
	require.Nil(t, got)

	applied := time.Now().UTC().Truncate(time.Second)
	stored.Stage = domain.StageApplied
	stored.ApplicationDate = &applied
	stored.Notes = append(stored.Notes, domain.Note{ID: uuid.New(), Content: "Referred by Bob", CreatedAt: applied})
	updated, err := pg.UpdateTrackedJob(ctx, *stored)
	require.NoError(t, err)
	require.Equal(t, domain.StageApplied, updated.Stage)
	require.True(t, applied.Equal(*updated.ApplicationDate))
	require.Len(t, updated.Notes, 1)
	require.Equal(t, "Referred by Bob", updated.Notes[0].Content)
	require.False(t, updated.UpdatedAt.Before(stored.UpdatedAt))

	stranger := *stored
	stranger.UserID = "user_2"
	none, err := pg.UpdateTrackedJob(ctx, stranger)
	require.NoError(t, err)
	require.Nil(t, none)

	deleted, err := pg.DeleteTrackedJob(ctx, "user_1", job.ID)
	require.NoError(t, err)
	require.Equal(t, job.ID, deleted.ID)

	deleted, err = pg.DeleteTrackedJob(ctx, "user_1", job.ID)
	require.NoError(t, err)
	require.Nil(t, deleted)
}

func TestPgSQL_TrackedJobs_Filter(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	a := newTrackedJob("user_1", "Backend Engineer", "Acme Corp")
	b := newTrackedJob("user_1", "Data Scientist", "Globex")
	b.Stage = domain.StageInterview
	b.Priority = domain.PriorityHigh
	c := newTrackedJob("user_1", "SRE", "100%_Remote Inc")
	c.Location = "Berlin"
	d := newTrackedJob("user_2", "Backend Engineer", "Acme Corp")

	for _, j := range []domain.TrackedJob{a, b, c, d} {
		_, err := pg.StoreTrackedJob(ctx, j)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	tests := []struct {
		name   string
		filter domain.TrackedJobFilter
		want   []domain.TrackedJobID
	}{
		{name: "all, newest first", want: []domain.TrackedJobID{c.ID, b.ID, a.ID}},
		{name: "by stage", filter: domain.TrackedJobFilter{Stage: domain.StageInterview}, want: []domain.TrackedJobID{b.ID}},
		{name: "by priority", filter: domain.TrackedJobFilter{Priority: domain.PriorityHigh}, want: []domain.TrackedJobID{b.ID}},
		{name: "company is case-insensitive", filter: domain.TrackedJobFilter{Company: "acme"}, want: []domain.TrackedJobID{a.ID}},
		{name: "company wildcards are literal", filter: domain.TrackedJobFilter{Company: "%_r"}, want: []domain.TrackedJobID{c.ID}},
		{name: "search matches title", filter: domain.TrackedJobFilter{Search: "scien"}, want: []domain.TrackedJobID{b.ID}},
		{name: "search matches location", filter: domain.TrackedJobFilter{Search: "berlin"}, want: []domain.TrackedJobID{c.ID}},
		{name: "no match", filter: domain.TrackedJobFilter{Search: "nothing"}, want: []domain.TrackedJobID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := pg.TrackedJobs(ctx, "user_1", tt.filter)
			require.NoError(t, err)

			ids := make([]domain.TrackedJobID, 0, len(jobs))
			for _, j := range jobs {
				ids = append(ids, j.ID)
			}
			require.Equal(t, tt.want, ids)
		})
	}
}

func TestPgSQL_TrackedJobsByIDs(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	a := newTrackedJob("user_1", "A", "Acme")
	b := newTrackedJob("user_1", "B", "Acme")
	foreign := newTrackedJob("user_2", "C", "Acme")
	for _, j := range []domain.TrackedJob{a, b, foreign} {
		_, err := pg.StoreTrackedJob(ctx, j)
		require.NoError(t, err)
	}

	empty, err := pg.TrackedJobsByIDs(ctx, "user_1", nil, false)
	require.NoError(t, err)
	require.Empty(t, empty)

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	jobs, err := tx.TrackedJobsByIDs(ctx, "user_1", []domain.TrackedJobID{a.ID, b.ID, foreign.ID}, true)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		require.Equal(t, domain.UserID("user_1"), j.UserID)
	}
}
