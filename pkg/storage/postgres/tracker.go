package postgres

import (
	"context"
	"fmt"
	"strings"

	"careeros/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`) //nolint: gochecknoglobals

// containsPattern is an ILIKE pattern matching s literally anywhere in a value.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (p *PgSQL) StoreTrackedJob(ctx context.Context, job domain.TrackedJob) (*domain.TrackedJob, error) {
	var row PgTrackedJob
	if err := row.FromDomain(job); err != nil {
		return nil, err
	}

	var out PgTrackedJob
	if _, err := p.Builder.Insert(trackedJobsTable).
		Rows(row).
		Returning(&PgTrackedJob{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeErr(err, "could not store tracked job in pg")
	}

	return out.ToDomain()
}

func (p *PgSQL) TrackedJobByID(ctx context.Context,
	userID domain.UserID,
	id domain.TrackedJobID,
	forUpdate bool,
) (*domain.TrackedJob, error) {
	ds := p.Builder.From(trackedJobsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(string(userID)),
		)
	if forUpdate {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgTrackedJob
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tracked job from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) TrackedJobsByIDs(ctx context.Context,
	userID domain.UserID,
	ids []domain.TrackedJobID,
	forUpdate bool,
) ([]domain.TrackedJob, error) {
	if len(ids) == 0 {
		return []domain.TrackedJob{}, nil
	}

	in := make([]string, 0, len(ids))
	for _, id := range ids {
		in = append(in, id.String())
	}

	ds := p.Builder.From(trackedJobsTable).
		Where(
			goqu.I("id").In(in),
			goqu.I("user_id").Eq(string(userID)),
		).
		Order(goqu.I("id").Asc())
	if forUpdate {
		ds = ds.ForUpdate(exp.Wait)
	}

	var rows []PgTrackedJob
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tracked jobs from pg: %w", err)
	}

	return pgTrackedJobsToDomain(rows)
}

func (p *PgSQL) TrackedJobs(ctx context.Context,
	userID domain.UserID,
	filter domain.TrackedJobFilter,
) ([]domain.TrackedJob, error) {
	w := []exp.Expression{goqu.I("user_id").Eq(string(userID))}
	if filter.Stage != "" {
		w = append(w, goqu.I("stage").Eq(string(filter.Stage)))
	}
	if filter.Priority != "" {
		w = append(w, goqu.I("priority").Eq(string(filter.Priority)))
	}
	if filter.Company != "" {
		w = append(w, goqu.I("company").ILike(containsPattern(filter.Company)))
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		w = append(w, goqu.Or(
			goqu.I("title").ILike(pattern),
			goqu.I("company").ILike(pattern),
			goqu.I("location").ILike(pattern),
		))
	}

	var rows []PgTrackedJob
	if err := p.Builder.From(trackedJobsTable).
		Where(w...).
		Order(goqu.I("updated_at").Desc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list tracked jobs from pg: %w", err)
	}

	return pgTrackedJobsToDomain(rows)
}

func (p *PgSQL) UpdateTrackedJob(ctx context.Context, job domain.TrackedJob) (*domain.TrackedJob, error) {
	var row PgTrackedJob
	if err := row.FromDomain(job); err != nil {
		return nil, err
	}

	var out PgTrackedJob
	found, err := p.Builder.Update(trackedJobsTable).
		Set(goqu.Record{
			"title":            row.Title,
			"company":          row.Company,
			"location":         row.Location,
			"salary":           row.Salary,
			"job_type":         row.JobType,
			"description":      row.Description,
			"apply_link":       row.ApplyLink,
			"stage":            row.Stage,
			"application_date": row.ApplicationDate,
			"status_history":   row.StatusHistory,
			"notes":            row.Notes,
			"reminders":        row.Reminders,
			"attachments":      row.Attachments,
			"interviews":       row.Interviews,
			"source":           row.Source,
			"match_score":      row.MatchScore,
			"tier_label":       row.TierLabel,
			"tier":             row.Tier,
			"badges":           row.Badges,
			"gap_analysis":     row.GapAnalysis,
			"priority":         row.Priority,
			"updated_at":       now(),
		}).
		Where(
			goqu.I("id").Eq(row.ID),
			goqu.I("user_id").Eq(row.UserID),
		).
		Returning(&PgTrackedJob{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		return nil, fmt.Errorf("could not update tracked job in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return out.ToDomain()
}

func (p *PgSQL) DeleteTrackedJob(ctx context.Context,
	userID domain.UserID,
	id domain.TrackedJobID,
) (*domain.TrackedJob, error) {
	var row PgTrackedJob
	found, err := p.Builder.Delete(trackedJobsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(string(userID)),
		).
		Returning(&PgTrackedJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete tracked job from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
