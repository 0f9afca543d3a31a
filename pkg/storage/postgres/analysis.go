package postgres

import (
	"context"
	"fmt"
	"time"

	"careeros/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

var terminalAnalysisStatuses = []string{ //nolint: gochecknoglobals
	string(domain.AnalysisStatusComplete),
	string(domain.AnalysisStatusFailed),
}

func (p *PgSQL) StoreAnalysis(ctx context.Context, a domain.JdAnalysis) (*domain.JdAnalysis, error) {
	var row PgAnalysis
	row.FromDomain(a)

	var out PgAnalysis
	if _, err := p.Builder.Insert(analysesTable).
		Rows(row).
		Returning(&PgAnalysis{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeErr(err, "could not store analysis in pg")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) AnalysisByID(ctx context.Context, userID domain.UserID, runID domain.RunID) (*domain.JdAnalysis, error) {
	var row PgAnalysis
	found, err := p.Builder.From(analysesTable).
		Where(
			goqu.I("run_id").Eq(uuid.UUID(runID)),
			goqu.I("clerk_id").Eq(string(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch analysis from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CompletedAnalyses(ctx context.Context, userID domain.UserID, limit uint) ([]domain.JdAnalysis, error) {
	var rows []PgAnalysis
	if err := p.Builder.From(analysesTable).
		Where(
			goqu.I("clerk_id").Eq(string(userID)),
			goqu.I("status").Eq(string(domain.AnalysisStatusComplete)),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("run_id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list analyses from pg: %w", err)
	}

	return pgAnalysesToDomain(rows), nil
}

func (p *PgSQL) DeleteAnalysis(ctx context.Context, userID domain.UserID, runID domain.RunID) (*domain.JdAnalysis, error) {
	var row PgAnalysis
	found, err := p.Builder.Delete(analysesTable).
		Where(
			goqu.I("run_id").Eq(uuid.UUID(runID)),
			goqu.I("clerk_id").Eq(string(userID)),
		).
		Returning(&PgAnalysis{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete analysis from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) FailAnalysis(ctx context.Context, runID domain.RunID, reason string) (bool, error) {
	res, err := p.Builder.Update(analysesTable).
		Set(goqu.Record{
			"status":        string(domain.AnalysisStatusFailed),
			"error_message": reason,
			"updated_at":    now(),
		}).
		Where(
			goqu.I("run_id").Eq(uuid.UUID(runID)),
			goqu.I("status").NotIn(terminalAnalysisStatuses),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not fail analysis in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) FailStaleAnalyses(ctx context.Context, before time.Time, reason string) (int64, error) {
	res, err := p.Builder.Update(analysesTable).
		Set(goqu.Record{
			"status":        string(domain.AnalysisStatusFailed),
			"error_message": reason,
			"updated_at":    now(),
		}).
		Where(
			goqu.I("status").NotIn(terminalAnalysisStatuses),
			goqu.I("updated_at").Lt(before),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not fail stale analyses in pg: %w", err)
	}

	return res.RowsAffected()
}
