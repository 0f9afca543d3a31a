package postgres

import (
	"context"
	"fmt"
	"time"

	"careeros/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

var activeSessionStatuses = []string{ //nolint: gochecknoglobals
	string(domain.SessionStatusQueued),
	string(domain.SessionStatusRunning),
}

// appendLog is the SET expression adding one line at the end of the logs array.
func appendLog(line string) exp.Expression {
	return goqu.L("logs || jsonb_build_array(?::text)", line)
}

func (p *PgSQL) StoreHunterSession(ctx context.Context, s domain.HunterSession) (*domain.HunterSession, error) {
	var row PgHunterSession
	if err := row.FromDomain(s); err != nil {
		return nil, err
	}

	var out PgHunterSession
	if _, err := p.Builder.Insert(hunterSessionsTable).
		Rows(row).
		Returning(&PgHunterSession{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeErr(err, "could not store hunter session in pg")
	}

	return out.ToDomain()
}

func (p *PgSQL) HunterSessionByID(ctx context.Context,
	userID domain.UserID,
	id domain.SessionID,
) (*domain.HunterSession, error) {
	var row PgHunterSession
	found, err := p.Builder.From(hunterSessionsTable).
		Where(
			goqu.I("session_id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(string(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch hunter session from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) AppendHunterSessionLog(ctx context.Context, id domain.SessionID, line string) (int, error) {
	var count int
	found, err := p.Builder.Update(hunterSessionsTable).
		Set(goqu.Record{
			"logs":       appendLog(line),
			"updated_at": now(),
		}).
		Where(goqu.I("session_id").Eq(uuid.UUID(id))).
		Returning(goqu.L("jsonb_array_length(logs)")).
		Executor().ScanValContext(ctx, &count)
	if err != nil {
		return 0, fmt.Errorf("could not append hunter session log in pg: %w", err)
	}
	if !found {
		return 0, nil
	}

	return count, nil
}

func (p *PgSQL) FailHunterSession(ctx context.Context, id domain.SessionID, line string) (bool, error) {
	res, err := p.Builder.Update(hunterSessionsTable).
		Set(goqu.Record{
			"status":     string(domain.SessionStatusFailed),
			"logs":       appendLog(line),
			"updated_at": now(),
		}).
		Where(
			goqu.I("session_id").Eq(uuid.UUID(id)),
			goqu.I("status").In(activeSessionStatuses),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not fail hunter session in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) FailStaleHunterSessions(ctx context.Context, before time.Time, line string) (int64, error) {
	res, err := p.Builder.Update(hunterSessionsTable).
		Set(goqu.Record{
			"status":     string(domain.SessionStatusFailed),
			"logs":       appendLog(line),
			"updated_at": now(),
		}).
		Where(
			goqu.I("status").In(activeSessionStatuses),
			goqu.I("updated_at").Lt(before),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not fail stale hunter sessions in pg: %w", err)
	}

	return res.RowsAffected()
}

func (p *PgSQL) SessionJobResults(ctx context.Context,
	userID domain.UserID,
	id domain.SessionID,
) ([]domain.JobResult, error) {
	var rows []PgJobResult
	if err := p.Builder.From(jobResultsTable).
		Where(
			goqu.I("session_id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(string(userID)),
		).
		Order(goqu.I("match_score").Desc(), goqu.I("rank").Asc(), goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list job results from pg: %w", err)
	}

	out := make([]domain.JobResult, 0, len(rows))
	for i := range rows {
		r, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}

	return out, nil
}
