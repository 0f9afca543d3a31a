package postgres

import (
	"context"
	"fmt"

	"careeros/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("clerk_id").Eq(string(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// CompleteUserProfile upserts the user on clerk_id. raw_resume_text, which
// the resume worker may have written before the user existed, is left alone.
func (p *PgSQL) CompleteUserProfile(ctx context.Context, user domain.User) (*domain.User, error) {
	user.OnboardingComplete = true

	var row PgUser
	if err := row.FromDomain(user); err != nil {
		return nil, err
	}

	var out PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("clerk_id", goqu.Record{
			"name":                goqu.I("excluded.name"),
			"email":               goqu.I("excluded.email"),
			"profile":             goqu.I("excluded.profile"),
			"onboarding_complete": true,
			"updated_at":          now(),
		})).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeErr(err, "could not complete user profile in pg")
	}

	return out.ToDomain()
}

func (p *PgSQL) UpdateUserProfile(ctx context.Context,
	id domain.UserID,
	name string,
	profile domain.Profile,
) (*domain.User, error) {
	var row PgUser
	if err := row.FromDomain(domain.User{ID: id, Name: name, Profile: &profile}); err != nil {
		return nil, err
	}

	rec := goqu.Record{
		"profile":    row.Profile,
		"updated_at": now(),
	}
	if row.Name != "" {
		rec["name"] = row.Name
	}

	var out PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("clerk_id").Eq(string(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		return nil, fmt.Errorf("could not update user profile in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return out.ToDomain()
}

// StorePartialProfile inserts the partial profile. Re-registering the same
// file for the same user refreshes the existing row instead.
func (p *PgSQL) StorePartialProfile(ctx context.Context, pp domain.PartialProfile) (*domain.PartialProfile, error) {
	var row PgPartialProfile
	row.FromDomain(pp)

	var out PgPartialProfile
	if _, err := p.Builder.Insert(partialProfilesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("user_id, file_url", goqu.Record{
			"file_key":   goqu.I("excluded.file_key"),
			"file_name":  goqu.I("excluded.file_name"),
			"status":     goqu.I("excluded.status"),
			"updated_at": now(),
		})).
		Returning(&PgPartialProfile{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeErr(err, "could not store partial profile in pg")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) LatestPartialProfile(ctx context.Context,
	userID domain.UserID,
	status domain.PartialProfileStatus,
) (*domain.PartialProfile, error) {
	w := []exp.Expression{goqu.I("user_id").Eq(string(userID))}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}

	var row PgPartialProfile
	found, err := p.Builder.From(partialProfilesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest partial profile from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) FailPartialProfile(ctx context.Context, id uuid.UUID) error {
	_, err := p.Builder.Update(partialProfilesTable).
		Set(goqu.Record{
			"status":     string(domain.PartialProfileStatusFailed),
			"updated_at": now(),
		}).
		Where(
			goqu.I("id").Eq(id),
			goqu.I("status").Eq(string(domain.PartialProfileStatusPending)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not fail partial profile in pg: %w", err)
	}

	return nil
}
