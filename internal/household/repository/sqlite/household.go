package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"chorechum/internal/household/repository"
	"chorechum/internal/model"
	pkgSqlite "chorechum/pkg/sqlite"
)

// CreateHousehold inserts the household and its owning member in one transaction.
func (r *implRepository) CreateHousehold(ctx context.Context, opt repository.CreateHouseholdOptions) (model.Household, model.Member, error) {
	now := r.now().UTC()
	h := model.Household{
		ID:        uuid.NewString(),
		Name:      opt.Name,
		Timezone:  opt.Timezone,
		CreatedAt: now,
	}
	owner := model.Member{
		ID:          uuid.NewString(),
		HouseholdID: h.ID,
		UserID:      opt.OwnerUserID,
		Name:        opt.OwnerName,
		CreatedAt:   now,
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateHousehold"), err)
		return model.Household{}, model.Member{}, repository.ErrFailedToInsert
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO households (id, name, timezone, created_at) VALUES (?, ?, ?, ?)`,
		h.ID, h.Name, h.Timezone, pkgSqlite.FormatTime(now),
	); err != nil {
		r.l.Errorf(ctx, "%s household: %v", r.dsn("CreateHousehold"), err)
		return model.Household{}, model.Member{}, repository.ErrFailedToInsert
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO members (id, household_id, user_id, name, created_at) VALUES (?, ?, ?, ?, ?)`,
		owner.ID, owner.HouseholdID, owner.UserID, owner.Name, pkgSqlite.FormatTime(now),
	); err != nil {
		r.l.Errorf(ctx, "%s owner: %v", r.dsn("CreateHousehold"), err)
		return model.Household{}, model.Member{}, repository.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateHousehold"), err)
		return model.Household{}, model.Member{}, repository.ErrFailedToInsert
	}
	return h, owner, nil
}

// GetHousehold returns the household with id, or a zero value when it does not exist.
func (r *implRepository) GetHousehold(ctx context.Context, id string) (model.Household, error) {
	var (
		h       model.Household
		created string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, timezone, created_at FROM households WHERE id = ?`, id,
	).Scan(&h.ID, &h.Name, &h.Timezone, &created)
	if err == sql.ErrNoRows {
		return model.Household{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetHousehold"), err)
		return model.Household{}, repository.ErrFailedToGet
	}
	if h.CreatedAt, err = pkgSqlite.ParseTime(created); err != nil {
		r.l.Errorf(ctx, "%s created_at: %v", r.dsn("GetHousehold"), err)
		return model.Household{}, repository.ErrFailedToGet
	}
	return h, nil
}
