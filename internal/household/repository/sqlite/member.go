package sqlite

import (
	"context"

	"github.com/google/uuid"

	"chorechum/internal/household/repository"
	"chorechum/internal/model"
	pkgSqlite "chorechum/pkg/sqlite"
)

func (r *implRepository) CreateMember(ctx context.Context, opt repository.CreateMemberOptions) (model.Member, error) {
	m := model.Member{
		ID:          uuid.NewString(),
		HouseholdID: opt.HouseholdID,
		UserID:      opt.UserID,
		Name:        opt.Name,
		CreatedAt:   r.now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO members (id, household_id, user_id, name, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.HouseholdID, m.UserID, m.Name, pkgSqlite.FormatTime(m.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMember"), err)
		return model.Member{}, repository.ErrFailedToInsert
	}
	return m, nil
}

// ListMembers returns members in join order.
func (r *implRepository) ListMembers(ctx context.Context, householdID string) ([]model.Member, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, household_id, user_id, name, created_at FROM members WHERE household_id = ? ORDER BY rowid`,
		householdID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMembers"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		var (
			m       model.Member
			created string
		)
		if err := rows.Scan(&m.ID, &m.HouseholdID, &m.UserID, &m.Name, &created); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMembers"), err)
			return nil, repository.ErrFailedToList
		}
		if m.CreatedAt, err = pkgSqlite.ParseTime(created); err != nil {
			return nil, repository.ErrFailedToList
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMembers"), err)
		return nil, repository.ErrFailedToList
	}
	return members, nil
}

func (r *implRepository) DeleteMember(ctx context.Context, householdID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE household_id = ? AND id = ?`, householdID, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteMember"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}
