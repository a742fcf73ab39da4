package sqlite

import (
	"context"

	"chorechum/internal/household/repository"
	"chorechum/internal/model"
	pkgSqlite "chorechum/pkg/sqlite"
)

// ListCompletions returns completions of a household oldest first.
func (r *implRepository) ListCompletions(ctx context.Context, opt repository.ListCompletionsOptions) ([]model.Completion, error) {
	query := `SELECT id, chore_id, household_id, member_id, points, completed_at
		FROM completions WHERE household_id = ?`
	args := []any{opt.HouseholdID}
	if !opt.Since.IsZero() {
		query += ` AND completed_at >= ?`
		args = append(args, pkgSqlite.FormatTime(opt.Since))
	}
	query += ` ORDER BY completed_at, rowid`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCompletions"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Completion
	for rows.Next() {
		var (
			c  model.Completion
			at string
		)
		if err := rows.Scan(&c.ID, &c.ChoreID, &c.HouseholdID, &c.MemberID, &c.Points, &at); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCompletions"), err)
			return nil, repository.ErrFailedToList
		}
		if c.CompletedAt, err = pkgSqlite.ParseTime(at); err != nil {
			return nil, repository.ErrFailedToList
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListCompletions"), err)
		return nil, repository.ErrFailedToList
	}
	return out, nil
}
