package sqlite

import (
	"context"

	"github.com/google/uuid"

	"chorechum/internal/chore/repository"
	"chorechum/internal/model"
	pkgSqlite "chorechum/pkg/sqlite"
)

// CompleteChore writes the completion row and the advanced chore in one
// transaction. It returns ErrStaleChore, writing nothing, when the stored chore
// is no longer pending with the previous instance count and due date.
func (r *implRepository) CompleteChore(ctx context.Context, opt repository.CompleteChoreOptions) (model.Completion, error) {
	comp := model.Completion{
		ID:          uuid.NewString(),
		ChoreID:     opt.Chore.ID,
		HouseholdID: opt.Chore.HouseholdID,
		MemberID:    opt.MemberID,
		Points:      opt.Points,
		CompletedAt: opt.CompletedAt.UTC(),
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CompleteChore"), err)
		return model.Completion{}, repository.ErrFailedToUpdate
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO completions (id, chore_id, household_id, member_id, points, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		comp.ID, comp.ChoreID, comp.HouseholdID, comp.MemberID, comp.Points, pkgSqlite.FormatTime(comp.CompletedAt),
	); err != nil {
		r.l.Errorf(ctx, "%s completion: %v", r.dsn("CompleteChore"), err)
		return model.Completion{}, repository.ErrFailedToInsert
	}
	n, err := r.update(ctx, tx, opt.Chore,
		` AND status = ? AND completed_instances = ? AND due_date IS ?`,
		string(model.ChoreStatusPending), opt.PrevInstances, pkgSqlite.NullTime(opt.PrevDueDate),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s chore: %v", r.dsn("CompleteChore"), err)
		return model.Completion{}, repository.ErrFailedToUpdate
	}
	if n == 0 {
		return model.Completion{}, repository.ErrStaleChore
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CompleteChore"), err)
		return model.Completion{}, repository.ErrFailedToUpdate
	}
	return comp, nil
}
