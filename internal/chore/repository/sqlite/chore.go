package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"chorechum/internal/chore/repository"
	"chorechum/internal/model"
	pkgSqlite "chorechum/pkg/sqlite"
)

func (r *implRepository) CreateChore(ctx context.Context, opt repository.CreateChoreOptions) (model.Chore, error) {
	now := r.now().UTC()
	c := model.Chore{
		ID:              uuid.NewString(),
		HouseholdID:     opt.HouseholdID,
		Name:            opt.Name,
		RoomID:          opt.RoomID,
		AssigneeID:      opt.AssigneeID,
		Recurrence:      opt.Recurrence,
		DueDate:         opt.DueDate,
		TimeOfDay:       opt.TimeOfDay,
		ExactTime:       opt.ExactTime,
		Points:          opt.Points,
		TargetInstances: opt.TargetInstances,
		Status:          model.ChoreStatusPending,
		IsShoppingList:  opt.IsShoppingList,
		Subtasks:        opt.Subtasks,
		Tags:            opt.Tags,
		CreatedBy:       opt.CreatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	subtasks, tags, err := encodeLists(c.Subtasks, c.Tags)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("CreateChore"), err)
		return model.Chore{}, repository.ErrFailedToInsert
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO chores (`+choreColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.HouseholdID, c.Name, c.RoomID, c.AssigneeID, c.Recurrence, pkgSqlite.NullTime(c.DueDate),
		c.TimeOfDay, c.ExactTime, c.Points, c.CompletedInstances, c.TargetInstances, string(c.Status),
		c.IsShoppingList, subtasks, tags, c.CreatedBy, pkgSqlite.FormatTime(now), pkgSqlite.FormatTime(now),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateChore"), err)
		return model.Chore{}, repository.ErrFailedToInsert
	}
	return r.GetChore(ctx, c.ID)
}

func (r *implRepository) GetChore(ctx context.Context, id string) (model.Chore, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+choreColumns+` FROM chores WHERE id = ?`, id)
	c, err := scanChore(row)
	if err == sql.ErrNoRows {
		return model.Chore{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetChore"), err)
		return model.Chore{}, repository.ErrFailedToGet
	}
	return c, nil
}

// ListChores returns one page of chores, soonest due first with undated chores last.
func (r *implRepository) ListChores(ctx context.Context, opt repository.ListChoresOptions) ([]model.Chore, int, error) {
	where, args := r.buildListQuery(opt)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chores WHERE `+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListChores"), err)
		return nil, 0, repository.ErrFailedToList
	}

	query := fmt.Sprintf(
		`SELECT %s FROM chores WHERE %s ORDER BY due_date IS NULL, due_date, rowid LIMIT ? OFFSET ?`,
		choreColumns, where,
	)
	rows, err := r.db.QueryContext(ctx, query, append(args, opt.Limit, opt.Offset)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListChores"), err)
		return nil, 0, repository.ErrFailedToList
	}
	defer rows.Close()

	chores, err := r.collect(ctx, "ListChores", rows)
	if err != nil {
		return nil, 0, err
	}
	return chores, total, nil
}

// UpdateChore saves every mutable column of c.
func (r *implRepository) UpdateChore(ctx context.Context, c model.Chore) (model.Chore, error) {
	if _, err := r.update(ctx, r.db, c, ""); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateChore"), err)
		return model.Chore{}, repository.ErrFailedToUpdate
	}
	return r.GetChore(ctx, c.ID)
}

func (r *implRepository) DeleteChore(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chores WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteChore"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// ListDue returns pending chores across households due in [From, To),
// each with the timezone of its household.
func (r *implRepository) ListDue(ctx context.Context, opt repository.ListDueOptions) ([]repository.DueChore, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+qualifiedChoreColumns("c")+`, h.timezone
		FROM chores c JOIN households h ON h.id = c.household_id
		WHERE c.status = ? AND c.due_date IS NOT NULL AND c.due_date >= ? AND c.due_date < ?
		ORDER BY c.due_date, c.rowid`,
		string(model.ChoreStatusPending), pkgSqlite.FormatTime(opt.From), pkgSqlite.FormatTime(opt.To),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDue"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var due []repository.DueChore
	for rows.Next() {
		var d repository.DueChore
		if d.Chore, err = scanChore(rows, &d.Timezone); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListDue"), err)
			return nil, repository.ErrFailedToList
		}
		due = append(due, d)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListDue"), err)
		return nil, repository.ErrFailedToList
	}
	return due, nil
}

func (r *implRepository) collect(ctx context.Context, method string, rows *sql.Rows) ([]model.Chore, error) {
	var chores []model.Chore
	for rows.Next() {
		c, err := scanChore(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repository.ErrFailedToList
		}
		chores = append(chores, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repository.ErrFailedToList
	}
	return chores, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// update writes every mutable column of c and returns the number of rows
// changed. guard is appended to the WHERE clause with its args.
func (r *implRepository) update(ctx context.Context, db execer, c model.Chore, guard string, guardArgs ...any) (int64, error) {
	subtasks, tags, err := encodeLists(c.Subtasks, c.Tags)
	if err != nil {
		return 0, err
	}
	args := []any{
		c.Name, c.RoomID, c.AssigneeID, c.Recurrence, pkgSqlite.NullTime(c.DueDate),
		c.TimeOfDay, c.ExactTime, c.Points, c.CompletedInstances,
		c.TargetInstances, string(c.Status), c.IsShoppingList, subtasks, tags,
		pkgSqlite.FormatTime(r.now()), c.ID,
	}
	res, err := db.ExecContext(ctx, `
		UPDATE chores SET
			name = ?, room_id = ?, assignee_id = ?, recurrence = ?, due_date = ?,
			time_of_day = ?, exact_time = ?, points = ?, completed_instances = ?,
			target_instances = ?, status = ?, is_shopping_list = ?, subtasks = ?, tags = ?,
			updated_at = ?
		WHERE id = ?`+guard,
		append(args, guardArgs...)...,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
