package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"chorechum/internal/chore/repository"
	"chorechum/internal/model"
	pkgSqlite "chorechum/pkg/sqlite"
)

const choreColumns = `id, household_id, name, room_id, assignee_id, recurrence, due_date,
	time_of_day, exact_time, points, completed_instances, target_instances, status,
	is_shopping_list, subtasks, tags, created_by, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// qualifiedChoreColumns prefixes every chore column with alias.
func qualifiedChoreColumns(alias string) string {
	cols := strings.Split(choreColumns, ",")
	for i, col := range cols {
		cols[i] = alias + "." + strings.TrimSpace(col)
	}
	return strings.Join(cols, ", ")
}

// scanChore reads the choreColumns of one row; extra receives any columns
// selected after them.
func scanChore(row rowScanner, extra ...any) (model.Chore, error) {
	var (
		c                model.Chore
		due              sql.NullString
		status           string
		subtasks, tags   string
		created, updated string
	)
	dest := []any{
		&c.ID, &c.HouseholdID, &c.Name, &c.RoomID, &c.AssigneeID, &c.Recurrence, &due,
		&c.TimeOfDay, &c.ExactTime, &c.Points, &c.CompletedInstances, &c.TargetInstances, &status,
		&c.IsShoppingList, &subtasks, &tags, &c.CreatedBy, &created, &updated,
	}
	err := row.Scan(append(dest, extra...)...)
	if err != nil {
		return model.Chore{}, err
	}
	c.Status = model.ChoreStatus(status)

	if c.DueDate, err = pkgSqlite.TimePtr(due); err != nil {
		return model.Chore{}, fmt.Errorf("due_date: %w", err)
	}
	if c.CreatedAt, err = pkgSqlite.ParseTime(created); err != nil {
		return model.Chore{}, fmt.Errorf("created_at: %w", err)
	}
	if c.UpdatedAt, err = pkgSqlite.ParseTime(updated); err != nil {
		return model.Chore{}, fmt.Errorf("updated_at: %w", err)
	}
	if err := json.Unmarshal([]byte(subtasks), &c.Subtasks); err != nil {
		return model.Chore{}, fmt.Errorf("subtasks: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &c.Tags); err != nil {
		return model.Chore{}, fmt.Errorf("tags: %w", err)
	}
	if c.Subtasks == nil {
		c.Subtasks = []model.Subtask{}
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c, nil
}

// encodeLists renders subtasks and tags as JSON arrays, never "null".
func encodeLists(subtasks []model.Subtask, tags []string) (string, string, error) {
	if subtasks == nil {
		subtasks = []model.Subtask{}
	}
	if tags == nil {
		tags = []string{}
	}
	st, err := json.Marshal(subtasks)
	if err != nil {
		return "", "", err
	}
	tg, err := json.Marshal(tags)
	if err != nil {
		return "", "", err
	}
	return string(st), string(tg), nil
}

// buildListQuery builds the WHERE clause and args for ListChores.
func (r *implRepository) buildListQuery(opt repository.ListChoresOptions) (string, []any) {
	conditions := []string{"household_id = ?"}
	args := []any{opt.HouseholdID}

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	if opt.AssigneeID != "" {
		conditions = append(conditions, "assignee_id = ?")
		args = append(args, opt.AssigneeID)
	}
	if opt.RoomID != "" {
		conditions = append(conditions, "room_id = ?")
		args = append(args, opt.RoomID)
	}
	return strings.Join(conditions, " AND "), args
}
