package sqlite

import (
	"context"

	"github.com/google/uuid"

	"chorechum/internal/household/repository"
	"chorechum/internal/model"
	pkgSqlite "chorechum/pkg/sqlite"
)

func (r *implRepository) CreateRoom(ctx context.Context, opt repository.CreateRoomOptions) (model.Room, error) {
	room := model.Room{
		ID:          uuid.NewString(),
		HouseholdID: opt.HouseholdID,
		Name:        opt.Name,
		CreatedAt:   r.now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rooms (id, household_id, name, created_at) VALUES (?, ?, ?, ?)`,
		room.ID, room.HouseholdID, room.Name, pkgSqlite.FormatTime(room.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRoom"), err)
		return model.Room{}, repository.ErrFailedToInsert
	}
	return room, nil
}

// ListRooms returns rooms in creation order.
func (r *implRepository) ListRooms(ctx context.Context, householdID string) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, household_id, name, created_at FROM rooms WHERE household_id = ? ORDER BY rowid`,
		householdID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRooms"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var (
			room    model.Room
			created string
		)
		if err := rows.Scan(&room.ID, &room.HouseholdID, &room.Name, &created); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRooms"), err)
			return nil, repository.ErrFailedToList
		}
		if room.CreatedAt, err = pkgSqlite.ParseTime(created); err != nil {
			return nil, repository.ErrFailedToList
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRooms"), err)
		return nil, repository.ErrFailedToList
	}
	return rooms, nil
}

// DeleteRoom removes the room and detaches any chores that referenced it.
func (r *implRepository) DeleteRoom(ctx context.Context, householdID, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeleteRoom"), err)
		return repository.ErrFailedToDelete
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE chores SET room_id = '' WHERE household_id = ? AND room_id = ?`, householdID, id,
	); err != nil {
		r.l.Errorf(ctx, "%s detach chores: %v", r.dsn("DeleteRoom"), err)
		return repository.ErrFailedToDelete
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM rooms WHERE household_id = ? AND id = ?`, householdID, id,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteRoom"), err)
		return repository.ErrFailedToDelete
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("DeleteRoom"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}
