package usecase

import (
	"context"
	"strings"

	"chorechum/internal/household"
	"chorechum/internal/household/repository"
	"chorechum/internal/model"
)

// AddRoom creates a room. Names are unique per household, ignoring case.
func (uc *implUseCase) AddRoom(ctx context.Context, sc model.Scope, input household.AddRoomInput) (model.Room, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Room{}, household.ErrEmptyName
	}

	detail, err := uc.Detail(ctx, sc, input.HouseholdID)
	if err != nil {
		return model.Room{}, err
	}
	for _, r := range detail.Rooms {
		if strings.EqualFold(r.Name, name) {
			return model.Room{}, household.ErrDuplicateRoom
		}
	}

	room, err := uc.repo.CreateRoom(ctx, repository.CreateRoomOptions{
		HouseholdID: input.HouseholdID,
		Name:        name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "household.usecase.AddRoom: %v", err)
		return model.Room{}, err
	}
	uc.invalidate(input.HouseholdID)
	return room, nil
}

// RemoveRoom deletes a room; chores in it become room-less.
func (uc *implUseCase) RemoveRoom(ctx context.Context, sc model.Scope, householdID, roomID string) error {
	detail, err := uc.Detail(ctx, sc, householdID)
	if err != nil {
		return err
	}

	found := false
	for _, r := range detail.Rooms {
		if r.ID == roomID {
			found = true
			break
		}
	}
	if !found {
		return household.ErrRoomNotFound
	}

	if err := uc.repo.DeleteRoom(ctx, householdID, roomID); err != nil {
		uc.l.Errorf(ctx, "household.usecase.RemoveRoom: %v", err)
		return err
	}
	uc.invalidate(householdID)
	return nil
}
