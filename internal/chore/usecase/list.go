package usecase

import (
	"context"

	"chorechum/internal/chore"
	"chorechum/internal/chore/repository"
	"chorechum/internal/model"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// List returns a page of the household's chores.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input chore.ListInput) (chore.ListOutput, error) {
	if _, err := uc.household.Detail(ctx, sc, input.HouseholdID); err != nil {
		return chore.ListOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	offset := max(input.Offset, 0)

	chores, total, err := uc.repo.ListChores(ctx, repository.ListChoresOptions{
		HouseholdID: input.HouseholdID,
		Status:      input.Status,
		AssigneeID:  input.AssigneeID,
		RoomID:      input.RoomID,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chore.usecase.List: %v", err)
		return chore.ListOutput{}, err
	}
	return chore.ListOutput{Chores: chores, Total: total, Limit: limit, Offset: offset}, nil
}
