package usecase

import (
	"context"
	"strings"

	"chorechum/internal/chore"
	"chorechum/internal/chore/repository"
	"chorechum/internal/model"
)

// Create validates the chore form and stores a pending chore.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input chore.CreateInput) (model.Chore, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Chore{}, chore.ErrEmptyName
	}

	detail, err := uc.household.Detail(ctx, sc, input.HouseholdID)
	if err != nil {
		return model.Chore{}, err
	}
	if input.RoomID != "" && !hasRoom(detail, input.RoomID) {
		return model.Chore{}, chore.ErrInvalidRoom
	}
	if input.AssigneeID != "" && !hasMember(detail, input.AssigneeID) {
		return model.Chore{}, chore.ErrInvalidAssignee
	}

	dates := uc.dateParser(detail.Household.Timezone)
	now := uc.now()
	due, err := uc.resolveDueDate(input.DueDate, dates, now)
	if err != nil {
		return model.Chore{}, err
	}
	rule, err := uc.resolveRecurrence(input.Recurrence, dates, now)
	if err != nil {
		return model.Chore{}, err
	}
	timeOfDay, err := validTimeOfDay(input.TimeOfDay)
	if err != nil {
		return model.Chore{}, err
	}
	exact, err := validExactTime(input.ExactTime)
	if err != nil {
		return model.Chore{}, err
	}

	target := input.TargetInstances
	if target == 0 {
		target = 1
	}
	if target < 1 {
		return model.Chore{}, chore.ErrInvalidInstances
	}
	points := input.Points
	if points < 0 {
		return model.Chore{}, chore.ErrInvalidPoints
	}
	if points == 0 {
		points = uc.opts.DefaultPoints
	}

	self, _ := detail.MemberFor(sc.UserID)
	c, err := uc.repo.CreateChore(ctx, repository.CreateChoreOptions{
		HouseholdID:     input.HouseholdID,
		Name:            name,
		RoomID:          input.RoomID,
		AssigneeID:      input.AssigneeID,
		Recurrence:      rule,
		DueDate:         due,
		TimeOfDay:       timeOfDay,
		ExactTime:       exact,
		Points:          points,
		TargetInstances: target,
		IsShoppingList:  input.IsShoppingList,
		Subtasks:        uc.checklist.FromTexts(input.Subtasks),
		Tags:            normalizeTags(input.Tags),
		CreatedBy:       self.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chore.usecase.Create: %v", err)
		return model.Chore{}, err
	}
	uc.l.Infof(ctx, "chore.usecase.Create: chore %s (%s) in household %s", c.ID, rule, c.HouseholdID)
	return c, nil
}
