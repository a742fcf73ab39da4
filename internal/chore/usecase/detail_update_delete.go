package usecase

import (
	"context"
	"strings"

	"chorechum/internal/chore"
	"chorechum/internal/model"
)

// Detail returns the chore with its checklist progress.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (chore.DetailOutput, error) {
	c, _, err := uc.loadChore(ctx, sc, id)
	if err != nil {
		return chore.DetailOutput{}, err
	}
	return chore.DetailOutput{Chore: c, Stats: uc.checklist.GetStats(c.Subtasks)}, nil
}

// Update applies a partial change. Status and progress are not editable here;
// they move through Complete.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input chore.UpdateInput) (model.Chore, error) {
	c, detail, err := uc.loadChore(ctx, sc, input.ID)
	if err != nil {
		return model.Chore{}, err
	}
	dates := uc.dateParser(detail.Household.Timezone)
	now := uc.now()

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return model.Chore{}, chore.ErrEmptyName
		}
		c.Name = name
	}
	if input.RoomID != nil {
		if *input.RoomID != "" && !hasRoom(detail, *input.RoomID) {
			return model.Chore{}, chore.ErrInvalidRoom
		}
		c.RoomID = *input.RoomID
	}
	if input.AssigneeID != nil {
		if *input.AssigneeID != "" && !hasMember(detail, *input.AssigneeID) {
			return model.Chore{}, chore.ErrInvalidAssignee
		}
		c.AssigneeID = *input.AssigneeID
	}
	if input.Recurrence != nil {
		if c.Recurrence, err = uc.resolveRecurrence(*input.Recurrence, dates, now); err != nil {
			return model.Chore{}, err
		}
	}
	if input.DueDate != nil {
		if c.DueDate, err = uc.resolveDueDate(*input.DueDate, dates, now); err != nil {
			return model.Chore{}, err
		}
	}
	if input.TimeOfDay != nil {
		if c.TimeOfDay, err = validTimeOfDay(*input.TimeOfDay); err != nil {
			return model.Chore{}, err
		}
	}
	if input.ExactTime != nil {
		if c.ExactTime, err = validExactTime(*input.ExactTime); err != nil {
			return model.Chore{}, err
		}
	}
	if input.Points != nil {
		if *input.Points < 0 {
			return model.Chore{}, chore.ErrInvalidPoints
		}
		c.Points = *input.Points
	}
	if input.TargetInstances != nil {
		if *input.TargetInstances < 1 {
			return model.Chore{}, chore.ErrInvalidInstances
		}
		c.TargetInstances = *input.TargetInstances
		c.CompletedInstances = min(c.CompletedInstances, c.TargetInstances-1)
	}
	if input.IsShoppingList != nil {
		c.IsShoppingList = *input.IsShoppingList
	}
	if input.Subtasks != nil {
		c.Subtasks = mergeSubtasks(c.Subtasks, uc.checklist.FromTexts(*input.Subtasks))
	}
	if input.Tags != nil {
		c.Tags = normalizeTags(*input.Tags)
	}

	updated, err := uc.repo.UpdateChore(ctx, c)
	if err != nil {
		uc.l.Errorf(ctx, "chore.usecase.Update: %v", err)
		return model.Chore{}, err
	}
	return updated, nil
}

// mergeSubtasks keeps the done state of items whose text is unchanged.
func mergeSubtasks(old, next []model.Subtask) []model.Subtask {
	done := make(map[string]bool, len(old))
	for _, st := range old {
		done[st.Text] = st.Done
	}
	for i := range next {
		next[i].Done = done[next[i].Text]
	}
	return next
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, _, err := uc.loadChore(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteChore(ctx, id); err != nil {
		uc.l.Errorf(ctx, "chore.usecase.Delete: %v", err)
		return err
	}
	return nil
}
