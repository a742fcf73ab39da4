package usecase

import (
	"context"

	"chorechum/internal/checklist"
	"chorechum/internal/chore"
	"chorechum/internal/model"
)

// ToggleSubtask checks or unchecks the subtasks matching input.Text, or all
// of them when input.All is set.
func (uc *implUseCase) ToggleSubtask(ctx context.Context, sc model.Scope, input chore.ToggleSubtaskInput) (chore.ToggleSubtaskOutput, error) {
	c, _, err := uc.loadChore(ctx, sc, input.ChoreID)
	if err != nil {
		return chore.ToggleSubtaskOutput{}, err
	}

	var (
		matched int
		changed bool
	)
	if input.All {
		next := uc.checklist.UpdateAll(c.Subtasks, input.Done)
		matched = len(next)
		changed = matched > 0
		c.Subtasks = next
	} else {
		res := uc.checklist.UpdateSubtask(checklist.UpdateSubtaskInput{
			Subtasks: c.Subtasks,
			Text:     input.Text,
			Done:     input.Done,
		})
		matched, changed = res.Count, res.Updated
		c.Subtasks = res.Subtasks
	}
	if matched == 0 {
		return chore.ToggleSubtaskOutput{}, chore.ErrSubtaskNotFound
	}

	if changed {
		if c, err = uc.repo.UpdateChore(ctx, c); err != nil {
			uc.l.Errorf(ctx, "chore.usecase.ToggleSubtask: %v", err)
			return chore.ToggleSubtaskOutput{}, err
		}
	}
	return chore.ToggleSubtaskOutput{
		Chore:   c,
		Matched: matched,
		Stats:   uc.checklist.GetStats(c.Subtasks),
		AllDone: uc.checklist.IsFullyCompleted(c.Subtasks),
	}, nil
}
