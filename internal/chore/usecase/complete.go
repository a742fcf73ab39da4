package usecase

import (
	"context"
	"errors"

	"chorechum/internal/chore"
	"chorechum/internal/chore/repository"
	"chorechum/internal/model"
)

// Complete records one instance finished by the caller.
//
// While CompletedInstances is below TargetInstances the chore stays pending.
// Once the target is met a non-repeating chore becomes complete. A repeating
// chore advances from its due date (or now when undated): it gets the next
// due date with progress and subtasks reset, or becomes complete when the
// rule has run out.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (chore.CompleteOutput, error) {
	c, detail, err := uc.loadChore(ctx, sc, id)
	if err != nil {
		return chore.CompleteOutput{}, err
	}
	if c.Status == model.ChoreStatusComplete {
		return chore.CompleteOutput{}, chore.ErrAlreadyComplete
	}
	self, _ := detail.MemberFor(sc.UserID)
	now := uc.now()
	prevInstances, prevDue := c.CompletedInstances, c.DueDate

	rescheduled := false
	c.CompletedInstances++
	if c.CompletedInstances >= max(c.TargetInstances, 1) {
		// Step in household time so day-of-month and DST follow the calendar
		// the household lives by.
		loc := uc.dateParser(detail.Household.Timezone).Location()
		anchor := now.In(loc)
		if c.DueDate != nil {
			anchor = c.DueDate.In(loc)
		}
		if next, ok := c.Recurrence.Next(anchor); ok {
			c.DueDate = &next
			c.CompletedInstances = 0
			c.Subtasks = uc.checklist.UpdateAll(c.Subtasks, false)
			rescheduled = true
		} else {
			c.Status = model.ChoreStatusComplete
		}
	}

	completion, err := uc.repo.CompleteChore(ctx, repository.CompleteChoreOptions{
		Chore:         c,
		MemberID:      self.ID,
		Points:        c.Points,
		CompletedAt:   now,
		PrevInstances: prevInstances,
		PrevDueDate:   prevDue,
	})
	if errors.Is(err, repository.ErrStaleChore) {
		// Someone else finished this instance first.
		return chore.CompleteOutput{}, chore.ErrAlreadyComplete
	}
	if err != nil {
		uc.l.Errorf(ctx, "chore.usecase.Complete: %v", err)
		return chore.CompleteOutput{}, err
	}

	if rescheduled {
		uc.l.Infof(ctx, "chore.usecase.Complete: chore %s rescheduled to %s", c.ID, c.DueDate.Format("2006-01-02"))
	}
	return chore.CompleteOutput{Chore: c, Completion: completion, Rescheduled: rescheduled}, nil
}
