package usecase

import (
	"context"
	"sort"
	"time"

	"chorechum/internal/chore"
	"chorechum/internal/chore/repository"
	"chorechum/pkg/smartinput"
)

// dueLookaround widens the stored due_date range so that every chore whose
// local due day can contain a reminder instant in [from, to) is loaded.
const dueLookaround = 26 * time.Hour

// slotStart is the local hour a reminder fires for chores without an exact time.
var slotStart = map[smartinput.TimeOfDay]int{
	smartinput.Morning:   8,
	smartinput.Afternoon: 13,
	smartinput.Evening:   18,
}

const defaultReminderHour = 8

func (uc *implUseCase) DueBetween(ctx context.Context, from, to time.Time) ([]chore.DueChore, error) {
	if !from.Before(to) {
		return nil, nil
	}
	rows, err := uc.repo.ListDue(ctx, repository.ListDueOptions{
		From: from.Add(-dueLookaround),
		To:   to.Add(dueLookaround),
	})
	if err != nil {
		uc.l.Errorf(ctx, "chore.usecase.DueBetween: %v", err)
		return nil, err
	}

	var due []chore.DueChore
	for _, row := range rows {
		loc := uc.dateParser(row.Timezone).Location()
		at := remindAt(*row.Chore.DueDate, row.Chore.TimeOfDay, row.Chore.ExactTime, loc)
		if at.Before(from) || !at.Before(to) {
			continue
		}
		due = append(due, chore.DueChore{Chore: row.Chore, Location: loc, RemindAt: at})
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].RemindAt.Before(due[j].RemindAt) })
	return due, nil
}

// remindAt places a reminder on the calendar day of due in loc, at exactTime
// ("15:04") when set, otherwise at the start of the time-of-day slot.
func remindAt(due time.Time, timeOfDay, exactTime string, loc *time.Location) time.Time {
	local := due.In(loc)
	hour, minute := defaultReminderHour, 0
	if h, ok := slotStart[smartinput.TimeOfDay(timeOfDay)]; ok {
		hour = h
	}
	if exactTime != "" {
		if t, err := time.Parse("15:04", exactTime); err == nil {
			hour, minute = t.Hour(), t.Minute()
		}
	}
	return time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
}
