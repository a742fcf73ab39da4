package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"chorechum/internal/chore"
	"chorechum/internal/household"
	"chorechum/internal/model"
	"chorechum/pkg/datemath"
	"chorechum/pkg/recurrence"
	"chorechum/pkg/smartinput"
)

// loadChore fetches a chore and checks the caller belongs to its household.
func (uc *implUseCase) loadChore(ctx context.Context, sc model.Scope, id string) (model.Chore, household.DetailOutput, error) {
	c, err := uc.repo.GetChore(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "chore.usecase.loadChore GetChore: %v", err)
		return model.Chore{}, household.DetailOutput{}, err
	}
	if c.ID == "" {
		return model.Chore{}, household.DetailOutput{}, chore.ErrChoreNotFound
	}
	detail, err := uc.household.Detail(ctx, sc, c.HouseholdID)
	if err != nil {
		// Chores of other households are reported as missing.
		if errors.Is(err, household.ErrNotMember) {
			return model.Chore{}, household.DetailOutput{}, chore.ErrChoreNotFound
		}
		return model.Chore{}, household.DetailOutput{}, err
	}
	return c, detail, nil
}

func (uc *implUseCase) dateParser(tz string) *datemath.Parser {
	p, err := datemath.NewParser(tz)
	if err != nil {
		p, _ = datemath.NewParser("UTC")
	}
	return p
}

// resolveDueDate accepts YYYY-MM-DD, RFC 3339 or a relative phrase. Empty
// input means no due date.
func (uc *implUseCase) resolveDueDate(raw string, dates *datemath.Parser, now time.Time) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := dates.Parse(raw, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", chore.ErrInvalidDueDate, raw)
	}
	return &t, nil
}

// resolveRecurrence validates the form's recurrence section strictly.
func (uc *implUseCase) resolveRecurrence(in chore.RecurrenceInput, dates *datemath.Parser, now time.Time) (recurrence.Rule, error) {
	unit := recurrence.Unit(strings.ToLower(strings.TrimSpace(in.Unit)))
	if unit == "" || unit == "none" {
		return recurrence.None(), nil
	}
	if in.Interval == 0 && strings.TrimSpace(in.Until) == "" {
		if !unit.Valid() {
			return recurrence.None(), fmt.Errorf("%w: %v", chore.ErrInvalidRecurrence, recurrence.ErrUnknownUnit)
		}
		return recurrence.Simple(unit), nil
	}

	var until time.Time
	if s := strings.TrimSpace(in.Until); s != "" {
		t, err := time.Parse(datemath.DateLayout, s)
		if err != nil {
			return recurrence.None(), fmt.Errorf("%w: until %q", chore.ErrInvalidRecurrence, s)
		}
		until = t
	}
	interval := in.Interval
	if interval == 0 {
		interval = 1
	}
	rule, err := recurrence.NewCustom(unit, interval, until, now.In(dates.Location()))
	if err != nil {
		return recurrence.None(), fmt.Errorf("%w: %v", chore.ErrInvalidRecurrence, err)
	}
	return rule, nil
}

func validTimeOfDay(s string) (string, error) {
	switch smartinput.TimeOfDay(strings.ToLower(strings.TrimSpace(s))) {
	case "", smartinput.AnyTime:
		return string(smartinput.AnyTime), nil
	case smartinput.Morning:
		return string(smartinput.Morning), nil
	case smartinput.Afternoon:
		return string(smartinput.Afternoon), nil
	case smartinput.Evening:
		return string(smartinput.Evening), nil
	}
	return "", chore.ErrInvalidTimeOfDay
}

func validExactTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", chore.ErrInvalidExactTime
	}
	return t.Format("15:04"), nil
}

// normalizeTags lowercases, strips a leading '#' and drops duplicates.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(t), "#"))
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func hasMember(detail household.DetailOutput, memberID string) bool {
	return slices.ContainsFunc(detail.Members, func(m model.Member) bool { return m.ID == memberID })
}

func hasRoom(detail household.DetailOutput, roomID string) bool {
	return slices.ContainsFunc(detail.Rooms, func(r model.Room) bool { return r.ID == roomID })
}
