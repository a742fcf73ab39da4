package recurrence

import (
	"time"

	"github.com/teambition/rrule-go"
)

// now is swapped in tests.
var now = time.Now

var frequencies = map[Unit]rrule.Frequency{
	Daily:   rrule.DAILY,
	Weekly:  rrule.WEEKLY,
	Monthly: rrule.MONTHLY,
}

// Next returns the occurrence one step after anchor. ok is false when the rule
// is None or when the end date stops the series; callers treat both as
// "recurrence ended".
//
// The series is generated with count 2 from anchor, so the first occurrence
// is the anchor itself and the second is the answer.
func (r Rule) Next(anchor time.Time) (time.Time, bool) {
	if r.IsNone() {
		return time.Time{}, false
	}

	opt := rrule.ROption{
		Freq:     frequencies[r.Unit],
		Interval: max(r.Interval, 1),
		Count:    2,
		Dtstart:  anchor,
	}
	if r.HasUntil() {
		opt.Until = time.Date(r.Until.Year(), r.Until.Month(), r.Until.Day(), 23, 59, 59, 0, anchor.Location())
	}
	// Days 29-31 do not exist in every month. Asking for the last of
	// 28..day in each month keeps the day where possible and clamps to the
	// month's last day otherwise.
	if r.Unit == Monthly && anchor.Day() > 28 {
		days := make([]int, 0, anchor.Day()-27)
		for d := 28; d <= anchor.Day(); d++ {
			days = append(days, d)
		}
		opt.Bymonthday = days
		opt.Bysetpos = []int{-1}
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return time.Time{}, false
	}
	occurrences := rule.All()
	if len(occurrences) < 2 {
		return time.Time{}, false
	}
	return occurrences[1], true
}

// NextDueDate advances current by one unit. A nil current anchors at now.
// Units other than daily, weekly and monthly (including "none") yield nil.
func NextDueDate(unit string, current *time.Time) *time.Time {
	rule := Simple(Unit(unit))
	if rule.IsNone() {
		return nil
	}

	anchor := now()
	if current != nil {
		anchor = *current
	}
	next, ok := rule.Next(anchor)
	if !ok {
		return nil
	}
	return &next
}

// ComputeNextDueDate is the string form of NextDueDate: currentDueDate is an
// RFC 3339 timestamp or empty for now, and the result keeps the anchor's
// offset. ok is false whenever no next date can be produced.
func ComputeNextDueDate(unit, currentDueDate string) (string, bool) {
	var current *time.Time
	if currentDueDate != "" {
		t, err := time.Parse(time.RFC3339, currentDueDate)
		if err != nil {
			return "", false
		}
		current = &t
	}

	next := NextDueDate(unit, current)
	if next == nil {
		return "", false
	}
	return next.Format(time.RFC3339), true
}
