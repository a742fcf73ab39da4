package recurrence

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// None returns the rule for a chore that does not repeat.
func None() Rule {
	return Rule{}
}

// Simple returns a rule that advances by one unit.
func Simple(unit Unit) Rule {
	if !unit.Valid() {
		return None()
	}
	return Rule{Kind: KindSimple, Unit: unit, Interval: 1}
}

// Custom returns a rule that advances by interval units, optionally bounded by
// until. Intervals below 1 are raised to 1.
func Custom(unit Unit, interval int, until time.Time) Rule {
	if !unit.Valid() {
		return None()
	}
	if interval < 1 {
		interval = 1
	}
	return Rule{Kind: KindCustom, Unit: unit, Interval: interval, Until: dateOnly(until)}
}

// NewCustom is the strict constructor used when a user submits a form: it
// rejects what Custom would silently repair.
func NewCustom(unit Unit, interval int, until time.Time, setOn time.Time) (Rule, error) {
	if !unit.Valid() {
		return None(), fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	if interval < 1 {
		return None(), ErrInvalidInterval
	}
	if !until.IsZero() && dateOnly(until).Before(dateOnly(setOn)) {
		return None(), ErrUntilInPast
	}
	return Custom(unit, interval, until), nil
}

// IsNone reports whether the rule never produces a next occurrence.
func (r Rule) IsNone() bool {
	return r.Kind == KindNone || !r.Unit.Valid()
}

// HasUntil reports whether the rule is bounded by an end date.
func (r Rule) HasUntil() bool {
	return r.Kind == KindCustom && !r.Until.IsZero()
}

// String encodes the rule in its persisted form.
func (r Rule) String() string {
	if r.IsNone() {
		return encNone
	}
	if r.Kind == KindSimple {
		return string(r.Unit)
	}

	parts := []string{encCustom, string(r.Unit), strconv.Itoa(max(r.Interval, 1))}
	if r.HasUntil() {
		parts = append(parts, r.Until.Format(untilLayout))
	}
	return strings.Join(parts, encSep)
}

// Parse decodes a persisted rule. It never fails: unknown shapes become None,
// a missing or malformed interval becomes 1, a malformed end date is dropped.
func Parse(s string) Rule {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == encNone {
		return None()
	}

	if !strings.HasPrefix(s, encCustom+encSep) {
		return Simple(Unit(s))
	}

	parts := strings.Split(s, encSep)
	unit := Unit(parts[1])
	interval := 1
	if len(parts) > 2 {
		if n, err := strconv.Atoi(parts[2]); err == nil && n >= 1 {
			interval = n
		}
	}
	var until time.Time
	if len(parts) > 3 {
		if t, err := time.Parse(untilLayout, parts[3]); err == nil {
			until = t
		}
	}
	return Custom(unit, interval, until)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rule) UnmarshalText(text []byte) error {
	*r = Parse(string(text))
	return nil
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
