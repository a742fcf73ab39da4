package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognized is returned by Parse for phrases it cannot resolve.
var ErrUnrecognized = errors.New("unrecognized date expression")

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/London"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone the parser resolves dates in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a date string to an absolute time.Time.
// Accepts YYYY-MM-DD, RFC 3339 and relative phrases ("tomorrow", "in 3 days",
// "next friday"). The baseTime is used as the reference point.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	if t, err := time.ParseInLocation(DateLayout, relative, p.location); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, strings.ToUpper(relative)); err == nil {
		return t, nil
	}

	switch relative {
	case "today", "tonight":
		return p.Today(baseTime), nil
	case "tomorrow":
		return p.InDays(1, baseTime), nil
	case "yesterday":
		return p.InDays(-1, baseTime), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return baseTime, fmt.Errorf("invalid duration amount: %q", matches[1])
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.InDays(amount, baseTime), nil
	case strings.HasPrefix(unit, "week"):
		return p.InDays(amount*7, baseTime), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.In(p.location).AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := LookupWeekday(dayName)
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}
	return p.NextWeekday(targetWeekday, baseTime), nil
}

// LookupWeekday resolves an English weekday name, case-insensitively.
func LookupWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// Today returns midnight of baseTime's day in the parser's timezone.
func (p *Parser) Today(baseTime time.Time) time.Time {
	return p.startOfDay(baseTime)
}

// InDays returns midnight n calendar days after baseTime's day.
func (p *Parser) InDays(n int, baseTime time.Time) time.Time {
	return p.startOfDay(baseTime.In(p.location).AddDate(0, 0, n))
}

// NextWeekday returns the next future occurrence of target. When baseTime
// already falls on target the result is one full week later, never today.
func (p *Parser) NextWeekday(target time.Weekday, baseTime time.Time) time.Time {
	current := baseTime.In(p.location).Weekday()
	daysUntil := (int(target) - int(current) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return p.InDays(daysUntil, baseTime)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// FormatDate renders t as a calendar date in the parser's timezone.
func (p *Parser) FormatDate(t time.Time) string {
	return t.In(p.location).Format(DateLayout)
}
