package smartinput

import (
	"strings"
	"time"

	"chorechum/pkg/datemath"
	"chorechum/pkg/recurrence"
)

// Parser turns a line of free text into a Draft. It is stateless apart from
// the timezone dates are resolved in, so one Parser can serve every request.
type Parser struct {
	dates *datemath.Parser
}

// NewParser creates a Parser resolving relative dates with dates.
func NewParser(dates *datemath.Parser) *Parser {
	return &Parser{dates: dates}
}

// Parse extracts a Draft from text. Members and rooms are tried in the order
// given and the first match wins. now is the reference for relative dates;
// identical arguments always yield identical drafts.
//
// A first-person pronoun assigns the chore to currentUserID and suppresses
// named-member detection, even when another member is also named.
func (p *Parser) Parse(text string, members []Member, rooms []Room, currentUserID string, now time.Time) Draft {
	var d Draft
	rest := text

	d.Tags, rest = extractTags(rest)

	if selfRefRe.MatchString(rest) && currentUserID != "" {
		d.AssigneeID = currentUserID
	} else {
		d.AssigneeID, rest = extractAssignee(rest, members)
	}

	d.RoomID, rest = extractRoom(rest, rooms)
	if d.RoomID == "" {
		d.RoomID = implicitRoom(rest, rooms)
	}

	var rule recurrence.Rule
	rule, rest = extractRecurrence(rest)
	if !rule.IsNone() {
		d.Recurrence = &rule
	}

	var due time.Time
	due, rest = p.extractDate(rest, now)

	var clockSlot TimeOfDay
	d.ExactTime, clockSlot, rest = extractExactTime(rest)

	var tonight bool
	d.TimeOfDay, tonight, rest = extractTimeOfDay(rest)
	if d.TimeOfDay == "" {
		d.TimeOfDay = clockSlot
	}
	if tonight && due.IsZero() {
		due = p.dates.Today(now)
	}
	if !due.IsZero() {
		d.DueDate = p.dates.FormatDate(due)
		if d.TimeOfDay == "" {
			d.TimeOfDay = AnyTime
		}
	}

	d.Instances, rest = extractInstances(rest)
	d.Subtasks, d.IsShoppingList, rest = extractList(rest)

	d.Name = cleanName(rest)
	return d
}

// cut removes text[start:end] leaving a space so neighbouring words stay apart.
func cut(text string, start, end int) string {
	return text[:start] + " " + text[end:]
}

func cleanName(text string) string {
	name := strings.TrimSpace(spacesRe.ReplaceAllString(text, " "))
	name = leadingWordRe.ReplaceAllString(name, "")
	name = strings.Trim(name, " ,;")
	return capitalize(name)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
