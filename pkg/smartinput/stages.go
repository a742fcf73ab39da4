package smartinput

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"chorechum/pkg/datemath"
	"chorechum/pkg/recurrence"
)

// Each stage takes the remaining text and returns what it found together with
// the text left for the next stage.

func extractTags(text string) ([]string, string) {
	tags := []string{}
	seen := map[string]bool{}
	for _, m := range tagRe.FindAllStringSubmatch(text, -1) {
		tag := strings.ToLower(m[1])
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags, tagRe.ReplaceAllString(text, " ")
}

// extractAssignee matches a member's first name, optionally after "for" or "by".
func extractAssignee(text string, members []Member) (string, string) {
	for _, m := range members {
		first := firstName(m.Name)
		if first == "" {
			continue
		}
		if loc := nameRe(`(?:(?:for|by)\s+)?`, first).FindStringSubmatchIndex(text); loc != nil {
			return m.ID, cut(text, loc[2], loc[3])
		}
	}
	return "", text
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// extractRoom matches a room's exact name, optionally after "in" or "at".
func extractRoom(text string, rooms []Room) (string, string) {
	for _, r := range rooms {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		if loc := nameRe(`(?:(?:in|at)\s+(?:the\s+)?)?`, name).FindStringSubmatchIndex(text); loc != nil {
			return r.ID, cut(text, loc[2], loc[3])
		}
	}
	return "", text
}

// implicitRoom guesses a room from object keywords. The keyword is part of the
// chore's description, so nothing is stripped.
func implicitRoom(text string, rooms []Room) string {
	for _, entry := range implicitRooms {
		if !entry.keywords.MatchString(text) {
			continue
		}
		for _, r := range rooms {
			if strings.EqualFold(strings.TrimSpace(r.Name), entry.room) {
				return r.ID
			}
		}
	}
	return ""
}

var unitWords = map[string]recurrence.Unit{
	"day":   recurrence.Daily,
	"week":  recurrence.Weekly,
	"month": recurrence.Monthly,
}

func extractRecurrence(text string) (recurrence.Rule, string) {
	if m := everyNRe.FindStringSubmatchIndex(text); m != nil {
		count := text[m[2]:m[3]]
		unit := unitWords[strings.ToLower(text[m[4]:m[5]])]
		n := 2
		if !strings.EqualFold(count, "other") {
			n, _ = strconv.Atoi(count)
		}
		if n >= 1 {
			rule := recurrence.Custom(unit, n, time.Time{})
			if n == 1 {
				rule = recurrence.Simple(unit)
			}
			return rule, cut(text, m[0], m[1])
		}
	}

	for _, c := range []struct {
		unit recurrence.Unit
		re   *regexp.Regexp
	}{
		{recurrence.Daily, dailyRe},
		{recurrence.Weekly, weeklyRe},
		{recurrence.Monthly, monthlyRe},
	} {
		if loc := c.re.FindStringIndex(text); loc != nil {
			return recurrence.Simple(c.unit), cut(text, loc[0], loc[1])
		}
	}
	return recurrence.None(), text
}

// extractDate tries "in N days", then "tomorrow", then "next <weekday>".
func (p *Parser) extractDate(text string, now time.Time) (time.Time, string) {
	if m := inDaysRe.FindStringSubmatchIndex(text); m != nil {
		n, err := strconv.Atoi(text[m[2]:m[3]])
		if err == nil {
			return p.dates.InDays(n, now), cut(text, m[0], m[1])
		}
	}
	if loc := tomorrowRe.FindStringIndex(text); loc != nil {
		return p.dates.InDays(1, now), cut(text, loc[0], loc[1])
	}
	if m := nextDayRe.FindStringSubmatchIndex(text); m != nil {
		if wd, ok := datemath.LookupWeekday(text[m[2]:m[3]]); ok {
			return p.dates.NextWeekday(wd, now), cut(text, m[0], m[1])
		}
	}
	return time.Time{}, text
}

// extractExactTime finds "at 7pm", "7:30 am", "at 18:30" or a bare "18:30". The slot it
// implies is only used when no time-of-day word is present.
func extractExactTime(text string) (string, TimeOfDay, string) {
	if m := meridiemTimeRe.FindStringSubmatchIndex(text); m != nil {
		hour, _ := strconv.Atoi(text[m[2]:m[3]])
		minute := 0
		if m[4] >= 0 {
			minute, _ = strconv.Atoi(text[m[4]:m[5]])
		}
		if hour >= 1 && hour <= 12 {
			slot := Morning
			pm := strings.EqualFold(text[m[6]:m[7]], "pm")
			if pm {
				slot = Evening
				if hour != 12 {
					hour += 12
				}
			} else if hour == 12 {
				hour = 0
			}
			return formatClock(hour, minute), slot, cut(text, m[0], m[1])
		}
	}
	if m := clockTimeRe.FindStringSubmatchIndex(text); m != nil {
		hour, _ := strconv.Atoi(text[m[2]:m[3]])
		minute, _ := strconv.Atoi(text[m[4]:m[5]])
		if hour <= 23 {
			return formatClock(hour, minute), slotForHour(hour), cut(text, m[0], m[1])
		}
	}
	return "", "", text
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func slotForHour(hour int) TimeOfDay {
	switch {
	case hour < 12:
		return Morning
	case hour < 17:
		return Afternoon
	default:
		return Evening
	}
}

// extractTimeOfDay reports tonight separately because it also implies today.
func extractTimeOfDay(text string) (TimeOfDay, bool, string) {
	if loc := tonightRe.FindStringIndex(text); loc != nil {
		return Evening, true, cut(text, loc[0], loc[1])
	}
	if loc := morningRe.FindStringIndex(text); loc != nil {
		return Morning, false, cut(text, loc[0], loc[1])
	}
	if loc := afternoonRe.FindStringIndex(text); loc != nil {
		return Afternoon, false, cut(text, loc[0], loc[1])
	}
	if loc := eveningRe.FindStringIndex(text); loc != nil {
		return Evening, false, cut(text, loc[0], loc[1])
	}
	return "", false, text
}

func extractInstances(text string) (int, string) {
	m := instancesRe.FindStringSubmatchIndex(text)
	if m == nil {
		return 0, text
	}
	digits := ""
	if m[2] >= 0 {
		digits = text[m[2]:m[3]]
	} else {
		digits = text[m[4]:m[5]]
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, text
	}
	return n, cut(text, m[0], m[1])
}

// extractList splits "Head: a, b and c" into subtasks. Without a colon, a
// "buy ..." line naming at least two items becomes a shopping list and keeps
// its text as the name.
func extractList(text string) ([]string, bool, string) {
	if i := listColon(text); i >= 0 {
		head, tail := text[:i], text[i+1:]
		items := splitItems(tail)
		if len(items) > 0 {
			return items, shoppingRe.MatchString(strings.TrimSpace(head)), head
		}
		return nil, false, head
	}

	if m := shoppingRe.FindStringSubmatch(strings.TrimSpace(spacesRe.ReplaceAllString(text, " "))); m != nil {
		if items := splitItems(m[1]); len(items) >= 2 {
			return items, true, text
		}
	}
	return nil, false, text
}

// listColon returns the index of the first colon that is not part of a clock
// time such as "25:00", or -1.
func listColon(text string) int {
	for i := 0; i < len(text); i++ {
		if text[i] != ':' {
			continue
		}
		if i > 0 && i+1 < len(text) && isDigit(text[i-1]) && isDigit(text[i+1]) {
			continue
		}
		return i
	}
	return -1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func splitItems(text string) []string {
	var items []string
	for _, part := range listSepRe.Split(text, -1) {
		part = strings.TrimSpace(spacesRe.ReplaceAllString(part, " "))
		if part != "" {
			items = append(items, capitalize(part))
		}
	}
	return items
}
