package smartinput

import "regexp"

// wordRe compiles a case-insensitive alternation that must match whole words.
func wordRe(alternation string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + alternation + `)\b`)
}

// implicitRooms maps everyday nouns to the canonical room they live in.
// Checked in order; the first keyword whose room exists in the household wins.
var implicitRooms = []struct {
	room     string
	keywords *regexp.Regexp
}{
	{room: "Kitchen", keywords: wordRe(`fridge|oven|dishwasher|stove|sink|dishes`)},
	{room: "Living Room", keywords: wordRe(`sofa|couch|tv|rug`)},
	{room: "Bathroom", keywords: wordRe(`toilet|shower|bath|tub`)},
	{room: "Bedroom", keywords: wordRe(`bed|sheets?|pillows?`)},
	{room: "Laundry", keywords: wordRe(`washer|dryer|clothes|laundry`)},
}

var (
	tagRe     = regexp.MustCompile(`#([\p{L}\p{N}_-]+)`)
	selfRefRe = wordRe(`my|me|i`)

	everyNRe  = regexp.MustCompile(`(?i)\bevery\s+(\d{1,3}|other)\s+(day|week|month)s?\b`)
	dailyRe   = wordRe(`every\s+day|daily`)
	weeklyRe  = wordRe(`every\s+week|weekly`)
	monthlyRe = wordRe(`every\s+month|monthly`)

	inDaysRe   = regexp.MustCompile(`(?i)\bin\s+(\d{1,4})\s+days?\b`)
	tomorrowRe = wordRe(`tomorrow`)
	nextDayRe  = regexp.MustCompile(`(?i)\bnext\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

	meridiemTimeRe = regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})(?::([0-5]\d))?\s*(am|pm)\b`)
	clockTimeRe    = regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2}):([0-5]\d)\b`)

	tonightRe   = wordRe(`tonight`)
	morningRe   = wordRe(`(?:(?:in\s+the|this)\s+)?morning|am`)
	afternoonRe = wordRe(`(?:(?:in\s+the|this)\s+)?afternoon`)
	eveningRe   = wordRe(`(?:(?:in\s+the|this)\s+)?evening|night|pm`)

	instancesRe = regexp.MustCompile(`(?i)\b(?:(\d{1,3})\s*(?:times|x)|x(\d{1,3}))\b`)

	shoppingRe = regexp.MustCompile(`(?i)^(?:buy|shop\s+for|pick\s+up)\s+(.+)$`)
	listSepRe  = regexp.MustCompile(`(?i)\s*(?:,|;|\band\b)\s*`)

	spacesRe      = regexp.MustCompile(`\s+`)
	leadingWordRe = regexp.MustCompile(`(?i)^(?:to|for|at)\b\s*`)
)

// boundary is a Unicode-aware word edge for household-supplied names, which
// may start or end with letters \b does not treat as word characters.
const boundary = `[^\p{L}\p{N}_]`

// nameRe matches name as a whole word, optionally preceded by one of the
// given prepositions. Submatch 1 spans the text to strip.
func nameRe(prefix, name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|` + boundary + `)(` + prefix + regexp.QuoteMeta(name) + `)(?:` + boundary + `|$)`)
}
