package recurrence

import "time"

// Kind tags which variant a Rule holds.
type Kind int

const (
	KindNone Kind = iota
	KindSimple
	KindCustom
)

// Unit is the period a rule advances by.
type Unit string

const (
	Daily   Unit = "daily"
	Weekly  Unit = "weekly"
	Monthly Unit = "monthly"
)

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	switch u {
	case Daily, Weekly, Monthly:
		return true
	}
	return false
}

// Rule describes how a chore repeats. The zero value is the None rule.
//
// Until, when set, is a calendar date stored as midnight UTC; occurrences on
// that date are still produced, later ones are not.
type Rule struct {
	Kind     Kind
	Unit     Unit
	Interval int
	Until    time.Time
}

const (
	encNone     = "none"
	encCustom   = "custom"
	encSep      = ":"
	untilLayout = "2006-01-02"
)
