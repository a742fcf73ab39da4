package recurrence

import "errors"

var (
	ErrUnknownUnit     = errors.New("unknown recurrence unit")
	ErrInvalidInterval = errors.New("recurrence interval must be at least 1")
	ErrUntilInPast     = errors.New("recurrence end date is before the date it was set")
)
