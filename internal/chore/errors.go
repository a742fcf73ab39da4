package chore

import "errors"

var (
	ErrChoreNotFound     = errors.New("chore not found")
	ErrEmptyName         = errors.New("chore name is empty")
	ErrAlreadyComplete   = errors.New("chore is already complete")
	ErrSubtaskNotFound   = errors.New("no subtask matches")
	ErrInvalidRecurrence = errors.New("invalid recurrence")
	ErrInvalidDueDate    = errors.New("invalid due date")
	ErrInvalidTimeOfDay  = errors.New("invalid time of day")
	ErrInvalidExactTime  = errors.New("invalid exact time")
	ErrInvalidAssignee   = errors.New("assignee is not a member of this household")
	ErrInvalidRoom       = errors.New("room does not belong to this household")
	ErrInvalidInstances  = errors.New("target instances must be at least 1")
	ErrInvalidPoints     = errors.New("points must not be negative")
)
