package chore

import (
	"time"

	"chorechum/internal/checklist"
	"chorechum/internal/model"
	"chorechum/pkg/smartinput"
)

// --- UseCase Inputs ---

type ParseInput struct {
	HouseholdID string
	Text        string
}

// RecurrenceInput is the recurrence section of the chore form. An empty Unit
// or "none" means the chore does not repeat. Interval 0 with no Until is the
// plain daily/weekly/monthly rule.
type RecurrenceInput struct {
	Unit     string
	Interval int
	Until    string // YYYY-MM-DD
}

type CreateInput struct {
	HouseholdID     string
	Name            string
	RoomID          string
	AssigneeID      string
	Recurrence      RecurrenceInput
	DueDate         string // YYYY-MM-DD, RFC 3339 or a relative phrase
	TimeOfDay       string
	ExactTime       string // HH:MM
	Points          int
	TargetInstances int
	IsShoppingList  bool
	Subtasks        []string
	Tags            []string
}

// UpdateInput changes only the fields that are non-nil. An empty DueDate
// clears the due date; an empty RoomID or AssigneeID detaches the chore.
type UpdateInput struct {
	ID              string
	Name            *string
	RoomID          *string
	AssigneeID      *string
	Recurrence      *RecurrenceInput
	DueDate         *string
	TimeOfDay       *string
	ExactTime       *string
	Points          *int
	TargetInstances *int
	IsShoppingList  *bool
	Subtasks        *[]string
	Tags            *[]string
}

type ListInput struct {
	HouseholdID string
	Status      model.ChoreStatus
	AssigneeID  string
	RoomID      string
	Limit       int
	Offset      int
}

type ToggleSubtaskInput struct {
	ChoreID string
	Text    string // partial, case-insensitive; empty with All set toggles every item
	All     bool
	Done    bool
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Draft smartinput.Draft
}

type ListOutput struct {
	Chores []model.Chore
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Chore model.Chore
	Stats checklist.ChecklistStats
}

type CompleteOutput struct {
	Chore      model.Chore
	Completion model.Completion
	// Rescheduled is set when a recurring chore moved to its next due date.
	Rescheduled bool
}

type ToggleSubtaskOutput struct {
	Chore   model.Chore
	Matched int
	Stats   checklist.ChecklistStats
	AllDone bool
}

// DueChore is a pending chore with the household location it is due in and
// the instant a reminder for it is due: the local due day at ExactTime, or at
// the start of its time-of-day slot.
type DueChore struct {
	Chore    model.Chore
	Location *time.Location
	RemindAt time.Time
}
