package repository

import (
	"time"

	"chorechum/internal/model"
	"chorechum/pkg/recurrence"
)

// CreateChoreOptions holds the validated fields of a new chore.
type CreateChoreOptions struct {
	HouseholdID     string
	Name            string
	RoomID          string
	AssigneeID      string
	Recurrence      recurrence.Rule
	DueDate         *time.Time
	TimeOfDay       string
	ExactTime       string
	Points          int
	TargetInstances int
	IsShoppingList  bool
	Subtasks        []model.Subtask
	Tags            []string
	CreatedBy       string
}

// ListChoresOptions filters chores of one household. Empty fields are ignored.
type ListChoresOptions struct {
	HouseholdID string
	Status      model.ChoreStatus
	AssigneeID  string
	RoomID      string
	Limit       int
	Offset      int
}

// CompleteChoreOptions carries the chore after completion and who completed it.
// PrevInstances and PrevDueDate are the values the caller loaded; the write
// only applies while the stored chore still has them.
type CompleteChoreOptions struct {
	Chore         model.Chore
	MemberID      string
	Points        int
	CompletedAt   time.Time
	PrevInstances int
	PrevDueDate   *time.Time
}

// ListDueOptions selects pending chores with From <= due_date < To.
type ListDueOptions struct {
	From time.Time
	To   time.Time
}

// DueChore is a chore returned by ListDue with its household's timezone.
type DueChore struct {
	Chore    model.Chore
	Timezone string
}
