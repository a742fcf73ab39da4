package smartinput

import "chorechum/pkg/recurrence"

// Member is a household member the parser may assign a chore to.
type Member struct {
	ID   string
	Name string
}

// Room is a household room the parser may attach a chore to.
type Room struct {
	ID   string
	Name string
}

// TimeOfDay is the coarse slot of the day a chore is meant for.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	AnyTime   TimeOfDay = "any"
)

// Draft is the structured suggestion extracted from one line of text.
// Absent fields mean "no suggestion"; the form keeps whatever it had.
type Draft struct {
	Name           string           `json:"name"`
	RoomID         string           `json:"room_id,omitempty"`
	AssigneeID     string           `json:"assignee_id,omitempty"`
	Recurrence     *recurrence.Rule `json:"recurrence,omitempty"`
	DueDate        string           `json:"due_date,omitempty"`
	TimeOfDay      TimeOfDay        `json:"time_of_day,omitempty"`
	ExactTime      string           `json:"exact_time,omitempty"`
	Instances      int              `json:"instances,omitempty"`
	Subtasks       []string         `json:"subtasks,omitempty"`
	IsShoppingList bool             `json:"is_shopping_list,omitempty"`
	Tags           []string         `json:"tags"`
}
