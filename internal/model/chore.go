package model

import (
	"time"

	"chorechum/pkg/recurrence"
)

// ChoreStatus is the lifecycle state of a chore.
type ChoreStatus string

const (
	ChoreStatusPending  ChoreStatus = "pending"
	ChoreStatusComplete ChoreStatus = "complete"
)

// Subtask is one checklist line of a chore.
type Subtask struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Chore is a unit of household work.
type Chore struct {
	ID                 string
	HouseholdID        string
	Name               string
	RoomID             string
	AssigneeID         string // member id
	Recurrence         recurrence.Rule
	DueDate            *time.Time
	TimeOfDay          string
	ExactTime          string
	Points             int
	CompletedInstances int
	TargetInstances    int
	Status             ChoreStatus
	IsShoppingList     bool
	Subtasks           []Subtask
	Tags               []string
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Completion records one member finishing one instance of a chore.
type Completion struct {
	ID          string
	ChoreID     string
	HouseholdID string
	MemberID    string
	Points      int
	CompletedAt time.Time
}
