package checklist

import "chorechum/internal/model"

// ChecklistStats represents subtask progress
type ChecklistStats struct {
	Total     int     // Total subtasks
	Completed int     // Done subtasks
	Pending   int     // Open subtasks
	Progress  float64 // Completion percentage (0-100)
}

// UpdateSubtaskInput is input for toggling subtasks by text
type UpdateSubtaskInput struct {
	Subtasks []model.Subtask
	Text     string // Text to match (partial, case-insensitive)
	Done     bool   // New state
}

// UpdateSubtaskOutput is result of a subtask update
type UpdateSubtaskOutput struct {
	Subtasks []model.Subtask // Updated copy; the input slice is untouched
	Updated  bool            // Whether any subtask changed state
	Count    int             // Number of subtasks matched
}
