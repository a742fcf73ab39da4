package checklist

import (
	"strings"

	"chorechum/internal/model"
)

type Service interface {
	// GetStats calculates checklist statistics
	GetStats(subtasks []model.Subtask) ChecklistStats

	// UpdateSubtask sets the state of every subtask whose text contains input.Text
	UpdateSubtask(input UpdateSubtaskInput) UpdateSubtaskOutput

	// UpdateAll sets all subtasks to the given state
	UpdateAll(subtasks []model.Subtask, done bool) []model.Subtask

	// IsFullyCompleted checks if all subtasks are done
	IsFullyCompleted(subtasks []model.Subtask) bool

	// FromTexts builds open subtasks from plain lines, skipping blanks
	FromTexts(texts []string) []model.Subtask
}

type service struct{}

func New() Service {
	return &service{}
}

// GetStats calculates checklist statistics
func (s *service) GetStats(subtasks []model.Subtask) ChecklistStats {
	total := len(subtasks)
	if total == 0 {
		return ChecklistStats{}
	}

	completed := 0
	for _, st := range subtasks {
		if st.Done {
			completed++
		}
	}

	return ChecklistStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

// UpdateSubtask updates subtask state by text match (partial match)
func (s *service) UpdateSubtask(input UpdateSubtaskInput) UpdateSubtaskOutput {
	out := UpdateSubtaskOutput{Subtasks: make([]model.Subtask, len(input.Subtasks))}
	copy(out.Subtasks, input.Subtasks)

	searchText := strings.ToLower(strings.TrimSpace(input.Text))
	if searchText == "" {
		return out
	}

	for i, st := range out.Subtasks {
		if !strings.Contains(strings.ToLower(st.Text), searchText) {
			continue
		}
		out.Count++
		if st.Done != input.Done {
			out.Subtasks[i].Done = input.Done
			out.Updated = true
		}
	}
	return out
}

// UpdateAll sets all subtasks to the given state
func (s *service) UpdateAll(subtasks []model.Subtask, done bool) []model.Subtask {
	out := make([]model.Subtask, len(subtasks))
	for i, st := range subtasks {
		out[i] = model.Subtask{Text: st.Text, Done: done}
	}
	return out
}

// IsFullyCompleted checks if all subtasks are done. An empty list is not
// considered complete.
func (s *service) IsFullyCompleted(subtasks []model.Subtask) bool {
	stats := s.GetStats(subtasks)
	return stats.Total > 0 && stats.Pending == 0
}

func (s *service) FromTexts(texts []string) []model.Subtask {
	out := make([]model.Subtask, 0, len(texts))
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, model.Subtask{Text: t})
		}
	}
	return out
}
