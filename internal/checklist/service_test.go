package checklist_test

import (
	"testing"

	"chorechum/internal/checklist"
	"chorechum/internal/model"
)

func TestGetStats(t *testing.T) {
	svc := checklist.New()

	empty := svc.GetStats(nil)
	if empty.Total != 0 || empty.Progress != 0 {
		t.Errorf("expected zero stats, got %+v", empty)
	}

	stats := svc.GetStats([]model.Subtask{
		{Text: "Sweep", Done: true},
		{Text: "Mop"},
		{Text: "Dust", Done: true},
		{Text: "Vacuum"},
	})
	if stats.Total != 4 || stats.Completed != 2 || stats.Pending != 2 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.Progress != 50 {
		t.Errorf("expected 50%% progress, got %v", stats.Progress)
	}
}

func TestUpdateSubtask(t *testing.T) {
	svc := checklist.New()
	original := []model.Subtask{{Text: "Wipe counters"}, {Text: "Wipe table"}, {Text: "Mop floor"}}

	t.Run("Partial match updates all matches", func(t *testing.T) {
		out := svc.UpdateSubtask(checklist.UpdateSubtaskInput{Subtasks: original, Text: "WIPE", Done: true})
		if !out.Updated || out.Count != 2 {
			t.Fatalf("expected 2 updates, got %+v", out)
		}
		if !out.Subtasks[0].Done || !out.Subtasks[1].Done || out.Subtasks[2].Done {
			t.Errorf("unexpected subtasks %+v", out.Subtasks)
		}
		if original[0].Done {
			t.Errorf("input slice was mutated")
		}
	})

	t.Run("No match", func(t *testing.T) {
		out := svc.UpdateSubtask(checklist.UpdateSubtaskInput{Subtasks: original, Text: "laundry", Done: true})
		if out.Updated || out.Count != 0 {
			t.Errorf("expected no update, got %+v", out)
		}
	})

	t.Run("Already in state counts but does not update", func(t *testing.T) {
		out := svc.UpdateSubtask(checklist.UpdateSubtaskInput{Subtasks: original, Text: "mop", Done: false})
		if out.Updated || out.Count != 1 {
			t.Errorf("unexpected result %+v", out)
		}
	})

	t.Run("Blank text matches nothing", func(t *testing.T) {
		out := svc.UpdateSubtask(checklist.UpdateSubtaskInput{Subtasks: original, Text: "  ", Done: true})
		if out.Count != 0 {
			t.Errorf("expected no match, got %+v", out)
		}
	})
}

func TestUpdateAllAndIsFullyCompleted(t *testing.T) {
	svc := checklist.New()
	subtasks := []model.Subtask{{Text: "A"}, {Text: "B", Done: true}}

	if svc.IsFullyCompleted(subtasks) {
		t.Errorf("expected incomplete")
	}
	done := svc.UpdateAll(subtasks, true)
	if !svc.IsFullyCompleted(done) {
		t.Errorf("expected complete after UpdateAll(true)")
	}
	if svc.IsFullyCompleted(nil) {
		t.Errorf("empty checklist must not count as complete")
	}
	reset := svc.UpdateAll(done, false)
	if svc.GetStats(reset).Completed != 0 {
		t.Errorf("expected reset to clear all")
	}
}

func TestFromTexts(t *testing.T) {
	got := checklist.New().FromTexts([]string{" Milk ", "", "Eggs"})
	if len(got) != 2 || got[0].Text != "Milk" || got[1].Text != "Eggs" || got[0].Done {
		t.Errorf("unexpected subtasks %+v", got)
	}
}
