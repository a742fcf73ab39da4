package reminder

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"chorechum/internal/chore"
	"chorechum/internal/model"
	"chorechum/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSource struct {
	chores []model.Chore
	loc    *time.Location
	err    error
	from   time.Time
	to     time.Time
}

func (f *fakeSource) DueBetween(ctx context.Context, from, to time.Time) ([]chore.DueChore, error) {
	f.from, f.to = from, to
	due := make([]chore.DueChore, len(f.chores))
	for i, c := range f.chores {
		due[i] = chore.DueChore{Chore: c, Location: f.loc}
		if c.DueDate != nil {
			due[i].RemindAt = *c.DueDate
		}
	}
	return due, f.err
}

type recordingNotifier struct {
	mu    sync.Mutex
	notes []Notification
	fail  string
}

func (r *recordingNotifier) Notify(ctx context.Context, n Notification) error {
	if n.ChoreID == r.fail {
		return errors.New("push failed")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
	return nil
}

func (r *recordingNotifier) choreIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(r.notes))
	for i, n := range r.notes {
		ids[i] = n.ChoreID
	}
	sort.Strings(ids)
	return ids
}

func TestRunOnce(t *testing.T) {
	now := time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)
	due := now.Add(30 * time.Minute)
	src := &fakeSource{chores: []model.Chore{
		{ID: "c1", HouseholdID: "h1", Name: "Dishes", AssigneeID: "m1", DueDate: &due},
		{ID: "c2", HouseholdID: "h1", Name: "Bins", DueDate: &due},
		{ID: "c3", HouseholdID: "h1", Name: "Broken", DueDate: &due},
		{ID: "c4", HouseholdID: "h1", Name: "Undated"},
	}}
	notifier := &recordingNotifier{fail: "c3"}

	svc := NewService(log.NewNop(), src, notifier, Config{Window: 2 * time.Hour})
	svc.now = func() time.Time { return now }

	sent, err := svc.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if sent != 2 {
		t.Errorf("sent = %d, want 2", sent)
	}
	if got := notifier.choreIDs(); len(got) != 2 || got[0] != "c1" || got[1] != "c2" {
		t.Errorf("notified = %v, want [c1 c2]", got)
	}
	if !src.from.Equal(now) || !src.to.Equal(now.Add(2*time.Hour)) {
		t.Errorf("window = [%v, %v)", src.from, src.to)
	}

	// A second run over the same window only retries the failed chore.
	notifier.fail = ""
	sent, err = svc.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("second RunOnce: %v", err)
	}
	if sent != 1 {
		t.Errorf("second run sent = %d, want 1", sent)
	}
}

func TestRunOnceUsesHouseholdLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 2024-05-02 local midnight, as stored.
	due := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)
	src := &fakeSource{loc: tokyo, chores: []model.Chore{{ID: "c1", HouseholdID: "h1", Name: "Bins", DueDate: &due}}}
	notifier := &recordingNotifier{}

	svc := NewService(log.NewNop(), src, notifier, Config{})
	if _, err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if len(notifier.notes) != 1 {
		t.Fatalf("notified %d, want 1", len(notifier.notes))
	}
	note := notifier.notes[0]
	if note.Location != tokyo {
		t.Errorf("location = %v, want Asia/Tokyo", note.Location)
	}
	if got := FormatMessage(note); got != "Reminder: Bins is due Thu 2 May" {
		t.Errorf("FormatMessage() = %q", got)
	}
}

func TestRunOnceSourceError(t *testing.T) {
	svc := NewService(log.NewNop(), &fakeSource{err: errors.New("db down")}, &recordingNotifier{}, Config{})
	if _, err := svc.RunOnce(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestStartStop(t *testing.T) {
	svc := NewService(log.NewNop(), &fakeSource{}, &recordingNotifier{}, Config{Schedule: "@every 1h"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := svc.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := svc.Start(ctx); err == nil {
		t.Error("second Start should fail")
	}
	svc.Stop()
	svc.Stop()
}

func TestStartRejectsBadSchedule(t *testing.T) {
	svc := NewService(log.NewNop(), &fakeSource{}, &recordingNotifier{}, Config{Schedule: "every now and then"})
	if err := svc.Start(context.Background()); err == nil {
		t.Fatal("expected schedule error")
	}
}
