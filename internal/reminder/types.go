package reminder

import (
	"context"
	"time"

	"chorechum/internal/chore"
)

// Notification tells one member that a chore is coming due. MemberID is
// empty for unassigned chores, meaning the whole household. DueDate and
// RemindAt are rendered in Location, the household's timezone.
type Notification struct {
	HouseholdID string
	MemberID    string
	ChoreID     string
	ChoreName   string
	DueDate     time.Time
	RemindAt    time.Time
	Location    *time.Location
	TimeOfDay   string
	ExactTime   string
}

// Notifier delivers notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// ChoreSource lists pending chores whose reminder instant is in [from, to).
type ChoreSource interface {
	DueBetween(ctx context.Context, from, to time.Time) ([]chore.DueChore, error)
}

// Config controls the reminder job.
type Config struct {
	// Schedule is a robfig/cron spec, e.g. "@every 15m" or "0 7 * * *".
	Schedule string
	// Window is how far ahead a run looks for due chores.
	Window time.Duration
	// Concurrency caps parallel Notify calls.
	Concurrency int
}
