package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chorechum/internal/chore/repository"
	"chorechum/internal/model"
	pkgLog "chorechum/pkg/log"
	"chorechum/pkg/recurrence"
	pkgSqlite "chorechum/pkg/sqlite"
)

func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()
	ctx := context.Background()
	db, err := pkgSqlite.Connect(ctx, pkgSqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pkgSqlite.Disconnect(db) })
	require.NoError(t, pkgSqlite.Migrate(ctx, db))

	_, err = db.ExecContext(ctx, `INSERT INTO households (id, name, timezone, created_at) VALUES ('h1', 'Home', 'UTC', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	return New(db, pkgLog.NewNop())
}

func TestChoreRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	due := time.Date(2024, 3, 31, 0, 0, 0, 0, time.FixedZone("NZDT", 13*3600))
	rule := recurrence.Custom(recurrence.Monthly, 2, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))

	created, err := repo.CreateChore(ctx, repository.CreateChoreOptions{
		HouseholdID:     "h1",
		Name:            "Pay rent",
		Recurrence:      rule,
		DueDate:         &due,
		TimeOfDay:       "morning",
		ExactTime:       "08:00",
		Points:          15,
		TargetInstances: 1,
		IsShoppingList:  true,
		Subtasks:        []model.Subtask{{Text: "transfer", Done: true}},
	})
	require.NoError(t, err)

	got, err := repo.GetChore(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pay rent", got.Name)
	assert.Equal(t, rule, got.Recurrence)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
	assert.True(t, got.IsShoppingList)
	assert.Equal(t, []model.Subtask{{Text: "transfer", Done: true}}, got.Subtasks)
	assert.Equal(t, []string{}, got.Tags)
	assert.Equal(t, model.ChoreStatusPending, got.Status)

	missing, err := repo.GetChore(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestCompleteChoreIsAtomic(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	c, err := repo.CreateChore(ctx, repository.CreateChoreOptions{HouseholdID: "h1", Name: "Dishes", TargetInstances: 1, Points: 10})
	require.NoError(t, err)

	c.Status = model.ChoreStatusComplete
	c.CompletedInstances = 1
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	comp, err := repo.CompleteChore(ctx, repository.CompleteChoreOptions{Chore: c, MemberID: "m1", Points: 10, CompletedAt: at})
	require.NoError(t, err)
	assert.Equal(t, c.ID, comp.ChoreID)
	assert.Equal(t, "h1", comp.HouseholdID)

	got, err := repo.GetChore(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ChoreStatusComplete, got.Status)
	assert.Equal(t, 1, got.CompletedInstances)

	due, err := repo.ListDue(ctx, repository.ListDueOptions{From: at.Add(-time.Hour), To: at.Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestCompleteChoreRejectsStaleWrite(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	at := due.Add(9 * time.Hour)

	c, err := repo.CreateChore(ctx, repository.CreateChoreOptions{
		HouseholdID: "h1", Name: "Bins", TargetInstances: 1, Points: 10,
		Recurrence: recurrence.Simple(recurrence.Weekly), DueDate: &due,
	})
	require.NoError(t, err)

	next := due.AddDate(0, 0, 7)
	advanced := c
	advanced.DueDate = &next
	opt := repository.CompleteChoreOptions{Chore: advanced, MemberID: "m1", Points: 10, CompletedAt: at, PrevDueDate: &due}

	_, err = repo.CompleteChore(ctx, opt)
	require.NoError(t, err)

	// Same read, written a second time.
	_, err = repo.CompleteChore(ctx, opt)
	assert.ErrorIs(t, err, repository.ErrStaleChore)

	got, err := repo.GetChore(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DueDate)
	assert.True(t, next.Equal(*got.DueDate))

	dueList, err := repo.ListDue(ctx, repository.ListDueOptions{From: next, To: next.Add(time.Hour)})
	require.NoError(t, err)
	require.Len(t, dueList, 1)
	assert.Equal(t, c.ID, dueList[0].Chore.ID)
	assert.Equal(t, "UTC", dueList[0].Timezone)
}

func TestListChoresFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.CreateChore(ctx, repository.CreateChoreOptions{HouseholdID: "h1", Name: name, AssigneeID: "m-" + name, TargetInstances: 1})
		require.NoError(t, err)
	}

	chores, total, err := repo.ListChores(ctx, repository.ListChoresOptions{HouseholdID: "h1", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, chores, 2)

	chores, total, err = repo.ListChores(ctx, repository.ListChoresOptions{HouseholdID: "h1", AssigneeID: "m-b", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, chores, 1)
	assert.Equal(t, "b", chores[0].Name)
}
