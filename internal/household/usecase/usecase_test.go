package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"chorechum/internal/household"
	repoSqlite "chorechum/internal/household/repository/sqlite"
	"chorechum/internal/leaderboard"
	"chorechum/internal/model"
	pkgLog "chorechum/pkg/log"
	"chorechum/pkg/sqlite"
)

func newTestUseCase(t *testing.T) (*implUseCase, func(query string, args ...any)) {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Connect(ctx, sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { _ = sqlite.Disconnect(db) })
	if err := sqlite.Migrate(ctx, db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	l := pkgLog.NewNop()
	uc := New(l, repoSqlite.New(db, l), Options{
		DefaultTimezone: "UTC",
		Scoring:         leaderboard.Scoring{StreakBonus: 5},
		DetailCacheTTL:  time.Minute,
	})
	exec := func(query string, args ...any) {
		t.Helper()
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			t.Fatalf("exec %q: %v", query, err)
		}
	}
	return uc, exec
}

func TestCreateAndDetail(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()
	alice := model.Scope{UserID: "u-alice"}

	out, err := uc.Create(ctx, alice, household.CreateInput{Name: "  Flat 4 ", OwnerName: "Alice"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Household.Name != "Flat 4" || out.Household.Timezone != "UTC" {
		t.Errorf("household = %+v", out.Household)
	}
	if out.Owner.UserID != "u-alice" || out.Owner.Name != "Alice" {
		t.Errorf("owner = %+v", out.Owner)
	}

	detail, err := uc.Detail(ctx, alice, out.Household.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if len(detail.Members) != 1 || detail.Members[0].ID != out.Owner.ID {
		t.Errorf("members = %+v", detail.Members)
	}

	_, err = uc.Detail(ctx, model.Scope{UserID: "u-mallory"}, out.Household.ID)
	if !errors.Is(err, household.ErrNotMember) {
		t.Errorf("outsider Detail err = %v, want ErrNotMember", err)
	}
	_, err = uc.Detail(ctx, alice, "missing")
	if !errors.Is(err, household.ErrHouseholdNotFound) {
		t.Errorf("missing Detail err = %v, want ErrHouseholdNotFound", err)
	}
}

func TestCreateValidation(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	tests := []struct {
		name  string
		input household.CreateInput
		want  error
	}{
		{name: "empty name", input: household.CreateInput{Name: "  "}, want: household.ErrEmptyName},
		{name: "bad timezone", input: household.CreateInput{Name: "Home", Timezone: "Mars/Olympus"}, want: household.ErrInvalidTimezone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, sc, tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMembers(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()
	alice := model.Scope{UserID: "u-alice"}

	out, err := uc.Create(ctx, alice, household.CreateInput{Name: "Home", OwnerName: "Alice"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	hid := out.Household.ID

	if err := uc.RemoveMember(ctx, alice, hid, out.Owner.ID); !errors.Is(err, household.ErrLastMember) {
		t.Errorf("remove last member err = %v", err)
	}

	bob, err := uc.AddMember(ctx, alice, household.AddMemberInput{HouseholdID: hid, UserID: "u-bob", Name: "Bob"})
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if _, err := uc.AddMember(ctx, alice, household.AddMemberInput{HouseholdID: hid, UserID: "u-bob", Name: "Bobby"}); !errors.Is(err, household.ErrDuplicateMember) {
		t.Errorf("duplicate AddMember err = %v", err)
	}

	detail, err := uc.Detail(ctx, model.Scope{UserID: "u-bob"}, hid)
	if err != nil {
		t.Fatalf("Detail as bob: %v", err)
	}
	if len(detail.Members) != 2 || detail.Members[1].Name != "Bob" {
		t.Errorf("members = %+v", detail.Members)
	}

	if err := uc.RemoveMember(ctx, alice, hid, "nope"); !errors.Is(err, household.ErrMemberNotFound) {
		t.Errorf("remove unknown err = %v", err)
	}
	if err := uc.RemoveMember(ctx, alice, hid, bob.ID); err != nil {
		t.Fatalf("RemoveMember: %v", err)
	}
	if _, err := uc.Detail(ctx, model.Scope{UserID: "u-bob"}, hid); !errors.Is(err, household.ErrNotMember) {
		t.Errorf("removed member Detail err = %v", err)
	}
}

func TestCachedDetail(t *testing.T) {
	uc, exec := newTestUseCase(t)
	ctx := context.Background()
	alice := model.Scope{UserID: "u-alice"}

	out, err := uc.Create(ctx, alice, household.CreateInput{Name: "Home", OwnerName: "Alice"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	hid := out.Household.ID
	bob, err := uc.AddMember(ctx, alice, household.AddMemberInput{HouseholdID: hid, UserID: "u-bob", Name: "Bob"})
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if _, err := uc.CachedDetail(ctx, alice, hid); err != nil {
		t.Fatalf("CachedDetail: %v", err)
	}

	// Rows written behind the usecase stay invisible until an eviction.
	exec(`INSERT INTO members (id, household_id, user_id, name, created_at) VALUES ('m-carol', ?, 'u-carol', 'Carol', '2024-01-01T00:00:00Z')`, hid)
	if _, err := uc.CachedDetail(ctx, model.Scope{UserID: "u-carol"}, hid); !errors.Is(err, household.ErrNotMember) {
		t.Errorf("cached CachedDetail err = %v, want ErrNotMember", err)
	}

	if err := uc.RemoveMember(ctx, alice, hid, bob.ID); err != nil {
		t.Fatalf("RemoveMember: %v", err)
	}
	if _, err := uc.CachedDetail(ctx, model.Scope{UserID: "u-bob"}, hid); !errors.Is(err, household.ErrNotMember) {
		t.Errorf("removed member CachedDetail err = %v, want ErrNotMember", err)
	}
	detail, err := uc.CachedDetail(ctx, model.Scope{UserID: "u-carol"}, hid)
	if err != nil {
		t.Fatalf("CachedDetail after eviction: %v", err)
	}
	if len(detail.Members) != 2 {
		t.Errorf("members = %+v", detail.Members)
	}

	if _, err := uc.AddRoom(ctx, alice, household.AddRoomInput{HouseholdID: hid, Name: "Attic"}); err != nil {
		t.Fatalf("AddRoom: %v", err)
	}
	detail, err = uc.CachedDetail(ctx, alice, hid)
	if err != nil {
		t.Fatalf("CachedDetail after AddRoom: %v", err)
	}
	if len(detail.Rooms) != 1 || detail.Rooms[0].Name != "Attic" {
		t.Errorf("rooms = %+v", detail.Rooms)
	}
}

func TestRooms(t *testing.T) {
	uc, exec := newTestUseCase(t)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	out, err := uc.Create(ctx, sc, household.CreateInput{Name: "Home"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	hid := out.Household.ID

	kitchen, err := uc.AddRoom(ctx, sc, household.AddRoomInput{HouseholdID: hid, Name: "Kitchen"})
	if err != nil {
		t.Fatalf("AddRoom: %v", err)
	}
	if _, err := uc.AddRoom(ctx, sc, household.AddRoomInput{HouseholdID: hid, Name: "kitchen"}); !errors.Is(err, household.ErrDuplicateRoom) {
		t.Errorf("duplicate room err = %v", err)
	}

	exec(`INSERT INTO chores (id, household_id, name, room_id, created_at, updated_at) VALUES ('c1', ?, 'Wipe', ?, '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`, hid, kitchen.ID)

	if err := uc.RemoveRoom(ctx, sc, hid, kitchen.ID); err != nil {
		t.Fatalf("RemoveRoom: %v", err)
	}
	if err := uc.RemoveRoom(ctx, sc, hid, kitchen.ID); !errors.Is(err, household.ErrRoomNotFound) {
		t.Errorf("second RemoveRoom err = %v", err)
	}

	detail, err := uc.Detail(ctx, sc, hid)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if len(detail.Rooms) != 0 {
		t.Errorf("rooms = %+v, want none", detail.Rooms)
	}
}

func TestLeaderboard(t *testing.T) {
	uc, exec := newTestUseCase(t)
	ctx := context.Background()
	alice := model.Scope{UserID: "u-alice"}

	out, err := uc.Create(ctx, alice, household.CreateInput{Name: "Home", OwnerName: "Alice"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	hid := out.Household.ID
	bob, err := uc.AddMember(ctx, alice, household.AddMemberInput{HouseholdID: hid, UserID: "u-bob", Name: "Bob"})
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	uc.now = func() time.Time { return time.Date(2024, 5, 3, 18, 0, 0, 0, time.UTC) }
	uc.opts.LeaderboardWindow = 7 * 24 * time.Hour

	insert := func(id, member string, points int, at string) {
		exec(`INSERT INTO completions (id, chore_id, household_id, member_id, points, completed_at) VALUES (?, 'c', ?, ?, ?, ?)`,
			id, hid, member, points, at)
	}
	insert("k1", out.Owner.ID, 10, "2024-05-02T09:00:00Z")
	insert("k2", out.Owner.ID, 10, "2024-05-03T09:00:00Z")
	insert("k3", bob.ID, 25, "2024-05-03T10:00:00Z")
	insert("old", bob.ID, 100, "2024-04-01T10:00:00Z")

	lb, err := uc.Leaderboard(ctx, alice, hid)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(lb.Standings) != 2 {
		t.Fatalf("standings = %+v", lb.Standings)
	}
	first := lb.Standings[0]
	if first.MemberID != out.Owner.ID || first.Total != 25 || first.Streak != 2 {
		t.Errorf("first = %+v, want Alice with 20 points + 5 bonus", first)
	}
	second := lb.Standings[1]
	if second.MemberID != bob.ID || second.Total != 25 || second.Rank != 2 {
		t.Errorf("second = %+v, want Bob behind on completions", second)
	}
}
