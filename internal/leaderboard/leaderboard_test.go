package leaderboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chorechum/internal/leaderboard"
	"chorechum/internal/model"
)

var now = time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)

func done(member string, points int, daysAgo int) model.Completion {
	return model.Completion{MemberID: member, Points: points, CompletedAt: now.AddDate(0, 0, -daysAgo)}
}

func TestCompute(t *testing.T) {
	members := []model.Member{
		{ID: "a", Name: "Ann"},
		{ID: "b", Name: "Ben"},
		{ID: "c", Name: "Cat"},
	}
	completions := []model.Completion{
		done("a", 10, 0), done("a", 10, 1), done("a", 10, 2),
		done("b", 20, 0), done("b", 5, 5),
		done("stranger", 100, 0),
	}

	got := leaderboard.Compute(members, completions, now, time.UTC, leaderboard.Scoring{StreakBonus: 2})
	require.Len(t, got, 3)

	assert.Equal(t, "a", got[0].MemberID)
	assert.Equal(t, 30, got[0].Points)
	assert.Equal(t, 3, got[0].Streak)
	assert.Equal(t, 4, got[0].Bonus)
	assert.Equal(t, 34, got[0].Total)
	assert.Equal(t, 1, got[0].Rank)

	assert.Equal(t, "b", got[1].MemberID)
	assert.Equal(t, 25, got[1].Total)
	assert.Equal(t, 1, got[1].Streak)
	assert.Equal(t, 2, got[1].Rank)

	assert.Equal(t, "c", got[2].MemberID)
	assert.Equal(t, 0, got[2].Total)
	assert.Equal(t, 3, got[2].Rank)
}

func TestComputeStreakAliveFromYesterday(t *testing.T) {
	members := []model.Member{{ID: "a", Name: "Ann"}}
	got := leaderboard.Compute(members, []model.Completion{done("a", 1, 1), done("a", 1, 2)}, now, time.UTC, leaderboard.Scoring{})
	assert.Equal(t, 2, got[0].Streak)

	broken := leaderboard.Compute(members, []model.Completion{done("a", 1, 2), done("a", 1, 3)}, now, time.UTC, leaderboard.Scoring{})
	assert.Equal(t, 0, broken[0].Streak)
}

func TestComputeTiesShareRank(t *testing.T) {
	members := []model.Member{{ID: "z", Name: "Zed"}, {ID: "a", Name: "Ann"}}
	got := leaderboard.Compute(members, []model.Completion{done("z", 10, 4), done("a", 10, 4)}, now, time.UTC, leaderboard.Scoring{})

	assert.Equal(t, "Ann", got[0].Name)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, 1, got[1].Rank)
}

func TestComputeUsesLocationForDays(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	members := []model.Member{{ID: "a", Name: "Ann"}}
	// 13:30 and 14:30 UTC fall on different local days at UTC+10.
	completions := []model.Completion{
		{MemberID: "a", Points: 1, CompletedAt: time.Date(2024, 5, 10, 13, 30, 0, 0, time.UTC)},
		{MemberID: "a", Points: 1, CompletedAt: time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)},
	}
	at := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	got := leaderboard.Compute(members, completions, at, loc, leaderboard.Scoring{})
	assert.Equal(t, 2, got[0].Streak)

	inUTC := leaderboard.Compute(members, completions, at, time.UTC, leaderboard.Scoring{})
	assert.Equal(t, 1, inUTC[0].Streak)
}
