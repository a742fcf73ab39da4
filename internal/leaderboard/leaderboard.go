// Package leaderboard ranks household members by the chores they completed.
package leaderboard

import (
	"sort"
	"time"

	"chorechum/internal/model"
)

// Scoring tunes how standings are computed.
type Scoring struct {
	// StreakBonus is awarded per consecutive day beyond the first.
	StreakBonus int
}

// Standing is one row of the leaderboard.
type Standing struct {
	Rank        int
	MemberID    string
	Name        string
	Points      int
	Completions int
	Streak      int
	Bonus       int
	Total       int
}

const dayKey = "2006-01-02"

// Compute builds the leaderboard for members. Completions by anyone outside
// members are ignored. Days are calendar days in loc; a streak is alive when
// its last day is today or yesterday.
func Compute(members []model.Member, completions []model.Completion, now time.Time, loc *time.Location, scoring Scoring) []Standing {
	if loc == nil {
		loc = time.UTC
	}

	byMember := make(map[string]*Standing, len(members))
	days := make(map[string]map[string]bool, len(members))
	standings := make([]*Standing, 0, len(members))
	for _, m := range members {
		s := &Standing{MemberID: m.ID, Name: m.Name}
		byMember[m.ID] = s
		days[m.ID] = map[string]bool{}
		standings = append(standings, s)
	}

	for _, c := range completions {
		s, ok := byMember[c.MemberID]
		if !ok {
			continue
		}
		s.Points += c.Points
		s.Completions++
		days[c.MemberID][c.CompletedAt.In(loc).Format(dayKey)] = true
	}

	for _, s := range standings {
		s.Streak = streak(days[s.MemberID], now.In(loc))
		if s.Streak > 1 {
			s.Bonus = scoring.StreakBonus * (s.Streak - 1)
		}
		s.Total = s.Points + s.Bonus
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if a.Completions != b.Completions {
			return a.Completions > b.Completions
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.MemberID < b.MemberID
	})

	out := make([]Standing, len(standings))
	for i, s := range standings {
		s.Rank = i + 1
		if i > 0 {
			prev := out[i-1]
			if prev.Total == s.Total && prev.Completions == s.Completions {
				s.Rank = prev.Rank
			}
		}
		out[i] = *s
	}
	return out
}

func streak(days map[string]bool, today time.Time) int {
	day := today
	if !days[day.Format(dayKey)] {
		day = day.AddDate(0, 0, -1)
	}
	n := 0
	for days[day.Format(dayKey)] {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}
