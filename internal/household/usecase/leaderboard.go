package usecase

import (
	"context"
	"time"

	"chorechum/internal/household"
	"chorechum/internal/household/repository"
	"chorechum/internal/leaderboard"
	"chorechum/internal/model"
)

// Leaderboard ranks members by points earned inside the configured window.
func (uc *implUseCase) Leaderboard(ctx context.Context, sc model.Scope, householdID string) (household.LeaderboardOutput, error) {
	detail, err := uc.Detail(ctx, sc, householdID)
	if err != nil {
		return household.LeaderboardOutput{}, err
	}

	now := uc.now()
	var since time.Time
	if uc.opts.LeaderboardWindow > 0 {
		since = now.Add(-uc.opts.LeaderboardWindow)
	}

	completions, err := uc.repo.ListCompletions(ctx, repository.ListCompletionsOptions{
		HouseholdID: householdID,
		Since:       since,
	})
	if err != nil {
		uc.l.Errorf(ctx, "household.usecase.Leaderboard ListCompletions: %v", err)
		return household.LeaderboardOutput{}, err
	}

	loc, err := time.LoadLocation(detail.Household.Timezone)
	if err != nil {
		uc.l.Warnf(ctx, "household.usecase.Leaderboard: bad timezone %q, using UTC", detail.Household.Timezone)
		loc = time.UTC
	}

	return household.LeaderboardOutput{
		Standings:   leaderboard.Compute(detail.Members, completions, now, loc, uc.opts.Scoring),
		Since:       since,
		GeneratedAt: now,
	}, nil
}
