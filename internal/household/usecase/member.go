package usecase

import (
	"context"
	"strings"

	"chorechum/internal/household"
	"chorechum/internal/household/repository"
	"chorechum/internal/model"
)

// AddMember invites a user into the household. Any member may invite.
func (uc *implUseCase) AddMember(ctx context.Context, sc model.Scope, input household.AddMemberInput) (model.Member, error) {
	name := strings.TrimSpace(input.Name)
	userID := strings.TrimSpace(input.UserID)
	if name == "" || userID == "" {
		return model.Member{}, household.ErrEmptyName
	}

	detail, err := uc.Detail(ctx, sc, input.HouseholdID)
	if err != nil {
		return model.Member{}, err
	}
	if _, ok := detail.MemberFor(userID); ok {
		return model.Member{}, household.ErrDuplicateMember
	}

	m, err := uc.repo.CreateMember(ctx, repository.CreateMemberOptions{
		HouseholdID: input.HouseholdID,
		UserID:      userID,
		Name:        name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "household.usecase.AddMember: %v", err)
		return model.Member{}, err
	}
	uc.invalidate(input.HouseholdID)
	return m, nil
}

// RemoveMember drops a member. The last member cannot leave, so a household
// is never orphaned.
func (uc *implUseCase) RemoveMember(ctx context.Context, sc model.Scope, householdID, memberID string) error {
	detail, err := uc.Detail(ctx, sc, householdID)
	if err != nil {
		return err
	}

	found := false
	for _, m := range detail.Members {
		if m.ID == memberID {
			found = true
			break
		}
	}
	if !found {
		return household.ErrMemberNotFound
	}
	if len(detail.Members) == 1 {
		return household.ErrLastMember
	}

	if err := uc.repo.DeleteMember(ctx, householdID, memberID); err != nil {
		uc.l.Errorf(ctx, "household.usecase.RemoveMember: %v", err)
		return err
	}
	uc.invalidate(householdID)
	return nil
}
