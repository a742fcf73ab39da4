package usecase

import (
	"context"
	"strings"
	"time"

	"chorechum/internal/household"
	"chorechum/internal/household/repository"
	"chorechum/internal/model"
)

// Create makes a new household with the caller as its first member.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input household.CreateInput) (household.CreateOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return household.CreateOutput{}, household.ErrEmptyName
	}
	tz := strings.TrimSpace(input.Timezone)
	if tz == "" {
		tz = uc.opts.DefaultTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return household.CreateOutput{}, household.ErrInvalidTimezone
	}
	ownerName := strings.TrimSpace(input.OwnerName)
	if ownerName == "" {
		ownerName = sc.UserID
	}

	h, owner, err := uc.repo.CreateHousehold(ctx, repository.CreateHouseholdOptions{
		Name:        name,
		Timezone:    tz,
		OwnerUserID: sc.UserID,
		OwnerName:   ownerName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "household.usecase.Create: %v", err)
		return household.CreateOutput{}, err
	}
	uc.l.Infof(ctx, "household.usecase.Create: household %s created by %s", h.ID, sc.UserID)
	return household.CreateOutput{Household: h, Owner: owner}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (household.DetailOutput, error) {
	out, err := uc.load(ctx, id)
	if err != nil {
		return household.DetailOutput{}, err
	}
	if _, ok := out.MemberFor(sc.UserID); !ok {
		return household.DetailOutput{}, household.ErrNotMember
	}
	return out, nil
}

// CachedDetail is Detail served from the detail cache when one is configured.
func (uc *implUseCase) CachedDetail(ctx context.Context, sc model.Scope, id string) (household.DetailOutput, error) {
	if uc.detailCache == nil {
		return uc.Detail(ctx, sc, id)
	}
	out, ok := uc.detailCache.Get(id)
	if !ok {
		gen := uc.detailGen.Load()
		var err error
		if out, err = uc.load(ctx, id); err != nil {
			return household.DetailOutput{}, err
		}
		if uc.detailGen.Load() == gen {
			uc.detailCache.Add(id, out)
		}
	}
	if _, member := out.MemberFor(sc.UserID); !member {
		return household.DetailOutput{}, household.ErrNotMember
	}
	return out, nil
}

// load reads a household with its members and rooms without checking access.
func (uc *implUseCase) load(ctx context.Context, id string) (household.DetailOutput, error) {
	h, err := uc.repo.GetHousehold(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "household.usecase.load GetHousehold: %v", err)
		return household.DetailOutput{}, err
	}
	if h.ID == "" {
		return household.DetailOutput{}, household.ErrHouseholdNotFound
	}
	members, err := uc.repo.ListMembers(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "household.usecase.load ListMembers: %v", err)
		return household.DetailOutput{}, err
	}
	rooms, err := uc.repo.ListRooms(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "household.usecase.load ListRooms: %v", err)
		return household.DetailOutput{}, err
	}
	return household.DetailOutput{Household: h, Members: members, Rooms: rooms}, nil
}
