package usecase

import (
	"context"

	"chorechum/internal/chore"
	"chorechum/internal/model"
	"chorechum/pkg/smartinput"
)

// ParseInput turns one line of text into a draft for the chore form. The
// caller's own member id is used for "me"/"I".
func (uc *implUseCase) ParseInput(ctx context.Context, sc model.Scope, input chore.ParseInput) (chore.ParseOutput, error) {
	detail, err := uc.household.CachedDetail(ctx, sc, input.HouseholdID)
	if err != nil {
		return chore.ParseOutput{}, err
	}

	members := make([]smartinput.Member, len(detail.Members))
	for i, m := range detail.Members {
		members[i] = smartinput.Member{ID: m.ID, Name: m.Name}
	}
	rooms := make([]smartinput.Room, len(detail.Rooms))
	for i, r := range detail.Rooms {
		rooms[i] = smartinput.Room{ID: r.ID, Name: r.Name}
	}
	self, _ := detail.MemberFor(sc.UserID)

	dates := uc.dateParser(detail.Household.Timezone)
	draft := smartinput.NewParser(dates).Parse(input.Text, members, rooms, self.ID, uc.now().In(dates.Location()))
	return chore.ParseOutput{Draft: draft}, nil
}
