package household

import (
	"time"

	"chorechum/internal/leaderboard"
	"chorechum/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Name      string
	Timezone  string // IANA name, empty means the configured default
	OwnerName string // display name of the creating user
}

type AddMemberInput struct {
	HouseholdID string
	UserID      string
	Name        string
}

type AddRoomInput struct {
	HouseholdID string
	Name        string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Household model.Household
	Owner     model.Member
}

type DetailOutput struct {
	Household model.Household
	Members   []model.Member
	Rooms     []model.Room
}

// MemberFor returns the member row of userID.
func (o DetailOutput) MemberFor(userID string) (model.Member, bool) {
	for _, m := range o.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return model.Member{}, false
}

type LeaderboardOutput struct {
	Standings   []leaderboard.Standing
	Since       time.Time
	GeneratedAt time.Time
}
