package model

import "time"

// Household groups users that share chores, rooms and a leaderboard.
type Household struct {
	ID        string
	Name      string
	Timezone  string // IANA name, used to resolve "tomorrow" and streak days
	CreatedAt time.Time
}

// Member is a user's membership in a household.
type Member struct {
	ID          string
	HouseholdID string
	UserID      string
	Name        string
	CreatedAt   time.Time
}

// Room is a named area of a household chores can be attached to.
type Room struct {
	ID          string
	HouseholdID string
	Name        string
	CreatedAt   time.Time
}
