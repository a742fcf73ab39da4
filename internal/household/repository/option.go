package repository

import "time"

// CreateHouseholdOptions holds parameters for inserting a new Household.
type CreateHouseholdOptions struct {
	Name        string
	Timezone    string
	OwnerUserID string
	OwnerName   string
}

// CreateMemberOptions holds parameters for inserting a new Member.
type CreateMemberOptions struct {
	HouseholdID string
	UserID      string
	Name        string
}

// CreateRoomOptions holds parameters for inserting a new Room.
type CreateRoomOptions struct {
	HouseholdID string
	Name        string
}

// ListCompletionsOptions filters completions of one household.
// A zero Since returns the full history.
type ListCompletionsOptions struct {
	HouseholdID string
	Since       time.Time
}
