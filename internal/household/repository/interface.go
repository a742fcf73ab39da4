package repository

import (
	"context"

	"chorechum/internal/model"
)

// Repository is the composed interface for the household data store.
type Repository interface {
	HouseholdRepository
	MemberRepository
	RoomRepository
	CompletionRepository
}

// HouseholdRepository defines data access for the Household entity.
// Lookups return a zero value (ID == "") when nothing matches.
type HouseholdRepository interface {
	// CreateHousehold inserts the household and its owner atomically.
	CreateHousehold(ctx context.Context, opt CreateHouseholdOptions) (model.Household, model.Member, error)
	GetHousehold(ctx context.Context, id string) (model.Household, error)
}

type MemberRepository interface {
	CreateMember(ctx context.Context, opt CreateMemberOptions) (model.Member, error)
	ListMembers(ctx context.Context, householdID string) ([]model.Member, error)
	DeleteMember(ctx context.Context, householdID, id string) error
}

type RoomRepository interface {
	CreateRoom(ctx context.Context, opt CreateRoomOptions) (model.Room, error)
	ListRooms(ctx context.Context, householdID string) ([]model.Room, error)
	DeleteRoom(ctx context.Context, householdID, id string) error
}

type CompletionRepository interface {
	ListCompletions(ctx context.Context, opt ListCompletionsOptions) ([]model.Completion, error)
}
