package household

import (
	"context"

	"chorechum/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	// Detail returns the household with members and rooms in the order they
	// were added. The caller must be a member.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	// CachedDetail is Detail behind a short-lived cache for hot read paths.
	// Member and room changes made through this UseCase evict the entry.
	CachedDetail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)

	AddMember(ctx context.Context, sc model.Scope, input AddMemberInput) (model.Member, error)
	RemoveMember(ctx context.Context, sc model.Scope, householdID, memberID string) error
	AddRoom(ctx context.Context, sc model.Scope, input AddRoomInput) (model.Room, error)
	RemoveRoom(ctx context.Context, sc model.Scope, householdID, roomID string) error

	Leaderboard(ctx context.Context, sc model.Scope, householdID string) (LeaderboardOutput, error)
}
