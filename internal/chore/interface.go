package chore

import (
	"context"
	"time"

	"chorechum/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ParseInput runs the smart parser over one line of text using the
	// household's members, rooms and timezone. It never persists anything.
	ParseInput(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)

	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Chore, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Chore, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Complete records one finished instance by the caller and advances the
	// chore: it stays pending until the target is met, then either moves to
	// its next occurrence or becomes complete.
	Complete(ctx context.Context, sc model.Scope, id string) (CompleteOutput, error)
	ToggleSubtask(ctx context.Context, sc model.Scope, input ToggleSubtaskInput) (ToggleSubtaskOutput, error)

	// DueBetween lists pending chores of every household whose reminder
	// instant falls in [from, to), ordered by that instant.
	DueBetween(ctx context.Context, from, to time.Time) ([]DueChore, error)
}
