package repository

import (
	"context"

	"chorechum/internal/model"
)

// Repository is the data store of the chore domain.
// GetChore returns a zero value (ID == "") when nothing matches.
type Repository interface {
	CreateChore(ctx context.Context, opt CreateChoreOptions) (model.Chore, error)
	GetChore(ctx context.Context, id string) (model.Chore, error)
	ListChores(ctx context.Context, opt ListChoresOptions) ([]model.Chore, int, error)
	UpdateChore(ctx context.Context, c model.Chore) (model.Chore, error)
	DeleteChore(ctx context.Context, id string) error

	// CompleteChore stores the advanced chore and its completion atomically.
	CompleteChore(ctx context.Context, opt CompleteChoreOptions) (model.Completion, error)

	ListDue(ctx context.Context, opt ListDueOptions) ([]DueChore, error)
}
