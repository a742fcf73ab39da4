package usecase

import (
	"time"

	"chorechum/internal/checklist"
	"chorechum/internal/chore/repository"
	"chorechum/internal/household"
	pkgLog "chorechum/pkg/log"
)

// Options configures the chore usecase.
type Options struct {
	// DefaultPoints is awarded per completion when a chore does not set its own.
	DefaultPoints int
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	household household.UseCase
	checklist checklist.Service
	opts      Options
	now       func() time.Time
}

// New creates a new chore UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, householdUC household.UseCase, opts Options) *implUseCase {
	if opts.DefaultPoints <= 0 {
		opts.DefaultPoints = 10
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		household: householdUC,
		checklist: checklist.New(),
		opts:      opts,
		now:       time.Now,
	}
}
