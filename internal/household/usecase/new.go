package usecase

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"chorechum/internal/household"
	"chorechum/internal/household/repository"
	"chorechum/internal/leaderboard"
	pkgLog "chorechum/pkg/log"
)

// Options configures household behaviour.
type Options struct {
	DefaultTimezone string
	Scoring         leaderboard.Scoring
	// LeaderboardWindow limits standings to recent completions. Zero means all time.
	LeaderboardWindow time.Duration
	// DetailCacheTTL bounds how long CachedDetail may serve a household
	// without reloading it. Zero disables the cache.
	DetailCacheTTL  time.Duration
	DetailCacheSize int
}

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	opts Options
	now  func() time.Time

	// detailCache is evicted per household by every member or room change
	// made through this UseCase.
	detailCache *expirable.LRU[string, household.DetailOutput]
	// detailGen moves on every invalidation so a load that raced a change
	// is not cached.
	detailGen atomic.Uint64
}

// New creates a new household UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, opts Options) *implUseCase {
	if opts.DefaultTimezone == "" {
		opts.DefaultTimezone = "UTC"
	}
	uc := &implUseCase{
		l:    l,
		repo: repo,
		opts: opts,
		now:  time.Now,
	}
	if opts.DetailCacheTTL > 0 {
		size := opts.DetailCacheSize
		if size <= 0 {
			size = 256
		}
		uc.detailCache = expirable.NewLRU[string, household.DetailOutput](size, nil, opts.DetailCacheTTL)
	}
	return uc
}

func (uc *implUseCase) invalidate(householdID string) {
	if uc.detailCache != nil {
		uc.detailGen.Add(1)
		uc.detailCache.Remove(householdID)
	}
}
