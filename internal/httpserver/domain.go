package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	choreHTTP "chorechum/internal/chore/delivery/http"
	choreRepo "chorechum/internal/chore/repository/sqlite"
	choreUC "chorechum/internal/chore/usecase"
	"chorechum/internal/household"
	householdHTTP "chorechum/internal/household/delivery/http"
	householdRepo "chorechum/internal/household/repository/sqlite"
	householdUC "chorechum/internal/household/usecase"
	"chorechum/internal/middleware"
)

// setupHouseholdDomain registers /api/v1/households and returns the usecase
// so the chore domain can check membership through it.
func (srv HTTPServer) setupHouseholdDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) household.UseCase {
	repo := householdRepo.New(srv.db, srv.l)
	uc := householdUC.New(srv.l, repo, householdUC.Options{
		DefaultTimezone:   srv.domain.DefaultTimezone,
		Scoring:           srv.domain.Scoring,
		LeaderboardWindow: srv.domain.LeaderboardWindow,
		DetailCacheTTL:    srv.domain.ParseCacheTTL,
		DetailCacheSize:   srv.domain.ParseCacheSize,
	})
	h := householdHTTP.New(srv.l, uc)
	householdHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Household domain registered")
	return uc
}

// setupChoreDomain registers /api/v1/households/:id/chores and /api/v1/chores.
func (srv HTTPServer) setupChoreDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, hUC household.UseCase) {
	repo := choreRepo.New(srv.db, srv.l)
	uc := choreUC.New(srv.l, repo, hUC, choreUC.Options{
		DefaultPoints: srv.domain.PointsPerChore,
	})
	h := choreHTTP.New(srv.l, uc)
	choreHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chore domain registered")
}
