package http

import (
	"github.com/gin-gonic/gin"

	"chorechum/internal/middleware"
)

// RegisterRoutes maps chore endpoints. The parse route is rate limited per
// user because clients call it while the user types.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	inHousehold := rg.Group("/households/:id/chores", mw.Auth())
	{
		inHousehold.POST("/parse", mw.RateLimit(), h.Parse)
		inHousehold.POST("", h.Create)
		inHousehold.GET("", h.List)
	}

	chores := rg.Group("/chores", mw.Auth())
	{
		chores.GET("/:id", h.Detail)
		chores.PUT("/:id", h.Update)
		chores.DELETE("/:id", h.Delete)
		chores.POST("/:id/complete", h.Complete)
		chores.PATCH("/:id/subtasks", h.ToggleSubtask)
	}
}
