package http

import (
	"github.com/gin-gonic/gin"

	"chorechum/internal/middleware"
)

// RegisterRoutes maps household endpoints. Every route needs an acting user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	households := rg.Group("/households", mw.Auth())
	{
		households.POST("", h.Create)
		households.GET("/:id", h.Detail)
		households.POST("/:id/members", h.AddMember)
		households.DELETE("/:id/members/:member_id", h.RemoveMember)
		households.POST("/:id/rooms", h.AddRoom)
		households.DELETE("/:id/rooms/:room_id", h.RemoveRoom)
		households.GET("/:id/leaderboard", h.Leaderboard)
	}
}
