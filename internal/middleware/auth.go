package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"chorechum/internal/model"
	"chorechum/pkg/log"
	"chorechum/pkg/response"
)

// UserIDHeader carries the acting user. Identity is asserted by the caller
// (a gateway or the app shell), this service does not authenticate it.
const UserIDHeader = "X-User-ID"

const maxUserIDLen = 128

// Auth requires UserIDHeader and stores the Scope on the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" || len(userID) > maxUserIDLen {
			response.Unauthorized(c)
			return
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: userID})
		ctx = log.WithUserID(ctx, userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
