package middleware

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"soundthread/internal/models"
	"soundthread/internal/validation"
)

const (
	CheckUserKey   = "user"
	SessionUserKey = "user_id"
)

// Identity is the signed-in caller.
type Identity struct {
	ID       int64
	Username string
}

type UserLoader interface {
	UserByID(ctx context.Context, id int64) (*models.User, error)
}

// LoadUser resolves the session's user and stores it in the context. A
// session pointing at a missing user is treated as signed out.
func LoadUser(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if userID, ok := session.Get(SessionUserKey).(int64); ok && userID > 0 {
			user, err := users.UserByID(c.Request.Context(), userID)
			if err == nil {
				c.Set(CheckUserKey, &Identity{ID: user.ID, Username: user.Username})
			}
		}
		c.Next()
	}
}

// AuthRequired rejects requests without a signed-in user.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerID(c) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errors": []validation.Violation{{Message: validation.MsgSignInRequired}},
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the signed-in user, or nil.
func CurrentUser(c *gin.Context) *Identity {
	if v, ok := c.Get(CheckUserKey); ok {
		if id, ok := v.(*Identity); ok {
			return id
		}
	}
	return nil
}

// CallerID is the signed-in user's id, 0 when signed out.
func CallerID(c *gin.Context) int64 {
	if id := CurrentUser(c); id != nil {
		return id.ID
	}
	return 0
}
