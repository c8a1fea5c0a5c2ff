package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soundthread/internal/middleware"
	"soundthread/internal/services"
)

type UserHandler struct {
	accounts *services.Accounts
}

func NewUserHandler(accounts *services.Accounts) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// Profile - GET /users/:id
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.accounts.Profile(c.Request.Context(), paramID(c, "id"))
	if err != nil {
		RenderError(c, err, "loading profile failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"contact":    user.Contact,
		"bio":        user.Bio,
		"created_at": user.CreatedAt,
	})
}

// UpdateProfile - PATCH /users/:id with {"field": "bio", "text": "..."}
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var body struct {
		Field string `json:"field"`
		Text  string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c)
		return
	}
	out, err := h.accounts.UpdateProfile(c.Request.Context(), middleware.CallerID(c), paramID(c, "id"), body.Field, body.Text)
	respond(c, http.StatusNoContent, out, err, "updating profile failed")
}
