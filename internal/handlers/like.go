package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soundthread/internal/middleware"
	"soundthread/internal/services"
)

type LikeHandler struct {
	forum *services.Forum
}

func NewLikeHandler(forum *services.Forum) *LikeHandler {
	return &LikeHandler{forum: forum}
}

// Toggle serves POST /posts/:id/like.
func (h *LikeHandler) Toggle(c *gin.Context) {
	out, err := h.forum.ToggleLike(c.Request.Context(), middleware.CallerID(c), paramID(c, "id"))
	respond(c, http.StatusOK, out, err, "toggling like failed")
}

func (h *LikeHandler) Like(c *gin.Context) {
	out, err := h.forum.Like(c.Request.Context(), middleware.CallerID(c), paramID(c, "id"))
	respond(c, http.StatusOK, out, err, "liking post failed")
}

func (h *LikeHandler) Unlike(c *gin.Context) {
	out, err := h.forum.Unlike(c.Request.Context(), middleware.CallerID(c), paramID(c, "id"))
	respond(c, http.StatusOK, out, err, "unliking post failed")
}
