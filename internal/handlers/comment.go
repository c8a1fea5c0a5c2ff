package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soundthread/internal/confirm"
	"soundthread/internal/middleware"
	"soundthread/internal/services"
	"soundthread/internal/validation"
)

type CommentHandler struct {
	forum *services.Forum
	gate  *confirm.Gate
}

func NewCommentHandler(forum *services.Forum, gate *confirm.Gate) *CommentHandler {
	return &CommentHandler{forum: forum, gate: gate}
}

func (h *CommentHandler) Update(c *gin.Context) {
	var body textBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c)
		return
	}
	out, err := h.forum.UpdateComment(c.Request.Context(), middleware.CallerID(c), paramID(c, "id"), body.Text)
	respond(c, http.StatusNoContent, out, err, "updating comment failed")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id := paramID(c, "id")
	confirmDeletion(c, h.gate, validation.TargetComment, id, h.forum.AuthorizeDeletion, func() (services.Outcome[services.Done], error) {
		return h.forum.DeleteComment(c.Request.Context(), middleware.CallerID(c), id)
	})
}

func (h *CommentHandler) Replies(c *gin.Context) {
	replies, err := h.forum.Replies(c.Request.Context(), paramID(c, "id"))
	if err != nil {
		RenderError(c, err, "loading replies failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"replies": replies})
}

func (h *CommentHandler) CreateReply(c *gin.Context) {
	var body struct {
		PostID  int64  `json:"postId"`
		ReplyID *int64 `json:"replyId"`
		Text    string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c)
		return
	}
	out, err := h.forum.CreateReply(c.Request.Context(), middleware.CallerID(c), services.ReplyRequest{
		CommentID: paramID(c, "id"),
		PostID:    body.PostID,
		ParentID:  body.ReplyID,
		Text:      body.Text,
	})
	respond(c, http.StatusCreated, out, err, "creating reply failed")
}

func (h *CommentHandler) UpdateReply(c *gin.Context) {
	var body struct {
		PostID int64  `json:"postId"`
		Text   string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c)
		return
	}
	out, err := h.forum.UpdateReply(c.Request.Context(), middleware.CallerID(c), paramID(c, "id"), body.PostID, body.Text)
	respond(c, http.StatusNoContent, out, err, "updating reply failed")
}

func (h *CommentHandler) DeleteReply(c *gin.Context) {
	id := paramID(c, "id")
	confirmDeletion(c, h.gate, validation.TargetReply, id, h.forum.AuthorizeDeletion, func() (services.Outcome[services.Done], error) {
		return h.forum.DeleteReply(c.Request.Context(), middleware.CallerID(c), id)
	})
}
