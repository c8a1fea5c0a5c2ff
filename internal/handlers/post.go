package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"soundthread/internal/confirm"
	"soundthread/internal/listing"
	"soundthread/internal/middleware"
	"soundthread/internal/services"
	"soundthread/internal/validation"
)

type PostHandler struct {
	forum    *services.Forum
	gate     *confirm.Gate
	maxLimit int
}

func NewPostHandler(forum *services.Forum, gate *confirm.Gate, maxLimit int) *PostHandler {
	return &PostHandler{forum: forum, gate: gate, maxLimit: maxLimit}
}

// limit clamps the requested page size to [1, maxLimit].
func (h *PostHandler) limit(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n <= 0 || n > h.maxLimit {
		return h.maxLimit
	}
	return n
}

// List serves GET /posts?limit=&title=&sort=&tags=pop,rock
func (h *PostHandler) List(c *gin.Context) {
	q := listing.Query{
		Limit: h.limit(c),
		Title: c.Query("title"),
		Sort:  listing.ParseSortMode(c.Query("sort")),
	}
	if raw := c.Query("tags"); raw != "" {
		q.Tags = strings.Split(raw, ",")
	}

	posts, err := h.forum.ListPosts(c.Request.Context(), q)
	if err != nil {
		RenderError(c, err, "listing posts failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *PostHandler) Detail(c *gin.Context) {
	view, err := h.forum.PostDetail(c.Request.Context(), paramID(c, "id"), middleware.CallerID(c))
	if err != nil {
		RenderError(c, err, "loading post failed")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *PostHandler) Create(c *gin.Context) {
	var in validation.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c)
		return
	}
	out, err := h.forum.CreatePost(c.Request.Context(), middleware.CallerID(c), in)
	respond(c, http.StatusCreated, out, err, "creating post failed")
}

func (h *PostHandler) Update(c *gin.Context) {
	var body struct {
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c)
		return
	}
	out, err := h.forum.UpdatePostDescription(c.Request.Context(), middleware.CallerID(c), paramID(c, "id"), body.Description)
	respond(c, http.StatusNoContent, out, err, "updating post failed")
}

func (h *PostHandler) Delete(c *gin.Context) {
	id := paramID(c, "id")
	confirmDeletion(c, h.gate, validation.TargetPost, id, h.forum.AuthorizeDeletion, func() (services.Outcome[services.Done], error) {
		return h.forum.DeletePost(c.Request.Context(), middleware.CallerID(c), id)
	})
}

func (h *PostHandler) Comments(c *gin.Context) {
	comments, err := h.forum.Comments(c.Request.Context(), paramID(c, "id"))
	if err != nil {
		RenderError(c, err, "loading comments failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *PostHandler) CreateComment(c *gin.Context) {
	var body textBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c)
		return
	}
	out, err := h.forum.CreateComment(c.Request.Context(), middleware.CallerID(c), paramID(c, "id"), body.Text)
	respond(c, http.StatusCreated, out, err, "creating comment failed")
}

// ByUser serves GET /users/:id/posts.
func (h *PostHandler) ByUser(c *gin.Context) {
	posts, err := h.forum.PostsByUser(c.Request.Context(), paramID(c, "id"), h.limit(c))
	if err != nil {
		RenderError(c, err, "listing user posts failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
