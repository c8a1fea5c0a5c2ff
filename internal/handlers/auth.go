package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"soundthread/internal/middleware"
	"soundthread/internal/services"
	"soundthread/internal/utils"
	"soundthread/internal/validation"
)

type AuthHandler struct {
	accounts *services.Accounts
}

func NewAuthHandler(accounts *services.Accounts) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in validation.RegistrationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c)
		return
	}
	out, err := h.accounts.Register(c.Request.Context(), in)
	respond(c, http.StatusCreated, out, err, "registration failed")
}

func (h *AuthHandler) Verify(c *gin.Context) {
	out, err := h.accounts.Verify(c.Request.Context(), c.Param("token"))
	respond(c, http.StatusNoContent, out, err, "verification failed")
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c)
		return
	}
	out, err := h.accounts.ResendVerification(c.Request.Context(), body.Email)
	respond(c, http.StatusAccepted, out, err, "resending verification failed")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c)
		return
	}

	out, err := h.accounts.SignIn(c.Request.Context(), body.Email, body.Password)
	if err != nil || !out.OK() {
		respond(c, http.StatusOK, out, err, "sign in failed")
		return
	}

	user := out.Value
	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		RenderError(c, err, "saving session failed")
		return
	}
	utils.LogSuccessWithUser(user.ID, "user signed in")
	c.JSON(http.StatusOK, gin.H{"userId": user.ID, "username": user.Username})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		RenderError(c, err, "clearing session failed")
		return
	}
	c.Status(http.StatusNoContent)
}
