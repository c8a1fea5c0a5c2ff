package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"soundthread/internal/confirm"
	"soundthread/internal/handlers"
	"soundthread/internal/metrics"
	"soundthread/internal/middleware"
	"soundthread/internal/services"
	"soundthread/internal/store"
	"soundthread/internal/utils"
)

const sessionName = "soundthread_session"

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Store         *store.Store
	Forum         *services.Forum
	Accounts      *services.Accounts
	Gate          *confirm.Gate
	SessionSecret string
	CORSOrigins   []string
	MaxLimit      int
}

// Setup builds the engine with its middleware chain and routes.
func Setup(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()), gin.Recovery())
	r.Use(metrics.Middleware())
	r.Use(cors.New(corsConfig(deps.CORSOrigins)))
	r.Use(sessions.Sessions(sessionName, cookie.NewStore([]byte(deps.SessionSecret))))
	r.Use(middleware.LoadUser(deps.Store))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", metrics.Handler())

	RegisterRoutes(r, deps)
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type"}
	cfg.MaxAge = 12 * time.Hour
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	authHandler := handlers.NewAuthHandler(deps.Accounts)
	postHandler := handlers.NewPostHandler(deps.Forum, deps.Gate, deps.MaxLimit)
	commentHandler := handlers.NewCommentHandler(deps.Forum, deps.Gate)
	likeHandler := handlers.NewLikeHandler(deps.Forum)
	userHandler := handlers.NewUserHandler(deps.Accounts)

	// Accounts
	r.POST("/signup", authHandler.Register)
	r.GET("/verify/:token", authHandler.Verify)
	r.POST("/verify/resend", authHandler.ResendVerification)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", middleware.AuthRequired(), authHandler.Logout)

	// Posts
	r.GET("/posts", postHandler.List)
	r.POST("/posts", postHandler.Create)
	r.GET("/posts/:id", postHandler.Detail)
	r.PATCH("/posts/:id", postHandler.Update)
	r.DELETE("/posts/:id", postHandler.Delete)
	r.GET("/posts/:id/comments", postHandler.Comments)
	r.POST("/posts/:id/comments", postHandler.CreateComment)

	// Likes
	r.POST("/posts/:id/like", likeHandler.Toggle)
	r.PUT("/posts/:id/like", likeHandler.Like)
	r.DELETE("/posts/:id/like", likeHandler.Unlike)

	// Comments and reply chains
	r.PATCH("/comments/:id", commentHandler.Update)
	r.DELETE("/comments/:id", commentHandler.Delete)
	r.GET("/comments/:id/replies", commentHandler.Replies)
	r.POST("/comments/:id/replies", commentHandler.CreateReply)
	r.PATCH("/replies/:id", commentHandler.UpdateReply)
	r.DELETE("/replies/:id", commentHandler.DeleteReply)

	// Users
	r.GET("/users/:id", userHandler.Profile)
	r.PATCH("/users/:id", userHandler.UpdateProfile)
	r.GET("/users/:id/posts", postHandler.ByUser)
}
