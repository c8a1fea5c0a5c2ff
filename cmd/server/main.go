package main

import (
	"os"

	"soundthread/internal/config"
	"soundthread/internal/confirm"
	"soundthread/internal/db"
	"soundthread/internal/router"
	"soundthread/internal/services"
	"soundthread/internal/store"
	"soundthread/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	utils.SetLogLevel(cfg.LogLevel)

	conn, err := db.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		utils.LogError(err, "Failed to connect to database")
		os.Exit(1)
	}
	s := store.New(conn)

	gate, err := confirm.New(cfg.ConfirmTTL)
	if err != nil {
		utils.LogError(err, "Failed to create confirmation gate")
		os.Exit(1)
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := router.Setup(router.Deps{
		Store:         s,
		Forum:         services.NewForum(s),
		Accounts:      services.NewAccounts(s, services.BcryptHasher{}, services.NewMailService(cfg), services.UUIDTokens{}),
		Gate:          gate,
		SessionSecret: cfg.SessionSecret,
		CORSOrigins:   cfg.CORSOrigins,
		MaxLimit:      cfg.ListingMaxLimit,
	})

	utils.LogInfo("SoundThread server starting on " + cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		utils.LogError(err, "Server stopped")
		os.Exit(1)
	}
}
