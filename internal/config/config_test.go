package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("LISTING_MAX_LIMIT", "not-a-number")
	t.Setenv("CONFIRM_TTL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 50, cfg.ListingMaxLimit)
	assert.Equal(t, 2*time.Minute, cfg.ConfirmTTL)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("LISTING_MAX_LIMIT", "20")
	t.Setenv("CONFIRM_TTL", "30s")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 20, cfg.ListingMaxLimit)
	assert.Equal(t, 30*time.Second, cfg.ConfirmTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}
