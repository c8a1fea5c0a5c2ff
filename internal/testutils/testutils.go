package testutils

import (
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"soundthread/internal/db"
)

func silentLogger() logger.Interface {
	return logger.New(
		log.New(io.Discard, "", log.LstdFlags),
		logger.Config{LogLevel: logger.Silent},
	)
}

// SetupTestDB opens a private in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: silentLogger()})
	if err != nil {
		t.Fatalf("open sqlite: %s", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %s", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql handle: %s", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	return conn
}

// SetupMockDB returns a postgres-flavoured GORM handle backed by sqlmock.
func SetupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %s", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	})
	conn, err := gorm.Open(dialector, &gorm.Config{Logger: silentLogger()})
	if err != nil {
		t.Fatalf("open gorm: %s", err)
	}
	return conn, mock
}

func InitTestMain() {
	gin.SetMode(gin.TestMode)
}
