package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"locationreminder/internal/infrastructure/database"
	"locationreminder/internal/pkg/config"
	"locationreminder/internal/pkg/logger"
)

type TestDB struct {
	DB  *gorm.DB
	DSN string
}

// SetupTestDB opens a private in-memory SQLite database with the schema migrated.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          dsn,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	tdb := &TestDB{DB: db, DSN: dsn}
	t.Cleanup(func() { tdb.TeardownTestDB(t) })
	return tdb
}

func (tdb *TestDB) TeardownTestDB(t *testing.T) {
	t.Helper()

	if err := database.Close(tdb.DB); err != nil {
		t.Logf("failed to close database: %v", err)
	}
}

// CountReminders returns the number of rows in the reminders table.
func (tdb *TestDB) CountReminders(t *testing.T) int64 {
	t.Helper()

	var n int64
	if err := tdb.DB.Table("reminders").Count(&n).Error; err != nil {
		t.Fatalf("failed to count reminders: %v", err)
	}
	return n
}
