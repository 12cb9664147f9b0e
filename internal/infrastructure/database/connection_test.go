package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locationreminder/internal/infrastructure/database"
	"locationreminder/internal/pkg/config"
	"locationreminder/internal/pkg/logger"
	"locationreminder/internal/testutil"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := database.Open(config.DatabaseConfig{Driver: config.DriverMemory}, logger.Nop())

	assert.Error(t, err)
}

func TestOpenRejectsInvalidLogLevel(t *testing.T) {
	_, err := database.Open(config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		DSN:      "file::memory:",
		LogLevel: "chatty",
	}, logger.Nop())

	assert.Error(t, err)
}

func TestOpenMigratesSchema(t *testing.T) {
	testDB := testutil.SetupTestDB(t)

	assert.True(t, testDB.DB.Migrator().HasTable("reminders"))
	assert.True(t, testDB.DB.Migrator().HasTable("subscribers"))
	for _, column := range []string{"id", "title", "description", "location", "latitude", "longitude"} {
		assert.True(t, testDB.DB.Migrator().HasColumn("reminders", column), column)
	}
}

func TestCloseNil(t *testing.T) {
	require.NoError(t, database.Close(nil))
}
