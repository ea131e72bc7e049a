package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sudhev0011/VoterMngmtServer/models"
)

// newTestDB opens a fresh in-memory database per test so the unique indexes
// behave exactly as they do against Postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Voter{}, &models.Todo{}))
	return db
}

func seedVoter(t *testing.T, db *gorm.DB, serialNo int, name string) *models.Voter {
	t.Helper()
	voter := &models.Voter{
		SerialNo:     serialNo,
		Name:         name,
		GuardianName: "Guardian of " + name,
		HouseNo:      "H-1",
		HouseName:    "Rose Villa",
		GenderAge:    "M/42",
		IDCardNo:     "ID" + name,
	}
	require.NoError(t, db.Create(voter).Error)
	return voter
}
