package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tasktracker/internal/config"
	"tasktracker/internal/models"
)

func setupSeedDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})
}

func TestSeedAdmin_CreatesAdminOnce(t *testing.T) {
	setupSeedDB(t)

	cfg := &config.Config{AdminUser: "admin", AdminPassword: "Admin123!"}
	logger := zap.NewNop()

	require.NoError(t, SeedAdmin(cfg, logger))

	var admin models.User
	require.NoError(t, DB.Where("username = ?", "admin").First(&admin).Error)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("Admin123!")))

	// Re-running is a no-op, not an error.
	require.NoError(t, SeedAdmin(cfg, logger))

	var count int64
	require.NoError(t, DB.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestSeedAdmin_SkippedWithoutCredentials(t *testing.T) {
	setupSeedDB(t)

	require.NoError(t, SeedAdmin(&config.Config{}, zap.NewNop()))

	var count int64
	require.NoError(t, DB.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}
