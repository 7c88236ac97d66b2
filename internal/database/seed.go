package database

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tasktracker/internal/config"
	"tasktracker/internal/models"
)

// SeedAdmin creates the admin user from ADMIN_USER/ADMIN_PASSWORD if it
// does not exist yet. Re-running with an existing admin is a no-op.
// Callers treat a returned error as a warning: seeding is best-effort and
// must never abort startup.
func SeedAdmin(cfg *config.Config, logger *zap.Logger) error {
	if cfg.AdminUser == "" || cfg.AdminPassword == "" {
		logger.Info("admin seed skipped, no admin credentials configured")
		return nil
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("username = ?", cfg.AdminUser).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	if count > 0 {
		logger.Info("admin user already exists", zap.String("username", cfg.AdminUser))
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     cfg.AdminUser,
		PasswordHash: string(hashedPassword),
	}
	if err := DB.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("admin user created", zap.String("username", cfg.AdminUser))
	return nil
}
