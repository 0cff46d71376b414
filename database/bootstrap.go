package database

import (
	"fmt"
	"log/slog"

	"gamecomment/internal/http-api/models"
	"gamecomment/internal/middleware/auth"

	"gorm.io/gorm"
)

// Bootstrap creates the shared admin table, the tenant-prefixed tables and
// the rating stats view if they are missing, then seeds the tenant's default
// admin account. All DDL is idempotent. Errors are logged and swallowed:
// a partially bootstrapped schema surfaces as request-time failures instead
// of blocking startup.
func Bootstrap(db *gorm.DB, tables models.Tables, projectID, adminPassword string, logger *slog.Logger) {
	if err := createSchema(db, tables); err != nil {
		logger.Error("database bootstrap failed", "project_id", projectID, "error", err)
		return
	}
	if err := seedAdmin(db, projectID, adminPassword, logger); err != nil {
		logger.Error("admin seeding failed", "project_id", projectID, "error", err)
		return
	}
	logger.Info("database bootstrap complete", "project_id", projectID)
}

func createSchema(db *gorm.DB, tables models.Tables) error {
	// Table and view names come from models.Tables, resolved from the
	// startup-validated prefix; they are config, not request input.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + models.AdminUsersTable + ` (
			id SERIAL PRIMARY KEY,
			username VARCHAR(50) NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(20) DEFAULT 'admin',
			project_id VARCHAR(50) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			last_login_at TIMESTAMP,
			UNIQUE (username, project_id)
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id SERIAL PRIMARY KEY,
			address_bar VARCHAR(100) UNIQUE NOT NULL,
			title VARCHAR(200) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, tables.Games),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id SERIAL PRIMARY KEY,
			game_address_bar VARCHAR(100) NOT NULL,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(254),
			text TEXT NOT NULL,
			added_by_admin BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, tables.Comments),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id SERIAL PRIMARY KEY,
			game_address_bar VARCHAR(100) NOT NULL,
			rating INTEGER CHECK (rating >= 1 AND rating <= 5) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, tables.Ratings),
		fmt.Sprintf(`CREATE OR REPLACE VIEW %s AS
			SELECT
				game_address_bar,
				COUNT(*) as total_votes,
				AVG(rating) as average_rating,
				COUNT(CASE WHEN rating = 1 THEN 1 END) as rating_1,
				COUNT(CASE WHEN rating = 2 THEN 1 END) as rating_2,
				COUNT(CASE WHEN rating = 3 THEN 1 END) as rating_3,
				COUNT(CASE WHEN rating = 4 THEN 1 END) as rating_4,
				COUNT(CASE WHEN rating = 5 THEN 1 END) as rating_5
			FROM %s
			GROUP BY game_address_bar`, tables.RatingStats, tables.Ratings),
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedAdmin creates the tenant's default admin account when none exists.
// Existing accounts are never touched, so a changed ADMIN_PASSWORD does not
// reset a live deployment.
func seedAdmin(db *gorm.DB, projectID, adminPassword string, logger *slog.Logger) error {
	var count int64
	err := db.Table(models.AdminUsersTable).
		Where("username = ? AND project_id = ?", "admin", projectID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &models.AdminUser{
		Username:  "admin",
		Password:  hash,
		Role:      "admin",
		ProjectID: projectID,
	}
	if err := db.Table(models.AdminUsersTable).Create(admin).Error; err != nil {
		return err
	}

	logger.Info("default admin account created", "username", "admin", "project_id", projectID)
	return nil
}
