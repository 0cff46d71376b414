package repository

import (
	"gamecomment/internal/http-api/models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	FindByUsername(username, projectID string) (*models.AdminUser, error)
	FindByID(id int64, projectID string) (*models.AdminUser, error)
	UpdateLastLogin(id int64) error
	UpdatePassword(id int64, passwordHash string) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// FindByUsername retrieves an admin by username within one tenant. The same
// username may exist for other tenants; the project filter is what keeps
// them apart.
func (r *adminRepository) FindByUsername(username, projectID string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.Table(models.AdminUsersTable).
		Where("username = ? AND project_id = ?", username, projectID).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByID retrieves an admin by id within one tenant. A token minted for
// another tenant carries an id that will not resolve here.
func (r *adminRepository) FindByID(id int64, projectID string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.Table(models.AdminUsersTable).
		Where("id = ? AND project_id = ?", id, projectID).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) UpdateLastLogin(id int64) error {
	return r.db.Table(models.AdminUsersTable).
		Where("id = ?", id).
		Update("last_login_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

func (r *adminRepository) UpdatePassword(id int64, passwordHash string) error {
	return r.db.Table(models.AdminUsersTable).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password":   passwordHash,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}
