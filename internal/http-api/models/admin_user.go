package models

import "time"

// AdminUser is an admin identity scoped to one tenant. Usernames are only
// unique within a tenant, so lookups always filter by project_id as well.
type AdminUser struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username    string     `json:"username" gorm:"size:50;not null"`
	Password    string     `json:"-" gorm:"size:255;not null"` // bcrypt hash, never serialized
	Role        string     `json:"role" gorm:"size:20;default:'admin'"`
	ProjectID   string     `json:"project_id" gorm:"size:50;not null"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func (AdminUser) TableName() string {
	return AdminUsersTable
}
