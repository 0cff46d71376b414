package models

import "time"

// Game lives in a tenant-prefixed table, so it carries no static TableName;
// repositories address it through Tables.Games. Rows are seeded and managed
// externally and are read-only from this API.
type Game struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AddressBar string    `json:"address_bar" gorm:"size:100;uniqueIndex;not null"`
	Title      string    `json:"title" gorm:"size:200;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
