package models

import "time"

// Comment references its game by address bar, not by numeric id; existence
// is checked at write time. Comments are immutable once created, there is
// no update path.
type Comment struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	GameAddressBar string    `json:"game_address_bar" gorm:"size:100;not null;index"`
	Name           string    `json:"name" gorm:"size:100;not null"`
	Email          *string   `json:"email" gorm:"size:254"`
	Text           string    `json:"text" gorm:"type:text;not null"`
	AddedByAdmin   bool      `json:"added_by_admin" gorm:"default:false"`
	CreatedAt      time.Time `json:"timestamp" gorm:"autoCreateTime"`
}
