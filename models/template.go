package models

import "time"

// Template is a named visual configuration attachable to a menu.
type Template struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Config      JSONMap   `gorm:"type:text" json:"config"`
	Preview     string    `gorm:"type:varchar(255)" json:"preview"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}
