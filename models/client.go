package models

import "time"

// Client is a restaurant tenant. Each client owns at most one menu.
type Client struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Address     string    `gorm:"type:varchar(200)" json:"address"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone"`
	Logo        string    `gorm:"type:varchar(255)" json:"logo"`
	Slogan      string    `gorm:"type:varchar(100)" json:"slogan"`
	SocialMedia JSONMap   `gorm:"type:text" json:"socialMedia"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	Menu        *Menu     `gorm:"foreignKey:ClientID" json:"menu,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}
