package models

import "time"

// Category groups menu items inside a menu. Order is a presentation hint:
// duplicates are tolerated, listings sort by order then created_at desc.
type Category struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(50);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Image       string     `gorm:"type:varchar(255)" json:"image"`
	Order       int        `gorm:"column:sort_order;not null" json:"order"`
	Active      bool       `gorm:"not null;default:true" json:"active"`
	MenuID      uint       `gorm:"not null;index" json:"menuId"`
	Menu        *Menu      `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menu,omitempty"`
	Items       []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updatedAt"`
}
