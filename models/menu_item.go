package models

import "time"

// MenuItem is a priced product inside a category. MenuID is denormalized
// for fast menu-wide queries and must always equal the category's MenuID;
// every write that touches CategoryID or MenuID re-checks the pairing.
type MenuItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	CategoryID  uint       `gorm:"not null;index" json:"categoryId"`
	Category    *Category  `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"category,omitempty"`
	MenuID      uint       `gorm:"not null;index" json:"menuId"`
	Menu        *Menu      `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menu,omitempty"`
	PriceBGN    float64    `gorm:"type:decimal(10,2);not null" json:"priceBGN"`
	PriceEUR    float64    `gorm:"type:decimal(10,2);not null" json:"priceEUR"`
	Weight      *float64   `json:"weight,omitempty"`
	WeightUnit  string     `gorm:"type:varchar(10)" json:"weightUnit,omitempty"`
	Image       string     `gorm:"type:varchar(255)" json:"image"`
	Tags        StringList `gorm:"type:text" json:"tags"`
	Allergens   StringList `gorm:"type:text" json:"allergens"`
	Addons      AddonList  `gorm:"type:text" json:"addons"`
	Order       int        `gorm:"column:sort_order;not null" json:"order"`
	Available   bool       `gorm:"not null;default:true" json:"available"`
	CreatedAt   time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updatedAt"`
}
