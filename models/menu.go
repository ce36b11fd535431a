package models

import "time"

// Menu is the top-level container of categories for one client.
// ClientID carries a unique index so a client can never own two menus.
type Menu struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"type:varchar(100);not null" json:"name"`
	ClientID   uint       `gorm:"uniqueIndex;not null" json:"clientId"`
	Client     *Client    `gorm:"foreignKey:ClientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"client,omitempty"`
	TemplateID *uint      `json:"templateId,omitempty"`
	Template   *Template  `gorm:"foreignKey:TemplateID;references:ID" json:"template,omitempty"`
	Active     bool       `gorm:"not null;default:true" json:"active"`
	Published  bool       `gorm:"not null;default:false" json:"published"`
	QRCode     string     `gorm:"type:varchar(255)" json:"qrCode"`
	Categories []Category `gorm:"foreignKey:MenuID" json:"categories,omitempty"`
	Items      []MenuItem `gorm:"foreignKey:MenuID" json:"items,omitempty"`
	CreatedAt  time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"not null" json:"updatedAt"`
}
