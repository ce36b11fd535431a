package services

import (
	"errors"

	"github.com/burgasdigital/qr-menu/models"
	"github.com/burgasdigital/qr-menu/utils"
	"gorm.io/gorm"
)

// PublicationService owns the draft/published transition on menus and the
// read-time visibility rules of the public surface. Visibility is never
// materialized: flipping an ancestor flag takes effect on the next read.
type PublicationService struct {
	DB *gorm.DB
}

func NewPublicationService(db *gorm.DB) *PublicationService {
	return &PublicationService{DB: db}
}

// Publish flips a menu to published, guarded by the precondition that it
// holds at least one category and at least one item. The two failures carry
// distinct codes so the operator knows which gap to fill. The check and the
// write are separate statements; a concurrent delete in between is an
// accepted race in this domain.
func (s *PublicationService) Publish(menuID uint) (*models.Menu, error) {
	var menu models.Menu
	if err := s.DB.First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("menu")
		}
		return nil, err
	}

	var categoryCount int64
	if err := s.DB.Model(&models.Category{}).Where("menu_id = ?", menuID).Count(&categoryCount).Error; err != nil {
		return nil, err
	}
	if categoryCount == 0 {
		return nil, utils.NewValidationCode(utils.CodeMenuNoCategories,
			"menu must have at least one category before it can be published")
	}

	var itemCount int64
	if err := s.DB.Model(&models.MenuItem{}).Where("menu_id = ?", menuID).Count(&itemCount).Error; err != nil {
		return nil, err
	}
	if itemCount == 0 {
		return nil, utils.NewValidationCode(utils.CodeMenuNoItems,
			"menu must have at least one item before it can be published")
	}

	updates := map[string]interface{}{"published": true, "active": true}
	if err := s.DB.Model(&menu).Updates(updates).Error; err != nil {
		return nil, err
	}
	menu.Published = true
	menu.Active = true
	return &menu, nil
}

// Unpublish hides a menu from the public surface. Always permitted; a menu
// cycles between draft and published freely.
func (s *PublicationService) Unpublish(menuID uint) (*models.Menu, error) {
	var menu models.Menu
	if err := s.DB.First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("menu")
		}
		return nil, err
	}

	if err := s.DB.Model(&menu).Update("published", false).Error; err != nil {
		return nil, err
	}
	menu.Published = false
	return &menu, nil
}

// Visibility scopes. The public read path composes them along the
// containment chain; the admin path never applies them.

func ActiveClients(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

func PublishedMenus(db *gorm.DB) *gorm.DB {
	return db.Where("published = ? AND active = ?", true, true)
}

func ActiveCategories(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

func AvailableItems(db *gorm.DB) *gorm.DB {
	return db.Where("available = ?", true)
}

// PublishedMenuForSlug resolves the full publicly visible tree for a client
// slug: active client, published+active menu, active categories with their
// available items, siblings sorted by the listing contract. Returns
// NotFound when any link of the chain is hidden.
func (s *PublicationService) PublishedMenuForSlug(slug string) (*models.Client, error) {
	var client models.Client
	err := s.DB.Scopes(ActiveClients).
		Where("slug = ?", slug).
		Preload("Menu", PublishedMenus).
		Preload("Menu.Template").
		Preload("Menu.Categories", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(ActiveCategories, SiblingSort)
		}).
		Preload("Menu.Categories.Items", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(AvailableItems, SiblingSort)
		}).
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("restaurant")
		}
		return nil, err
	}

	if client.Menu == nil {
		return nil, utils.NewNotFound("published menu")
	}
	return &client, nil
}
