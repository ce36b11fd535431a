package services

import (
	"errors"

	"github.com/burgasdigital/qr-menu/models"
	"github.com/burgasdigital/qr-menu/utils"
	"gorm.io/gorm"
)

// OrderingService assigns and mutates the advisory sort position of
// categories inside a menu and items inside a category. Positions are
// hints: duplicates can appear (concurrent creates, direct reorders) and
// are resolved by the stable read-time sort, never treated as errors.
type OrderingService struct {
	DB *gorm.DB
}

func NewOrderingService(db *gorm.DB) *OrderingService {
	return &OrderingService{DB: db}
}

// SiblingSort is the listing contract for ordered siblings: position
// ascending, newer records first among equals. Applied explicitly on every
// listing so rendering is deterministic regardless of row order.
func SiblingSort(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, created_at DESC")
}

// NextCategoryOrder computes the position for a category created without an
// explicit order: one past the current max among siblings, 1 when the menu
// is empty. Read fresh each time, not a persisted counter.
func (s *OrderingService) NextCategoryOrder(menuID uint) (int, error) {
	var max int
	err := s.DB.Model(&models.Category{}).
		Where("menu_id = ?", menuID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// NextItemOrder is NextCategoryOrder for items within a category.
func (s *OrderingService) NextItemOrder(categoryID uint) (int, error) {
	var max int
	err := s.DB.Model(&models.MenuItem{}).
		Where("category_id = ?", categoryID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// SetCategoryOrder overwrites one category's position. Siblings are never
// shifted; a duplicated position is legal and sorts by the tie-break.
// Setting the current position is a successful no-op.
func (s *OrderingService) SetCategoryOrder(id uint, newOrder int) (*models.Category, error) {
	if newOrder < 1 {
		return nil, utils.NewValidation("newOrder must be a positive integer")
	}

	var category models.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("category")
		}
		return nil, err
	}

	if category.Order == newOrder {
		return &category, nil
	}

	if err := s.DB.Model(&category).Update("sort_order", newOrder).Error; err != nil {
		return nil, err
	}
	category.Order = newOrder
	return &category, nil
}

// SetItemOrder is SetCategoryOrder for menu items.
func (s *OrderingService) SetItemOrder(id uint, newOrder int) (*models.MenuItem, error) {
	if newOrder < 1 {
		return nil, utils.NewValidation("newOrder must be a positive integer")
	}

	var item models.MenuItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("menu item")
		}
		return nil, err
	}

	if item.Order == newOrder {
		return &item, nil
	}

	if err := s.DB.Model(&item).Update("sort_order", newOrder).Error; err != nil {
		return nil, err
	}
	item.Order = newOrder
	return &item, nil
}
