package services

import (
	"errors"

	"github.com/burgasdigital/qr-menu/models"
	"github.com/burgasdigital/qr-menu/utils"
	"gorm.io/gorm"
)

// HierarchyService guards the client -> menu -> category -> item chain.
// It is stateless: every check reads fresh state, the only side effects
// are the cascade deletes it runs itself.
type HierarchyService struct {
	DB *gorm.DB
}

func NewHierarchyService(db *gorm.DB) *HierarchyService {
	return &HierarchyService{DB: db}
}

// ValidateCategoryParent confirms the target menu exists before a category
// is created in it or moved to it.
func (s *HierarchyService) ValidateCategoryParent(menuID uint) (*models.Menu, error) {
	var menu models.Menu
	if err := s.DB.First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("menu")
		}
		return nil, err
	}
	return &menu, nil
}

// ValidateItemParent confirms the category exists and, when a menu id is
// supplied alongside it, that the pairing is consistent. A wrong category
// id and an inconsistent category/menu pairing are distinct failures:
// callers need to know which one they sent.
func (s *HierarchyService) ValidateItemParent(categoryID uint, menuID *uint) (*models.Category, error) {
	var category models.Category
	if err := s.DB.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("category")
		}
		return nil, err
	}

	if menuID != nil && *menuID != category.MenuID {
		return nil, utils.NewHierarchyMismatch("category does not belong to the specified menu")
	}
	return &category, nil
}

// DeleteCategory removes a category and all its items in one transaction.
func (s *HierarchyService) DeleteCategory(id uint) error {
	var category models.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFound("category")
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

// DeleteMenu removes a menu, its categories and their items bottom-up in
// one transaction. The cascade is explicit rather than left to store
// configuration so it behaves the same on every backend.
func (s *HierarchyService) DeleteMenu(id uint) error {
	var menu models.Menu
	if err := s.DB.First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFound("menu")
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteMenuTree(tx, menu.ID)
	})
}

// DeleteClient removes a client and its entire menu tree in one transaction.
func (s *HierarchyService) DeleteClient(id uint) error {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFound("client")
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var menu models.Menu
		err := tx.Where("client_id = ?", id).First(&menu).Error
		switch {
		case err == nil:
			if err := deleteMenuTree(tx, menu.ID); err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Delete(&client).Error
	})
}

func deleteMenuTree(tx *gorm.DB, menuID uint) error {
	if err := tx.Where("menu_id = ?", menuID).Delete(&models.MenuItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("menu_id = ?", menuID).Delete(&models.Category{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Menu{}, menuID).Error
}
