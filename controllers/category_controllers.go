package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/burgasdigital/qr-menu/models"
	"github.com/burgasdigital/qr-menu/services"
	"github.com/burgasdigital/qr-menu/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB        *gorm.DB
	Ordering  *services.OrderingService
	Hierarchy *services.HierarchyService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{
		DB:        db,
		Ordering:  services.NewOrderingService(db),
		Hierarchy: services.NewHierarchyService(db),
	}
}

func validateCategoryName(name string) error {
	if l := len(strings.TrimSpace(name)); l < 2 || l > 50 {
		return utils.NewValidation("name must be between 2 and 50 characters")
	}
	return nil
}

// GetAllCategories lists categories, optionally filtered by menu, in the
// sibling sort order.
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	query := cc.DB.Model(&models.Category{})
	if menuID := c.Query("menuId"); menuID != "" {
		query = query.Where("menu_id = ?", menuID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var categories []models.Category
	err := query.Preload("Menu").Preload("Menu.Client").
		Scopes(services.SiblingSort).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&categories).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondPaginated(c, http.StatusOK, "List of categories", categories, utils.NewPagination(page, limit, total))
}

// GetCategoryByID returns a category with its items in listing order.
func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	var category models.Category
	err := cc.DB.Preload("Menu").Preload("Menu.Client").
		Preload("Items", services.SiblingSort).
		First(&category, id).Error
	if err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "category"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category detail", category)
}

// CreateCategory adds a category to a menu. Omitted order means "append":
// one past the highest sibling position.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Image       string `json:"image"`
		Order       *int   `json:"order"`
		MenuID      uint   `json:"menuId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := validateCategoryName(req.Name); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	if req.MenuID == 0 {
		utils.RespondAppError(c, utils.NewValidation("menuId is required"))
		return
	}
	if err := checkCreateOrder(req.Order); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	menu, err := cc.Hierarchy.ValidateCategoryParent(req.MenuID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	var order int
	if req.Order != nil {
		order = *req.Order
	} else {
		order, err = cc.Ordering.NextCategoryOrder(req.MenuID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Order:       order,
		MenuID:      req.MenuID,
		Active:      true,
	}

	if err := cc.DB.Create(&category).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "category"))
		return
	}
	category.Menu = menu

	utils.InfoLogger.Printf("Created category %q in menu %q at position %d", category.Name, menu.Name, category.Order)
	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// UpdateCategory edits a category. Moving it to another menu re-validates
// the target parent.
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Image       string `json:"image"`
		MenuID      *uint  `json:"menuId"`
		Active      *bool  `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.Category
	if err := cc.DB.First(&category, id).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "category"))
		return
	}

	if req.Name != "" {
		if err := validateCategoryName(req.Name); err != nil {
			utils.RespondAppError(c, err)
			return
		}
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.Image != "" {
		category.Image = req.Image
	}
	if req.Active != nil {
		category.Active = *req.Active
	}

	movesMenu := req.MenuID != nil && *req.MenuID != category.MenuID
	if movesMenu {
		if _, err := cc.Hierarchy.ValidateCategoryParent(*req.MenuID); err != nil {
			utils.RespondAppError(c, err)
			return
		}
		category.MenuID = *req.MenuID
	}

	// Items carry the denormalized menu id; a move updates them in the
	// same transaction as the category itself.
	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if movesMenu {
			if err := tx.Model(&models.MenuItem{}).
				Where("category_id = ?", category.ID).
				Update("menu_id", category.MenuID).Error; err != nil {
				return err
			}
		}
		return tx.Save(&category).Error
	})
	if err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "category"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory removes the category and cascades to its items.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	if err := cc.Hierarchy.DeleteCategory(uint(id)); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Deleted category %d with its items", id)
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"category_id": id})
}

// ReorderCategory overwrites one category's position. Siblings keep theirs;
// ties resolve at read time.
func (cc *CategoryController) ReorderCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	var req struct {
		NewOrder *int `json:"newOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.NewOrder == nil {
		utils.RespondAppError(c, utils.NewValidation("newOrder is required"))
		return
	}

	category, err := cc.Ordering.SetCategoryOrder(uint(id), *req.NewOrder)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category position updated", category)
}

// GetCategoriesForReorder returns the position layout of a menu for the
// admin reorder screen.
func (cc *CategoryController) GetCategoriesForReorder(c *gin.Context) {
	menuID, _ := strconv.Atoi(c.Param("menu_id"))

	if _, err := cc.Hierarchy.ValidateCategoryParent(uint(menuID)); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	var categories []models.Category
	err := cc.DB.Where("menu_id = ?", menuID).
		Scopes(services.SiblingSort).
		Find(&categories).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Categories for reorder", categories)
}

// GetCategoriesByMenu returns the active categories of a published menu.
func (cc *CategoryController) GetCategoriesByMenu(c *gin.Context) {
	menuID, _ := strconv.Atoi(c.Param("menu_id"))

	var menu models.Menu
	err := cc.DB.Scopes(services.PublishedMenus).First(&menu, menuID).Error
	if err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "published menu"))
		return
	}

	var categories []models.Category
	err = cc.DB.Where("menu_id = ?", menuID).
		Scopes(services.ActiveCategories, services.SiblingSort).
		Find(&categories).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu categories", categories)
}
