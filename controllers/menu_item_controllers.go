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

type MenuItemController struct {
	DB        *gorm.DB
	Ordering  *services.OrderingService
	Hierarchy *services.HierarchyService
}

func NewMenuItemController(db *gorm.DB) *MenuItemController {
	return &MenuItemController{
		DB:        db,
		Ordering:  services.NewOrderingService(db),
		Hierarchy: services.NewHierarchyService(db),
	}
}

// checkCreateOrder validates an explicit position on create. Zero is legal
// here; only reorder requires a position of at least 1.
func checkCreateOrder(order *int) error {
	if order != nil && *order < 0 {
		return utils.NewValidation("order must not be negative")
	}
	return nil
}

// checkPrice distinguishes a missing price from an invalid one.
func checkPrice(price *float64, field string) error {
	if price == nil {
		return utils.NewValidation(field + " is required")
	}
	if !utils.ValidPrice(*price) {
		return utils.NewValidation(field + " must be a positive amount with at most two decimals")
	}
	return nil
}

// GetAllMenuItems lists items with optional filters: menu, category,
// availability, tags (comma separated, all must match), name/description
// search.
func (ic *MenuItemController) GetAllMenuItems(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	query := ic.DB.Model(&models.MenuItem{})
	if menuID := c.Query("menuId"); menuID != "" {
		query = query.Where("menu_id = ?", menuID)
	}
	if categoryID := c.Query("categoryId"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if available := c.Query("available"); available != "" {
		query = query.Where("available = ?", available == "true")
	}
	if tags := c.Query("tags"); tags != "" {
		// Tags live in a JSON text column; match each one as a quoted
		// JSON string fragment.
		for _, tag := range strings.Split(tags, ",") {
			query = query.Where("tags LIKE ?", "%\""+strings.TrimSpace(tag)+"\"%")
		}
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var items []models.MenuItem
	err := query.Preload("Category").Preload("Menu").Preload("Menu.Client").
		Scopes(services.SiblingSort).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondPaginated(c, http.StatusOK, "List of menu items", items, utils.NewPagination(page, limit, total))
}

// GetMenuItemByID returns one item with its parents.
func (ic *MenuItemController) GetMenuItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.MenuItem
	err := ic.DB.Preload("Category").Preload("Menu").Preload("Menu.Client").
		First(&item, id).Error
	if err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu item"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// CreateMenuItem persists a new item after cross-validating that the
// declared menu matches the category's actual menu. Nothing is written
// when the pairing diverges.
func (ic *MenuItemController) CreateMenuItem(c *gin.Context) {
	var req struct {
		Name        string            `json:"name"`
		Description string            `json:"description"`
		CategoryID  uint              `json:"categoryId"`
		MenuID      uint              `json:"menuId"`
		PriceBGN    *float64          `json:"priceBGN"`
		PriceEUR    *float64          `json:"priceEUR"`
		Weight      *float64          `json:"weight"`
		WeightUnit  string            `json:"weightUnit"`
		Image       string            `json:"image"`
		Tags        models.StringList `json:"tags"`
		Allergens   models.StringList `json:"allergens"`
		Addons      models.AddonList  `json:"addons"`
		Order       *int              `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		utils.RespondAppError(c, utils.NewValidation("name is required"))
		return
	}
	if req.CategoryID == 0 {
		utils.RespondAppError(c, utils.NewValidation("categoryId is required"))
		return
	}
	if req.MenuID == 0 {
		utils.RespondAppError(c, utils.NewValidation("menuId is required"))
		return
	}
	if err := checkPrice(req.PriceBGN, "priceBGN"); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	if err := checkPrice(req.PriceEUR, "priceEUR"); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	category, err := ic.Hierarchy.ValidateItemParent(req.CategoryID, &req.MenuID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if err := checkCreateOrder(req.Order); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	var order int
	if req.Order != nil {
		order = *req.Order
	} else {
		order, err = ic.Ordering.NextItemOrder(req.CategoryID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		MenuID:      req.MenuID,
		PriceBGN:    *req.PriceBGN,
		PriceEUR:    *req.PriceEUR,
		Weight:      req.Weight,
		WeightUnit:  req.WeightUnit,
		Image:       req.Image,
		Tags:        req.Tags,
		Allergens:   req.Allergens,
		Addons:      req.Addons,
		Order:       order,
		Available:   true,
	}

	if err := ic.DB.Create(&item).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu item"))
		return
	}
	item.Category = category

	utils.InfoLogger.Printf("Created item %q in category %q (%s / %s)",
		item.Name, category.Name, utils.FormatPriceBGN(item.PriceBGN), utils.FormatPriceEUR(item.PriceEUR))
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem edits an item. Changing the category re-runs the pairing
// check and refreshes the denormalized menu id.
func (ic *MenuItemController) UpdateMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var req struct {
		Name        string            `json:"name"`
		Description string            `json:"description"`
		CategoryID  *uint             `json:"categoryId"`
		MenuID      *uint             `json:"menuId"`
		PriceBGN    *float64          `json:"priceBGN"`
		PriceEUR    *float64          `json:"priceEUR"`
		Weight      *float64          `json:"weight"`
		WeightUnit  string            `json:"weightUnit"`
		Image       string            `json:"image"`
		Tags        models.StringList `json:"tags"`
		Allergens   models.StringList `json:"allergens"`
		Addons      models.AddonList  `json:"addons"`
		Available   *bool             `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.MenuItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu item"))
		return
	}

	if req.CategoryID != nil || req.MenuID != nil {
		categoryID := item.CategoryID
		if req.CategoryID != nil {
			categoryID = *req.CategoryID
		}
		category, err := ic.Hierarchy.ValidateItemParent(categoryID, req.MenuID)
		if err != nil {
			utils.RespondAppError(c, err)
			return
		}
		item.CategoryID = category.ID
		item.MenuID = category.MenuID
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.PriceBGN != nil {
		if !utils.ValidPrice(*req.PriceBGN) {
			utils.RespondAppError(c, utils.NewValidation("priceBGN must be a positive amount with at most two decimals"))
			return
		}
		item.PriceBGN = *req.PriceBGN
	}
	if req.PriceEUR != nil {
		if !utils.ValidPrice(*req.PriceEUR) {
			utils.RespondAppError(c, utils.NewValidation("priceEUR must be a positive amount with at most two decimals"))
			return
		}
		item.PriceEUR = *req.PriceEUR
	}
	if req.Weight != nil {
		item.Weight = req.Weight
	}
	if req.WeightUnit != "" {
		item.WeightUnit = req.WeightUnit
	}
	if req.Image != "" {
		item.Image = req.Image
	}
	if req.Tags != nil {
		item.Tags = req.Tags
	}
	if req.Allergens != nil {
		item.Allergens = req.Allergens
	}
	if req.Addons != nil {
		item.Addons = req.Addons
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu item"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem removes one item.
func (ic *MenuItemController) DeleteMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.MenuItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu item"))
		return
	}

	if err := ic.DB.Delete(&item).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu item"))
		return
	}

	utils.InfoLogger.Printf("Deleted item %d (%s)", item.ID, item.Name)
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"item_id": id})
}

// ReorderMenuItem overwrites one item's position within its category.
func (ic *MenuItemController) ReorderMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

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

	item, err := ic.Ordering.SetItemOrder(uint(id), *req.NewOrder)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item position updated", item)
}

// ToggleAvailability is the quick on/off switch for a single item.
func (ic *MenuItemController) ToggleAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var req struct {
		Available *bool `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Available == nil {
		utils.RespondAppError(c, utils.NewValidation("available is required"))
		return
	}

	var item models.MenuItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu item"))
		return
	}

	if err := ic.DB.Model(&item).Update("available", *req.Available).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu item"))
		return
	}
	item.Available = *req.Available

	utils.InfoLogger.Printf("Item %d (%s) availability -> %v", item.ID, item.Name, item.Available)
	utils.RespondJSON(c, http.StatusOK, "Menu item availability updated", gin.H{
		"id":        item.ID,
		"available": item.Available,
	})
}
