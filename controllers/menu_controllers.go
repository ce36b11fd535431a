package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/burgasdigital/qr-menu/config"
	"github.com/burgasdigital/qr-menu/models"
	"github.com/burgasdigital/qr-menu/services"
	"github.com/burgasdigital/qr-menu/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	DB          *gorm.DB
	Hierarchy   *services.HierarchyService
	Publication *services.PublicationService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{
		DB:          db,
		Hierarchy:   services.NewHierarchyService(db),
		Publication: services.NewPublicationService(db),
	}
}

// GetAllMenus returns a paginated menu list with client and template refs.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	var menus []models.Menu
	var total int64
	if err := mc.DB.Model(&models.Menu{}).Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	err := mc.DB.Preload("Client").Preload("Template").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&menus).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondPaginated(c, http.StatusOK, "List of menus", menus, utils.NewPagination(page, limit, total))
}

// GetMenuByID returns a menu with its categories in listing order. The
// admin surface sees every category regardless of flags.
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("menu_id"))

	var menu models.Menu
	err := mc.DB.Preload("Client").Preload("Template").
		Preload("Categories", services.SiblingSort).
		First(&menu, id).Error
	if err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

// CreateMenu creates the single menu of a client.
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		ClientID   uint   `json:"clientId" binding:"required"`
		TemplateID *uint  `json:"templateId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var client models.Client
	if err := mc.DB.First(&client, req.ClientID).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "client"))
		return
	}

	var existing int64
	mc.DB.Model(&models.Menu{}).Where("client_id = ?", req.ClientID).Count(&existing)
	if existing > 0 {
		utils.RespondAppError(c, utils.NewConflict("this client already has a menu"))
		return
	}

	if req.TemplateID != nil {
		var template models.Template
		if err := mc.DB.First(&template, *req.TemplateID).Error; err != nil {
			utils.RespondAppError(c, utils.TranslateDBError(err, "template"))
			return
		}
	}

	menu := models.Menu{
		Name:       req.Name,
		ClientID:   req.ClientID,
		TemplateID: req.TemplateID,
		Active:     true,
		Published:  false,
	}

	if err := mc.DB.Create(&menu).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu"))
		return
	}
	menu.Client = &client

	utils.InfoLogger.Printf("Created menu %q for client %q", menu.Name, client.Name)
	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// UpdateMenu edits menu fields; template changes are existence-checked.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("menu_id"))

	var req struct {
		Name       string `json:"name"`
		TemplateID *uint  `json:"templateId"`
		Active     *bool  `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu"))
		return
	}

	if req.Name != "" {
		menu.Name = req.Name
	}
	if req.TemplateID != nil {
		var template models.Template
		if err := mc.DB.First(&template, *req.TemplateID).Error; err != nil {
			utils.RespondAppError(c, utils.TranslateDBError(err, "template"))
			return
		}
		menu.TemplateID = req.TemplateID
	}
	if req.Active != nil {
		menu.Active = *req.Active
	}

	if err := mc.DB.Save(&menu).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}

// DeleteMenu removes the menu with all categories and items.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("menu_id"))

	if err := mc.Hierarchy.DeleteMenu(uint(id)); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Deleted menu %d with its categories and items", id)
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"menu_id": id})
}

// PublishMenu makes the menu reachable from the public surface, provided
// it has at least one category and one item.
func (mc *MenuController) PublishMenu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("menu_id"))

	menu, err := mc.Publication.Publish(uint(id))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Published menu %d (%s)", menu.ID, menu.Name)
	utils.RespondJSON(c, http.StatusOK, "Menu published", gin.H{
		"id":        menu.ID,
		"published": menu.Published,
		"active":    menu.Active,
	})
}

// UnpublishMenu hides the menu from public access. No preconditions.
func (mc *MenuController) UnpublishMenu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("menu_id"))

	menu, err := mc.Publication.Unpublish(uint(id))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Unpublished menu %d (%s)", menu.ID, menu.Name)
	utils.RespondJSON(c, http.StatusOK, "Menu unpublished", gin.H{
		"id":        menu.ID,
		"published": menu.Published,
		"active":    menu.Active,
	})
}

// GenerateQRCode renders and stores a QR image linking to the public menu.
func (mc *MenuController) GenerateQRCode(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("client_id"))

	var client models.Client
	if err := mc.DB.Scopes(services.ActiveClients).First(&client, id).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "client"))
		return
	}

	var menu models.Menu
	if err := mc.DB.Where("client_id = ?", client.ID).First(&menu).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu"))
		return
	}

	menuURL := fmt.Sprintf("%s/menu/%s", config.FrontendURL(), client.Slug)
	qrPath, err := utils.GenerateQRCode(menuURL, client.Slug)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := mc.DB.Model(&menu).Update("qr_code", qrPath).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu"))
		return
	}

	utils.InfoLogger.Printf("Generated QR code for client %q -> %s", client.Slug, qrPath)
	utils.RespondJSON(c, http.StatusOK, "QR code generated", gin.H{
		"qrCodeUrl": qrPath,
		"menuUrl":   menuURL,
		"client": gin.H{
			"id":   client.ID,
			"name": client.Name,
			"slug": client.Slug,
		},
	})
}

// GetQRCode returns the stored QR reference for a client's menu.
func (mc *MenuController) GetQRCode(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("client_id"))

	var client models.Client
	if err := mc.DB.Scopes(services.ActiveClients).First(&client, id).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "client"))
		return
	}

	var menu models.Menu
	if err := mc.DB.Where("client_id = ?", client.ID).First(&menu).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "menu"))
		return
	}

	if menu.QRCode == "" {
		utils.RespondAppError(c, utils.NewNotFound("QR code"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "QR code", gin.H{
		"qrCodeUrl": menu.QRCode,
		"menuUrl":   fmt.Sprintf("%s/menu/%s", config.FrontendURL(), client.Slug),
	})
}
