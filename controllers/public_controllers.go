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

// PublicController serves the diner-facing read surface. Every query is
// filtered through the publication gate; no request parameter can widen
// what the gate allows.
type PublicController struct {
	DB          *gorm.DB
	Publication *services.PublicationService
}

func NewPublicController(db *gorm.DB) *PublicController {
	return &PublicController{
		DB:          db,
		Publication: services.NewPublicationService(db),
	}
}

// GetClientBySlug returns the restaurant profile with its full published
// menu tree, the payload behind a QR code scan.
func (pc *PublicController) GetClientBySlug(c *gin.Context) {
	slug := strings.ToLower(c.Param("slug"))

	client, err := pc.Publication.PublishedMenuForSlug(slug)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant menu", gin.H{
		"client": gin.H{
			"name":        client.Name,
			"slug":        client.Slug,
			"description": client.Description,
			"address":     client.Address,
			"phone":       client.Phone,
			"logo":        client.Logo,
			"slogan":      client.Slogan,
			"socialMedia": client.SocialMedia,
		},
		"menu": client.Menu,
	})
}

// GetPublishedMenu returns just the menu head for a client slug.
func (pc *PublicController) GetPublishedMenu(c *gin.Context) {
	slug := strings.ToLower(c.Param("slug"))

	var client models.Client
	err := pc.DB.Scopes(services.ActiveClients).
		Where("slug = ?", slug).
		Preload("Menu", services.PublishedMenus).
		Preload("Menu.Template").
		First(&client).Error
	if err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "restaurant"))
		return
	}
	if client.Menu == nil {
		utils.RespondAppError(c, utils.NewNotFound("published menu"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Published menu", client.Menu)
}

// GetPublishedCategories returns the active categories of a published menu.
func (pc *PublicController) GetPublishedCategories(c *gin.Context) {
	slug := strings.ToLower(c.Param("slug"))

	var client models.Client
	err := pc.DB.Scopes(services.ActiveClients).
		Where("slug = ?", slug).
		Preload("Menu", services.PublishedMenus).
		First(&client).Error
	if err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "restaurant"))
		return
	}
	if client.Menu == nil {
		utils.RespondAppError(c, utils.NewNotFound("published menu"))
		return
	}

	var categories []models.Category
	err = pc.DB.Where("menu_id = ?", client.Menu.ID).
		Scopes(services.ActiveCategories, services.SiblingSort).
		Find(&categories).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu categories", categories)
}

// GetPublishedItems returns the available items of one active category of
// a published menu, with optional tag and search filters.
func (pc *PublicController) GetPublishedItems(c *gin.Context) {
	slug := strings.ToLower(c.Param("slug"))
	categoryID, _ := strconv.Atoi(c.Param("category_id"))

	var client models.Client
	err := pc.DB.Scopes(services.ActiveClients).
		Where("slug = ?", slug).
		Preload("Menu", services.PublishedMenus).
		First(&client).Error
	if err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "restaurant"))
		return
	}
	if client.Menu == nil {
		utils.RespondAppError(c, utils.NewNotFound("published menu"))
		return
	}

	var category models.Category
	err = pc.DB.Where("menu_id = ?", client.Menu.ID).
		Scopes(services.ActiveCategories).
		First(&category, categoryID).Error
	if err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "category"))
		return
	}

	query := pc.DB.Where("category_id = ?", category.ID).
		Scopes(services.AvailableItems)
	if tags := c.Query("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			query = query.Where("tags LIKE ?", "%\""+strings.TrimSpace(tag)+"\"%")
		}
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var items []models.MenuItem
	if err := query.Scopes(services.SiblingSort).Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSONMeta(c, http.StatusOK, "Category items", items, gin.H{
		"total":    len(items),
		"category": category.Name,
	})
}
