package controllers

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/burgasdigital/qr-menu/models"
	"github.com/burgasdigital/qr-menu/services"
	"github.com/burgasdigital/qr-menu/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

type ClientController struct {
	DB        *gorm.DB
	Hierarchy *services.HierarchyService
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{
		DB:        db,
		Hierarchy: services.NewHierarchyService(db),
	}
}

// GetAllClients returns a paginated client list with menu summaries.
func (cc *ClientController) GetAllClients(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	var clients []models.Client
	var total int64
	if err := cc.DB.Model(&models.Client{}).Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	err := cc.DB.Preload("Menu").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&clients).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondPaginated(c, http.StatusOK, "List of clients", clients, utils.NewPagination(page, limit, total))
}

// GetClientByID returns a client with its full menu summary.
func (cc *ClientController) GetClientByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("client_id"))

	var client models.Client
	err := cc.DB.Preload("Menu").
		Preload("Menu.Template").
		Preload("Menu.Categories", services.SiblingSort).
		First(&client, id).Error
	if err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "client"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client detail", client)
}

type clientRequest struct {
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Address     string         `json:"address"`
	Phone       string         `json:"phone"`
	Logo        string         `json:"logo"`
	Slogan      string         `json:"slogan"`
	SocialMedia models.JSONMap `json:"socialMedia"`
}

func validateClientName(name string) error {
	if l := len(strings.TrimSpace(name)); l < 2 || l > 100 {
		return utils.NewValidation("name must be between 2 and 100 characters")
	}
	return nil
}

func validateSlug(slug string) error {
	if l := len(slug); l < 2 || l > 50 {
		return utils.NewValidation("slug must be between 2 and 50 characters")
	}
	if !slugPattern.MatchString(slug) {
		return utils.NewValidation("slug may contain only lowercase letters, digits and hyphens")
	}
	return nil
}

// CreateClient registers a new restaurant tenant.
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := validateClientName(req.Name); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	req.Slug = strings.ToLower(req.Slug)
	if err := validateSlug(req.Slug); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	var count int64
	cc.DB.Model(&models.Client{}).Where("slug = ?", req.Slug).Count(&count)
	if count > 0 {
		utils.RespondAppError(c, utils.NewConflict("client with this slug already exists"))
		return
	}

	client := models.Client{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Logo:        req.Logo,
		Slogan:      req.Slogan,
		SocialMedia: req.SocialMedia,
		Active:      true,
	}

	if err := cc.DB.Create(&client).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "client"))
		return
	}

	utils.InfoLogger.Printf("Created client %q (slug=%s)", client.Name, client.Slug)
	utils.RespondJSON(c, http.StatusCreated, "Client created", client)
}

// UpdateClient edits tenant fields; slug changes re-check uniqueness.
func (cc *ClientController) UpdateClient(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("client_id"))

	var req struct {
		clientRequest
		Active *bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var client models.Client
	if err := cc.DB.First(&client, id).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "client"))
		return
	}

	if req.Name != "" {
		if err := validateClientName(req.Name); err != nil {
			utils.RespondAppError(c, err)
			return
		}
		client.Name = req.Name
	}
	if req.Slug != "" {
		req.Slug = strings.ToLower(req.Slug)
		if err := validateSlug(req.Slug); err != nil {
			utils.RespondAppError(c, err)
			return
		}
		if req.Slug != client.Slug {
			var count int64
			cc.DB.Model(&models.Client{}).Where("slug = ?", req.Slug).Count(&count)
			if count > 0 {
				utils.RespondAppError(c, utils.NewConflict("client with this slug already exists"))
				return
			}
			client.Slug = req.Slug
		}
	}
	if req.Description != "" {
		client.Description = req.Description
	}
	if req.Address != "" {
		client.Address = req.Address
	}
	if req.Phone != "" {
		client.Phone = req.Phone
	}
	if req.Logo != "" {
		client.Logo = req.Logo
	}
	if req.Slogan != "" {
		client.Slogan = req.Slogan
	}
	if req.SocialMedia != nil {
		client.SocialMedia = req.SocialMedia
	}
	if req.Active != nil {
		client.Active = *req.Active
	}

	if err := cc.DB.Save(&client).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "client"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client updated", client)
}

// DeleteClient removes the tenant and its whole menu tree.
func (cc *ClientController) DeleteClient(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("client_id"))

	if err := cc.Hierarchy.DeleteClient(uint(id)); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Deleted client %d with its menu tree", id)
	utils.RespondJSON(c, http.StatusOK, "Client deleted", gin.H{"client_id": id})
}

// GetClientBySlug looks a client up by slug for the admin surface.
func (cc *ClientController) GetClientBySlug(c *gin.Context) {
	slug := strings.ToLower(c.Param("slug"))

	var client models.Client
	if err := cc.DB.Preload("Menu").Where("slug = ?", slug).First(&client).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "client"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client detail", client)
}
