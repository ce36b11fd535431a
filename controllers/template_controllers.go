package controllers

import (
	"net/http"
	"strconv"

	"github.com/burgasdigital/qr-menu/models"
	"github.com/burgasdigital/qr-menu/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TemplateController struct {
	DB *gorm.DB
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{DB: db}
}

// GetAllTemplates lists active templates alphabetically.
func (tc *TemplateController) GetAllTemplates(c *gin.Context) {
	var templates []models.Template
	err := tc.DB.Where("active = ?", true).Order("name ASC").Find(&templates).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All templates", templates)
}

// GetTemplateByID returns one active template.
func (tc *TemplateController) GetTemplateByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("tpl_id"))

	var template models.Template
	err := tc.DB.Where("active = ?", true).First(&template, id).Error
	if err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "template"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Template detail", template)
}

// CreateTemplate registers a new visual configuration.
func (tc *TemplateController) CreateTemplate(c *gin.Context) {
	var req struct {
		Name        string         `json:"name" binding:"required"`
		Description string         `json:"description"`
		Config      models.JSONMap `json:"config"`
		Preview     string         `json:"preview"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	template := models.Template{
		Name:        req.Name,
		Description: req.Description,
		Config:      req.Config,
		Preview:     req.Preview,
		Active:      true,
	}

	if err := tc.DB.Create(&template).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "template"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Template created", template)
}

// UpdateTemplate edits a template's fields.
func (tc *TemplateController) UpdateTemplate(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("tpl_id"))

	var req struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		Config      models.JSONMap `json:"config"`
		Preview     string         `json:"preview"`
		Active      *bool          `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var template models.Template
	if err := tc.DB.First(&template, id).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "template"))
		return
	}

	if req.Name != "" {
		template.Name = req.Name
	}
	if req.Description != "" {
		template.Description = req.Description
	}
	if req.Config != nil {
		template.Config = req.Config
	}
	if req.Preview != "" {
		template.Preview = req.Preview
	}
	if req.Active != nil {
		template.Active = *req.Active
	}

	if err := tc.DB.Save(&template).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "template"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Template updated", template)
}

// DeleteTemplate soft-deletes: the template stays attached to menus that
// reference it but disappears from listings.
func (tc *TemplateController) DeleteTemplate(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("tpl_id"))

	var template models.Template
	if err := tc.DB.First(&template, id).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "template"))
		return
	}

	if err := tc.DB.Model(&template).Update("active", false).Error; err != nil {
		utils.RespondAppError(c, utils.TranslateDBError(err, "template"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Template deleted", gin.H{"template_id": id})
}
