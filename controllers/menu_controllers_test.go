package controllers_test

import (
	"net/http"
	"testing"

	"github.com/burgasdigital/qr-menu/controllers"
	"github.com/burgasdigital/qr-menu/models"
	"github.com/burgasdigital/qr-menu/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	ctrl := controllers.NewMenuController(db)
	router.GET("/menus", ctrl.GetAllMenus)
	router.POST("/menus", ctrl.CreateMenu)
	router.GET("/menus/:menu_id", ctrl.GetMenuByID)
	router.PUT("/menus/:menu_id", ctrl.UpdateMenu)
	router.DELETE("/menus/:menu_id", ctrl.DeleteMenu)
	router.POST("/menus/:menu_id/publish", ctrl.PublishMenu)
	router.POST("/menus/:menu_id/unpublish", ctrl.UnpublishMenu)
	return router
}

func TestCreateMenuOnePerClient(t *testing.T) {
	db := setupTestDB(t)
	client := models.Client{Name: "Pizza Place", Slug: "pizza-place", Active: true}
	assert.NoError(t, db.Create(&client).Error)
	router := setupMenuRouter(db)

	w := doJSON(t, router, "POST", "/menus", map[string]interface{}{
		"name":     "Main",
		"clientId": client.ID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Second menu for the same client is a conflict
	w = doJSON(t, router, "POST", "/menus", map[string]interface{}{
		"name":     "Second",
		"clientId": client.ID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, utils.CodeConflict, resp["code"])
}

func TestCreateMenuUnknownClient(t *testing.T) {
	db := setupTestDB(t)
	router := setupMenuRouter(db)

	w := doJSON(t, router, "POST", "/menus", map[string]interface{}{
		"name":     "Main",
		"clientId": 42,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublishMenuEndpoint(t *testing.T) {
	db := setupTestDB(t)
	_, menu := seedMenuTree(t, db)
	router := setupMenuRouter(db)

	// Empty menu cannot go live
	w := doJSON(t, router, "POST", "/menus/1/publish", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, utils.CodeMenuNoCategories, resp["code"])

	category := models.Category{Name: "Pizzas", MenuID: menu.ID, Order: 1, Active: true}
	assert.NoError(t, db.Create(&category).Error)

	// A category without items is still not enough
	w = doJSON(t, router, "POST", "/menus/1/publish", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp = decodeBody(t, w)
	assert.Equal(t, utils.CodeMenuNoItems, resp["code"])

	item := models.MenuItem{Name: "Margherita", CategoryID: category.ID, MenuID: menu.ID,
		PriceBGN: 12.00, PriceEUR: 6.14, Order: 1, Available: true}
	assert.NoError(t, db.Create(&item).Error)

	w = doJSON(t, router, "POST", "/menus/1/publish", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var fresh models.Menu
	assert.NoError(t, db.First(&fresh, menu.ID).Error)
	assert.True(t, fresh.Published)

	// Unpublish works regardless of content
	w = doJSON(t, router, "POST", "/menus/1/unpublish", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, db.First(&fresh, menu.ID).Error)
	assert.False(t, fresh.Published)
}

func TestDeleteMenuEndpoint(t *testing.T) {
	db := setupTestDB(t)
	_, menu := seedMenuTree(t, db)
	category := models.Category{Name: "Pizzas", MenuID: menu.ID, Order: 1, Active: true}
	assert.NoError(t, db.Create(&category).Error)
	router := setupMenuRouter(db)

	w := doJSON(t, router, "DELETE", "/menus/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var menus, categories int64
	db.Model(&models.Menu{}).Count(&menus)
	db.Model(&models.Category{}).Count(&categories)
	assert.Zero(t, menus)
	assert.Zero(t, categories)
}
