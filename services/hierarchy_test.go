package services

import (
	"testing"
	"time"

	"github.com/burgasdigital/qr-menu/models"
	"github.com/burgasdigital/qr-menu/utils"
	"github.com/stretchr/testify/assert"
)

func TestValidateCategoryParent(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	svc := NewHierarchyService(db)

	found, err := svc.ValidateCategoryParent(menu.ID)
	assert.NoError(t, err)
	assert.Equal(t, menu.ID, found.ID)

	_, err = svc.ValidateCategoryParent(9999)
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.CodeNotFound, appErr.Code)
}

func TestValidateItemParentMismatch(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	category := seedCategory(t, db, menu.ID, "Pizzas", 1, time.Time{})

	otherClient := models.Client{Name: "Other", Slug: "other", Active: true}
	assert.NoError(t, db.Create(&otherClient).Error)
	otherMenu := models.Menu{Name: "Other Menu", ClientID: otherClient.ID, Active: true}
	assert.NoError(t, db.Create(&otherMenu).Error)

	svc := NewHierarchyService(db)

	// Consistent pairing passes
	found, err := svc.ValidateItemParent(category.ID, &menu.ID)
	assert.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)

	// Category of menu A declared under menu B: a mismatch, not a not-found
	_, err = svc.ValidateItemParent(category.ID, &otherMenu.ID)
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.CodeHierarchyMismatch, appErr.Code)

	// Unknown category is a plain not-found
	_, err = svc.ValidateItemParent(9999, &menu.ID)
	appErr, ok = err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.CodeNotFound, appErr.Code)

	// Without a declared menu only existence is checked
	_, err = svc.ValidateItemParent(category.ID, nil)
	assert.NoError(t, err)
}

func TestDeleteCategoryCascades(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	category := seedCategory(t, db, menu.ID, "Pizzas", 1, time.Time{})
	seedItem(t, db, category.ID, menu.ID, "Margherita", 1)
	seedItem(t, db, category.ID, menu.ID, "Capricciosa", 2)

	svc := NewHierarchyService(db)
	assert.NoError(t, svc.DeleteCategory(category.ID))

	var categories, items int64
	db.Model(&models.Category{}).Where("id = ?", category.ID).Count(&categories)
	db.Model(&models.MenuItem{}).Where("category_id = ?", category.ID).Count(&items)
	assert.Zero(t, categories)
	assert.Zero(t, items)
}

func TestDeleteMenuCascades(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	pizzas := seedCategory(t, db, menu.ID, "Pizzas", 1, time.Time{})
	salads := seedCategory(t, db, menu.ID, "Salads", 2, time.Time{})
	seedItem(t, db, pizzas.ID, menu.ID, "Margherita", 1)
	seedItem(t, db, pizzas.ID, menu.ID, "Capricciosa", 2)
	seedItem(t, db, pizzas.ID, menu.ID, "Quattro Formaggi", 3)
	seedItem(t, db, salads.ID, menu.ID, "Shopska", 1)
	seedItem(t, db, salads.ID, menu.ID, "Caesar", 2)

	svc := NewHierarchyService(db)
	assert.NoError(t, svc.DeleteMenu(menu.ID))

	var menus, categories, items int64
	db.Model(&models.Menu{}).Where("id = ?", menu.ID).Count(&menus)
	db.Model(&models.Category{}).Where("menu_id = ?", menu.ID).Count(&categories)
	db.Model(&models.MenuItem{}).Where("menu_id = ?", menu.ID).Count(&items)
	assert.Zero(t, menus)
	assert.Zero(t, categories)
	assert.Zero(t, items)
}

func TestDeleteClientCascades(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	category := seedCategory(t, db, menu.ID, "Pizzas", 1, time.Time{})
	seedItem(t, db, category.ID, menu.ID, "Margherita", 1)

	svc := NewHierarchyService(db)
	assert.NoError(t, svc.DeleteClient(menu.ClientID))

	var clients, menus, categories, items int64
	db.Model(&models.Client{}).Count(&clients)
	db.Model(&models.Menu{}).Count(&menus)
	db.Model(&models.Category{}).Count(&categories)
	db.Model(&models.MenuItem{}).Count(&items)
	assert.Zero(t, clients)
	assert.Zero(t, menus)
	assert.Zero(t, categories)
	assert.Zero(t, items)
}

func TestDeleteClientWithoutMenu(t *testing.T) {
	db := setupTestDB(t)
	client := models.Client{Name: "Empty", Slug: "empty", Active: true}
	assert.NoError(t, db.Create(&client).Error)

	svc := NewHierarchyService(db)
	assert.NoError(t, svc.DeleteClient(client.ID))

	var clients int64
	db.Model(&models.Client{}).Count(&clients)
	assert.Zero(t, clients)
}
