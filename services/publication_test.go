package services

import (
	"testing"
	"time"

	"github.com/burgasdigital/qr-menu/models"
	"github.com/burgasdigital/qr-menu/utils"
	"github.com/stretchr/testify/assert"
)

func TestPublishPreconditions(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	svc := NewPublicationService(db)

	// No categories at all
	_, err := svc.Publish(menu.ID)
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.CodeMenuNoCategories, appErr.Code)

	// A category but no items: a different, distinguishable failure
	category := seedCategory(t, db, menu.ID, "Pizzas", 1, time.Time{})
	_, err = svc.Publish(menu.ID)
	appErr, ok = err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.CodeMenuNoItems, appErr.Code)

	// With both, publish succeeds
	seedItem(t, db, category.ID, menu.ID, "Margherita", 1)
	published, err := svc.Publish(menu.ID)
	assert.NoError(t, err)
	assert.True(t, published.Published)
	assert.True(t, published.Active)
}

func TestUnpublishAlwaysAllowed(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	svc := NewPublicationService(db)

	// Unpublishing a draft menu is a no-op success
	updated, err := svc.Unpublish(menu.ID)
	assert.NoError(t, err)
	assert.False(t, updated.Published)

	category := seedCategory(t, db, menu.ID, "Pizzas", 1, time.Time{})
	seedItem(t, db, category.ID, menu.ID, "Margherita", 1)
	_, err = svc.Publish(menu.ID)
	assert.NoError(t, err)

	updated, err = svc.Unpublish(menu.ID)
	assert.NoError(t, err)
	assert.False(t, updated.Published)

	// And the cycle can repeat
	published, err := svc.Publish(menu.ID)
	assert.NoError(t, err)
	assert.True(t, published.Published)
}

func TestPublishNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPublicationService(db)

	_, err := svc.Publish(9999)
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.CodeNotFound, appErr.Code)
}

func TestPublishedMenuForSlug(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	category := seedCategory(t, db, menu.ID, "Pizzas", 1, time.Time{})
	seedItem(t, db, category.ID, menu.ID, "Margherita", 1)
	svc := NewPublicationService(db)

	// Draft menu is invisible
	_, err := svc.PublishedMenuForSlug("pizza-place")
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.CodeNotFound, appErr.Code)

	_, err = svc.Publish(menu.ID)
	assert.NoError(t, err)

	client, err := svc.PublishedMenuForSlug("pizza-place")
	assert.NoError(t, err)
	assert.NotNil(t, client.Menu)
	assert.Len(t, client.Menu.Categories, 1)
	assert.Len(t, client.Menu.Categories[0].Items, 1)
	assert.Equal(t, "Margherita", client.Menu.Categories[0].Items[0].Name)
}

// Flipping an ancestor flag hides every descendant on the next read
// without touching descendant rows.
func TestGateComposition(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	pizzas := seedCategory(t, db, menu.ID, "Pizzas", 1, time.Time{})
	salads := seedCategory(t, db, menu.ID, "Salads", 2, time.Time{})
	seedItem(t, db, pizzas.ID, menu.ID, "Margherita", 1)
	seedItem(t, db, salads.ID, menu.ID, "Shopska", 1)
	svc := NewPublicationService(db)

	_, err := svc.Publish(menu.ID)
	assert.NoError(t, err)

	// Deactivate one category: menu stays visible, that subtree vanishes
	assert.NoError(t, db.Model(&models.Category{}).Where("id = ?", salads.ID).Update("active", false).Error)

	client, err := svc.PublishedMenuForSlug("pizza-place")
	assert.NoError(t, err)
	assert.Len(t, client.Menu.Categories, 1)
	assert.Equal(t, pizzas.ID, client.Menu.Categories[0].ID)

	// Unavailable item disappears while its category remains
	assert.NoError(t, db.Model(&models.MenuItem{}).Where("category_id = ?", pizzas.ID).Update("available", false).Error)

	client, err = svc.PublishedMenuForSlug("pizza-place")
	assert.NoError(t, err)
	assert.Len(t, client.Menu.Categories, 1)
	assert.Empty(t, client.Menu.Categories[0].Items)

	// Inactive client hides everything
	assert.NoError(t, db.Model(&models.Client{}).Where("id = ?", menu.ClientID).Update("active", false).Error)

	_, err = svc.PublishedMenuForSlug("pizza-place")
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.CodeNotFound, appErr.Code)
}
