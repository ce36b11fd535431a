package services

import (
	"testing"
	"time"

	"github.com/burgasdigital/qr-menu/models"
	"github.com/burgasdigital/qr-menu/utils"
	"github.com/stretchr/testify/assert"
)

func TestNextCategoryOrder(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	svc := NewOrderingService(db)

	// Empty menu -> first position
	order, err := svc.NextCategoryOrder(menu.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, order)

	seedCategory(t, db, menu.ID, "Pizzas", 1, time.Time{})
	seedCategory(t, db, menu.ID, "Salads", 7, time.Time{})

	// Max sibling is 7 -> next is 8, gaps are not compacted
	order, err = svc.NextCategoryOrder(menu.ID)
	assert.NoError(t, err)
	assert.Equal(t, 8, order)
}

func TestNextItemOrder(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	category := seedCategory(t, db, menu.ID, "Pizzas", 1, time.Time{})
	svc := NewOrderingService(db)

	order, err := svc.NextItemOrder(category.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, order)

	seedItem(t, db, category.ID, menu.ID, "Margherita", 3)

	order, err = svc.NextItemOrder(category.ID)
	assert.NoError(t, err)
	assert.Equal(t, 4, order)
}

func TestSetCategoryOrder(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	first := seedCategory(t, db, menu.ID, "Pizzas", 1, time.Time{})
	second := seedCategory(t, db, menu.ID, "Salads", 2, time.Time{})
	svc := NewOrderingService(db)

	updated, err := svc.SetCategoryOrder(first.ID, 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, updated.Order)

	// The sibling is never shifted
	var sibling models.Category
	assert.NoError(t, db.First(&sibling, second.ID).Error)
	assert.Equal(t, 2, sibling.Order)
}

func TestSetCategoryOrderIdempotent(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	category := seedCategory(t, db, menu.ID, "Pizzas", 3, time.Time{})
	sibling := seedCategory(t, db, menu.ID, "Salads", 4, time.Time{})
	svc := NewOrderingService(db)

	updated, err := svc.SetCategoryOrder(category.ID, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, updated.Order)

	var check models.Category
	assert.NoError(t, db.First(&check, sibling.ID).Error)
	assert.Equal(t, 4, check.Order)
}

func TestSetCategoryOrderValidation(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	category := seedCategory(t, db, menu.ID, "Pizzas", 1, time.Time{})
	svc := NewOrderingService(db)

	for _, bad := range []int{0, -1, -100} {
		_, err := svc.SetCategoryOrder(category.ID, bad)
		assert.Error(t, err)
		appErr, ok := err.(*utils.AppError)
		assert.True(t, ok)
		assert.Equal(t, utils.CodeValidation, appErr.Code)
	}
}

func TestSetCategoryOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderingService(db)

	_, err := svc.SetCategoryOrder(9999, 1)
	assert.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.CodeNotFound, appErr.Code)
}

func TestSetItemOrderDuplicateTolerated(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)
	category := seedCategory(t, db, menu.ID, "Pizzas", 1, time.Time{})
	a := seedItem(t, db, category.ID, menu.ID, "Margherita", 1)
	b := seedItem(t, db, category.ID, menu.ID, "Capricciosa", 2)
	svc := NewOrderingService(db)

	// Colliding with a sibling's position is legal
	updated, err := svc.SetItemOrder(b.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.Order)

	var other models.MenuItem
	assert.NoError(t, db.First(&other, a.ID).Error)
	assert.Equal(t, 1, other.Order)
}

// Listing is deterministic: position ascending, newer first among equals.
func TestSiblingSortStability(t *testing.T) {
	db := setupTestDB(t)
	menu := seedClientAndMenu(t, db)

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	older := seedCategory(t, db, menu.ID, "Older", 2, base)
	newer := seedCategory(t, db, menu.ID, "Newer", 2, base.Add(time.Hour))
	firstPos := seedCategory(t, db, menu.ID, "First", 1, base.Add(2*time.Hour))

	var want []uint
	for i := 0; i < 5; i++ {
		var categories []models.Category
		err := db.Where("menu_id = ?", menu.ID).Scopes(SiblingSort).Find(&categories).Error
		assert.NoError(t, err)
		assert.Len(t, categories, 3)

		got := []uint{categories[0].ID, categories[1].ID, categories[2].ID}
		if i == 0 {
			want = got
			assert.Equal(t, firstPos.ID, got[0])
			assert.Equal(t, newer.ID, got[1], "newer record sorts first among equal positions")
			assert.Equal(t, older.ID, got[2])
		} else {
			assert.Equal(t, want, got, "repeated listings must return the identical sequence")
		}
	}
}
