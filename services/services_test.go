package services

import (
	"testing"
	"time"

	"github.com/burgasdigital/qr-menu/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Template{},
		&models.Client{},
		&models.Menu{},
		&models.Category{},
		&models.MenuItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedClientAndMenu(t *testing.T, db *gorm.DB) *models.Menu {
	t.Helper()
	client := models.Client{Name: "Pizza Place", Slug: "pizza-place", Active: true}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	menu := models.Menu{Name: "Main", ClientID: client.ID, Active: true}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	return &menu
}

func seedCategory(t *testing.T, db *gorm.DB, menuID uint, name string, order int, createdAt time.Time) *models.Category {
	t.Helper()
	category := models.Category{Name: name, MenuID: menuID, Order: order, Active: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if !createdAt.IsZero() {
		if err := db.Model(&category).Update("created_at", createdAt).Error; err != nil {
			t.Fatalf("backdate category: %v", err)
		}
	}
	return &category
}

func seedItem(t *testing.T, db *gorm.DB, categoryID, menuID uint, name string, order int) *models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:       name,
		CategoryID: categoryID,
		MenuID:     menuID,
		PriceBGN:   12.00,
		PriceEUR:   6.14,
		Order:      order,
		Available:  true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return &item
}
