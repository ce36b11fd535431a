package database

import (
	"os"

	"github.com/burgasdigital/qr-menu/models"
	"github.com/burgasdigital/qr-menu/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the initial admin user and the stock templates. Idempotent:
// existing records are left alone.
func Seed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedTemplates(db)
}

func seedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded admin user %s", admin.Email)
	return nil
}

func seedTemplates(db *gorm.DB) error {
	templates := []models.Template{
		{
			Name:        "Modern",
			Description: "Clean contemporary look",
			Config: models.JSONMap{
				"colors": map[string]interface{}{
					"primary":    "#2563eb",
					"secondary":  "#64748b",
					"background": "#ffffff",
					"text":       "#1e293b",
				},
				"fonts":  map[string]interface{}{"heading": "Inter", "body": "Inter"},
				"layout": "grid",
			},
			Active: true,
		},
		{
			Name:        "Classic",
			Description: "Elegant traditional styling",
			Config: models.JSONMap{
				"colors": map[string]interface{}{
					"primary":    "#92400e",
					"secondary":  "#78716c",
					"background": "#fefce8",
					"text":       "#1c1917",
				},
				"fonts":  map[string]interface{}{"heading": "Playfair Display", "body": "Lora"},
				"layout": "list",
			},
			Active: true,
		},
		{
			Name:        "Minimal",
			Description: "Typography-first, no decoration",
			Config: models.JSONMap{
				"colors": map[string]interface{}{
					"primary":    "#111827",
					"secondary":  "#6b7280",
					"background": "#ffffff",
					"text":       "#111827",
				},
				"fonts":  map[string]interface{}{"heading": "Helvetica", "body": "Helvetica"},
				"layout": "cards",
			},
			Active: true,
		},
	}

	for _, tpl := range templates {
		var count int64
		if err := db.Model(&models.Template{}).Where("name = ?", tpl.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&tpl).Error; err != nil {
			return err
		}
		utils.InfoLogger.Printf("Seeded template %q", tpl.Name)
	}
	return nil
}
