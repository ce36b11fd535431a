package router

import (
	"net/http"
	"time"

	"github.com/burgasdigital/qr-menu/controllers"
	"github.com/burgasdigital/qr-menu/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// QR code images
	r.Static("/uploads", "uploads")

	userCtrl := controllers.NewUserController(db)
	clientCtrl := controllers.NewClientController(db)
	menuCtrl := controllers.NewMenuController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	itemCtrl := controllers.NewMenuItemController(db)
	templateCtrl := controllers.NewTemplateController(db)
	publicCtrl := controllers.NewPublicController(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	auth := api.Group("/auth")
	auth.POST("/login", middlewares.NewStrictRateLimiter(), userCtrl.Login)

	// Diner-facing storefront, reached from QR codes. Everything here is
	// filtered by the publication gate.
	public := api.Group("/public")
	public.GET("/:slug", publicCtrl.GetClientBySlug)
	public.GET("/:slug/menu", publicCtrl.GetPublishedMenu)
	public.GET("/:slug/categories", publicCtrl.GetPublishedCategories)
	public.GET("/:slug/categories/:category_id/items", publicCtrl.GetPublishedItems)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	admin := api.Group("/")
	admin.Use(middlewares.AuthMiddleware())

	admin.GET("/auth/me", userCtrl.GetProfile)
	admin.POST("/auth/logout", userCtrl.Logout)
	admin.POST("/auth/register", middlewares.RequireAdmin(), userCtrl.Register)

	// CLIENTS
	admin.GET("/clients", clientCtrl.GetAllClients)
	admin.POST("/clients", clientCtrl.CreateClient)
	admin.GET("/clients/slug/:slug", clientCtrl.GetClientBySlug)
	admin.GET("/clients/:client_id", clientCtrl.GetClientByID)
	admin.PUT("/clients/:client_id", clientCtrl.UpdateClient)
	admin.DELETE("/clients/:client_id", clientCtrl.DeleteClient)
	admin.POST("/clients/:client_id/qrcode", menuCtrl.GenerateQRCode)
	admin.GET("/clients/:client_id/qrcode", menuCtrl.GetQRCode)

	// MENUS
	admin.GET("/menus", menuCtrl.GetAllMenus)
	admin.POST("/menus", menuCtrl.CreateMenu)
	admin.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	admin.PUT("/menus/:menu_id", menuCtrl.UpdateMenu)
	admin.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
	admin.POST("/menus/:menu_id/publish", menuCtrl.PublishMenu)
	admin.POST("/menus/:menu_id/unpublish", menuCtrl.UnpublishMenu)

	// CATEGORIES
	admin.GET("/categories", categoryCtrl.GetAllCategories)
	admin.POST("/categories", categoryCtrl.CreateCategory)
	admin.GET("/categories/reorder/:menu_id", categoryCtrl.GetCategoriesForReorder)
	admin.GET("/categories/menu/:menu_id", categoryCtrl.GetCategoriesByMenu)
	admin.GET("/categories/:cat_id", categoryCtrl.GetCategoryByID)
	admin.PUT("/categories/:cat_id", categoryCtrl.UpdateCategory)
	admin.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)
	admin.PUT("/categories/:cat_id/reorder", categoryCtrl.ReorderCategory)

	// MENU ITEMS
	admin.GET("/menu-items", itemCtrl.GetAllMenuItems)
	admin.POST("/menu-items", itemCtrl.CreateMenuItem)
	admin.GET("/menu-items/:item_id", itemCtrl.GetMenuItemByID)
	admin.PUT("/menu-items/:item_id", itemCtrl.UpdateMenuItem)
	admin.DELETE("/menu-items/:item_id", itemCtrl.DeleteMenuItem)
	admin.PUT("/menu-items/:item_id/reorder", itemCtrl.ReorderMenuItem)
	admin.PUT("/menu-items/:item_id/availability", itemCtrl.ToggleAvailability)

	// TEMPLATES
	admin.GET("/templates", templateCtrl.GetAllTemplates)
	admin.POST("/templates", templateCtrl.CreateTemplate)
	admin.GET("/templates/:tpl_id", templateCtrl.GetTemplateByID)
	admin.PUT("/templates/:tpl_id", templateCtrl.UpdateTemplate)
	admin.DELETE("/templates/:tpl_id", templateCtrl.DeleteTemplate)

	return r
}
