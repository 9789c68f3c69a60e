package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/config"
	"github.com/ajoneedienen/catalogue-app/models"
	"github.com/ajoneedienen/catalogue-app/router"
	"github.com/ajoneedienen/catalogue-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.State{},
		&models.District{},
		&models.Restaurant{},
		&models.Category{},
		&models.Subcategory{},
		&models.Product{},
		&models.Option{},
		&models.DefaultCategory{},
		&models.DefaultSubcategory{},
		&models.DefaultProduct{},
		&models.DefaultOption{},
		&models.CartItem{},
		&models.Notification{},
		&models.Feedback{},
		&models.Banner{},
		&models.Badge{},
		&models.CatalogueAd{},
		&models.CheckoutAd{},
		&models.ProductAd{},
		&models.VideoPageAd{},
	)
}

func main() {
	cfg := config.Load()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := autoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.SetupRouter(db, cfg)

	utils.InfoLogger.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatalf("Server failed: %v", err)
	}
}
