package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/config"
	"github.com/ajoneedienen/catalogue-app/controllers"
	"github.com/ajoneedienen/catalogue-app/middlewares"
)

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	subcategoryCtrl := controllers.NewSubcategoryController(db)
	productCtrl := controllers.NewProductController(db)
	optionCtrl := controllers.NewOptionController(db)
	notificationCtrl := controllers.NewNotificationController(db)
	feedbackCtrl := controllers.NewFeedbackController(db)
	geoCtrl := controllers.NewGeoController(db)
	defaultMenuCtrl := controllers.NewDefaultMenuController(db)
	catalogueCtrl := controllers.NewCatalogueController(db)
	adCtrl := controllers.NewAdController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter for login/register
	auth := r.Group("/")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	r.GET("/states", geoCtrl.GetAllStates)
	r.GET("/states/:state_id/districts", geoCtrl.GetDistricts)

	// Per-IP limit keeps feedback spam off the public form
	feedbackLimiter := middlewares.NewRateLimiter(10, 60)
	r.POST("/feedback", feedbackLimiter.RateLimit(), feedbackCtrl.SubmitFeedback)

	// -- STOREFRONT (session-scoped cart, no auth) --
	store := r.Group("/")
	store.Use(middlewares.SessionMiddleware())
	{
		store.GET("/", catalogueCtrl.Index)
		store.GET("/catalogue/:restaurant_id", catalogueCtrl.GetCatalogue)
		store.GET("/c/:slug", catalogueCtrl.GetCatalogueBySlug)
		store.GET("/catalogue/:restaurant_id/products", catalogueCtrl.ListProducts)
		store.GET("/catalogue/:restaurant_id/checkout", catalogueCtrl.Checkout)
		store.GET("/catalogue/:restaurant_id/how-it-works", catalogueCtrl.HowItWorks)
		store.GET("/category/:cat_id", catalogueCtrl.GetCategoryPage)

		store.GET("/cart", catalogueCtrl.GetCart)
		store.POST("/cart/add", catalogueCtrl.AddToCart)
		store.GET("/cart/plus", catalogueCtrl.CartItemPlus)
		store.GET("/cart/minus", catalogueCtrl.CartItemMinus)
	}

	// ----------------------------------------------------------------
	//                      OWNER DASHBOARD (JWT)
	// ----------------------------------------------------------------
	dash := r.Group("/dash")
	dash.Use(middlewares.AuthMiddleware())
	{
		dash.GET("/profile", userCtrl.GetProfile)

		dash.POST("/onboard", restaurantCtrl.Onboard)
		dash.GET("/restaurant", restaurantCtrl.GetMyRestaurant)
		dash.PATCH("/restaurant", restaurantCtrl.UpdateMyRestaurant)

		dash.GET("/categories", categoryCtrl.GetAllCategories)
		dash.POST("/categories", categoryCtrl.CreateCategory)
		dash.GET("/categories/:cat_id", categoryCtrl.GetCategoryByID)
		dash.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
		dash.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

		dash.GET("/subcategories", subcategoryCtrl.GetAllSubcategories)
		dash.POST("/categories/:cat_id/subcategories", subcategoryCtrl.CreateSubcategory)
		dash.PATCH("/subcategories/:subcat_id", subcategoryCtrl.UpdateSubcategory)
		dash.DELETE("/subcategories/:subcat_id", subcategoryCtrl.DeleteSubcategory)

		dash.GET("/products", productCtrl.GetAllProducts)
		dash.POST("/products", productCtrl.CreateProduct)
		dash.GET("/products/:product_id", productCtrl.GetProductByID)
		dash.PATCH("/products/:product_id", productCtrl.UpdateProduct)
		dash.DELETE("/products/:product_id", productCtrl.DeleteProduct)

		dash.POST("/products/:product_id/options", optionCtrl.CreateOption)
		dash.PATCH("/options/:option_id", optionCtrl.UpdateOption)
		dash.DELETE("/options/:option_id", optionCtrl.DeleteOption)

		dash.GET("/notifications", notificationCtrl.GetAllNotifications)
		dash.POST("/notifications", notificationCtrl.CreateNotification)
		dash.GET("/notifications/:notif_id", notificationCtrl.GetNotificationByID)
		dash.PATCH("/notifications/:notif_id", notificationCtrl.UpdateNotification)
		dash.DELETE("/notifications/:notif_id", notificationCtrl.DeleteNotification)

		dash.GET("/feedback", feedbackCtrl.GetAllFeedback)

		dash.GET("/default/categories", defaultMenuCtrl.GetDefaultCategories)
		dash.GET("/default/subcategories", defaultMenuCtrl.GetDefaultSubcategories)
		dash.GET("/default/products", defaultMenuCtrl.GetDefaultProducts)

		// ------------------------------------------------------------
		//                      SUPERUSER ROUTES
		// ------------------------------------------------------------
		admin := dash.Group("/admin")
		admin.Use(middlewares.RequireSuperuser())
		{
			admin.GET("/dashboard", adminCtrl.GetDashboard)

			admin.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
			admin.POST("/restaurants", restaurantCtrl.CreateRestaurant)
			admin.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
			admin.PATCH("/restaurants/:restaurant_id", restaurantCtrl.UpdateRestaurant)

			admin.POST("/states", geoCtrl.CreateState)
			admin.POST("/districts", geoCtrl.CreateDistrict)

			admin.POST("/default/categories", defaultMenuCtrl.CreateDefaultCategory)
			admin.POST("/default/subcategories", defaultMenuCtrl.CreateDefaultSubcategory)
			admin.POST("/default/products", defaultMenuCtrl.CreateDefaultProduct)
			admin.POST("/default/options", defaultMenuCtrl.CreateDefaultOption)
			admin.DELETE("/default/categories/:cat_id", defaultMenuCtrl.DeleteDefaultCategory)

			admin.POST("/banners", adCtrl.CreateBanner)
			admin.DELETE("/banners/:banner_id", adCtrl.DeleteBanner)
			admin.POST("/ads/product", adCtrl.CreateProductAd)
			admin.POST("/ads/catalogue", adCtrl.CreateCatalogueAd)
			admin.POST("/ads/checkout", adCtrl.CreateCheckoutAd)
			admin.POST("/ads/video", adCtrl.CreateVideoPageAd)
			admin.POST("/badges", adCtrl.CreateBadge)
		}
	}

	return r
}
