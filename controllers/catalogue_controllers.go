package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/middlewares"
	"github.com/ajoneedienen/catalogue-app/models"
	"github.com/ajoneedienen/catalogue-app/services"
	"github.com/ajoneedienen/catalogue-app/utils"
)

// CatalogueController serves the public storefront: no authentication,
// cart state keyed by the provisioned session.
type CatalogueController struct {
	DB   *gorm.DB
	Cart *services.CartService
}

func NewCatalogueController(db *gorm.DB) *CatalogueController {
	return &CatalogueController{DB: db, Cart: services.NewCartService(db)}
}

// Index -> landing page data
func (cc *CatalogueController) Index(c *gin.Context) {
	var badges []models.Badge
	if err := cc.DB.Find(&badges).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Welcome", gin.H{"badges": badges})
}

// GetCatalogue -> storefront by id. Viewing it counts a visitor.
func (cc *CatalogueController) GetCatalogue(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("restaurant_id"))

	var restaurant models.Restaurant
	if err := cc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	cc.renderCatalogue(c, &restaurant)
}

// GetCatalogueBySlug -> storefront by slug
func (cc *CatalogueController) GetCatalogueBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var restaurant models.Restaurant
	if err := cc.DB.Where("slug = ?", slug).First(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	cc.renderCatalogue(c, &restaurant)
}

func (cc *CatalogueController) renderCatalogue(c *gin.Context, restaurant *models.Restaurant) {
	cc.countVisit(restaurant)

	var categories []models.Category
	cc.DB.Where("restaurant_id = ?", restaurant.ID).Order("name").Find(&categories)

	var banners []models.Banner
	cc.DB.Where("restaurant_id = ?", restaurant.ID).Find(&banners)

	var notifications []models.Notification
	cc.DB.Where("restaurant_id = ?", restaurant.ID).Find(&notifications)

	productAds, err := models.ActiveProductAds(cc.DB, restaurant.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Catalogue", gin.H{
		"restaurant":    restaurant,
		"categories":    categories,
		"banners":       banners,
		"notifications": notifications,
		"product_ads":   productAds,
	})
}

func (cc *CatalogueController) countVisit(restaurant *models.Restaurant) {
	if err := cc.DB.Model(restaurant).
		UpdateColumn("visitor_count", gorm.Expr("visitor_count + 1")).Error; err != nil {
		utils.ErrorLogger.Printf("Visitor count update failed for restaurant %d: %v", restaurant.ID, err)
	}
}

// ListProducts -> a restaurant's products, optionally filtered by the q
// substring over name and description.
func (cc *CatalogueController) ListProducts(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("restaurant_id"))

	var restaurant models.Restaurant
	if err := cc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	q := cc.DB.Preload("Options").
		Joins("JOIN subcategories ON subcategories.id = products.subcategory_id").
		Joins("JOIN categories ON categories.id = subcategories.category_id").
		Where("categories.restaurant_id = ?", restaurant.ID).
		Order("products.name")

	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("products.name LIKE ? OR products.description LIKE ?", like, like)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Products", gin.H{
		"restaurant": restaurant,
		"products":   products,
	})
}

// GetCategoryPage -> a category with its visible products and the cart
// summary for the current session.
func (cc *CatalogueController) GetCategoryPage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	var category models.Category
	if err := cc.DB.Preload("Restaurant").First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var subcategories []models.Subcategory
	cc.DB.Where("category_id = ?", category.ID).Order("name").Find(&subcategories)

	var products []models.Product
	cc.DB.Preload("Options").
		Joins("JOIN subcategories ON subcategories.id = products.subcategory_id").
		Where("subcategories.category_id = ? AND products.is_active = ?", category.ID, true).
		Order("products.name").
		Find(&products)

	sessionKey := middlewares.SessionKey(c)
	cartItems, err := cc.Cart.Items(sessionKey, category.RestaurantID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	catalogueAds, _ := models.ActiveCatalogueAds(cc.DB, category.RestaurantID)
	productAds, _ := models.ActiveProductAds(cc.DB, category.RestaurantID)

	utils.RespondJSON(c, http.StatusOK, "Category", gin.H{
		"category":      category,
		"subcategories": subcategories,
		"products":      products,
		"cart_items":    cartItems,
		"total_price":   services.CartTotal(cartItems),
		"catalogue_ads": catalogueAds,
		"product_ads":   productAds,
	})
}

// Checkout -> cart summary for a restaurant. Also counts a visitor, the
// same as the storefront page.
func (cc *CatalogueController) Checkout(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("restaurant_id"))

	var restaurant models.Restaurant
	if err := cc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	cc.countVisit(&restaurant)

	sessionKey := middlewares.SessionKey(c)
	cartItems, err := cc.Cart.Items(sessionKey, restaurant.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	checkoutAds, _ := models.ActiveCheckoutAds(cc.DB, restaurant.ID)
	productAds, _ := models.ActiveProductAds(cc.DB, restaurant.ID)

	utils.RespondJSON(c, http.StatusOK, "Checkout", gin.H{
		"restaurant":   restaurant,
		"cart_items":   cartItems,
		"total_price":  services.CartTotal(cartItems),
		"checkout_ads": checkoutAds,
		"product_ads":  productAds,
	})
}

// HowItWorks -> video-page ads for the restaurant
func (cc *CatalogueController) HowItWorks(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("restaurant_id"))

	var restaurant models.Restaurant
	if err := cc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	ads, err := models.ActiveVideoPageAds(cc.DB, restaurant.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "How it works", gin.H{
		"restaurant": restaurant,
		"banners":    ads,
	})
}

// GetCart -> the session's cart for a restaurant
func (cc *CatalogueController) GetCart(c *gin.Context) {
	restaurantID, _ := strconv.Atoi(c.Query("restaurant_pk"))

	sessionKey := middlewares.SessionKey(c)
	cartItems, err := cc.Cart.Items(sessionKey, uint(restaurantID))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart", gin.H{
		"cart_items":  cartItems,
		"total_price": services.CartTotal(cartItems),
	})
}

// AddToCart -> add a quantity of an option to the session cart
func (cc *CatalogueController) AddToCart(c *gin.Context) {
	optionID, err := strconv.Atoi(c.DefaultPostForm("option_pk", c.Query("option_pk")))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid option_pk"))
		return
	}
	restaurantID, err := strconv.Atoi(c.DefaultPostForm("restaurant_pk", c.Query("restaurant_pk")))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant_pk"))
		return
	}
	quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
	if err != nil || quantity <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid quantity"))
		return
	}

	sessionKey := middlewares.SessionKey(c)
	item, err := cc.Cart.Add(sessionKey, uint(restaurantID), uint(optionID), quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product option does not exist"})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Item added to cart successfully",
		"quantity": item.Quantity,
		"subtotal": item.TotalPrice(),
	})
}

// CartItemPlus -> increment one line by one.
// Response shape: {success, quantity, subtotal}.
func (cc *CatalogueController) CartItemPlus(c *gin.Context) {
	optionID, restaurantID, ok := cartLineParams(c)
	if !ok {
		return
	}

	sessionKey := middlewares.SessionKey(c)
	item, err := cc.Cart.Add(sessionKey, restaurantID, optionID, 1)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product option does not exist"})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"quantity": item.Quantity,
		"subtotal": item.TotalPrice(),
	})
}

// CartItemMinus -> decrement one line by one; quantity 0 means the row
// was deleted.
func (cc *CatalogueController) CartItemMinus(c *gin.Context) {
	optionID, restaurantID, ok := cartLineParams(c)
	if !ok {
		return
	}

	var option models.Option
	if err := cc.DB.First(&option, optionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product option does not exist"})
		return
	}

	sessionKey := middlewares.SessionKey(c)
	item, err := cc.Cart.Decrement(sessionKey, restaurantID, optionID)
	if err != nil {
		if errors.Is(err, services.ErrNotInCart) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found in cart"})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if item == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "quantity": 0, "subtotal": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"quantity": item.Quantity,
		"subtotal": item.TotalPrice(),
	})
}

func cartLineParams(c *gin.Context) (optionID, restaurantID uint, ok bool) {
	opt, err := strconv.Atoi(c.Query("option"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid option"))
		return 0, 0, false
	}
	rest, err := strconv.Atoi(c.Query("restaurant_pk"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant_pk"))
		return 0, 0, false
	}
	return uint(opt), uint(rest), true
}
