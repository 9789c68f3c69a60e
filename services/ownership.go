package services

import (
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/models"
)

// OwnershipResolver walks the ownership chain of any menu entity up to
// its restaurant. Every mutation handler resolves the owner through this
// one type instead of repeating the chain per endpoint.
type OwnershipResolver struct {
	DB *gorm.DB
}

func NewOwnershipResolver(db *gorm.DB) *OwnershipResolver {
	return &OwnershipResolver{DB: db}
}

func (r *OwnershipResolver) ForRestaurant(id uint) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *OwnershipResolver) ForCategory(id uint) (*models.Restaurant, error) {
	var cat models.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return r.ForRestaurant(cat.RestaurantID)
}

func (r *OwnershipResolver) ForSubcategory(id uint) (*models.Restaurant, error) {
	var sub models.Subcategory
	if err := r.DB.First(&sub, id).Error; err != nil {
		return nil, err
	}
	return r.ForCategory(sub.CategoryID)
}

func (r *OwnershipResolver) ForProduct(id uint) (*models.Restaurant, error) {
	var product models.Product
	if err := r.DB.First(&product, id).Error; err != nil {
		return nil, err
	}
	return r.ForSubcategory(product.SubcategoryID)
}

func (r *OwnershipResolver) ForOption(id uint) (*models.Restaurant, error) {
	var option models.Option
	if err := r.DB.First(&option, id).Error; err != nil {
		return nil, err
	}
	return r.ForProduct(option.ProductID)
}

func (r *OwnershipResolver) ForNotification(id uint) (*models.Restaurant, error) {
	var notif models.Notification
	if err := r.DB.First(&notif, id).Error; err != nil {
		return nil, err
	}
	return r.ForRestaurant(notif.RestaurantID)
}

// Allowed reports whether the user may mutate resources of the given
// restaurant: superusers always, otherwise only the bound staff account.
func Allowed(user *models.User, restaurant *models.Restaurant) bool {
	if user == nil || restaurant == nil {
		return false
	}
	if user.IsSuperuser {
		return true
	}
	return restaurant.OwnedBy(user.ID)
}
