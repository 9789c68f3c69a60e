package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/models"
)

// ErrMenuExists is returned when seeding is attempted on a restaurant
// that already owns categories. Seeding twice would duplicate the whole
// tree, so it is restricted to first-time onboarding.
var ErrMenuExists = errors.New("restaurant already has a menu")

// SeedDefaultMenu copies the global default tree into the restaurant's
// own tree: every default category, its subcategories, their products and
// product options. Inserts run sequentially and the first failure aborts
// the walk; an interrupted run leaves the rows created so far in place.
func SeedDefaultMenu(db *gorm.DB, restaurant *models.Restaurant) error {
	var existing int64
	if err := db.Model(&models.Category{}).
		Where("restaurant_id = ?", restaurant.ID).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return ErrMenuExists
	}

	var defaultCategories []models.DefaultCategory
	if err := db.Order("name").Find(&defaultCategories).Error; err != nil {
		return err
	}

	for _, defCat := range defaultCategories {
		category := models.Category{
			ReferenceID:  &defCat.ID,
			RestaurantID: restaurant.ID,
			Name:         defCat.Name,
			Image:        defCat.Image,
			Description:  defCat.Description,
		}
		if err := db.Create(&category).Error; err != nil {
			return err
		}

		var defSubs []models.DefaultSubcategory
		if err := db.Where("category_id = ?", defCat.ID).Order("name").Find(&defSubs).Error; err != nil {
			return err
		}

		for _, defSub := range defSubs {
			subcategory := models.Subcategory{
				CategoryID:  category.ID,
				Name:        defSub.Name,
				Image:       defSub.Image,
				Description: defSub.Description,
			}
			if err := db.Create(&subcategory).Error; err != nil {
				return err
			}

			var defProducts []models.DefaultProduct
			if err := db.Where("subcategory_id = ?", defSub.ID).Order("name").Find(&defProducts).Error; err != nil {
				return err
			}

			for _, defProduct := range defProducts {
				product := models.Product{
					SubcategoryID:   subcategory.ID,
					Name:            defProduct.Name,
					Description:     defProduct.Description,
					Ingredients:     defProduct.Ingredients,
					Image:           defProduct.Image,
					IsPopular:       defProduct.IsPopular,
					IsVegetarian:    defProduct.IsVegetarian,
					DisplayFoodtype: defProduct.DisplayFoodtype,
					IsActive:        defProduct.IsActive,
				}
				if err := db.Create(&product).Error; err != nil {
					return err
				}

				var defOptions []models.DefaultOption
				if err := db.Where("product_id = ?", defProduct.ID).Find(&defOptions).Error; err != nil {
					return err
				}

				for _, defOption := range defOptions {
					option := models.Option{
						ProductID: product.ID,
						Section:   defOption.Section,
						Name:      defOption.Name,
						Price:     defOption.Price,
					}
					if err := db.Create(&option).Error; err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}
