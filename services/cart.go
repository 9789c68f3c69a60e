package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ajoneedienen/catalogue-app/models"
)

// ErrNotInCart is returned when decrementing an option that has no cart
// line for the session.
var ErrNotInCart = errors.New("product not found in cart")

// CartService mutates the session cart. A cart line is keyed by
// (session_key, restaurant, option); increments go through an atomic
// upsert against the unique index so concurrent adds cannot produce
// duplicate rows for the same logical line.
type CartService struct {
	DB *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{DB: db}
}

// Add creates the cart line with the given quantity, or increments an
// existing line by it.
func (s *CartService) Add(sessionKey string, restaurantID, optionID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	var option models.Option
	if err := s.DB.First(&option, optionID).Error; err != nil {
		return nil, err
	}

	item := models.CartItem{
		RestaurantID: restaurantID,
		SessionKey:   sessionKey,
		OptionID:     optionID,
		Quantity:     quantity,
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "session_key"},
			{Name: "restaurant_id"},
			{Name: "option_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", quantity),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	return s.line(sessionKey, restaurantID, optionID)
}

// Decrement subtracts one from the line's quantity, deleting the row when
// the quantity reaches zero. Returns nil when the row was deleted.
func (s *CartService) Decrement(sessionKey string, restaurantID, optionID uint) (*models.CartItem, error) {
	item, err := s.line(sessionKey, restaurantID, optionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInCart
		}
		return nil, err
	}

	if item.Quantity > 1 {
		item.Quantity--
		if err := s.DB.Model(item).Update("quantity", item.Quantity).Error; err != nil {
			return nil, err
		}
		return item, nil
	}

	if err := s.DB.Delete(item).Error; err != nil {
		return nil, err
	}
	return nil, nil
}

// Items returns the session's cart lines for a restaurant with their
// options preloaded.
func (s *CartService) Items(sessionKey string, restaurantID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.DB.Preload("Option").
		Where("session_key = ? AND restaurant_id = ?", sessionKey, restaurantID).
		Find(&items).Error
	return items, err
}

func (s *CartService) line(sessionKey string, restaurantID, optionID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := s.DB.Preload("Option").
		Where("session_key = ? AND restaurant_id = ? AND option_id = ?", sessionKey, restaurantID, optionID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CartTotal sums price times quantity over the lines. No tax, no
// discounts.
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for i := range items {
		total += items[i].TotalPrice()
	}
	return total
}
