package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Gr10greesh/E-commerce/models"
)

// Carts persists one cart per user.
type Carts struct {
	db *gorm.DB
}

func NewCarts(db *gorm.DB) *Carts {
	return &Carts{db: db}
}

// Replace locates or lazily creates the user's cart and swaps its entire
// item set for items. Submitted quantities do not merge with existing rows.
func (s *Carts) Replace(ctx context.Context, userID string, items []models.CartItem) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			cart = models.Cart{UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].ID = 0
			items[i].CartID = cart.CartID
		}
		if len(items) > 0 {
			if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
				return err
			}
		}
		cart.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// ByUser returns the user's cart with each item's product populated.
func (s *Carts) ByUser(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := s.db.WithContext(ctx).Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, translate(err)
	}
	return &cart, nil
}
