package cartControllers

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Gr10greesh/E-commerce/models"
	"github.com/Gr10greesh/E-commerce/store"
)

// ProductFinder resolves store-native product references.
type ProductFinder interface {
	ByRef(ctx context.Context, ref uint) (*models.Product, error)
}

// CartStore is the slice of the cart store these endpoints use.
type CartStore interface {
	Replace(ctx context.Context, userID string, items []models.CartItem) (*models.Cart, error)
	ByUser(ctx context.Context, userID string) (*models.Cart, error)
}

type updateCartRequest struct {
	CartItems map[string]int `json:"cartItems"`
}

// POST /update-cart
//
// The submitted map fully replaces the persisted cart. Every key must
// resolve to a product before anything is written; one bad reference
// rejects the whole update.
func UpdateCart(carts CartStore, products ProductFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "errors": "Unauthorized"})
			return
		}

		var req updateCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Invalid request body"})
			return
		}

		items := make([]models.CartItem, 0, len(req.CartItems))
		for ref, qty := range req.CartItems {
			ref64, err := strconv.ParseUint(ref, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Invalid product reference: " + ref})
				return
			}
			if _, err := products.ByRef(c.Request.Context(), uint(ref64)); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Invalid product reference: " + ref})
					return
				}
				log.WithError(err).Error("failed to validate cart product")
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
				return
			}
			items = append(items, models.CartItem{ProductID: uint(ref64), Quantity: qty})
		}
		// Map iteration order is random; keep the stored order stable.
		sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

		cart, err := carts.Replace(c.Request.Context(), userID, items)
		if err != nil {
			log.WithError(err).Error("failed to update cart")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart updated", "cart": cart})
	}
}

// GET /cart
func GetCart(carts CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "errors": "Unauthorized"})
			return
		}

		cart, err := carts.ByUser(c.Request.Context(), userID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart not found"})
		case err != nil:
			log.WithError(err).Error("failed to fetch cart")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": true, "items": cart.Items})
		}
	}
}
