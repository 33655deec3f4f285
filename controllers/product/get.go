package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Gr10greesh/E-commerce/store"
)

// GET /product/:id
//
// The id is the sequential catalog id, not the store-native reference.
func GetProductByID(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Invalid product ID"})
			return
		}

		product, err := catalog.BySequentialID(c.Request.Context(), id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		case err != nil:
			log.WithError(err).Error("failed to fetch product")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
		}
	}
}
