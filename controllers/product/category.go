package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// GET /category/:category
//
// The category param is lowercased before the exact match, so
// /category/Electronics and /category/electronics are the same query.
func GetProductsByCategory(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := strings.ToLower(c.Param("category"))

		products, err := catalog.ByCategory(c.Request.Context(), category)
		if err != nil {
			log.WithError(err).Error("failed to fetch products by category")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
			return
		}
		if len(products) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No products found in this category"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
