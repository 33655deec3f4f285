package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// GET /allproducts
func GetProducts(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.All(c.Request.Context())
		if err != nil {
			log.WithError(err).Error("failed to fetch products")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /maxproductid
func GetMaxProductID(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxID, err := catalog.MaxSequentialID(c.Request.Context())
		if err != nil {
			log.WithError(err).Error("failed to fetch max product id")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"maxId": maxID})
	}
}
