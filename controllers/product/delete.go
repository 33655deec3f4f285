package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type removeProductRequest struct {
	ID int `json:"id"`
}

// POST /removeproduct
//
// Removal reports success whether or not a matching product existed.
func RemoveProduct(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req removeProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Invalid request body"})
			return
		}

		if err := catalog.DeleteBySequentialID(c.Request.Context(), req.ID); err != nil {
			log.WithError(err).Error("failed to remove product")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product removed successfully"})
	}
}
