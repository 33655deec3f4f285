package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Gr10greesh/E-commerce/models"
)

type addProductRequest struct {
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	NewPrice float64 `json:"new_price"`
	OldPrice float64 `json:"old_price"`
}

// POST /addproduct
func AddProduct(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Invalid request body"})
			return
		}
		if req.Name == "" || req.Image == "" || req.Category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "name, image and category are required"})
			return
		}

		// Read-then-write: concurrent adds can observe the same max and
		// produce duplicate sequential ids.
		maxID, err := catalog.MaxSequentialID(c.Request.Context())
		if err != nil {
			log.WithError(err).Error("failed to read max product id")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
			return
		}

		product := models.Product{
			SeqID:     maxID + 1,
			Name:      req.Name,
			Image:     req.Image,
			Category:  req.Category,
			NewPrice:  req.NewPrice,
			OldPrice:  req.OldPrice,
			Date:      time.Now(),
			Available: true,
		}
		if err := catalog.Create(c.Request.Context(), &product); err != nil {
			log.WithError(err).Error("failed to save product")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "name": product.Name})
	}
}
