package uploadcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// FileField is the multipart field the storefront uploads under.
const FileField = "product"

// POST /upload
//
// Saved files are named <field>_<timestamp><ext> and served back under
// /images. Nothing cleans the file up if no product write follows.
func UploadImage(uploadDir, publicURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile(FileField)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
			return
		}

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			log.WithError(err).Error("failed to create upload folder")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
			return
		}

		filename := fmt.Sprintf("%s_%d%s", FileField, time.Now().UnixMilli(), filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
			log.WithError(err).Error("failed to save uploaded image")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"image_url": fmt.Sprintf("%s/images/%s", publicURL, filename),
		})
	}
}
