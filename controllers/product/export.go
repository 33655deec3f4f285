package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/tealeg/xlsx"
)

// GET /exportproducts
func ExportProducts(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.All(c.Request.Context())
		if err != nil {
			log.WithError(err).Error("failed to fetch products for export")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Ref", "Name", "Category", "NewPrice", "OldPrice", "Available", "Date"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.SeqID)
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.NewPrice)
			row.AddCell().SetValue(p.OldPrice)
			row.AddCell().SetValue(p.Available)
			row.AddCell().SetValue(p.Date.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			log.WithError(err).Error("failed to write Excel export")
		}
	}
}
