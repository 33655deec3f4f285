package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Gr10greesh/E-commerce/auth"
	"github.com/Gr10greesh/E-commerce/config"
	cartControllers "github.com/Gr10greesh/E-commerce/controllers/cart"
	productcontroller "github.com/Gr10greesh/E-commerce/controllers/product"
	uploadcontroller "github.com/Gr10greesh/E-commerce/controllers/upload"
	"github.com/Gr10greesh/E-commerce/middleware"
	"github.com/Gr10greesh/E-commerce/store"
)

// SetupRoutes wires every endpoint to its store-backed handler.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	users := store.NewUsers(db)
	products := store.NewProducts(db)
	carts := store.NewCarts(db)

	authService := auth.NewService(users, cfg.JWTSecret, cfg.TokenTTL)

	// ──────────────── Auth ────────────────
	r.POST("/signup", auth.Signup(authService))
	r.POST("/login", auth.Login(authService))

	// ──────────────── Catalog ────────────────
	r.POST("/addproduct", productcontroller.AddProduct(products))
	r.GET("/maxproductid", productcontroller.GetMaxProductID(products))
	r.GET("/allproducts", productcontroller.GetProducts(products))
	r.GET("/product/:id", productcontroller.GetProductByID(products))
	r.GET("/category/:category", productcontroller.GetProductsByCategory(products))
	r.POST("/removeproduct", productcontroller.RemoveProduct(products))
	r.GET("/exportproducts", productcontroller.ExportProducts(products))

	// ──────────────── Cart (token-protected) ────────────────
	protected := r.Group("/")
	protected.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		protected.POST("/update-cart", cartControllers.UpdateCart(carts, products))
		protected.GET("/cart", cartControllers.GetCart(carts))
	}

	// ──────────────── Uploads + liveness ────────────────
	r.POST("/upload", uploadcontroller.UploadImage(cfg.UploadDir, cfg.PublicURL))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "E-commerce API is running")
	})
}
