package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/CodeAdityaP/Pixel/internal/handlers"
	"github.com/CodeAdityaP/Pixel/internal/middleware"
)

// CORSMiddleware tells the browser that the storefront origin is allowed
// to send credentialed requests to us.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight OPTIONS requests get an empty 204 reply.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// CORS must run before everything else.
	router.Use(CORSMiddleware())

	api := router.Group("/api")
	{
		// --- Ping Route (Public) ---
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		api.POST("/users/register", h.Register)
		api.POST("/users/login", h.Login)

		// --- Public Catalog Routes ---
		api.GET("/products", h.ListProducts)
		api.GET("/products/search", h.SearchProducts)
		api.GET("/products/:id", h.GetProduct)

		// --- Profile Routes (Login Required) ---
		profile := api.Group("/users")
		profile.Use(middleware.AuthMiddleware())
		{
			profile.GET("/profile", h.GetProfile)
			profile.PUT("/profile", h.UpdateProfile)
		}

		// --- Cart & Wishlist Routes (Optional Auth) ---
		// Anonymous callers get local-only success responses here.
		sync := api.Group("/")
		sync.Use(middleware.OptionalAuthMiddleware())
		{
			sync.GET("/cart", h.GetCart)
			sync.POST("/cart/add", h.AddToCart)
			sync.PUT("/cart/update/:productId", h.UpdateCartItem)
			sync.DELETE("/cart/remove/:productId", h.RemoveFromCart)
			sync.DELETE("/cart/clear", h.ClearCart)

			sync.GET("/wishlist", h.GetWishlist)
			sync.POST("/wishlist/add", h.AddToWishlist)
			sync.DELETE("/wishlist/remove/:productId", h.RemoveFromWishlist)
		}

		// --- Order Routes (Login Required) ---
		orders := api.Group("/orders")
		orders.Use(middleware.AuthMiddleware())
		{
			orders.POST("/create", h.CreateOrder)
			orders.GET("/my-orders", h.GetMyOrders)
			orders.GET("/stats/summary", h.GetOrderStats)
			orders.GET("/:orderId", h.GetOrder)
			orders.PUT("/:orderId/cancel", h.CancelOrder)
		}

		// --- Admin-Only Routes ---
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		admin.Use(middleware.AdminMiddleware(h.Users))
		{
			admin.POST("/products", h.CreateProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.PATCH("/products/:id/stock", h.AdjustStock)

			admin.PUT("/orders/:orderId/status", h.UpdateOrderStatus)
			admin.PUT("/orders/:orderId/tracking", h.AddTracking)

			admin.GET("/dashboard-stats", h.GetAdminStats)
		}
	}

	return router
}
