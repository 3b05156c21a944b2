package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterOptions struct {
	Production     bool
	AllowedOrigins []string
}

// Setup builds the gin engine with every storefront route under /api.
func Setup(h *Handler, opts RouterOptions) *gin.Engine {
	if opts.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	config := cors.DefaultConfig()
	if len(opts.AllowedOrigins) > 0 {
		config.AllowOrigins = opts.AllowedOrigins
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(config))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		api.POST("/auth/login", h.Login)
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/me", h.Me)
		api.PATCH("/auth/profile", h.UpdateProfile)

		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.POST("/products/:id/views", h.TrackView)
		api.GET("/products/:id/reviews", h.ProductReviews)
		api.POST("/products/:id/reviews", h.AddReview)
		api.GET("/recommendations", h.Recommendations)
		api.GET("/view-history", h.ViewHistory)

		api.GET("/doctors", h.ListDoctors)
		api.GET("/doctors/:id", h.GetDoctor)
		api.GET("/therapies", h.ListTherapies)

		api.GET("/cart", h.GetCart)
		api.POST("/cart/items", h.AddToCart)
		api.DELETE("/cart/items/:productId", h.RemoveFromCart)
		api.DELETE("/cart", h.ClearCart)

		api.POST("/orders", h.PlaceOrder)
		api.GET("/orders", h.MyOrders)
		api.GET("/orders/:id", h.GetOrder)

		api.GET("/wishlist", h.GetWishlist)
		api.GET("/wishlist/:productId", h.InWishlist)
		api.POST("/wishlist/:productId/toggle", h.ToggleWishlist)

		api.POST("/appointments", h.BookAppointment)
		api.GET("/appointments", h.MyAppointments)
		api.POST("/appointments/:id/transcript", h.AttachTranscript)
		api.POST("/appointments/:id/cancel", h.CancelAppointment)

		api.GET("/dosha/questions", h.DoshaQuestions)
		api.POST("/dosha/evaluate", h.EvaluateDosha)

		api.GET("/chat", h.ChatTranscript)
		api.POST("/chat", h.SendChat)
	}

	admin := api.Group("/admin", h.RequireAdmin())
	{
		admin.POST("/products", h.CreateProduct)
		admin.PATCH("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.POST("/doctors", h.CreateDoctor)
		admin.PATCH("/doctors/:id", h.UpdateDoctor)
		admin.DELETE("/doctors/:id", h.DeleteDoctor)

		admin.GET("/orders", h.AllOrders)
		admin.PATCH("/orders/:id/status", h.UpdateOrderStatus)
		admin.GET("/appointments", h.AllAppointments)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
