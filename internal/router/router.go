package router

import (
	"github.com/gin-gonic/gin"
	"github.com/leadiaz/compra-tu-auto-app-backend/config"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/controller"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/middleware"
)

type Router struct {
	authController       *controller.AuthController
	dealershipController *controller.DealershipController
	vehicleController    *controller.VehicleController
	offerController      *controller.OfferController
	favoriteController   *controller.FavoriteController
	reviewController     *controller.ReviewController
	purchaseController   *controller.PurchaseController
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	dealershipController *controller.DealershipController,
	vehicleController *controller.VehicleController,
	offerController *controller.OfferController,
	favoriteController *controller.FavoriteController,
	reviewController *controller.ReviewController,
	purchaseController *controller.PurchaseController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:       authController,
		dealershipController: dealershipController,
		vehicleController:    vehicleController,
		offerController:      offerController,
		favoriteController:   favoriteController,
		reviewController:     reviewController,
		purchaseController:   purchaseController,
		authMiddleware:       authMiddleware,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Compra Tu Auto API is running",
		})
	})

	admin := string(model.RoleAdmin)
	dealership := string(model.RoleDealership)
	buyer := string(model.RoleBuyer)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
			auth.GET("/menu", r.authMiddleware.Authenticate(), r.authController.Menu)
		}

		users := v1.Group("/users")
		{
			users.GET("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(admin),
				r.authController.ListUsers,
			)
		}

		dealerships := v1.Group("/dealerships")
		{
			dealerships.GET("", r.dealershipController.ListDealerships)
			dealerships.GET("/:id", r.dealershipController.GetDealership)
			dealerships.GET("/:id/offers", r.dealershipController.GetDealershipOffers)
			dealerships.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(admin),
				r.dealershipController.CreateDealership,
			)
			dealerships.POST("/:id/users",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(admin),
				r.dealershipController.LinkUser,
			)
		}

		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("", r.vehicleController.ListVehicles)
			vehicles.GET("/top", r.vehicleController.TopRanked)
			vehicles.GET("/:id", r.vehicleController.GetVehicle)
			vehicles.GET("/:id/offers", r.vehicleController.GetVehicleOffers)
			vehicles.GET("/:id/reviews", r.reviewController.GetVehicleReviews)
			vehicles.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(admin),
				r.vehicleController.CreateVehicle,
			)
		}

		offers := v1.Group("/offers")
		{
			offers.GET("", r.offerController.ListOffers)
			offers.GET("/mine",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(dealership),
				r.offerController.MyOffers,
			)
			offers.GET("/:id", r.offerController.GetOffer)
			offers.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(dealership),
				r.offerController.CreateOffer,
			)
		}

		favorite := v1.Group("/favorite")
		favorite.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole(buyer))
		{
			favorite.GET("", r.favoriteController.GetFavorite)
			favorite.PUT("", r.favoriteController.SetFavorite)
			favorite.DELETE("/:id", r.favoriteController.RemoveFavorite)
		}

		reviews := v1.Group("/reviews")
		reviews.Use(r.authMiddleware.Authenticate())
		{
			reviews.POST("", r.reviewController.CreateReview)
			reviews.GET("/mine", r.reviewController.MyReviews)
			reviews.PUT("/:id", r.reviewController.UpdateReview)
			reviews.DELETE("/:id", r.reviewController.DeleteReview)
		}

		purchases := v1.Group("/purchases")
		purchases.Use(r.authMiddleware.Authenticate())
		{
			purchases.POST("",
				r.authMiddleware.RequireRole(buyer),
				r.purchaseController.Purchase,
			)
			purchases.GET("/mine",
				r.authMiddleware.RequireRole(buyer),
				r.purchaseController.MyPurchases,
			)
			purchases.GET("/sales",
				r.authMiddleware.RequireRole(dealership),
				r.purchaseController.MySales,
			)
			purchases.GET("/:id", r.purchaseController.GetPurchase)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
