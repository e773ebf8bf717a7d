package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DrewGalowayDev/AIRBNB/config"
	"github.com/DrewGalowayDev/AIRBNB/handlers"
	"github.com/DrewGalowayDev/AIRBNB/middleware"
	"github.com/DrewGalowayDev/AIRBNB/services"
)

func SetupRoutes(router *gin.Engine, store services.ReservationStore, bookingService *services.BookingService, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(store, cfg)
	apartmentHandler := handlers.NewApartmentHandler(store, cfg)
	bookingHandler := handlers.NewBookingHandler(store, bookingService, cfg)
	dashboardHandler := handlers.NewDashboardHandler(store, cfg)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Server is running",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		// Public routes - apartments and availability
		v1.GET("/apartments", apartmentHandler.GetApartments)
		v1.GET("/apartments/:id", apartmentHandler.GetApartmentByID)
		v1.GET("/availability", bookingHandler.CheckAvailability)

		// Booking creation works for guests too; identity is attached when
		// a valid token is present.
		v1.POST("/bookings", middleware.OptionalAuthMiddleware(cfg), bookingHandler.CreateBooking)

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			// User profile
			protected.GET("/auth/me", authHandler.GetMe)
			protected.PUT("/auth/me", authHandler.UpdateProfile)

			// Booking history and drafts
			bookings := protected.Group("/bookings")
			{
				bookings.GET("", bookingHandler.GetMyBookings)
				bookings.PUT("/draft", bookingHandler.SaveDraft)
				bookings.GET("/draft", bookingHandler.GetDraft)
				bookings.DELETE("/draft", bookingHandler.ClearDraft)
				bookings.GET("/:id", bookingHandler.GetBookingByID)
				bookings.DELETE("/:id", bookingHandler.CancelBooking)
			}

			// Dashboard
			protected.GET("/dashboard", dashboardHandler.GetDashboard)

			// Favorites
			favorites := protected.Group("/favorites")
			{
				favorites.GET("", dashboardHandler.GetFavorites)
				favorites.POST("", dashboardHandler.AddFavorite)
				favorites.GET("/count", dashboardHandler.GetFavoritesCount)
				favorites.DELETE("/:apartment_id", dashboardHandler.RemoveFavorite)
			}
		}
	}
}
