package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tourgate/handlers"
	"tourgate/middleware"
)

// RegisterTourRoutes registers tour and guide endpoints.
func RegisterTourRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tours")
	{
		api.GET("", hb.ListToursHandler)
		api.GET("/available", hb.AvailableToursHandler)
		api.GET("/category/:category", hb.ToursByCategoryHandler)
		api.GET("/price", hb.ToursByPriceHandler)
		api.GET("/:id", hb.GetTourHandler)
		api.POST("", hb.CreateTourHandler)
		api.PUT("/:id", hb.UpdateTourHandler)
		api.DELETE("/:id", hb.DeleteTourHandler)
	}
	guides := r.Group("/api/guides")
	{
		guides.GET("", hb.ListGuidesHandler)
		guides.GET("/:id", hb.GetGuideHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.ListBookingsHandler)
		api.GET("/range", hb.BookingsByRangeHandler)
		api.GET("/tour/:id", hb.BookingsByTourHandler)
		api.GET("/user/:id", hb.BookingsByUserHandler)
		api.GET("/status/:status", hb.BookingsByStatusHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.POST("", hb.CreateBookingHandler)
		api.PUT("/:id", hb.UpdateBookingHandler)
		api.PATCH("/:id/cancel", hb.CancelBookingHandler)
		api.PATCH("/:id/confirm", hb.ConfirmBookingHandler)
	}
}

// RegisterIdentityRoutes registers user, destination and recommendation endpoints.
func RegisterIdentityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	users := r.Group("/api/users")
	{
		users.GET("", hb.ListUsersHandler)
		users.GET("/:id", hb.GetUserHandler)
		users.POST("", hb.CreateUserHandler)
	}
	destinations := r.Group("/api/destinations")
	{
		destinations.GET("", hb.ListDestinationsHandler)
		destinations.GET("/:id", hb.GetDestinationHandler)
	}
	recommendations := r.Group("/api/recommendations")
	{
		recommendations.GET("", hb.ListRecommendationsHandler)
		recommendations.GET("/user/:id", hb.RecommendationsByUserHandler)
		recommendations.GET("/:id", hb.GetRecommendationHandler)
	}
}

// RegisterCommerceRoutes registers offering and contract endpoints.
func RegisterCommerceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	offerings := r.Group("/api/offerings")
	{
		offerings.GET("", hb.ListOfferingsHandler)
		offerings.GET("/stats", hb.OfferingStatsHandler)
		offerings.GET("/type/:type", hb.OfferingsByTypeHandler)
		offerings.GET("/:id", hb.GetOfferingHandler)
		offerings.POST("", hb.CreateOfferingHandler)
		offerings.PUT("/:id", hb.UpdateOfferingHandler)
		offerings.DELETE("/:id", hb.DeleteOfferingHandler)
	}
	contracts := r.Group("/api/contracts")
	{
		contracts.GET("", hb.ListContractsHandler)
		contracts.GET("/stats", hb.ContractStatsHandler)
		contracts.GET("/offering/:id", hb.ContractsByOffering)
		contracts.GET("/user/:id", hb.ContractsByUserHandler)
		contracts.GET("/:id", hb.GetContractHandler)
		contracts.POST("", hb.CreateContractHandler)
		contracts.PUT("/:id", hb.UpdateContractHandler)
		contracts.PATCH("/:id/cancel", hb.CancelContractHandler)
	}
}

// RegisterReportRoutes registers the derived report endpoints.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.GET("/tours/popular", hb.PopularToursHandler)
		api.GET("/tours/categories", hb.ToursCategoryReport)
		api.GET("/bookings/period", hb.BookingsPeriodReport)
		api.GET("/bookings/status", hb.BookingsStatusReport)
		api.GET("/guides/performance", hb.GuidePerformanceReport)
		api.GET("/revenue", hb.RevenueReportHandler)
		api.GET("/consolidated", hb.ConsolidatedReport)
		api.GET("/offerings/top", hb.TopOfferingsReport)
	}
}

// RegisterMaintenanceRoutes registers cache administration endpoints.
func RegisterMaintenanceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cache")
	{
		api.POST("/flush", hb.FlushCacheHandler)
		api.DELETE("/reports", hb.PurgeReportCacheHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterTourRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterIdentityRoutes(r, hb)
	RegisterCommerceRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterMaintenanceRoutes(r, hb)
	RegisterHealthRoute(r)
}
