package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kyodai-travel/tourbook/internal/app"
)

func SetupRouter(app *app.App) *gin.Engine {
	router := gin.Default()

	authHandler := NewAuthHandler(app)
	catalogHandler := NewCatalogHandler(app)
	bookingHandler := NewBookingHandler(app)
	adminHandler := NewAdminHandler(app)

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.HandleRegister)
		api.POST("/auth/login", authHandler.HandleClientLogin)
		api.POST("/auth/logout", authHandler.HandleClientLogout)

		api.GET("/packages", catalogHandler.HandleListPackages)
		api.GET("/packages/:id", catalogHandler.HandleGetPackage)
		api.GET("/packages/:id/reviews", catalogHandler.HandleListReviews)
		api.POST("/packages/:id/reviews", catalogHandler.HandleCreateReview)
		api.GET("/destinations", catalogHandler.HandleListDestinations)
		api.GET("/categories", catalogHandler.HandleListCategories)

		api.POST("/bookings", bookingHandler.HandleCreateBooking)
	}

	my := api.Group("/my", RequireClient(app))
	{
		my.GET("/profile", authHandler.HandleProfile)
		my.PUT("/profile", authHandler.HandleUpdateProfile)
		my.GET("/bookings", bookingHandler.HandleMyBookings)
		my.GET("/invoices", bookingHandler.HandleMyInvoices)
		my.GET("/invoices/:id", bookingHandler.HandleGetInvoice)
	}

	api.POST("/admin/auth/login", authHandler.HandleAdminLogin)
	api.POST("/admin/auth/logout", authHandler.HandleAdminLogout)

	admin := api.Group("/admin", RequireAdmin(app))
	{
		admin.GET("/packages", adminHandler.HandleListPackages)
		admin.POST("/packages", adminHandler.HandleCreatePackage)
		admin.GET("/packages/:id", adminHandler.HandleGetPackage)
		admin.PUT("/packages/:id", adminHandler.HandleUpdatePackage)
		admin.DELETE("/packages/:id", adminHandler.HandleDeletePackage)

		admin.POST("/destinations", adminHandler.HandleCreateDestination)
		admin.PUT("/destinations/:id", adminHandler.HandleUpdateDestination)
		admin.DELETE("/destinations/:id", adminHandler.HandleDeleteDestination)

		admin.POST("/categories", adminHandler.HandleCreateCategory)

		admin.GET("/bookings", adminHandler.HandleListBookings)
		admin.GET("/recent-bookings", adminHandler.HandleRecentBookings)
		admin.PUT("/bookings/:id", adminHandler.HandleUpdateBookingStatus)
		admin.PUT("/bookings/:id/payment", adminHandler.HandleUpdatePaymentStatus)

		admin.GET("/stats", adminHandler.HandleStats)
	}

	return router
}
