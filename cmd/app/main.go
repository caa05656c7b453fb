package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"venu/cmd/fx/accountfx"
	"venu/cmd/fx/bookingfx"
	"venu/cmd/fx/dbfx"
	"venu/cmd/fx/facilityfx"
	"venu/cmd/fx/loggerfx"
	"venu/cmd/fx/mailfx"
	"venu/cmd/fx/memcachefx"
	"venu/cmd/fx/notificationfx"
	"venu/cmd/fx/statsfx"
	"venu/internal/api/controllers"
	"venu/internal/models/db_models"
	"venu/internal/services"
	"venu/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		dbfx.Module,
		loggerfx.Module,
		mailfx.Module,
		memcachefx.Module,
		accountfx.Module,
		bookingfx.Module,
		notificationfx.Module,
		statsfx.Module,
		facilityfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedFacilities),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func SeedFacilities(lc fx.Lifecycle, facilityService services.FacilityServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return facilityService.SeedDefaults(ctx)
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	bookingController *controllers.BookingController,
	notificationController *controllers.NotificationController,
	statsController *controllers.StatsController,
	facilityController *controllers.FacilityController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, bookingController, notificationController, statsController, facilityController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	bookingController *controllers.BookingController,
	notificationController *controllers.NotificationController,
	statsController *controllers.StatsController,
	facilityController *controllers.FacilityController) {

	adminLevel := middleware.RoleMiddleware(db_models.RoleAdmin, db_models.RoleSuperAdmin)
	superAdminOnly := middleware.RoleMiddleware(db_models.RoleSuperAdmin)

	// Unauthenticated surface: sign-up/sign-in and the public catalog
	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	r.GET("/facilities", facilityController.ListFacilities)

	me := accounts.Group("", middleware.JWTAuthMiddleware())
	me.GET("/me", accountController.Me)
	me.PATCH("/me", accountController.UpdateMe)
	me.GET("/all", superAdminOnly, accountController.GetAllAccounts)

	bookings := r.Group("/bookings", middleware.JWTAuthMiddleware())
	bookings.POST("", bookingController.CreateBooking)
	bookings.GET("", bookingController.ListBookings)
	bookings.GET("/:id", bookingController.GetBooking)
	bookings.PATCH("/:id/status", adminLevel, bookingController.UpdateStatus)
	bookings.PATCH("/:id/assign", adminLevel, bookingController.AssignAdmin)
	bookings.PATCH("/:id/spend", adminLevel, bookingController.UpdateSpend)

	notifications := r.Group("/notifications", middleware.JWTAuthMiddleware())
	notifications.POST("", notificationController.CreateNotification)
	notifications.GET("", notificationController.ListNotifications)
	notifications.PATCH("/:id/read", notificationController.MarkRead)
	notifications.PATCH("/read-all", notificationController.MarkAllRead)

	dashboard := r.Group("/dashboard", middleware.JWTAuthMiddleware())
	dashboard.GET("/stats", superAdminOnly, statsController.GetDashboard)
	dashboard.GET("/admin-performance", adminLevel, statsController.GetAdminPerformance)
}
