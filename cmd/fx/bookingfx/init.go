package bookingfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"venu/internal/api/controllers"
	"venu/internal/repositories"
	"venu/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService, provideBookingController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	accountRepo repositories.AccountRepository,
	notificationRepo repositories.NotificationRepository,
	mailService services.IMailService,
	logger *zap.Logger,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, accountRepo, notificationRepo, mailService, logger)
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
