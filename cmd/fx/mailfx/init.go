package mailfx

import (
	"go.uber.org/fx"

	"venu/internal/services"
)

var Module = fx.Provide(
	provideMailService)

func provideMailService() services.IMailService {
	return services.NewSMTPMailService(services.SMTPConfigFromEnv())
}
