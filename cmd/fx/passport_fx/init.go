package passport_fx

import (
	"go.uber.org/fx"

	"globetrek/internal/repositories"
	"globetrek/internal/services"
)

var Module = fx.Provide(providePassportService)

func providePassportService(ledger repositories.LedgerRepository) services.PassportServiceInterface {
	return services.NewPassportService(ledger)
}
