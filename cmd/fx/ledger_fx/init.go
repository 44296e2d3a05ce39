package ledger_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrek/internal/repositories"
	"globetrek/pkg/logger"
)

var Module = fx.Provide(provideLedgerRepo)

func provideLedgerRepo(db *gorm.DB, log logger.Logger) repositories.LedgerRepository {
	return repositories.NewLedgerRepository(db, log)
}
