package authfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/ahaavila/e-colect/internal/api/controllers"
	"github.com/ahaavila/e-colect/internal/repositories"
	"github.com/ahaavila/e-colect/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAuthController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

func provideAuthController(accountService services.AccountServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(accountService)
}
