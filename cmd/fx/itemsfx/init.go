package itemsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/ahaavila/e-colect/internal/api/controllers"
	"github.com/ahaavila/e-colect/internal/infra"
	"github.com/ahaavila/e-colect/internal/repositories"
	"github.com/ahaavila/e-colect/internal/services"
	"github.com/ahaavila/e-colect/pkg/uploads"
)

var Module = fx.Provide(
	provideItemRepo, provideItemService, provideItemsController)

func provideItemRepo(db *gorm.DB) repositories.ItemRepository {
	return repositories.NewItemRepository(db)
}

func provideItemService(itemRepo repositories.ItemRepository, cfg *infra.Config) services.ItemServiceInterface {
	return services.NewItemService(itemRepo, cfg.AssetBaseURL)
}

func provideItemsController(itemService services.ItemServiceInterface, store *uploads.Store) *controllers.ItemsController {
	return controllers.NewItemsController(itemService, store)
}
