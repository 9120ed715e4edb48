package pointsfx

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
	providePointRepo, providePointService, providePointsController)

func providePointRepo(db *gorm.DB) repositories.PointRepository {
	return repositories.NewPointRepository(db)
}

func providePointService(
	pointRepo repositories.PointRepository,
	itemRepo repositories.ItemRepository,
	cfg *infra.Config,
) services.PointServiceInterface {
	return services.NewPointService(pointRepo, itemRepo, cfg.AssetBaseURL)
}

func providePointsController(pointService services.PointServiceInterface, store *uploads.Store) *controllers.PointsController {
	return controllers.NewPointsController(pointService, store)
}
