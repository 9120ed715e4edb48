package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/ahaavila/e-colect/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *infra.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
