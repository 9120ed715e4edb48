package uploadsfx

import (
	"go.uber.org/fx"

	"github.com/ahaavila/e-colect/internal/infra"
	"github.com/ahaavila/e-colect/pkg/uploads"
)

var Module = fx.Provide(
	provideStore)

func provideStore(cfg *infra.Config) (*uploads.Store, error) {
	return uploads.NewStore(cfg.UploadDir)
}
