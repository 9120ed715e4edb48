package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/ahaavila/e-colect/cmd/fx/authfx"
	"github.com/ahaavila/e-colect/cmd/fx/dbfx"
	"github.com/ahaavila/e-colect/cmd/fx/itemsfx"
	"github.com/ahaavila/e-colect/cmd/fx/pointsfx"
	"github.com/ahaavila/e-colect/cmd/fx/uploadsfx"
	"github.com/ahaavila/e-colect/internal/api/controllers"
	"github.com/ahaavila/e-colect/internal/infra"
	"github.com/ahaavila/e-colect/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(infra.LoadConfig),
		dbfx.Module,
		uploadsfx.Module,
		itemsfx.Module,
		pointsfx.Module,
		authfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *infra.Config,
	itemsController *controllers.ItemsController,
	pointsController *controllers.PointsController,
	authController *controllers.AuthController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, cfg, itemsController, pointsController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *infra.Config,
	itemsController *controllers.ItemsController,
	pointsController *controllers.PointsController,
	authController *controllers.AuthController) {

	r.GET("/items", itemsController.ListItemsHandler)

	pointsGroup := r.Group("/points")
	pointsGroup.POST("", pointsController.CreatePointHandler)
	pointsGroup.GET("", pointsController.ListPointsHandler)
	pointsGroup.GET("/:id", pointsController.GetPointHandler)

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.POST("/items", itemsController.CreateItemHandler)

	r.Static("/uploads", cfg.UploadDir)
}
