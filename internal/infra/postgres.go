package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ahaavila/e-colect/internal/models/db_models"
)

func InitPostgresql(cfg *Config) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := Migrate(connectionPool); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

// Migrate applies the schema and seeds the item reference data when the
// table is still empty.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&db_models.Item{},
		&db_models.Point{},
		&db_models.PointItem{},
		&db_models.Account{},
	)
	if err != nil {
		return err
	}

	return SeedItems(db)
}

// SeedItems inserts the default recyclable-material categories once.
func SeedItems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&db_models.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []db_models.Item{
		{Title: "Lâmpadas", Image: "lampadas.svg"},
		{Title: "Pilhas e Baterias", Image: "baterias.svg"},
		{Title: "Papéis e Papelão", Image: "papeis-papelao.svg"},
		{Title: "Resíduos Eletrônicos", Image: "eletronicos.svg"},
		{Title: "Resíduos Orgânicos", Image: "organicos.svg"},
		{Title: "Óleo de Cozinha", Image: "oleo.svg"},
	}

	return db.Create(&items).Error
}
