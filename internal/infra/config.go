package infra

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	PostgresURL  string
	AssetBaseURL string
	UploadDir    string
}

// LoadConfig reads the process configuration from the environment, loading
// a .env file first when one is present.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return &Config{
		Port:         getEnv("PORT", "3333"),
		PostgresURL:  getEnv("POSTGRES_URL", "host=localhost user=postgres password=postgres dbname=ecolect port=5432 sslmode=disable"),
		AssetBaseURL: getEnv("ASSET_BASE_URL", "http://localhost:3333/uploads/"),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
	}
}

func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
