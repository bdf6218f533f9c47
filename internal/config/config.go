package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	MongoURI       string
	Database       string
	Host           string
	Port           string
	AllowedOrigins []string
	ProductsFile   string
}

// Load reads configuration from the environment, with a .env file as
// an optional source for local development. Missing variables fall
// back to development defaults.
func Load() Config {
	_ = godotenv.Load() // no .env file is fine

	return Config{
		MongoURI: getenv("MONGODB_URL", "mongodb://localhost:27017"),
		Database: getenv("DATABASE_NAME", "bazaar_baba"),
		Host:     getenv("HOST", "0.0.0.0"),
		Port:     getenv("PORT", "8000"),
		AllowedOrigins: splitOrigins(getenv("ALLOWED_ORIGINS",
			"http://localhost:3000,http://localhost:5500,http://127.0.0.1:5500,http://127.0.0.1:3000")),
		ProductsFile: getenv("PRODUCTS_FILE", "data/products.json"),
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
