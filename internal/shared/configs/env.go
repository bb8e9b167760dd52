package configs

import (
	"os"

	"github.com/joho/godotenv"
)

var Envs = struct {
	PORT            string
	GIN_MODE        string
	FRONTEND_ORIGIN string
	PUBLIC_DIR      string
}{}

// Load reads an optional .env file and then snapshots the environment.
// Must run before anything consults Envs.
func Load() {
	godotenv.Load()

	Envs.PORT = getenv("PORT", "3000")
	Envs.GIN_MODE = os.Getenv("GIN_MODE")
	Envs.FRONTEND_ORIGIN = getenv("FRONTEND_ORIGIN", "localhost:3000")
	Envs.PUBLIC_DIR = getenv("PUBLIC_DIR", "public")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
