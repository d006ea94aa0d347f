package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds process configuration. The ledger core consumes a single
// knob: the directory where the JSON collections live.
type Config struct {
	DataDir string
}

// Load reads configuration from the environment. A .env file in the working
// directory is picked up when present; a missing one is not an error.
func Load() Config {
	_ = godotenv.Load()

	dir := os.Getenv("CASHDESK_DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	return Config{DataDir: dir}
}
