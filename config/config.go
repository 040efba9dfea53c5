package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config reads a key from the environment, loading .env the first time.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file found, using system environment")
		}
	})
	return os.Getenv(key)
}

// ConfigOr reads a key and falls back to def when unset.
func ConfigOr(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}
