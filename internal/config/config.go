package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env string

	DBDriver    string
	StoragePath string
	DBUrl       string
	LogSQL      bool

	ServerHost string
	ServerPort string
}

// Load reads an optional .env file, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}

	return &Config{
		Env:         getEnv("APP_ENV", "local"),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		StoragePath: getEnv("STORAGE_PATH", "appointments_db.sqlite"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		LogSQL:      getBool("LOG_SQL", false),
		ServerHost:  getEnv("SERVER_HOST", "127.0.0.1"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.ServerHost, c.ServerPort)
}

func (c *Config) IsLocal() bool {
	return c.Env == "local"
}
