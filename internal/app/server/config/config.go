package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	defaultRunAddress = ":8080"
	defaultMigrations = "migrations"
)

type Config struct {
	Env     string
	Server  server
	Storage storage
	DB      db
	Logger  logger
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type storage struct {
	Backend string `env:"STORAGE_BACKEND"`
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// MustLoad reads the server configuration from the environment, with an
// optional .env file for local runs.
func MustLoad() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("failed to load .env file, relying on environment variables")
		}
	}

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("STORAGE_BACKEND", StorageMemory)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrations)
	viper.SetDefault("LOG_LEVEL", "info")

	config := Config{
		Env: viper.GetString("APP_ENV"),
		Server: server{
			RunAddress: viper.GetString("RUN_ADDRESS"),
		},
		Storage: storage{
			Backend: viper.GetString("STORAGE_BACKEND"),
		},
		DB: db{
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
		},
		Logger: logger{
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
	}

	if config.Storage.Backend == StoragePostgres && config.DB.DatabaseURI == "" {
		log.Fatalln("DATABASE_URI is required when STORAGE_BACKEND=postgres")
	}

	return &config
}
