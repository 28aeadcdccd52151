package main

import (
	"os"

	"bitacora_materiales/internal/adapter/http/routes"
	"bitacora_materiales/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Bitácora de Materiales API
// @version         1.0
// @description     Catalog search and material lines of field logbooks, backed by DynamoDB or Postgres.

// @host      localhost:8080
// @BasePath  /api

func main() {
	log, err := logging.New(logging.Config{
		Level:       os.Getenv("LOG_LEVEL"),
		Development: os.Getenv("APP_ENV") == "development",
	})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := routes.Run(); err != nil {
		log.Fatal("failed to start the application", zap.Error(err))
	}
}
