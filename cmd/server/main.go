package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"dailydiet/server/internal/api"
	"dailydiet/server/internal/config"
	"dailydiet/server/internal/models"
	"dailydiet/server/internal/store"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Configure GORM logger to ignore "record not found" errors; missed
	// lookups are a normal outcome for meal queries scoped to a session
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := models.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	apiServer := api.NewServer(store.New(db))

	log.Printf("Starting HTTP server on 0.0.0.0:%s", cfg.Server.Port)
	log.Printf("REST API endpoint: http://0.0.0.0:%s", cfg.Server.Port)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Server.Port, apiServer.GetRouter()); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
