package main

import (
	"log"
	"os"

	"riftbook/api/modules"
	"riftbook/api/repositories/history"
	"riftbook/api/routes"
	"riftbook/pkg/config"
	"riftbook/pkg/logger"
	"riftbook/pkg/redis"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using the process environment")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	zlog := logger.New()

	// Redis is optional, the catalog cache runs memory only without it.
	redisClient := redis.NewClient(cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	db, err := history.Open(cfg.HistoryDBPath)
	if err != nil {
		log.Fatalf("Couldn't open the history database: %v", err)
	}

	historyRepository, err := history.NewRepository(db)
	if err != nil {
		log.Fatalf("Couldn't initialize the history repository: %v", err)
	}

	// Create a module with all necessary handlers.
	module, err := modules.NewModule(&modules.ModuleDependencies{
		Config:  cfg,
		Redis:   redisClient,
		History: historyRepository,
		Logger:  zlog,
	})
	if err != nil {
		log.Fatalf("Couldn't initialize the handlers: %v", err)
	}

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.ChampionHandler,
		module.ItemHandler,
		module.ProfileHandler,
		module.HistoryHandler,
	)

	zlog.Info().Str("port", cfg.Port).Msg("starting server")

	// Start the server.
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
