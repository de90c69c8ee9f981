package modules

import (
	"fmt"
	"time"

	"riftbook/api/cache"
	"riftbook/api/handlers"
	"riftbook/api/repositories/history"
	profileservice "riftbook/api/services/profile"
	"riftbook/ddragon"
	"riftbook/pkg/config"
	"riftbook/pkg/redis"
	"riftbook/riot"
	"riftbook/riot/requests"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Module containing the router and every initialized handler.
type Module struct {
	Router *gin.Engine

	ChampionHandler *handlers.ChampionHandler
	ItemHandler     *handlers.ItemHandler
	ProfileHandler  *handlers.ProfileHandler
	HistoryHandler  *handlers.HistoryHandler
}

// ModuleDependencies are the shared resources of every handler.
type ModuleDependencies struct {
	Config  *config.Config
	Redis   *redis.Client
	History history.Repository
	Logger  zerolog.Logger
}

// NewModule creates a module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) (*Module, error) {
	router := gin.Default()

	// One authenticated client for the Riot hosts, one anonymous client
	// for the public catalog host.
	riotClient := riot.NewClient(requests.NewClient(&requests.ClientDeps{
		ApiKey:     deps.Config.ApiKey,
		MaxRetries: deps.Config.MaxRetries,
		Logger:     deps.Logger,
	}))

	catalogLoader := ddragon.NewLoader(&ddragon.LoaderDeps{
		Requests: requests.NewClient(&requests.ClientDeps{
			MaxRetries: deps.Config.MaxRetries,
			Logger:     deps.Logger,
		}),
		Docs: cache.NewDocumentCache(&cache.DocumentCacheDeps{
			Redis:  deps.Redis,
			Logger: deps.Logger,
		}),
		Logger: deps.Logger,
	})

	profileService := profileservice.NewService(profileservice.ServiceDeps{
		Riot:             riotClient,
		MatchCache:       cache.NewTTLCache(cacheTTLOrDefault(deps.Config.CacheTTL), nil),
		History:          deps.History,
		MatchCount:       deps.Config.MatchCount,
		MasteryCount:     deps.Config.MasteryCount,
		LivePollInterval: deps.Config.LivePollInterval,
		Logger:           deps.Logger,
	})

	championHandler, err := initializeChampionHandler(deps)
	if err != nil {
		return nil, fmt.Errorf("couldn't start the champion service: %w", err)
	}

	return &Module{
		Router:          router,
		ChampionHandler: championHandler,
		ItemHandler:     initializeItemHandler(deps, catalogLoader),
		ProfileHandler:  initializeProfileHandler(profileService),
		HistoryHandler:  initializeHistoryHandler(profileService),
	}, nil
}

// Keep the ttl cache window sane even with a broken configuration.
func cacheTTLOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 5 * time.Minute
	}
	return ttl
}
