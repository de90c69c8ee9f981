package modules

import (
	"riftbook/api/handlers"
	championservice "riftbook/api/services/champion"
)

func initializeChampionHandler(deps *ModuleDependencies) (*handlers.ChampionHandler, error) {
	championService, err := championservice.NewService(championservice.ServiceDeps{
		ChampionsFile: deps.Config.ChampionsFile,
		Logger:        deps.Logger,
	})
	if err != nil {
		return nil, err
	}

	return handlers.NewChampionHandler(&handlers.ChampionHandlerDependencies{
		ChampionService: championService,
	}), nil
}
