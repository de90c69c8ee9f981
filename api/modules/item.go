package modules

import (
	"riftbook/api/handlers"
	itemservice "riftbook/api/services/item"
	"riftbook/ddragon"
)

func initializeItemHandler(deps *ModuleDependencies, loader *ddragon.Loader) *handlers.ItemHandler {
	itemService := itemservice.NewService(itemservice.ServiceDeps{
		Loader:          loader,
		DefaultLanguage: deps.Config.DefaultLanguage,
		Logger:          deps.Logger,
	})

	return handlers.NewItemHandler(&handlers.ItemHandlerDependencies{
		ItemService: itemService,
	})
}
