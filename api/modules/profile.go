package modules

import (
	"riftbook/api/handlers"
	profileservice "riftbook/api/services/profile"
)

func initializeProfileHandler(profileService *profileservice.Service) *handlers.ProfileHandler {
	return handlers.NewProfileHandler(&handlers.ProfileHandlerDependencies{
		ProfileService: profileService,
	})
}

func initializeHistoryHandler(profileService *profileservice.Service) *handlers.HistoryHandler {
	return handlers.NewHistoryHandler(&handlers.HistoryHandlerDependencies{
		ProfileService: profileService,
	})
}
