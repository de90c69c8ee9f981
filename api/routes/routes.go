package routes

import (
	"riftbook/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.ChampionHandler:
			r.registerChampionHandler(handler)
		case *handlers.ItemHandler:
			r.registerItemHandler(handler)
		case *handlers.ProfileHandler:
			r.registerProfileHandler(handler)
		case *handlers.HistoryHandler:
			r.registerHistoryHandler(handler)
		}
	}
}

// Register the champion catalog handler.
func (r *Router) registerChampionHandler(handler *handlers.ChampionHandler) {
	champions := r.api.Group("/champions")
	{
		champions.GET("", handler.ListChampions)
		champions.GET("/stats", handler.GetRosterStats)
		champions.GET("/facets", handler.GetChampionFacets)
		champions.GET("/:championId", handler.GetChampion)
	}
}

// Register the item shop handler.
func (r *Router) registerItemHandler(handler *handlers.ItemHandler) {
	items := r.api.Group("/items")
	{
		items.GET("", handler.ListItems)
		items.GET("/facets", handler.GetItemFacets)
	}
}

// Register the profile handler.
func (r *Router) registerProfileHandler(handler *handlers.ProfileHandler) {
	profiles := r.api.Group("/profiles")
	{
		profiles.GET("/:region/:riotId", handler.GetProfile)
	}

	// Resolved players poll this with the stable identifier.
	r.api.GET("/live/:region/:puuid", handler.GetLiveGame)
}

// Register the history and favorites handler.
func (r *Router) registerHistoryHandler(handler *handlers.HistoryHandler) {
	r.api.GET("/history", handler.GetHistory)

	favorites := r.api.Group("/favorites")
	{
		favorites.GET("", handler.GetFavorites)
		favorites.POST("", handler.ToggleFavorite)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
