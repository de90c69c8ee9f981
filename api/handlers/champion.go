package handlers

import (
	"net/http"

	"riftbook/api/filters"
	championservice "riftbook/api/services/champion"

	"github.com/gin-gonic/gin"
)

// ChampionHandler is the handler for the champion catalog endpoints.
type ChampionHandler struct {
	ChampionService *championservice.Service
}

type ChampionHandlerDependencies struct {
	ChampionService *championservice.Service
}

// NewChampionHandler creates a new instance of the champion handler.
func NewChampionHandler(deps *ChampionHandlerDependencies) *ChampionHandler {
	return &ChampionHandler{
		ChampionService: deps.ChampionService,
	}
}

// ListChampions returns the roster filtered by the query facets.
func (h *ChampionHandler) ListChampions(c *gin.Context) {
	var qp filters.ChampionQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	criteria := filters.NewChampionCriteria(&qp)
	champions := h.ChampionService.List(criteria)

	c.JSON(http.StatusOK, gin.H{"result": champions})
}

// GetChampion returns the full entry of a single champion.
func (h *ChampionHandler) GetChampion(c *gin.Context) {
	var up filters.ChampionURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.ChampionService.ByID(up.ChampionId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": entry})
}

// GetRosterStats returns the aggregate facts of the full roster.
func (h *ChampionHandler) GetRosterStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": h.ChampionService.Stats()})
}

// GetChampionFacets returns the distinct filterable dimensions.
func (h *ChampionHandler) GetChampionFacets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": h.ChampionService.Facets()})
}
