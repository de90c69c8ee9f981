package handlers

import (
	"net/http"

	"riftbook/api/filters"
	profileservice "riftbook/api/services/profile"

	"github.com/gin-gonic/gin"
)

// HistoryHandler is the handler for the search history and favorites.
type HistoryHandler struct {
	ProfileService *profileservice.Service
}

type HistoryHandlerDependencies struct {
	ProfileService *profileservice.Service
}

// NewHistoryHandler creates a new instance of the history handler.
func NewHistoryHandler(deps *HistoryHandlerDependencies) *HistoryHandler {
	return &HistoryHandler{
		ProfileService: deps.ProfileService,
	}
}

// GetHistory returns the recent searches, most recent first.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	records, err := h.ProfileService.RecentSearches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": records})
}

// GetFavorites returns the bookmarked players.
func (h *HistoryHandler) GetFavorites(c *gin.Context) {
	records, err := h.ProfileService.Favorites()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": records})
}

// ToggleFavorite bookmarks a player, or removes the bookmark when present.
func (h *HistoryHandler) ToggleFavorite(c *gin.Context) {
	var body filters.FavoriteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favorited, err := h.ProfileService.ToggleFavorite(body.RiotId, body.Region)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"favorited": favorited}})
}
