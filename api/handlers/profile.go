package handlers

import (
	"errors"
	"net/http"
	"strings"

	"riftbook/api/filters"
	profileservice "riftbook/api/services/profile"
	"riftbook/riot"
	"riftbook/riot/requests"

	"github.com/gin-gonic/gin"
)

// ProfileHandler is the handler for the player profile endpoints.
type ProfileHandler struct {
	ProfileService *profileservice.Service
}

type ProfileHandlerDependencies struct {
	ProfileService *profileservice.Service
}

// NewProfileHandler creates a new instance of the profile handler.
func NewProfileHandler(deps *ProfileHandlerDependencies) *ProfileHandler {
	return &ProfileHandler{
		ProfileService: deps.ProfileService,
	}
}

// GetProfile resolves and aggregates a full player profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	var up filters.ProfileURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.ProfileService.LoadProfile(c.Request.Context(), up.Region, up.RiotId)
	if err != nil {
		c.JSON(profileErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

// GetLiveGame returns the live game snapshot of a resolved player.
// An empty result means the player is not in game.
func (h *ProfileHandler) GetLiveGame(c *gin.Context) {
	region := c.Param("region")
	puuid := c.Param("puuid")

	liveGame, err := h.ProfileService.LiveGame(c.Request.Context(), region, puuid)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": liveGame})
}

func profileErrorStatus(err error) int {
	switch {
	case errors.Is(err, riot.ErrInvalidRiotID):
		return http.StatusBadRequest
	case strings.Contains(err.Error(), "unknown region"):
		return http.StatusBadRequest
	case requests.IsRateLimited(err):
		return http.StatusTooManyRequests
	case strings.Contains(err.Error(), "not found"):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
