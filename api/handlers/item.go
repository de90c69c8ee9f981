package handlers

import (
	"net/http"

	"riftbook/api/filters"
	itemservice "riftbook/api/services/item"
	"riftbook/ddragon"

	"github.com/gin-gonic/gin"
)

// ItemHandler is the handler for the item shop endpoints.
type ItemHandler struct {
	ItemService *itemservice.Service
}

type ItemHandlerDependencies struct {
	ItemService *itemservice.Service
}

// NewItemHandler creates a new instance of the item handler.
func NewItemHandler(deps *ItemHandlerDependencies) *ItemHandler {
	return &ItemHandler{
		ItemService: deps.ItemService,
	}
}

// ListItems returns the shop filtered and sorted by the query facets.
func (h *ItemHandler) ListItems(c *gin.Context) {
	var qp filters.ItemQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	criteria := filters.NewItemCriteria(&qp)
	items := h.ItemService.List(c.Request.Context(), criteria)

	c.JSON(http.StatusOK, gin.H{"result": items})
}

// GetItemFacets returns the distinct tags of the shop.
func (h *ItemHandler) GetItemFacets(c *gin.Context) {
	language := ddragon.Language(c.Query("lang"))
	facets := h.ItemService.Facets(c.Request.Context(), language)

	c.JSON(http.StatusOK, gin.H{"result": facets})
}
