package ai

import (
	"net/http"

	"github.com/josepha8674-lab/Best-restaurant/internal/menu"

	"github.com/gin-gonic/gin"
)

// MenuReader resolves a menu item for profitability analysis.
type MenuReader interface {
	MenuItem(id string) (menu.MenuItem, bool)
}

type Handler struct {
	assist *Assist
	reader MenuReader
}

func NewHandler(assist *Assist, reader MenuReader) *Handler {
	return &Handler{assist: assist, reader: reader}
}

type describeRequest struct {
	DishName    string   `json:"dishName"`
	Ingredients []string `json:"ingredients"`
}

func (h *Handler) Describe(c *gin.Context) {
	var req describeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DishName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dishName is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"description": h.assist.Description(c.Request.Context(), req.DishName, req.Ingredients),
	})
}

type recipeRequest struct {
	DishName string `json:"dishName"`
}

func (h *Handler) SuggestRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DishName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dishName is required"})
		return
	}

	// nil means no suggestion; the editor simply proceeds without one
	c.JSON(http.StatusOK, gin.H{
		"suggestion": h.assist.RecipeSuggestion(c.Request.Context(), req.DishName),
	})
}

func (h *Handler) Profitability(c *gin.Context) {
	item, ok := h.reader.MenuItem(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis": h.assist.Profitability(c.Request.Context(), item),
		"margin":   menu.Margin(item.Price, item.TotalCost),
	})
}
