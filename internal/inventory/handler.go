package inventory

import (
	"net/http"

	"github.com/josepha8674-lab/Best-restaurant/internal/store"

	"github.com/gin-gonic/gin"
)

// Reader serves the latest synchronized ingredient snapshot.
type Reader interface {
	Ingredients() []Ingredient
}

type Handler struct {
	service *Service
	reader  Reader
}

func NewHandler(service *Service, reader Reader) *Handler {
	return &Handler{service: service, reader: reader}
}

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.reader.Ingredients())
}

func (h *Handler) Create(c *gin.Context) {
	var ing Ingredient
	if err := c.ShouldBindJSON(&ing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ing.ID = ""

	if err := h.service.Save(c.Request.Context(), &ing); err != nil {
		respondWriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ing)
}

func (h *Handler) Update(c *gin.Context) {
	var ing Ingredient
	if err := c.ShouldBindJSON(&ing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ing.ID = c.Param("id")

	if err := h.service.Save(c.Request.Context(), &ing); err != nil {
		respondWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, ing)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondWriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ingredient deleted"})
}

// Store failures carry their own status; anything else from the service is a
// validation problem.
func respondWriteError(c *gin.Context, err error) {
	code := store.HTTPStatus(err)
	if code == http.StatusInternalServerError {
		code = http.StatusBadRequest
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
