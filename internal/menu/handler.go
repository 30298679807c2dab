package menu

import (
	"net/http"

	"github.com/josepha8674-lab/Best-restaurant/internal/store"

	"github.com/gin-gonic/gin"
)

// Reader serves the latest synchronized menu snapshot.
type Reader interface {
	MenuItems() []MenuItem
}

type Handler struct {
	service *Service
	reader  Reader
}

func NewHandler(service *Service, reader Reader) *Handler {
	return &Handler{service: service, reader: reader}
}

// List returns every menu item, optionally filtered by ?category=.
func (h *Handler) List(c *gin.Context) {
	items := h.reader.MenuItems()

	if cat := Category(c.Query("category")); cat != "" {
		filtered := make([]MenuItem, 0, len(items))
		for _, item := range items {
			if item.Category == cat {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var item MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	item.ID = ""

	if err := h.service.Save(c.Request.Context(), &item); err != nil {
		respondWriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *Handler) Update(c *gin.Context) {
	var item MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	item.ID = c.Param("id")

	if err := h.service.Save(c.Request.Context(), &item); err != nil {
		respondWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondWriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}

// UploadImage accepts a multipart photo for a menu item.
func (h *Handler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is required"})
		return
	}
	defer file.Close()

	url, err := h.service.AttachImage(
		c.Request.Context(),
		c.Param("id"),
		file,
		header.Filename,
	)
	if err != nil {
		respondWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}

func respondWriteError(c *gin.Context, err error) {
	code := store.HTTPStatus(err)
	if code == http.StatusInternalServerError {
		code = http.StatusBadRequest
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
