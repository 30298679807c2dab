package pos

import (
	"errors"
	"net/http"

	"github.com/josepha8674-lab/Best-restaurant/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetCart(c *gin.Context) {
	cart := h.service.Cart()
	c.JSON(http.StatusOK, gin.H{
		"items":     cart.Lines(),
		"total":     cart.Total(),
		"totalCost": cart.TotalCost(),
	})
}

type addItemRequest struct {
	MenuItemID string `json:"menuItemId"`
}

func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MenuItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menuItemId is required"})
		return
	}

	line, err := h.service.AddItem(req.MenuItemID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, line)
}

type changeQuantityRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) ChangeQuantity(c *gin.Context) {
	var req changeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.ChangeQuantity(c.Param("menuItemID"), req.Delta); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.GetCart(c)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	if err := h.service.RemoveItem(c.Param("menuItemID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.GetCart(c)
}

type checkoutRequest struct {
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sale, err := h.service.Checkout(c.Request.Context(), req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrInvalidPayment):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(store.HTTPStatus(err), gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, sale)
}
