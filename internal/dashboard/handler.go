package dashboard

import (
	"net/http"
	"time"

	"github.com/josepha8674-lab/Best-restaurant/internal/pos"

	"github.com/gin-gonic/gin"
)

// Reader serves the latest synchronized sales log, newest first.
type Reader interface {
	Sales() []pos.Sale
}

type Handler struct {
	reader Reader
}

func NewHandler(reader Reader) *Handler {
	return &Handler{reader: reader}
}

func (h *Handler) Summary(c *gin.Context) {
	sales := h.reader.Sales()
	now := time.Now()

	c.JSON(http.StatusOK, gin.H{
		"daily":    DailySummary(sales, now),
		"monthly":  MonthlySummary(sales, now),
		"lifetime": Summarize(sales),
	})
}

func (h *Handler) Trend(c *gin.Context) {
	c.JSON(http.StatusOK, WeeklyTrend(h.reader.Sales(), time.Now()))
}
