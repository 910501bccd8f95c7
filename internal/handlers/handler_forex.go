package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hqdw/hq_warehouse_app/internal/apperrors"
	"github.com/hqdw/hq_warehouse_app/internal/core/services"
	"github.com/hqdw/hq_warehouse_app/internal/dto"
	"github.com/hqdw/hq_warehouse_app/internal/middleware"
)

// forexHandler handles HTTP requests related to exchange rates.
type forexHandler struct {
	browseService *services.BrowseService
}

// newForexHandler creates a new forexHandler.
func newForexHandler(bs *services.BrowseService) *forexHandler {
	return &forexHandler{
		browseService: bs,
	}
}

// registerForexRoutes registers routes related to exchange rates.
func registerForexRoutes(rg *gin.RouterGroup, bs *services.BrowseService) {
	h := newForexHandler(bs)

	rates := rg.Group("/forex")
	{
		rates.GET("", h.listForex)
		rates.GET("/:id", h.getForexByID)
	}
}

func (h *forexHandler) listForex(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	page := pageParam(c)
	logger.Info("Received request to list exchange rates", slog.Int("page", page))

	rates, err := h.browseService.ListForex(c.Request.Context(), page)
	if err != nil {
		logger.Error("Failed to list exchange rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListForexResponse(rates))
}

func (h *forexHandler) getForexByID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exchange rate id must be an integer"})
		return
	}

	logger = logger.With(slog.Int64("forex_id", id))
	fx, err := h.browseService.GetForex(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Exchange rate not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
		} else {
			logger.Error("Failed to get exchange rate from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToForexResponse(fx))
}
