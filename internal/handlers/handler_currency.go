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

// currencyHandler handles HTTP requests related to warehouse currencies.
type currencyHandler struct {
	browseService *services.BrowseService
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(bs *services.BrowseService) *currencyHandler {
	return &currencyHandler{
		browseService: bs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, bs *services.BrowseService) {
	h := newCurrencyHandler(bs)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:id", h.getCurrencyByID)
	}
}

func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	page := pageParam(c)
	logger.Info("Received request to list currencies", slog.Int("page", page))

	currencies, err := h.browseService.ListCurrencies(c.Request.Context(), page)
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

func (h *currencyHandler) getCurrencyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency id must be an integer"})
		return
	}

	logger = logger.With(slog.Int64("currency_id", id))
	currency, err := h.browseService.GetCurrency(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// pageParam reads the 1-based ?page query parameter, defaulting to 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
