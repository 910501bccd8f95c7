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

// offerHandler handles HTTP requests related to hotel offers, valid and
// invalid alike.
type offerHandler struct {
	browseService *services.BrowseService
}

// newOfferHandler creates a new offerHandler.
func newOfferHandler(bs *services.BrowseService) *offerHandler {
	return &offerHandler{
		browseService: bs,
	}
}

// registerOfferRoutes registers routes related to hotel offers.
func registerOfferRoutes(rg *gin.RouterGroup, bs *services.BrowseService) {
	h := newOfferHandler(bs)

	valid := rg.Group("/valid-offers")
	{
		valid.GET("", h.listValidOffers)
		valid.GET("/:id", h.getValidOfferByID)
		valid.PATCH("/:id", h.updateValidOffer)
	}

	invalid := rg.Group("/invalid-offers")
	{
		invalid.GET("", h.listInvalidOffers)
		invalid.GET("/:id", h.getInvalidOfferByID)
	}
}

func (h *offerHandler) listValidOffers(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	page := pageParam(c)
	logger.Info("Received request to list valid offers", slog.Int("page", page))

	offers, err := h.browseService.ListValidOffers(c.Request.Context(), page)
	if err != nil {
		logger.Error("Failed to list valid offers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list valid offers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListValidOfferResponse(offers))
}

func (h *offerHandler) getValidOfferByID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Offer id must be an integer"})
		return
	}

	logger = logger.With(slog.Int64("offer_id", id))
	offer, err := h.browseService.GetValidOffer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Valid offer not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Valid offer not found"})
		} else {
			logger.Error("Failed to get valid offer from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve valid offer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToValidOfferResponse(offer))
}

func (h *offerHandler) updateValidOffer(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Offer id must be an integer"})
		return
	}

	var req dto.UpdateValidOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateValidOffer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("offer_id", id))
	logger.Info("Received request to update valid offer", slog.Bool("invalid", *req.Invalid))

	if err := h.browseService.MarkValidOfferInvalid(c.Request.Context(), id, *req.Invalid); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Valid offer not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Valid offer not found"})
		} else {
			logger.Error("Failed to update valid offer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update valid offer"})
		}
		return
	}

	offer, err := h.browseService.GetValidOffer(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to reload valid offer after update", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve valid offer"})
		return
	}

	logger.Info("Valid offer updated successfully")
	c.JSON(http.StatusOK, dto.ToValidOfferResponse(offer))
}

func (h *offerHandler) listInvalidOffers(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	page := pageParam(c)
	logger.Info("Received request to list invalid offers", slog.Int("page", page))

	offers, err := h.browseService.ListInvalidOffers(c.Request.Context(), page)
	if err != nil {
		logger.Error("Failed to list invalid offers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invalid offers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvalidOfferResponse(offers))
}

func (h *offerHandler) getInvalidOfferByID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Offer id must be an integer"})
		return
	}

	logger = logger.With(slog.Int64("offer_id", id))
	offer, err := h.browseService.GetInvalidOffer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Invalid offer not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid offer not found"})
		} else {
			logger.Error("Failed to get invalid offer from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invalid offer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvalidOfferResponse(offer))
}
