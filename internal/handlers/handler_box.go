package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"collectbox/internal/apperrors"
	portssvc "collectbox/internal/core/ports/services"
	"collectbox/internal/dto"
	"collectbox/internal/middleware"
	"collectbox/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// boxHandler handles HTTP requests related to collection boxes.
type boxHandler struct {
	boxService portssvc.BoxSvcFacade
}

// newBoxHandler creates a new boxHandler.
func newBoxHandler(bs portssvc.BoxSvcFacade) *boxHandler {
	return &boxHandler{
		boxService: bs,
	}
}

// registerBoxRoutes registers routes related to collection boxes.
func registerBoxRoutes(rg *gin.RouterGroup, boxService portssvc.BoxSvcFacade) {
	h := newBoxHandler(boxService)

	boxes := rg.Group("/boxes")
	{
		boxes.POST("", h.registerBox)
		boxes.GET("", h.listBoxes)
		boxes.DELETE("/:boxID", h.unregisterBox)
		boxes.PATCH("/:boxID/assign", h.assignBox)
		boxes.PUT("/:boxID/add-money", h.addMoney)
		boxes.POST("/:boxID/empty", h.emptyBox)
	}
}

// parseBoxID extracts the numeric box ID from the path.
func parseBoxID(c *gin.Context) (int64, bool) {
	boxID, err := strconv.ParseInt(c.Param("boxID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid box ID: must be a number"})
		return 0, false
	}
	return boxID, true
}

// registerBox godoc
// @Summary Register a new collection box
// @Description Creates a new collection box, initially empty and unassigned
// @Tags boxes
// @Produce  json
// @Success 201 {object} dto.CollectionBoxResponse
// @Failure 500 {object} map[string]string "Failed to register collection box"
// @Router /boxes [post]
func (h *boxHandler) registerBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to register collection box")

	box, err := h.boxService.RegisterBox(c.Request.Context())
	if err != nil {
		logger.Error("Failed to register collection box in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register collection box"})
		return
	}

	logger.Info("Collection box registered successfully", slog.Int64("box_id", box.BoxID))
	c.JSON(http.StatusCreated, dto.ToCollectionBoxResponse(box))
}

// listBoxes godoc
// @Summary List collection boxes
// @Description Retrieves a page of collection boxes. Each box reports only whether it is assigned and whether it is empty, never its contents.
// @Tags boxes
// @Produce  json
// @Param   page query int false "Page index (0-based)" default(0)
// @Param   size query int false "Page size" default(10) maximum(100)
// @Param   direction query string false "Sort direction by box ID" Enums(asc, desc) default(asc)
// @Success 200 {object} dto.ListBoxesResponse
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 500 {object} map[string]string "Failed to list collection boxes"
// @Router /boxes [get]
func (h *boxHandler) listBoxes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(pagination.DefaultPage)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page: must be a number"})
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(pagination.DefaultSize)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size: must be a number"})
		return
	}
	direction := c.DefaultQuery("direction", "asc")

	logger.Info("Received request to list collection boxes", slog.Int("page", page), slog.Int("size", size))

	boxes, total, err := h.boxService.ListBoxes(c.Request.Context(), page, size, direction)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination for listing boxes", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list collection boxes from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list collection boxes"})
		}
		return
	}

	logger.Info("Collection boxes listed successfully", slog.Int("count", len(boxes)))
	c.JSON(http.StatusOK, dto.ToListBoxesResponse(boxes, page, size, total))
}

// unregisterBox godoc
// @Summary Unregister a collection box
// @Description Removes a collection box. Any money still inside is discarded, never transferred.
// @Tags boxes
// @Param   boxID path int true "Collection box ID"
// @Success 204 "Collection box unregistered"
// @Failure 400 {object} map[string]string "Invalid box ID"
// @Failure 404 {object} map[string]string "Collection box not found"
// @Failure 500 {object} map[string]string "Failed to unregister collection box"
// @Router /boxes/{boxID} [delete]
func (h *boxHandler) unregisterBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boxID, ok := parseBoxID(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("box_id", boxID))
	logger.Info("Received request to unregister collection box")

	if err := h.boxService.UnregisterBox(c.Request.Context(), boxID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Collection box not found")
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to unregister collection box in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unregister collection box"})
		}
		return
	}

	logger.Info("Collection box unregistered successfully")
	c.Status(http.StatusNoContent)
}

// assignBox godoc
// @Summary Assign a collection box to a fundraising event
// @Description Assigns an empty, unassigned collection box to a fundraising event
// @Tags boxes
// @Accept  json
// @Produce  json
// @Param   boxID path int true "Collection box ID"
// @Param   assignment body dto.AssignBoxRequest true "Target event"
// @Success 200 {object} dto.CollectionBoxResponse
// @Failure 400 {object} map[string]string "Invalid input or box not empty or already assigned"
// @Failure 404 {object} map[string]string "Collection box or event not found"
// @Failure 409 {object} map[string]string "Box changed concurrently"
// @Failure 500 {object} map[string]string "Failed to assign collection box"
// @Router /boxes/{boxID}/assign [patch]
func (h *boxHandler) assignBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boxID, ok := parseBoxID(c)
	if !ok {
		return
	}

	var req dto.AssignBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignBox", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("box_id", boxID), slog.Int64("event_id", req.EventID))
	logger.Info("Received request to assign collection box")

	box, err := h.boxService.AssignBoxToEvent(c.Request.Context(), boxID, req.EventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Box or event not found for assignment", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error assigning box", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Conflict assigning box", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to assign collection box in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign collection box"})
		}
		return
	}

	logger.Info("Collection box assigned successfully")
	c.JSON(http.StatusOK, dto.ToCollectionBoxResponse(box))
}

// addMoney godoc
// @Summary Add money to a collection box
// @Description Deposits an amount of a registered currency into an assigned collection box
// @Tags boxes
// @Accept  json
// @Produce  json
// @Param   boxID path int true "Collection box ID"
// @Param   deposit body dto.AddMoneyRequest true "Deposit details"
// @Success 204 "Money added"
// @Failure 400 {object} map[string]string "Invalid amount or box not assigned"
// @Failure 404 {object} map[string]string "Collection box or currency not found"
// @Failure 500 {object} map[string]string "Failed to add money"
// @Router /boxes/{boxID}/add-money [put]
func (h *boxHandler) addMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boxID, ok := parseBoxID(c)
	if !ok {
		return
	}

	var req dto.AddMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddMoney", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("box_id", boxID), slog.String("currency_code", req.CurrencyCode))
	logger.Info("Received request to add money to collection box")

	if err := h.boxService.AddMoney(c.Request.Context(), boxID, req.CurrencyCode, req.Amount); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Box or currency not found for deposit", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error adding money", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add money in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add money"})
		}
		return
	}

	logger.Info("Money added successfully")
	c.Status(http.StatusNoContent)
}

// emptyBox godoc
// @Summary Empty a collection box
// @Description Transfers all money from the box to its event's account, converting to the event currency where needed. The box ends up empty but remains registered and assigned.
// @Tags boxes
// @Produce  json
// @Param   boxID path int true "Collection box ID"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Box not assigned or already empty"
// @Failure 404 {object} map[string]string "Collection box not found"
// @Failure 409 {object} map[string]string "Box contents changed during settlement"
// @Failure 502 {object} map[string]string "Currency conversion failed"
// @Failure 500 {object} map[string]string "Failed to empty collection box"
// @Router /boxes/{boxID}/empty [post]
func (h *boxHandler) emptyBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boxID, ok := parseBoxID(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("box_id", boxID))
	logger.Info("Received request to empty collection box")

	settlement, err := h.boxService.EmptyBox(c.Request.Context(), boxID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Collection box not found")
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error emptying box", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Conflict emptying box", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConversion) {
			logger.Error("Currency conversion failed while emptying box", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to empty collection box in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to empty collection box"})
		}
		return
	}

	logger.Info("Collection box emptied successfully",
		slog.Int64("event_id", settlement.EventID),
		slog.String("total_transferred", settlement.TotalTransferred.String()),
	)
	c.JSON(http.StatusOK, dto.ToSettlementResponse(settlement))
}
