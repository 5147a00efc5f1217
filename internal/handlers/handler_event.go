package handlers

import (
	"errors"
	"fmt"
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

// eventHandler handles HTTP requests related to fundraising events.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

// newEventHandler creates a new eventHandler.
func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{
		eventService: es,
	}
}

// registerEventRoutes registers routes related to fundraising events.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("/report", h.financialReport)
		events.GET("/report/html", h.financialReportHTML)
		events.GET("/report/export", h.financialReportExport)
	}
}

// createEvent godoc
// @Summary Create a new fundraising event
// @Description Creates a fundraising event with a zero starting balance in its target currency
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.FundraisingEventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 409 {object} map[string]string "Event name already exists"
// @Failure 500 {object} map[string]string "Failed to create event"
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("event_name", req.Name), slog.String("currency_code", req.CurrencyCode))
	logger.Info("Received request to create fundraising event")

	event, err := h.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate event")
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("fundraising event with name '%s' already exists", req.Name)})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found for event", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating event", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create event in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		}
		return
	}

	logger.Info("Fundraising event created successfully", slog.Int64("event_id", event.EventID))
	c.JSON(http.StatusCreated, dto.ToFundraisingEventResponse(event))
}

// reportQueryParams extracts the shared report query parameters.
func reportQueryParams(c *gin.Context) (sortBy, direction string) {
	sortBy = c.DefaultQuery("sortBy", "id")
	direction = c.DefaultQuery("direction", "asc")
	return sortBy, direction
}

// financialReport godoc
// @Summary Financial report of fundraising events
// @Description Retrieves a sorted page of all fundraising events with their display balances
// @Tags events
// @Produce  json
// @Param   page query int false "Page index (0-based)" default(0)
// @Param   size query int false "Page size" default(10) maximum(100)
// @Param   sortBy query string false "Sort field" Enums(id, name, balance) default(id)
// @Param   direction query string false "Sort direction" Enums(asc, desc) default(asc)
// @Success 200 {object} dto.FinancialReportResponse
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 500 {object} map[string]string "Failed to build financial report"
// @Router /events/report [get]
func (h *eventHandler) financialReport(c *gin.Context) {
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
	sortBy, direction := reportQueryParams(c)

	logger.Info("Received request for financial report", slog.Int("page", page), slog.Int("size", size), slog.String("sort_by", sortBy))

	events, total, err := h.eventService.FinancialReport(c.Request.Context(), page, size, sortBy, direction)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid parameters for financial report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build financial report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build financial report"})
		}
		return
	}

	logger.Info("Financial report built successfully", slog.Int("count", len(events)))
	c.JSON(http.StatusOK, dto.ToFinancialReportResponse(events, page, size, total))
}

// financialReportHTML godoc
// @Summary Financial report as HTML
// @Description Renders the full financial report as a standalone HTML document
// @Tags events
// @Produce  html
// @Param   sortBy query string false "Sort field" Enums(id, name, balance) default(id)
// @Param   direction query string false "Sort direction" Enums(asc, desc) default(asc)
// @Success 200 {string} string "HTML report"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to render report"
// @Router /events/report/html [get]
func (h *eventHandler) financialReportHTML(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sortBy, direction := reportQueryParams(c)

	logger.Info("Received request for HTML financial report", slog.String("sort_by", sortBy))

	html, err := h.eventService.HTMLReport(c.Request.Context(), sortBy, direction)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid parameters for HTML report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to render HTML report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		}
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// financialReportExport godoc
// @Summary Export the financial report as a file
// @Description Renders the full financial report as an XLSX or PDF download
// @Tags events
// @Produce  application/octet-stream
// @Param   format query string true "Export format" Enums(xlsx, pdf)
// @Param   sortBy query string false "Sort field" Enums(id, name, balance) default(id)
// @Param   direction query string false "Sort direction" Enums(asc, desc) default(asc)
// @Success 200 {file} file "Report file"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to export report"
// @Router /events/report/export [get]
func (h *eventHandler) financialReportExport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	format := c.Query("format")
	sortBy, direction := reportQueryParams(c)

	logger = logger.With(slog.String("format", format))
	logger.Info("Received request to export financial report")

	content, contentType, err := h.eventService.ExportFinancialReport(c.Request.Context(), format, sortBy, direction)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid parameters for report export", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to export financial report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=fundraising-report.%s", format))
	c.Data(http.StatusOK, contentType, content)
}
