package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/exchwatch/currency_exchange_app/internal/apperrors"
	portssvc "github.com/exchwatch/currency_exchange_app/internal/core/ports/services"
	"github.com/exchwatch/currency_exchange_app/internal/dto"
	"github.com/exchwatch/currency_exchange_app/internal/middleware"
	"github.com/exchwatch/currency_exchange_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests for rate listing and statistics.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers the public rate routes.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rg.GET("/rates/", h.listRates)
	rg.GET("/currency_statistics/", h.currencyStatistics)
}

// listRates godoc
// @Summary List currency rates
// @Description Lists stored daily rates with AND-composed filters and page-based pagination
// @Tags rates
// @Produce json
// @Param from_currency query string false "Exact base currency code"
// @Param to_currency query string false "Exact target currency code"
// @Param day_of_rate query string false "Exact rate day (YYYY-MM-DD)"
// @Param day_of_rate_gte query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param day_of_rate_lte query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.PaginatedRatesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Router /rates/ [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter, err := params.ToRateFilter()
	if err != nil {
		logger.Warn("Invalid rate filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rates, total, err := h.rateService.ListRates(c.Request.Context(), filter, params.Page)
	if err != nil {
		logger.Error("Failed to list rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	next, previous := pagination.PageLinks(c.Request.URL, page, h.rateService.PageSize(), total)

	results := make([]dto.RateResponse, len(rates))
	for i, rate := range rates {
		results[i] = dto.ToRateResponse(rate)
	}

	c.JSON(http.StatusOK, dto.PaginatedRatesResponse{
		Count:    total,
		Next:     next,
		Previous: previous,
		Results:  results,
	})
}

// currencyStatistics godoc
// @Summary Per-currency rate statistics
// @Description Returns min and max sale rate per currency over an inclusive date range
// @Tags rates
// @Produce json
// @Param date_filter_gte query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param date_filter_lte query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.StatisticsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Router /currency_statistics/ [get]
func (h *rateHandler) currencyStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.StatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for CurrencyStatistics", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	gte, lte, err := params.Bounds()
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to parse statistics bounds", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	stats, err := h.rateService.Statistics(c.Request.Context(), gte, lte)
	if err != nil {
		logger.Error("Failed to compute statistics from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}
