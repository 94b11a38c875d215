package api

import (
	"errors"
	"time"

	"github.com/RuneweaverStudios/openingCandle/internal/domain/models"
	"github.com/RuneweaverStudios/openingCandle/internal/usecase"
	xhttp "github.com/RuneweaverStudios/openingCandle/pkg/http"
	xlogger "github.com/RuneweaverStudios/openingCandle/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChartEchoHandler serves the chart-data and win-rate endpoints.
type ChartEchoHandler struct {
	logger  *xlogger.Logger
	chart   *usecase.ChartUseCase
	winrate *usecase.WinRateUseCase
}

func NewChartEchoHandler(logger *xlogger.Logger, chart *usecase.ChartUseCase, winrate *usecase.WinRateUseCase) *ChartEchoHandler {
	return &ChartEchoHandler{logger: logger, chart: chart, winrate: winrate}
}

func (h *ChartEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/mnq-data", h.Chart)
	g.GET("/winrate", h.WinRate)
	g.GET("/health", h.Health)
}

func (h *ChartEchoHandler) Chart(c echo.Context) error {
	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.chart.GetChart(c.Request().Context(), req.Date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoData):
			return xhttp.AppErrorResponse(c, xhttp.NotFoundError(
				"no data found for this date; the provider typically keeps intraday data for the last 7 days only").WithError(err))
		case errors.Is(err, usecase.ErrUpstream):
			h.logger.Error("chart upstream error", xlogger.Error(err))
			return xhttp.AppErrorResponse(c, xhttp.BadGatewayError("market data provider unavailable").WithError(err))
		default:
			h.logger.Error("chart usecase error", xlogger.Error(err))
			return xhttp.AppErrorResponse(c, err)
		}
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ChartEchoHandler) WinRate(c echo.Context) error {
	req := &models.WinRateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.winrate.GetWinRate(c.Request().Context(), req.Days)
	if err != nil {
		h.logger.Error("winrate usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ChartEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
