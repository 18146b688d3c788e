package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "actipoint/internal/errors"
	"actipoint/internal/service"
)

// LedgerHandler handles point spending endpoints.
type LedgerHandler struct {
	ledgerService service.LedgerService
}

// NewLedgerHandler creates a new ledger handler.
func NewLedgerHandler(ledgerService service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// UsePointsRequest represents a point spend request.
type UsePointsRequest struct {
	Username string `json:"username" validate:"required"`
	Cost     *int   `json:"cost" validate:"required"`
}

// UsePointsResponse represents a successful spend.
type UsePointsResponse struct {
	Status          string `json:"status"`
	RemainingPoints int    `json:"remaining_points"`
}

// UsePoints godoc
// @Summary Spend reward points
// @Tags points
// @Accept json
// @Produce json
// @Param request body UsePointsRequest true "Spend data"
// @Success 200 {object} UsePointsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /use-points [post]
func (h *LedgerHandler) UsePoints(c echo.Context) error {
	var req UsePointsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	remaining, err := h.ledgerService.SpendPoints(c.Request().Context(), req.Username, *req.Cost)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UsePointsResponse{
		Status:          "success",
		RemainingPoints: remaining,
	})
}
