package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "actipoint/internal/errors"
	"actipoint/internal/model"
	"actipoint/internal/service"
)

// ActivityHandler handles activity catalog endpoints.
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// CreateEventRequest represents an activity creation request. Optional
// numeric fields are pointers so an absent field gets its default rather
// than zero.
type CreateEventRequest struct {
	Name                 string `json:"name" validate:"required"`
	Date                 string `json:"date" validate:"required"`
	Time                 string `json:"time"`
	Location             string `json:"location"`
	Organizer            string `json:"organizer"`
	Description          string `json:"description"`
	Cost                 *int   `json:"cost" validate:"omitempty,gte=0"`
	RequiredParticipants *int   `json:"requiredParticipants" validate:"omitempty,gte=1"`
	CurrentParticipants  *int   `json:"currentParticipants" validate:"omitempty,gte=0"`
}

// ActivitiesResponse wraps an activity listing.
type ActivitiesResponse struct {
	Activities []model.Activity `json:"activities"`
}

// CreateEventResponse represents a successful activity creation.
type CreateEventResponse struct {
	Status string      `json:"status"`
	Event  interface{} `json:"event"`
}

// List godoc
// @Summary List activities sorted by date
// @Tags activities
// @Produce json
// @Success 200 {object} ActivitiesResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	activities, err := h.activityService.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ActivitiesResponse{Activities: activities})
}

// Details godoc
// @Summary List activities with full detail, unsorted
// @Tags activities
// @Produce json
// @Success 200 {object} ActivitiesResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /activity-details [get]
func (h *ActivityHandler) Details(c echo.Context) error {
	activities, err := h.activityService.Details(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ActivitiesResponse{Activities: activities})
}

// CreateEvent godoc
// @Summary Create a new activity
// @Tags activities
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Activity data"
// @Success 200 {object} CreateEventResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /create-event [post]
func (h *ActivityHandler) CreateEvent(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	activity, err := h.activityService.Create(c.Request().Context(), service.CreateActivityInput{
		Name:                 req.Name,
		Date:                 req.Date,
		Time:                 req.Time,
		Location:             req.Location,
		Organizer:            req.Organizer,
		Description:          req.Description,
		Cost:                 req.Cost,
		RequiredParticipants: req.RequiredParticipants,
		CurrentParticipants:  req.CurrentParticipants,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, CreateEventResponse{
		Status: "Event created",
		Event:  activity,
	})
}
