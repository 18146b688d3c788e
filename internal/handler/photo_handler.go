package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "actipoint/internal/errors"
	"actipoint/internal/service"
)

// PhotoHandler handles verification photo uploads.
type PhotoHandler struct {
	photoService service.PhotoService
}

// NewPhotoHandler creates a new photo handler.
func NewPhotoHandler(photoService service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// UploadResponse represents a successful verification upload.
type UploadResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	User    interface{} `json:"user"`
}

// Upload godoc
// @Summary Upload a verification photo and earn points
// @Tags photos
// @Accept mpfd
// @Produce json
// @Param username formData string true "Username"
// @Param photo formData file true "Verification photo"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /upload-photo [post]
func (h *PhotoHandler) Upload(c echo.Context) error {
	username := c.FormValue("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "username is required",
			Code:  "MISSING_USERNAME",
		})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrNoFileAttached)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	_, user, err := h.photoService.StoreVerification(c.Request().Context(), username, file)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UploadResponse{
		Status:  "success",
		Message: "photo uploaded, 10 points credited",
		User:    user,
	})
}
