package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"actipoint/internal/config"
	"actipoint/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	activityHandler *handler.ActivityHandler,
	ledgerHandler *handler.LedgerHandler,
	photoHandler *handler.PhotoHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	e.GET("/activities", activityHandler.List)
	e.GET("/activity-details", activityHandler.Details)
	e.POST("/create-event", activityHandler.CreateEvent)

	e.POST("/use-points", ledgerHandler.UsePoints)

	e.POST("/upload-photo", photoHandler.Upload)

	// Front-end assets with index fallback for client-side routes
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  cfg.StaticDir,
		Index: "index.html",
		HTML5: true,
	}))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
