package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"medilog/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	userHandler *handler.UserHandler,
	medicationHandler *handler.MedicationHandler,
	moodHandler *handler.MoodHandler,
	scanHandler *handler.ScanHandler,
	tipsHandler *handler.TipsHandler,
	chatHandler *handler.ChatHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "API is working"})
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/signup", userHandler.Signup)

	e.POST("/medication/log", medicationHandler.Log)
	e.GET("/medication/history/:user_id", medicationHandler.History)

	e.POST("/mood/log", moodHandler.Log)
	e.GET("/mood/history/:user_id", moodHandler.History)

	e.POST("/scan/drug", scanHandler.ScanDrug)

	e.GET("/tips/:user_id", tipsHandler.Tips)

	e.POST("/ai/chat", chatHandler.Chat)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
