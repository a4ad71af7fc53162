package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"medilog/internal/errors"
	"medilog/internal/service"
)

// UserHandler handles signup.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// SignupResponse represents a signup response.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// Signup godoc
// @Summary Register a new patient
// @Tags users
// @Produce json
// @Param name query string true "Patient name"
// @Param condition query string true "Patient condition"
// @Success 200 {object} SignupResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	name := c.QueryParam("name")
	condition := c.QueryParam("condition")
	if name == "" || condition == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error: "name and condition are required",
			Code:  "VALIDATION_ERROR",
		})
	}

	user, err := h.svc.Signup(c.Request().Context(), name, condition)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, SignupResponse{
		Message: "User created",
		UserID:  user.ID,
	})
}
